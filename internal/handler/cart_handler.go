package handler

import (
	"net/http"

	"github.com/MoBa75/webshop/internal/middleware"
	repo "github.com/MoBa75/webshop/internal/repository"
	"github.com/MoBa75/webshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cart routes: view, add, update, remove, checkout.
type CartHandler struct {
	cartUC     *usecase.CartUsecase
	checkoutUC *usecase.CheckoutUsecase
}

func NewCartHandler(cartUC *usecase.CartUsecase, checkoutUC *usecase.CheckoutUsecase) *CartHandler {
	return &CartHandler{cartUC: cartUC, checkoutUC: checkoutUC}
}

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, verifier middleware.TokenVerifier, userRepo repo.UserRepository) {
	g := e.Group("/cart")
	g.Use(middleware.AuthJWT(verifier))
	g.Use(middleware.RequireUser(userRepo))

	g.GET("", h.viewCart)
	g.POST("/items", h.addItem)
	g.PUT("/items/:productID", h.updateItem)
	g.DELETE("/items/:productID", h.removeItem)
	g.POST("/checkout", h.checkout)
}

func (h *CartHandler) viewCart(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.cartUC.ViewCart(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.cartUC.AddItem(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) updateItem(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	productID, err := parseIDParam(c, "productID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.cartUC.UpdateItem(c.Request().Context(), userID, productID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	productID, err := parseIDParam(c, "productID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.cartUC.RemoveItem(c.Request().Context(), userID, productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.checkoutUC.Checkout(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
