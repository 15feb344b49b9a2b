package handler

import (
	"net/http"

	"github.com/MoBa75/webshop/internal/middleware"
	repo "github.com/MoBa75/webshop/internal/repository"
	"github.com/MoBa75/webshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, verifier middleware.TokenVerifier, userRepo repo.UserRepository) {
	// register only needs a verified token; the local user does not exist yet
	reg := e.Group("/users/register")
	reg.Use(middleware.AuthJWT(verifier))
	reg.POST("", h.register)

	g := e.Group("/users")
	g.Use(middleware.AuthJWT(verifier))
	g.Use(middleware.RequireUser(userRepo))

	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)

	admin := g.Group("")
	admin.Use(middleware.AdminGuard())
	admin.GET("", h.list)
	admin.DELETE("/:id", h.delete)
}

func (h *UserHandler) register(c echo.Context) error {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req usecase.RegisterInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Register(c.Request().Context(), ident, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *UserHandler) get(c echo.Context) error {
	callerID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetUser(c.Request().Context(), callerID, getIsAdminFromContext(c), targetID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) list(c echo.Context) error {
	out, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) update(c echo.Context) error {
	callerID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req usecase.UpdateUserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateUser(c.Request().Context(), callerID, getIsAdminFromContext(c), targetID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) delete(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteUser(c.Request().Context(), targetID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
