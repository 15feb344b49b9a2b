package handler

import (
	"errors"
	"net/http"
	"strconv"

	repo "github.com/MoBa75/webshop/internal/repository"
	"github.com/MoBa75/webshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// Conflict payload for stock failures; Available is present only for the
// insufficient-stock case.
type StockErrorResponse struct {
	Error     string `json:"error"`
	ProductID int64  `json:"product_id"`
	Available *int64 `json:"available,omitempty"`
	Requested int64  `json:"requested,omitempty"`
}

// writeError maps usecase error kinds onto HTTP statuses. Unknown errors
// surface as 500 after the transaction already rolled back.
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var outOfStock *usecase.OutOfStockError
	if errors.As(err, &outOfStock) {
		return c.JSON(http.StatusConflict, StockErrorResponse{
			Error:     outOfStock.Error(),
			ProductID: outOfStock.ProductID,
		})
	}

	var insufficient *usecase.InsufficientStockError
	if errors.As(err, &insufficient) {
		available := insufficient.Available
		return c.JSON(http.StatusConflict, StockErrorResponse{
			Error:     insufficient.Error(),
			ProductID: insufficient.ProductID,
			Available: &available,
			Requested: insufficient.Requested,
		})
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrItemNotInCart),
		errors.Is(err, usecase.ErrNoCartToCheckout),
		errors.Is(err, repo.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}

	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get("user_id")
	if v == nil {
		return 0, false
	}

	id, ok := v.(int64)
	if !ok {
		return 0, false
	}
	return id, true
}

func getIsAdminFromContext(c echo.Context) bool {
	isAdmin, ok := c.Get("is_admin").(bool)
	return ok && isAdmin
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
