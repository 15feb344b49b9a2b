package server

import (
	"github.com/MoBa75/webshop/internal/middleware"
	repo "github.com/MoBa75/webshop/internal/repository"

	"github.com/labstack/echo/v4"
)

func registerRoutes(e *echo.Echo, verifier middleware.TokenVerifier, userRepo repo.UserRepository, h Handlers) {
	h.Products.RegisterRoutes(e, verifier, userRepo)
	h.Users.RegisterRoutes(e, verifier, userRepo)
	h.Addresses.RegisterRoutes(e, verifier, userRepo)
	h.Cart.RegisterRoutes(e, verifier, userRepo)
	h.Orders.RegisterRoutes(e, verifier, userRepo)
}
