package server

import (
	"log/slog"

	"github.com/MoBa75/webshop/internal/handler"
	"github.com/MoBa75/webshop/internal/middleware"
	repo "github.com/MoBa75/webshop/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Products  *handler.ProductHandler
	Users     *handler.UserHandler
	Addresses *handler.AddressHandler
	Cart      *handler.CartHandler
	Orders    *handler.OrderHandler
}

type Server struct {
	e      *echo.Echo
	logger *slog.Logger
}

func New(verifier middleware.TokenVerifier, userRepo repo.UserRepository, h Handlers, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	registerRoutes(e, verifier, userRepo, h)

	return &Server{e: e, logger: logger}
}

func (s *Server) Start(addr string) error {
	s.logger.Info("server listening", "addr", addr)
	return s.e.Start(addr)
}
