package main

import (
	"log/slog"
	"os"

	"github.com/MoBa75/webshop/internal/auth"
	"github.com/MoBa75/webshop/internal/config"
	"github.com/MoBa75/webshop/internal/domain/model"
	"github.com/MoBa75/webshop/internal/handler"
	"github.com/MoBa75/webshop/internal/infra/db"
	infraRepo "github.com/MoBa75/webshop/internal/infra/repository"
	"github.com/MoBa75/webshop/internal/server"
	"github.com/MoBa75/webshop/internal/usecase"
	"github.com/MoBa75/webshop/pkg/logging"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional outside dev
	_ = godotenv.Load()

	logger := logging.New(slog.LevelInfo)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}

	gormDB, err := db.Connect()
	if err != nil {
		logger.Error("db connect", "err", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Address{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Invoice{},
		&model.Reminder{},
		&model.Shipment{},
		&model.InventoryAdjustment{},
	); err != nil {
		logger.Error("migrate", "err", err)
		os.Exit(1)
	}

	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	addressRepo := infraRepo.NewAddressGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	verifier := auth.NewVerifier(cfg.Auth0Domain, cfg.Auth0Audience)

	cartUC := usecase.NewCartUsecase(txManager)
	checkoutUC := usecase.NewCheckoutUsecase(txManager)
	orderUC := usecase.NewOrderUsecase(txManager)
	productUC := usecase.NewProductUsecase(productRepo, inventoryRepo, cfg.ProductImageDir)
	userUC := usecase.NewUserUsecase(userRepo)
	addressUC := usecase.NewAddressUsecase(addressRepo)

	handlers := server.Handlers{
		Products:  handler.NewProductHandler(productUC),
		Users:     handler.NewUserHandler(userUC),
		Addresses: handler.NewAddressHandler(addressUC),
		Cart:      handler.NewCartHandler(cartUC, checkoutUC),
		Orders:    handler.NewOrderHandler(orderUC),
	}

	srv := server.New(verifier, userRepo, handlers, logger)

	addr := ":" + cfg.Port
	if err := srv.Start(addr); err != nil {
		logger.Error("server", "err", err)
		os.Exit(1)
	}
}
