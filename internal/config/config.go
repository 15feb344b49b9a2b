package config

import (
	"fmt"
	"os"
)

// Process-wide configuration, read from the environment once at startup.
type Config struct {
	Port string // server port (8080)

	Auth0Domain   string // tenant domain, e.g. my-shop.eu.auth0.com
	Auth0Audience string // API identifier expected in the aud claim

	GoEnv string // dev/prod

	ProductImageDir string // root folder for product image storage
}

// Load reads the environment. Database settings are read separately by
// infra/db.Connect.
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		Auth0Domain:   os.Getenv("AUTH0_DOMAIN"),
		Auth0Audience: os.Getenv("AUTH0_API_AUDIENCE"),

		GoEnv: os.Getenv("GO_ENV"),

		ProductImageDir: os.Getenv("PRODUCT_IMAGE_DIR"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.GoEnv == "" {
		cfg.GoEnv = "dev"
	}
	if cfg.ProductImageDir == "" {
		cfg.ProductImageDir = "static/product_images"
	}

	if cfg.Auth0Domain == "" {
		return Config{}, fmt.Errorf("AUTH0_DOMAIN is required")
	}
	if cfg.Auth0Audience == "" {
		return Config{}, fmt.Errorf("AUTH0_API_AUDIENCE is required")
	}

	return cfg, nil
}
