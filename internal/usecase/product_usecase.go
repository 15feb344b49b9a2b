package usecase

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MoBa75/webshop/internal/domain/model"
	repo "github.com/MoBa75/webshop/internal/repository"
)

// Product catalog management plus admin restocking. Each product gets an
// image folder under imageDir, named after the sanitized product name.
type ProductUsecase struct {
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
	imageDir      string
}

func NewProductUsecase(
	productRepo repo.ProductRepository,
	inventoryRepo repo.InventoryRepository,
	imageDir string,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		imageDir:      imageDir,
	}
}

type ProductInput struct {
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	Price       int64  `json:"price"`
	Stock       int64  `json:"stock"`
	Description string `json:"description"`
}

type RestockInput struct {
	Quantity int64  `json:"quantity"`
	Reason   string `json:"reason"`
}

type SetStockInput struct {
	Stock  int64  `json:"stock"`
	Reason string `json:"reason"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return u.productRepo.List(ctx)
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	_, err := u.productRepo.FindByName(ctx, in.Name)
	if err == nil {
		return model.Product{}, NewHTTPError(http.StatusConflict, "a product with this name already exists")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, err
	}

	imagePath, err := u.createImageFolder(in.Name)
	if err != nil {
		return model.Product{}, err
	}

	created, err := u.productRepo.Create(ctx, model.Product{
		Name:        in.Name,
		Unit:        in.Unit,
		Price:       in.Price,
		Stock:       in.Stock,
		Description: in.Description,
		ImagePath:   imagePath,
	})
	if err != nil {
		return model.Product{}, err
	}
	return created, nil
}

// UpdateProduct changes catalog fields. Stock is not touched here; that is
// what Restock and SetStock are for.
func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	current, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, err
	}

	if in.Name != current.Name {
		_, err := u.productRepo.FindByName(ctx, in.Name)
		if err == nil {
			return model.Product{}, NewHTTPError(http.StatusConflict, "a product with this name already exists")
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, err
		}
	}

	current.Name = in.Name
	current.Unit = in.Unit
	current.Price = in.Price
	current.Description = in.Description

	if err := u.productRepo.Update(ctx, current); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.Product{}, err
	}
	return current, nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	if err := u.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		return err
	}

	u.removeImageFolder(p.Name)
	return nil
}

// Restock increments stock and records the adjustment with the acting admin.
func (u *ProductUsecase) Restock(ctx context.Context, adminUserID int64, productID int64, in RestockInput) error {
	if in.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	err := u.inventoryRepo.IncreaseStock(ctx, productID, in.Quantity)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	return u.inventoryRepo.CreateAdjustment(ctx, model.InventoryAdjustment{
		ProductID:   productID,
		AdminUserID: adminUserID,
		Delta:       in.Quantity,
		Reason:      in.Reason,
	})
}

// SetStock overwrites the stock counter and records the delta.
func (u *ProductUsecase) SetStock(ctx context.Context, adminUserID int64, productID int64, in SetStockInput) error {
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must not be negative")
	}

	current, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	if err := u.inventoryRepo.SetStock(ctx, productID, in.Stock); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		return err
	}

	return u.inventoryRepo.CreateAdjustment(ctx, model.InventoryAdjustment{
		ProductID:   productID,
		AdminUserID: adminUserID,
		Delta:       in.Stock - current.Stock,
		Reason:      in.Reason,
	})
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if strings.TrimSpace(in.Unit) == "" {
		return NewHTTPError(http.StatusBadRequest, "unit is required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must not be negative")
	}
	return nil
}

var nonWordChars = regexp.MustCompile(`\W+`)

func sanitizeFolderName(name string) string {
	return strings.ToLower(nonWordChars.ReplaceAllString(strings.TrimSpace(name), "_"))
}

func (u *ProductUsecase) createImageFolder(productName string) (string, error) {
	folder := filepath.Join(u.imageDir, sanitizeFolderName(productName))
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", err
	}
	return folder, nil
}

// Best effort; a missing folder is not an error.
func (u *ProductUsecase) removeImageFolder(productName string) {
	folder := filepath.Join(u.imageDir, sanitizeFolderName(productName))
	_ = os.RemoveAll(folder)
}
