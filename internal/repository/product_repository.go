package repository

import (
	"context"

	"github.com/MoBa75/webshop/internal/domain/model"
)

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, productID int64) (model.Product, error)
	FindByName(ctx context.Context, name string) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, productID int64) error
	ExistsByID(ctx context.Context, productID int64) (bool, error)
}
