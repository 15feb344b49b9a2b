package repository

import (
	"context"

	"github.com/MoBa75/webshop/internal/domain/model"
)

type AddressRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.Address, error)
	FindByID(ctx context.Context, addressID int64) (model.Address, error)
	Create(ctx context.Context, a model.Address) (model.Address, error)
	Update(ctx context.Context, a model.Address) error
	Delete(ctx context.Context, addressID int64) error
}
