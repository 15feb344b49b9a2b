package repository

import (
	"context"

	"github.com/MoBa75/webshop/internal/domain/model"
)

type UserRepository interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	FindByID(ctx context.Context, userID int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByAuth0Sub(ctx context.Context, sub string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user model.User) error
	Delete(ctx context.Context, userID int64) error
	// Existence probe without loading the row.
	ExistsByID(ctx context.Context, userID int64) (bool, error)
}
