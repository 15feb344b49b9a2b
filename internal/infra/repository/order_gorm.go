package repository

import (
	"context"
	"time"

	"github.com/MoBa75/webshop/internal/domain/model"
	repo "github.com/MoBa75/webshop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// Row-locked find, create on miss. The create can still lose against a
// concurrent insert because of the partial unique index on
// (user_id) WHERE status = 'IN_CART'; in that case we pick up the winner.
func (r *OrderGormRepository) GetOrCreateOpen(ctx context.Context, userID int64) (model.Order, error) {
	var order model.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND status = ?", userID, model.OrderStatusInCart).
			First(&order).Error

		if findErr == nil {
			return nil
		}
		if !isNotFound(findErr) {
			return findErr
		}

		now := time.Now()
		newOrder := model.Order{
			UserID: userID,
			Status: model.OrderStatusInCart,
			Date:   now,
		}

		if err := tx.Create(&newOrder).Error; err != nil {
			retryErr := tx.
				Where("user_id = ? AND status = ?", userID, model.OrderStatusInCart).
				First(&order).Error
			if retryErr == nil {
				return nil
			}
			return err
		}

		order = newOrder
		return nil
	})

	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (r *OrderGormRepository) FindOpenByUserID(ctx context.Context, userID int64) (model.Order, error) {
	var order model.Order

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.OrderStatusInCart).
		First(&order).Error

	if isNotFound(err) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var order model.Order

	err := r.db.WithContext(ctx).
		Where("id = ?", orderID).
		First(&order).Error

	if isNotFound(err) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (r *OrderGormRepository) ListFinalizedByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.OrderStatusFinalized).
		Order("id asc").
		Find(&orders).Error; err != nil {
		return []model.Order{}, err
	}

	return orders, nil
}

// The status guard in the WHERE clause makes the IN_CART -> FINALIZED
// transition one-shot: a second call affects zero rows.
func (r *OrderGormRepository) Finalize(ctx context.Context, orderID int64, date time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ? AND status = ?", orderID, model.OrderStatusInCart).
		Updates(map[string]interface{}{
			"status": model.OrderStatusFinalized,
			"date":   date,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
