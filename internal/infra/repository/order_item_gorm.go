package repository

import (
	"context"

	"github.com/MoBa75/webshop/internal/domain/model"
	repo "github.com/MoBa75/webshop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.OrderItem{}, err
	}

	return items, nil
}

// Row-locked merge: an existing line gets addQty added, a missing line is
// inserted with the price snapshot taken by the caller.
func (r *OrderItemGormRepository) UpsertByOrderAndProduct(ctx context.Context, orderID int64, productID int64, addQty int64, unitPrice int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.OrderItem

		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ? AND product_id = ?", orderID, productID).
			First(&item).Error

		if err == nil {
			res := tx.Model(&model.OrderItem{}).
				Where("id = ?", item.ID).
				Update("quantity", item.Quantity+addQty)

			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return repo.ErrNotFound
			}
			return nil
		}

		if !isNotFound(err) {
			return err
		}

		newItem := model.OrderItem{
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  addQty,
			UnitPrice: unitPrice,
		}
		return tx.Create(&newItem).Error
	})
}

func (r *OrderItemGormRepository) SetQuantity(ctx context.Context, orderID int64, productID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Update("quantity", qty)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderItemGormRepository) DeleteByOrderAndProduct(ctx context.Context, orderID int64, productID int64) error {
	res := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Delete(&model.OrderItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
