package repository

import (
	"context"

	"github.com/MoBa75/webshop/internal/domain/model"
	repo "github.com/MoBa75/webshop/internal/repository"

	"gorm.io/gorm"
)

type AddressGormRepository struct {
	db *gorm.DB
}

func NewAddressGormRepository(db *gorm.DB) *AddressGormRepository {
	return &AddressGormRepository{db: db}
}

func (r *AddressGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Address, error) {
	var addrs []model.Address

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&addrs).Error; err != nil {
		return []model.Address{}, err
	}

	return addrs, nil
}

func (r *AddressGormRepository) FindByID(ctx context.Context, addressID int64) (model.Address, error) {
	var a model.Address

	err := r.db.WithContext(ctx).
		Where("id = ?", addressID).
		First(&a).Error

	if isNotFound(err) {
		return model.Address{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Address{}, err
	}
	return a, nil
}

func (r *AddressGormRepository) Create(ctx context.Context, a model.Address) (model.Address, error) {
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return model.Address{}, err
	}
	return a, nil
}

func (r *AddressGormRepository) Update(ctx context.Context, a model.Address) error {
	res := r.db.WithContext(ctx).
		Model(&model.Address{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"street":      a.Street,
			"zip_code":    a.ZipCode,
			"city":        a.City,
			"country":     a.Country,
			"is_billing":  a.IsBilling,
			"is_shipping": a.IsShipping,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *AddressGormRepository) Delete(ctx context.Context, addressID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Address{}, addressID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
