package repository

import (
	"context"

	"github.com/MoBa75/webshop/internal/domain/model"
	repo "github.com/MoBa75/webshop/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&products).Error; err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&p).Error

	if isNotFound(err) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) FindByName(ctx context.Context, name string) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&p).Error

	if isNotFound(err) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"unit":        p.Unit,
			"price":       p.Price,
			"description": p.Description,
			"image_path":  p.ImagePath,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, productID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, productID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) ExistsByID(ctx context.Context, productID int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Count(&count).Error

	if err != nil {
		return false, err
	}
	return count > 0, nil
}
