package repository

import (
	"context"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"gorm.io/gorm"
)

type DrawerRepository struct {
	db *gorm.DB
}

func NewDrawerRepository(db *gorm.DB) *DrawerRepository {
	return &DrawerRepository{db: db}
}

func (r *DrawerRepository) Create(ctx context.Context, drawer *entity.TrolleyDrawer) error {
	return r.db.WithContext(ctx).Create(drawer).Error
}

func (r *DrawerRepository) FindByID(ctx context.Context, id uint) (*entity.TrolleyDrawer, error) {
	var drawer entity.TrolleyDrawer
	err := r.db.WithContext(ctx).
		Preload("Trolley").
		Preload("Level").
		First(&drawer, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &drawer, nil
}

func (r *DrawerRepository) List(ctx context.Context, offset, limit int) ([]entity.TrolleyDrawer, int64, error) {
	var drawers []entity.TrolleyDrawer
	var total int64

	q := r.db.WithContext(ctx).Model(&entity.TrolleyDrawer{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Level").
		Order("drawer_id ASC").
		Offset(offset).Limit(limit).
		Find(&drawers).Error
	return drawers, total, err
}

func (r *DrawerRepository) Update(ctx context.Context, drawer *entity.TrolleyDrawer) error {
	return r.db.WithContext(ctx).Save(drawer).Error
}

func (r *DrawerRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.TrolleyDrawer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
