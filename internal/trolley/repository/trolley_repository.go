package repository

import (
	"context"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"gorm.io/gorm"
)

type TrolleyRepository struct {
	db *gorm.DB
}

func NewTrolleyRepository(db *gorm.DB) *TrolleyRepository {
	return &TrolleyRepository{db: db}
}

func (r *TrolleyRepository) Create(ctx context.Context, trolley *entity.Trolley) error {
	return r.db.WithContext(ctx).Create(trolley).Error
}

func (r *TrolleyRepository) FindByID(ctx context.Context, id uint) (*entity.Trolley, error) {
	var trolley entity.Trolley
	err := r.db.WithContext(ctx).
		Preload("Levels", func(db *gorm.DB) *gorm.DB {
			return db.Order("level_number ASC")
		}).
		First(&trolley, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &trolley, nil
}

func (r *TrolleyRepository) List(ctx context.Context, offset, limit int) ([]entity.Trolley, int64, error) {
	var trolleys []entity.Trolley
	var total int64

	q := r.db.WithContext(ctx).Model(&entity.Trolley{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Levels").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&trolleys).Error
	return trolleys, total, err
}

func (r *TrolleyRepository) Update(ctx context.Context, trolley *entity.Trolley) error {
	return r.db.WithContext(ctx).Save(trolley).Error
}

func (r *TrolleyRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Trolley{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListLevels returns a trolley's levels ordered top to bottom.
func (r *TrolleyRepository) ListLevels(ctx context.Context, trolleyID uint) ([]entity.TrolleyLevel, error) {
	var levels []entity.TrolleyLevel
	err := r.db.WithContext(ctx).
		Where("trolley_id = ?", trolleyID).
		Order("level_number ASC").
		Find(&levels).Error
	return levels, err
}

// ListDrawers returns every drawer belonging to a trolley with its level.
func (r *TrolleyRepository) ListDrawers(ctx context.Context, trolleyID uint) ([]entity.TrolleyDrawer, error) {
	var drawers []entity.TrolleyDrawer
	err := r.db.WithContext(ctx).
		Preload("Level").
		Where("trolley_id = ?", trolleyID).
		Order("drawer_id ASC").
		Find(&drawers).Error
	return drawers, err
}
