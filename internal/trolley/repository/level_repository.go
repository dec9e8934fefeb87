package repository

import (
	"context"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"gorm.io/gorm"
)

type LevelRepository struct {
	db *gorm.DB
}

func NewLevelRepository(db *gorm.DB) *LevelRepository {
	return &LevelRepository{db: db}
}

func (r *LevelRepository) Create(ctx context.Context, level *entity.TrolleyLevel) error {
	return r.db.WithContext(ctx).Create(level).Error
}

func (r *LevelRepository) FindByID(ctx context.Context, id uint) (*entity.TrolleyLevel, error) {
	var level entity.TrolleyLevel
	err := r.db.WithContext(ctx).First(&level, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &level, nil
}

func (r *LevelRepository) List(ctx context.Context, offset, limit int) ([]entity.TrolleyLevel, int64, error) {
	var levels []entity.TrolleyLevel
	var total int64

	q := r.db.WithContext(ctx).Model(&entity.TrolleyLevel{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("trolley_id ASC, level_number ASC").
		Offset(offset).Limit(limit).
		Find(&levels).Error
	return levels, total, err
}

func (r *LevelRepository) Update(ctx context.Context, level *entity.TrolleyLevel) error {
	return r.db.WithContext(ctx).Save(level).Error
}

func (r *LevelRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.TrolleyLevel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
