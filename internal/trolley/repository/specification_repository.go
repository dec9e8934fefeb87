package repository

import (
	"context"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"gorm.io/gorm"
)

type SpecificationRepository struct {
	db *gorm.DB
}

func NewSpecificationRepository(db *gorm.DB) *SpecificationRepository {
	return &SpecificationRepository{db: db}
}

func (r *SpecificationRepository) Create(ctx context.Context, spec *entity.Specification) error {
	return r.db.WithContext(ctx).Create(spec).Error
}

func (r *SpecificationRepository) FindByID(ctx context.Context, id uint) (*entity.Specification, error) {
	var spec entity.Specification
	err := r.db.WithContext(ctx).
		Preload("TrolleyTemplate").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Drawer").
		Preload("Items.Drawer.Level").
		First(&spec, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &spec, nil
}

func (r *SpecificationRepository) List(ctx context.Context, offset, limit int) ([]entity.Specification, int64, error) {
	var specs []entity.Specification
	var total int64

	q := r.db.WithContext(ctx).Model(&entity.Specification{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("TrolleyTemplate").
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&specs).Error
	return specs, total, err
}

// ListByTemplate returns the specifications templated to a trolley, with
// every item and its product, drawer and level loaded in one pass. A
// non-empty specID restricts the result to that specification.
func (r *SpecificationRepository) ListByTemplate(ctx context.Context, trolleyID uint, specID string) ([]entity.Specification, error) {
	var specs []entity.Specification
	q := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Items.Product").
		Preload("Items.Drawer").
		Preload("Items.Drawer.Level").
		Where("trolley_template_id = ?", trolleyID)
	if specID != "" {
		q = q.Where("spec_id = ?", specID)
	}
	err := q.Order("spec_id ASC").Find(&specs).Error
	return specs, err
}

func (r *SpecificationRepository) Update(ctx context.Context, spec *entity.Specification) error {
	return r.db.WithContext(ctx).Save(spec).Error
}

func (r *SpecificationRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Specification{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ========== SpecificationItem ==========

func (r *SpecificationRepository) CreateItem(ctx context.Context, item *entity.SpecificationItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *SpecificationRepository) FindItemByID(ctx context.Context, id uint) (*entity.SpecificationItem, error) {
	var item entity.SpecificationItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Drawer").
		Preload("Drawer.Level").
		First(&item, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *SpecificationRepository) ListItems(ctx context.Context, offset, limit int) ([]entity.SpecificationItem, int64, error) {
	var items []entity.SpecificationItem
	var total int64

	q := r.db.WithContext(ctx).Model(&entity.SpecificationItem{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Product").
		Preload("Drawer").
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&items).Error
	return items, total, err
}

func (r *SpecificationRepository) UpdateItem(ctx context.Context, item *entity.SpecificationItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *SpecificationRepository) DeleteItem(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.SpecificationItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
