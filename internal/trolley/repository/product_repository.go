package repository

import (
	"context"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *ProductRepository) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *ProductRepository) List(ctx context.Context, f ProductFilter, offset, limit int) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&entity.Product{})
	if f.Category != "" {
		q = q.Where("category ILIKE ?", "%"+f.Category+"%")
	}
	if f.AvailableOnly {
		q = q.Where("stock_quantity > 0")
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ? OR sku ILIKE ?", pattern, pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("name ASC").Offset(offset).Limit(limit).Find(&products).Error
	return products, total, err
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStock overwrites the stock quantity in a single UPDATE.
func (r *ProductRepository) SetStock(ctx context.Context, id uint, quantity int) error {
	res := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock_quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DecreaseStock decrements the stock quantity with a conditional UPDATE so
// concurrent decrements can never drive the quantity negative. The returned
// count is zero when the row is missing or the stock is insufficient.
func (r *ProductRepository) DecreaseStock(ctx context.Context, id uint, amount int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("id = ? AND stock_quantity >= ?", id, amount).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", amount))
	return res.RowsAffected, res.Error
}
