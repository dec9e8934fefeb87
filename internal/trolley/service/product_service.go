package service

import (
	"context"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"github.com/galleyops/trolleyd/internal/trolley/repository"
	"github.com/shopspring/decimal"
)

type ProductService struct {
	products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

type CreateProductInput struct {
	Name          string           `json:"name" binding:"required"`
	Description   *string          `json:"description"`
	SKU           string           `json:"sku" binding:"required"`
	StockQuantity int              `json:"stock_quantity"`
	ImageURL      *string          `json:"image_url"`
	Price         *decimal.Decimal `json:"price"`
	Category      string           `json:"category"`
}

func (s *ProductService) Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.StockQuantity < 0 {
		return nil, Validationf("stock_quantity cannot be negative")
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, Validationf("price cannot be negative")
	}
	product := &entity.Product{
		Name:          input.Name,
		Description:   input.Description,
		SKU:           input.SKU,
		StockQuantity: input.StockQuantity,
		ImageURL:      input.ImageURL,
		Price:         input.Price,
		Category:      input.Category,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*entity.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return s.products.FindBySKU(ctx, sku)
}

func (s *ProductService) List(ctx context.Context, f repository.ProductFilter, offset, limit int) ([]entity.Product, int64, error) {
	return s.products.List(ctx, f, offset, limit)
}

func (s *ProductService) Update(ctx context.Context, id uint, input *CreateProductInput) (*entity.Product, error) {
	if input.StockQuantity < 0 {
		return nil, Validationf("stock_quantity cannot be negative")
	}
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = input.Name
	product.Description = input.Description
	product.SKU = input.SKU
	product.StockQuantity = input.StockQuantity
	product.ImageURL = input.ImageURL
	product.Price = input.Price
	product.Category = input.Category
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	return s.products.Delete(ctx, id)
}

// SetStock overwrites the stock quantity. Negative quantities are
// rejected; the write is a single atomic UPDATE.
func (s *ProductService) SetStock(ctx context.Context, id uint, quantity int) (*entity.Product, error) {
	if quantity < 0 {
		return nil, Validationf("quantity cannot be negative")
	}
	if err := s.products.SetStock(ctx, id, quantity); err != nil {
		return nil, err
	}
	return s.products.FindByID(ctx, id)
}

// DecreaseStock decrements the stock quantity. The decrement runs as a
// conditional UPDATE guarded by the current quantity, so two concurrent
// calls can never take the stock below zero.
func (s *ProductService) DecreaseStock(ctx context.Context, id uint, amount int) (*entity.Product, error) {
	if amount < 0 {
		return nil, Validationf("amount must be positive")
	}

	affected, err := s.products.DecreaseStock(ctx, id, amount)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Either the product is gone or the stock is insufficient.
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, Validationf("insufficient stock. Available: %d", product.StockQuantity)
	}

	return s.products.FindByID(ctx, id)
}
