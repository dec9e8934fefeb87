package service

import (
	"context"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
)

type SpecificationService struct {
	specs SpecificationStore
}

func NewSpecificationService(specs SpecificationStore) *SpecificationService {
	return &SpecificationService{specs: specs}
}

type CreateSpecificationInput struct {
	SpecID            string  `json:"spec_id" binding:"required"`
	Name              string  `json:"name" binding:"required"`
	Description       *string `json:"description"`
	TrolleyTemplateID *uint   `json:"trolley_template_id"`
}

func (s *SpecificationService) Create(ctx context.Context, input *CreateSpecificationInput) (*entity.Specification, error) {
	spec := &entity.Specification{
		SpecID:            input.SpecID,
		Name:              input.Name,
		Description:       input.Description,
		TrolleyTemplateID: input.TrolleyTemplateID,
	}
	if err := s.specs.Create(ctx, spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func (s *SpecificationService) Get(ctx context.Context, id uint) (*entity.Specification, error) {
	return s.specs.FindByID(ctx, id)
}

func (s *SpecificationService) List(ctx context.Context, offset, limit int) ([]entity.Specification, int64, error) {
	return s.specs.List(ctx, offset, limit)
}

func (s *SpecificationService) Update(ctx context.Context, id uint, input *CreateSpecificationInput) (*entity.Specification, error) {
	spec, err := s.specs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	spec.SpecID = input.SpecID
	spec.Name = input.Name
	spec.Description = input.Description
	spec.TrolleyTemplateID = input.TrolleyTemplateID
	if err := s.specs.Update(ctx, spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func (s *SpecificationService) Delete(ctx context.Context, id uint) error {
	return s.specs.Delete(ctx, id)
}

// ========== SpecificationItem ==========

type CreateSpecItemInput struct {
	SpecificationID  uint `json:"specification_id" binding:"required"`
	DrawerID         uint `json:"drawer_id" binding:"required"`
	ProductID        uint `json:"product_id" binding:"required"`
	RequiredQuantity int  `json:"required_quantity" binding:"required"`
}

func (s *SpecificationService) CreateItem(ctx context.Context, input *CreateSpecItemInput) (*entity.SpecificationItem, error) {
	if input.RequiredQuantity < 1 {
		return nil, Validationf("required_quantity must be at least 1")
	}
	item := &entity.SpecificationItem{
		SpecificationID:  input.SpecificationID,
		DrawerID:         input.DrawerID,
		ProductID:        input.ProductID,
		RequiredQuantity: input.RequiredQuantity,
	}
	if err := s.specs.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return s.specs.FindItemByID(ctx, item.ID)
}

func (s *SpecificationService) GetItem(ctx context.Context, id uint) (*entity.SpecificationItem, error) {
	return s.specs.FindItemByID(ctx, id)
}

func (s *SpecificationService) ListItems(ctx context.Context, offset, limit int) ([]entity.SpecificationItem, int64, error) {
	return s.specs.ListItems(ctx, offset, limit)
}

type UpdateSpecItemInput struct {
	RequiredQuantity int `json:"required_quantity" binding:"required"`
}

func (s *SpecificationService) UpdateItem(ctx context.Context, id uint, input *UpdateSpecItemInput) (*entity.SpecificationItem, error) {
	if input.RequiredQuantity < 1 {
		return nil, Validationf("required_quantity must be at least 1")
	}
	item, err := s.specs.FindItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.RequiredQuantity = input.RequiredQuantity
	if err := s.specs.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *SpecificationService) DeleteItem(ctx context.Context, id uint) error {
	return s.specs.DeleteItem(ctx, id)
}
