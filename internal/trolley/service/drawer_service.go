package service

import (
	"context"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
)

type DrawerService struct {
	drawers DrawerStore
}

func NewDrawerService(drawers DrawerStore) *DrawerService {
	return &DrawerService{drawers: drawers}
}

type CreateDrawerInput struct {
	TrolleyID   uint    `json:"trolley_id" binding:"required"`
	DrawerID    string  `json:"drawer_id" binding:"required"`
	LevelID     uint    `json:"level_id" binding:"required"`
	Description *string `json:"description"`
}

func (s *DrawerService) Create(ctx context.Context, input *CreateDrawerInput) (*entity.TrolleyDrawer, error) {
	drawer := &entity.TrolleyDrawer{
		TrolleyID:   input.TrolleyID,
		DrawerID:    input.DrawerID,
		LevelID:     input.LevelID,
		Description: input.Description,
	}
	if err := s.drawers.Create(ctx, drawer); err != nil {
		return nil, err
	}
	return drawer, nil
}

func (s *DrawerService) Get(ctx context.Context, id uint) (*entity.TrolleyDrawer, error) {
	return s.drawers.FindByID(ctx, id)
}

func (s *DrawerService) List(ctx context.Context, offset, limit int) ([]entity.TrolleyDrawer, int64, error) {
	return s.drawers.List(ctx, offset, limit)
}

type UpdateDrawerInput struct {
	DrawerID    *string `json:"drawer_id"`
	LevelID     *uint   `json:"level_id"`
	Description *string `json:"description"`
}

func (s *DrawerService) Update(ctx context.Context, id uint, input *UpdateDrawerInput) (*entity.TrolleyDrawer, error) {
	drawer, err := s.drawers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.DrawerID != nil {
		if *input.DrawerID == "" {
			return nil, Validationf("drawer_id cannot be empty")
		}
		drawer.DrawerID = *input.DrawerID
	}
	if input.LevelID != nil {
		drawer.LevelID = *input.LevelID
	}
	if input.Description != nil {
		drawer.Description = input.Description
	}
	if err := s.drawers.Update(ctx, drawer); err != nil {
		return nil, err
	}
	return drawer, nil
}

func (s *DrawerService) Delete(ctx context.Context, id uint) error {
	return s.drawers.Delete(ctx, id)
}
