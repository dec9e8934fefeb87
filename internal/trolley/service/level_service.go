package service

import (
	"context"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
)

type LevelService struct {
	levels LevelStore
}

func NewLevelService(levels LevelStore) *LevelService {
	return &LevelService{levels: levels}
}

func (s *LevelService) Get(ctx context.Context, id uint) (*entity.TrolleyLevel, error) {
	return s.levels.FindByID(ctx, id)
}

func (s *LevelService) List(ctx context.Context, offset, limit int) ([]entity.TrolleyLevel, int64, error) {
	return s.levels.List(ctx, offset, limit)
}

type UpdateLevelInput struct {
	Capacity    *int    `json:"capacity"`
	Description *string `json:"description"`
}

func (s *LevelService) Update(ctx context.Context, id uint, input *UpdateLevelInput) (*entity.TrolleyLevel, error) {
	level, err := s.levels.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Capacity != nil {
		if *input.Capacity < 0 {
			return nil, Validationf("capacity cannot be negative")
		}
		level.Capacity = *input.Capacity
	}
	if input.Description != nil {
		level.Description = input.Description
	}
	if err := s.levels.Update(ctx, level); err != nil {
		return nil, err
	}
	return level, nil
}

func (s *LevelService) Delete(ctx context.Context, id uint) error {
	return s.levels.Delete(ctx, id)
}
