package service

import (
	"context"
	"math"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
)

type TrolleyService struct {
	trolleys TrolleyStore
	levels   LevelStore
	specs    SpecificationStore
}

func NewTrolleyService(trolleys TrolleyStore, levels LevelStore, specs SpecificationStore) *TrolleyService {
	return &TrolleyService{trolleys: trolleys, levels: levels, specs: specs}
}

type CreateTrolleyInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Airline     string  `json:"airline" binding:"required"`
}

func (s *TrolleyService) Create(ctx context.Context, input *CreateTrolleyInput) (*entity.Trolley, error) {
	trolley := &entity.Trolley{
		Name:        input.Name,
		Description: input.Description,
		Airline:     input.Airline,
	}
	if err := s.trolleys.Create(ctx, trolley); err != nil {
		return nil, err
	}
	return trolley, nil
}

func (s *TrolleyService) Get(ctx context.Context, id uint) (*entity.Trolley, error) {
	return s.trolleys.FindByID(ctx, id)
}

func (s *TrolleyService) List(ctx context.Context, offset, limit int) ([]entity.Trolley, int64, error) {
	return s.trolleys.List(ctx, offset, limit)
}

func (s *TrolleyService) Update(ctx context.Context, id uint, input *CreateTrolleyInput) (*entity.Trolley, error) {
	trolley, err := s.trolleys.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	trolley.Name = input.Name
	trolley.Description = input.Description
	trolley.Airline = input.Airline
	if err := s.trolleys.Update(ctx, trolley); err != nil {
		return nil, err
	}
	return trolley, nil
}

func (s *TrolleyService) Delete(ctx context.Context, id uint) error {
	return s.trolleys.Delete(ctx, id)
}

func (s *TrolleyService) ListLevels(ctx context.Context, trolleyID uint) ([]entity.TrolleyLevel, error) {
	if _, err := s.trolleys.FindByID(ctx, trolleyID); err != nil {
		return nil, err
	}
	return s.trolleys.ListLevels(ctx, trolleyID)
}

type CreateLevelInput struct {
	LevelNumber int     `json:"level_number" binding:"required"`
	Capacity    int     `json:"capacity"`
	Description *string `json:"description"`
}

func (s *TrolleyService) CreateLevel(ctx context.Context, trolleyID uint, input *CreateLevelInput) (*entity.TrolleyLevel, error) {
	if input.LevelNumber < entity.LevelTop || input.LevelNumber > entity.LevelBottom {
		return nil, Validationf("level_number must be between %d and %d", entity.LevelTop, entity.LevelBottom)
	}
	if input.Capacity < 0 {
		return nil, Validationf("capacity cannot be negative")
	}
	if _, err := s.trolleys.FindByID(ctx, trolleyID); err != nil {
		return nil, err
	}
	capacity := input.Capacity
	if capacity == 0 {
		capacity = 20
	}
	existing, err := s.trolleys.ListLevels(ctx, trolleyID)
	if err != nil {
		return nil, err
	}
	for _, lvl := range existing {
		if lvl.LevelNumber == input.LevelNumber {
			return nil, Validationf("trolley already has a level %d", input.LevelNumber)
		}
	}
	level := &entity.TrolleyLevel{
		TrolleyID:   trolleyID,
		LevelNumber: input.LevelNumber,
		Capacity:    capacity,
		Description: input.Description,
	}
	if err := s.levels.Create(ctx, level); err != nil {
		return nil, err
	}
	return level, nil
}

// LevelStatsEntry is the per-level line of a trolley statistics report.
type LevelStatsEntry struct {
	LevelNumber      int     `json:"level_number"`
	LevelDisplay     string  `json:"level_display"`
	DrawerCount      int     `json:"drawer_count"`
	RequiredQuantity int     `json:"required_quantity"`
	Capacity         int     `json:"capacity"`
	UsagePercentage  float64 `json:"usage_percentage"`
}

// TrolleyStats aggregates levels, drawers and specification load for one
// trolley.
type TrolleyStats struct {
	TrolleyID             uint              `json:"trolley_id"`
	TrolleyName           string            `json:"trolley_name"`
	TotalLevels           int               `json:"total_levels"`
	TotalDrawers          int               `json:"total_drawers"`
	TotalRequiredQuantity int               `json:"total_required_quantity"`
	Levels                []LevelStatsEntry `json:"levels"`
}

// Stats reports per-level drawer counts and how much of each level's
// capacity the applicable specifications would consume.
func (s *TrolleyService) Stats(ctx context.Context, trolleyID uint) (*TrolleyStats, error) {
	trolley, err := s.trolleys.FindByID(ctx, trolleyID)
	if err != nil {
		return nil, err
	}

	levels, err := s.trolleys.ListLevels(ctx, trolleyID)
	if err != nil {
		return nil, err
	}
	drawers, err := s.trolleys.ListDrawers(ctx, trolleyID)
	if err != nil {
		return nil, err
	}
	specs, err := s.specs.ListByTemplate(ctx, trolleyID, "")
	if err != nil {
		return nil, err
	}

	drawersPerLevel := make(map[uint]int)
	for _, drawer := range drawers {
		drawersPerLevel[drawer.LevelID]++
	}

	quantityPerLevel := make(map[uint]int)
	total := 0
	for i := range specs {
		for _, item := range specs[i].Items {
			if item.Drawer == nil {
				continue
			}
			quantityPerLevel[item.Drawer.LevelID] += item.RequiredQuantity
			total += item.RequiredQuantity
		}
	}

	stats := &TrolleyStats{
		TrolleyID:             trolley.ID,
		TrolleyName:           trolley.Name,
		TotalLevels:           len(levels),
		TotalDrawers:          len(drawers),
		TotalRequiredQuantity: total,
		Levels:                []LevelStatsEntry{},
	}

	for _, level := range levels {
		quantity := quantityPerLevel[level.ID]
		usage := 0.0
		if level.Capacity > 0 {
			usage = math.Round(float64(quantity)/float64(level.Capacity)*100*100) / 100
		}
		stats.Levels = append(stats.Levels, LevelStatsEntry{
			LevelNumber:      level.LevelNumber,
			LevelDisplay:     level.Display(),
			DrawerCount:      drawersPerLevel[level.ID],
			RequiredQuantity: quantity,
			Capacity:         level.Capacity,
			UsagePercentage:  usage,
		})
	}

	return stats, nil
}
