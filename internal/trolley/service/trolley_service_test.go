package service

import (
	"context"
	"errors"
	"testing"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"github.com/galleyops/trolleyd/internal/trolley/repository"
)

func newTrolleyService(fx *specFixture) *TrolleyService {
	return NewTrolleyService(fx.fakes.Trolley, fx.fakes.Level, fx.fakes.Specification)
}

func TestTrolleyCreateLevel(t *testing.T) {
	ctx := context.Background()
	fx := seedSpecFixture(t)
	svc := newTrolleyService(fx)

	// The fixture already has levels 1 and 3; 2 is free.
	level, err := svc.CreateLevel(ctx, fx.trolley.ID, &CreateLevelInput{LevelNumber: entity.LevelMiddle})
	if err != nil {
		t.Fatalf("CreateLevel failed: %v", err)
	}
	if level.Capacity != 20 {
		t.Errorf("Expected default capacity 20, got %d", level.Capacity)
	}
	if level.Display() != "Level 2 (Middle)" {
		t.Errorf("Unexpected display: %s", level.Display())
	}

	var verr *ValidationError

	_, err = svc.CreateLevel(ctx, fx.trolley.ID, &CreateLevelInput{LevelNumber: entity.LevelTop})
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError for duplicate level, got %v", err)
	}

	_, err = svc.CreateLevel(ctx, fx.trolley.ID, &CreateLevelInput{LevelNumber: 4})
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError for out-of-range level, got %v", err)
	}

	_, err = svc.CreateLevel(ctx, 9999, &CreateLevelInput{LevelNumber: entity.LevelMiddle})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for unknown trolley, got %v", err)
	}
}

func TestTrolleyListLevelsOrdered(t *testing.T) {
	fx := seedSpecFixture(t)
	svc := newTrolleyService(fx)

	levels, err := svc.ListLevels(context.Background(), fx.trolley.ID)
	if err != nil {
		t.Fatalf("ListLevels failed: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(levels))
	}
	if levels[0].LevelNumber != entity.LevelTop || levels[1].LevelNumber != entity.LevelBottom {
		t.Errorf("Expected levels ordered by number, got %d then %d", levels[0].LevelNumber, levels[1].LevelNumber)
	}
}

func TestTrolleyStats(t *testing.T) {
	fx := seedSpecFixture(t)
	spec := fx.addSpec(t, "SPEC-001", "Breakfast")
	fx.addItem(t, spec, fx.drawerA, fx.cups, 5)
	fx.addItem(t, spec, fx.drawerB, fx.juice, 3)

	svc := newTrolleyService(fx)
	stats, err := svc.Stats(context.Background(), fx.trolley.ID)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.TotalLevels != 2 || stats.TotalDrawers != 2 {
		t.Errorf("Expected 2 levels and 2 drawers, got %d/%d", stats.TotalLevels, stats.TotalDrawers)
	}
	if stats.TotalRequiredQuantity != 8 {
		t.Errorf("Expected total required quantity 8, got %d", stats.TotalRequiredQuantity)
	}
	if len(stats.Levels) != 2 {
		t.Fatalf("Expected 2 level entries, got %d", len(stats.Levels))
	}

	top := stats.Levels[0]
	if top.LevelNumber != entity.LevelTop {
		t.Fatalf("Expected the top level first, got %d", top.LevelNumber)
	}
	if top.DrawerCount != 1 || top.RequiredQuantity != 5 {
		t.Errorf("Unexpected top level load: %d drawers, %d required", top.DrawerCount, top.RequiredQuantity)
	}
	// 5 of 20 slots used.
	if top.UsagePercentage != 25.0 {
		t.Errorf("Expected 25%% usage, got %v", top.UsagePercentage)
	}

	bottom := stats.Levels[1]
	if bottom.RequiredQuantity != 3 || bottom.UsagePercentage != 15.0 {
		t.Errorf("Unexpected bottom level load: %d required, %v%%", bottom.RequiredQuantity, bottom.UsagePercentage)
	}
}

func TestTrolleyDeleteCascades(t *testing.T) {
	ctx := context.Background()
	fx := seedSpecFixture(t)
	svc := newTrolleyService(fx)

	if err := svc.Delete(ctx, fx.trolley.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, fx.trolley.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Expected trolley gone, got %v", err)
	}
	if _, err := fx.fakes.Level.FindByID(ctx, fx.top.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected levels cascaded, got %v", err)
	}
	if _, err := fx.fakes.Drawer.FindByID(ctx, fx.drawerA.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected drawers cascaded, got %v", err)
	}
}
