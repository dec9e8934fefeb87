package service

import (
	"context"
	"testing"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"github.com/galleyops/trolleyd/internal/trolley/testutil"
)

type specFixture struct {
	fakes   *testutil.Fakes
	trolley *entity.Trolley
	top     *entity.TrolleyLevel
	bottom  *entity.TrolleyLevel
	drawerA *entity.TrolleyDrawer
	drawerB *entity.TrolleyDrawer
	cups    *entity.Product
	juice   *entity.Product
	napkins *entity.Product
}

// seedSpecFixture builds a trolley with a top and a bottom level, one
// drawer on each, and three catalog products.
func seedSpecFixture(t *testing.T) *specFixture {
	t.Helper()
	ctx := context.Background()
	f := testutil.NewFakes()

	trolley := &entity.Trolley{Name: "Cart 12", Airline: "Andes Air"}
	if err := f.Trolley.Create(ctx, trolley); err != nil {
		t.Fatalf("Failed to seed trolley: %v", err)
	}

	top := &entity.TrolleyLevel{TrolleyID: trolley.ID, LevelNumber: entity.LevelTop, Capacity: 20}
	bottom := &entity.TrolleyLevel{TrolleyID: trolley.ID, LevelNumber: entity.LevelBottom, Capacity: 20}
	for _, l := range []*entity.TrolleyLevel{top, bottom} {
		if err := f.Level.Create(ctx, l); err != nil {
			t.Fatalf("Failed to seed level: %v", err)
		}
	}

	drawerA := &entity.TrolleyDrawer{TrolleyID: trolley.ID, DrawerID: "DR-A", LevelID: top.ID}
	drawerB := &entity.TrolleyDrawer{TrolleyID: trolley.ID, DrawerID: "DR-B", LevelID: bottom.ID}
	for _, d := range []*entity.TrolleyDrawer{drawerA, drawerB} {
		if err := f.Drawer.Create(ctx, d); err != nil {
			t.Fatalf("Failed to seed drawer: %v", err)
		}
	}

	cups := &entity.Product{Name: "Paper Cups", SKU: "CUP-001", StockQuantity: 100}
	juice := &entity.Product{Name: "Orange Juice", SKU: "JUI-001", StockQuantity: 50}
	napkins := &entity.Product{Name: "Napkins", SKU: "NAP-001", StockQuantity: 200}
	for _, p := range []*entity.Product{cups, juice, napkins} {
		if err := f.Product.Create(ctx, p); err != nil {
			t.Fatalf("Failed to seed product: %v", err)
		}
	}

	return &specFixture{
		fakes: f, trolley: trolley,
		top: top, bottom: bottom,
		drawerA: drawerA, drawerB: drawerB,
		cups: cups, juice: juice, napkins: napkins,
	}
}

func (fx *specFixture) addSpec(t *testing.T, specID, name string) *entity.Specification {
	t.Helper()
	spec := &entity.Specification{SpecID: specID, Name: name, TrolleyTemplateID: &fx.trolley.ID}
	if err := fx.fakes.Specification.Create(context.Background(), spec); err != nil {
		t.Fatalf("Failed to seed specification: %v", err)
	}
	return spec
}

func (fx *specFixture) addItem(t *testing.T, spec *entity.Specification, drawer *entity.TrolleyDrawer, product *entity.Product, qty int) {
	t.Helper()
	item := &entity.SpecificationItem{
		SpecificationID:  spec.ID,
		DrawerID:         drawer.ID,
		ProductID:        product.ID,
		RequiredQuantity: qty,
	}
	if err := fx.fakes.Specification.CreateItem(context.Background(), item); err != nil {
		t.Fatalf("Failed to seed specification item: %v", err)
	}
}

func TestExpandGroupsByDrawerAndLevel(t *testing.T) {
	fx := seedSpecFixture(t)
	spec := fx.addSpec(t, "SPEC-001", "Short-haul breakfast")
	fx.addItem(t, spec, fx.drawerA, fx.cups, 5)
	fx.addItem(t, spec, fx.drawerB, fx.juice, 3)
	fx.addItem(t, spec, fx.drawerA, fx.napkins, 2)

	expander := NewSpecExpander(fx.fakes.Specification)
	groups, err := expander.Expand(context.Background(), fx.trolley.ID, "")
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}

	g := groups[0]
	if g.SpecID != "SPEC-001" {
		t.Errorf("Expected spec SPEC-001, got %s", g.SpecID)
	}
	if g.TotalItems != 3 {
		t.Errorf("Expected 3 total items, got %d", g.TotalItems)
	}
	if g.TotalQuantity != 10 {
		t.Errorf("Expected total quantity 10, got %d", g.TotalQuantity)
	}

	// Drawer groups keep first-seen order: DR-A before DR-B.
	if len(g.ByDrawer) != 2 {
		t.Fatalf("Expected 2 drawer groups, got %d", len(g.ByDrawer))
	}
	if g.ByDrawer[0].DrawerID != "DR-A" || len(g.ByDrawer[0].Items) != 2 {
		t.Errorf("Expected DR-A first with 2 items, got %s with %d", g.ByDrawer[0].DrawerID, len(g.ByDrawer[0].Items))
	}
	if g.ByDrawer[1].DrawerID != "DR-B" || len(g.ByDrawer[1].Items) != 1 {
		t.Errorf("Expected DR-B second with 1 item, got %s with %d", g.ByDrawer[1].DrawerID, len(g.ByDrawer[1].Items))
	}
	if g.ByDrawer[0].LevelDisplay != "Level 1 (Top)" {
		t.Errorf("Expected level display 'Level 1 (Top)', got %q", g.ByDrawer[0].LevelDisplay)
	}

	// Level groups come back sorted ascending.
	if len(g.ByLevel) != 2 {
		t.Fatalf("Expected 2 level groups, got %d", len(g.ByLevel))
	}
	if g.ByLevel[0].LevelNumber != entity.LevelTop || len(g.ByLevel[0].Items) != 2 {
		t.Errorf("Expected level 1 first with 2 items, got level %d with %d", g.ByLevel[0].LevelNumber, len(g.ByLevel[0].Items))
	}
	if g.ByLevel[1].LevelNumber != entity.LevelBottom || len(g.ByLevel[1].Items) != 1 {
		t.Errorf("Expected level 3 second with 1 item, got level %d with %d", g.ByLevel[1].LevelNumber, len(g.ByLevel[1].Items))
	}

	// Product details ride along on each line.
	if g.ByDrawer[0].Items[0].Product == nil || g.ByDrawer[0].Items[0].Product.SKU != "CUP-001" {
		t.Errorf("Expected first DR-A line to carry CUP-001")
	}
}

func TestExpandFiltersBySpecID(t *testing.T) {
	fx := seedSpecFixture(t)
	breakfast := fx.addSpec(t, "SPEC-001", "Breakfast")
	dinner := fx.addSpec(t, "SPEC-002", "Dinner")
	fx.addItem(t, breakfast, fx.drawerA, fx.cups, 5)
	fx.addItem(t, dinner, fx.drawerB, fx.juice, 3)

	expander := NewSpecExpander(fx.fakes.Specification)

	groups, err := expander.Expand(context.Background(), fx.trolley.ID, "SPEC-002")
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(groups) != 1 || groups[0].SpecID != "SPEC-002" {
		t.Fatalf("Expected only SPEC-002, got %d groups", len(groups))
	}

	// An unknown spec_id is an empty result, not an error.
	groups, err = expander.Expand(context.Background(), fx.trolley.ID, "SPEC-999")
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("Expected no groups for unknown spec_id, got %d", len(groups))
	}
}

func TestExpandEmptyTrolley(t *testing.T) {
	fx := seedSpecFixture(t)

	expander := NewSpecExpander(fx.fakes.Specification)
	groups, err := expander.Expand(context.Background(), fx.trolley.ID, "")
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("Expected no groups for trolley without specs, got %d", len(groups))
	}
}
