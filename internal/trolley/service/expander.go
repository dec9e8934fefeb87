package service

import (
	"context"
	"sort"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
)

// SpecItemLine is one required (product, quantity) pair inside a group.
type SpecItemLine struct {
	ItemID           uint            `json:"item_id"`
	Product          *entity.Product `json:"product"`
	RequiredQuantity int             `json:"required_quantity"`
}

// DrawerGroup collects the required lines of one drawer.
type DrawerGroup struct {
	DrawerRef    uint           `json:"drawer_ref"`
	DrawerID     string         `json:"drawer_id"`
	Description  *string        `json:"description"`
	LevelDisplay string         `json:"level_display"`
	Items        []SpecItemLine `json:"items"`
}

// LevelGroup collects the required lines of one level.
type LevelGroup struct {
	LevelNumber  int            `json:"level_number"`
	LevelDisplay string         `json:"level_display"`
	Items        []SpecItemLine `json:"items"`
}

// SpecGroup is the fully expanded requirement tree of one specification.
type SpecGroup struct {
	ID            uint          `json:"id"`
	SpecID        string        `json:"spec_id"`
	Name          string        `json:"name"`
	Description   *string       `json:"description"`
	TotalItems    int           `json:"total_items"`
	TotalQuantity int           `json:"total_quantity"`
	ByLevel       []LevelGroup  `json:"by_level"`
	ByDrawer      []DrawerGroup `json:"by_drawer"`
}

// SpecExpander expands packing specifications into per-drawer and
// per-level requirement trees.
type SpecExpander struct {
	specs SpecificationStore
}

func NewSpecExpander(specs SpecificationStore) *SpecExpander {
	return &SpecExpander{specs: specs}
}

// Expand returns one SpecGroup per specification templated to the trolley.
// A non-empty specID restricts the result to that specification; no match
// yields an empty slice, which is an expected state rather than an error.
// Items arrive with product, drawer and level preloaded in one pass, so
// grouping is pure in-memory work.
func (e *SpecExpander) Expand(ctx context.Context, trolleyID uint, specID string) ([]SpecGroup, error) {
	specs, err := e.specs.ListByTemplate(ctx, trolleyID, specID)
	if err != nil {
		return nil, err
	}

	groups := make([]SpecGroup, 0, len(specs))
	for i := range specs {
		groups = append(groups, expandOne(&specs[i]))
	}
	return groups, nil
}

func expandOne(spec *entity.Specification) SpecGroup {
	group := SpecGroup{
		ID:          spec.ID,
		SpecID:      spec.SpecID,
		Name:        spec.Name,
		Description: spec.Description,
		ByLevel:     []LevelGroup{},
		ByDrawer:    []DrawerGroup{},
	}

	// Drawer groups keep discovery order; level groups are sorted below.
	drawerIndex := make(map[uint]int)
	levelIndex := make(map[int]int)

	for i := range spec.Items {
		item := &spec.Items[i]
		line := SpecItemLine{
			ItemID:           item.ID,
			Product:          item.Product,
			RequiredQuantity: item.RequiredQuantity,
		}

		group.TotalItems++
		group.TotalQuantity += item.RequiredQuantity

		levelNumber := 0
		levelDisplay := ""
		if item.Drawer != nil && item.Drawer.Level != nil {
			levelNumber = item.Drawer.Level.LevelNumber
			levelDisplay = item.Drawer.Level.Display()
		}

		di, ok := drawerIndex[item.DrawerID]
		if !ok {
			dg := DrawerGroup{
				DrawerRef:    item.DrawerID,
				LevelDisplay: levelDisplay,
			}
			if item.Drawer != nil {
				dg.DrawerID = item.Drawer.DrawerID
				dg.Description = item.Drawer.Description
			}
			group.ByDrawer = append(group.ByDrawer, dg)
			di = len(group.ByDrawer) - 1
			drawerIndex[item.DrawerID] = di
		}
		group.ByDrawer[di].Items = append(group.ByDrawer[di].Items, line)

		li, ok := levelIndex[levelNumber]
		if !ok {
			group.ByLevel = append(group.ByLevel, LevelGroup{
				LevelNumber:  levelNumber,
				LevelDisplay: levelDisplay,
			})
			li = len(group.ByLevel) - 1
			levelIndex[levelNumber] = li
		}
		group.ByLevel[li].Items = append(group.ByLevel[li].Items, line)
	}

	sort.SliceStable(group.ByLevel, func(i, j int) bool {
		return group.ByLevel[i].LevelNumber < group.ByLevel[j].LevelNumber
	})

	return group
}
