package service

import (
	"context"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"github.com/galleyops/trolleyd/internal/trolley/repository"
)

// DrawerSnapshot is the latest-state view of one drawer: at most one
// reading per (sensor_type, spec_id) key.
type DrawerSnapshot struct {
	DrawerRef    uint                   `json:"drawer_ref"`
	DrawerID     string                 `json:"drawer_id"`
	LevelDisplay string                 `json:"level_display"`
	Readings     []entity.SensorReading `json:"readings"`
	ReadingCount int                    `json:"reading_count"`
	AlertCount   int                    `json:"alert_count"`
}

// SensorReducer reduces raw sensor reading history into latest-state
// snapshots per drawer.
type SensorReducer struct {
	readings SensorReadingStore
}

func NewSensorReducer(readings SensorReadingStore) *SensorReducer {
	return &SensorReducer{readings: readings}
}

type readingKey struct {
	sensorType string
	specID     string
}

// Reduce maps each drawer to its snapshot. Readings are walked newest
// first (timestamp, then primary key, descending, so a later insert wins
// a timestamp tie) and only the first reading per (sensor_type, spec_id)
// key is kept: the most recent observation wins, no smoothing. Drawers
// with no matching readings are absent from the result; callers must
// treat absence as "no data", not "confirmed empty".
func (r *SensorReducer) Reduce(ctx context.Context, drawers []entity.TrolleyDrawer, f repository.ReadingFilter) (map[uint]*DrawerSnapshot, error) {
	if len(drawers) == 0 {
		return map[uint]*DrawerSnapshot{}, nil
	}

	byID := make(map[uint]*entity.TrolleyDrawer, len(drawers))
	ids := make([]uint, 0, len(drawers))
	for i := range drawers {
		byID[drawers[i].ID] = &drawers[i]
		ids = append(ids, drawers[i].ID)
	}

	readings, err := r.readings.ListByDrawers(ctx, ids, f)
	if err != nil {
		return nil, err
	}

	snapshots := make(map[uint]*DrawerSnapshot)
	seen := make(map[uint]map[readingKey]bool)

	for _, reading := range readings {
		if reading.DrawerRefID == nil {
			continue
		}
		drawerRef := *reading.DrawerRefID
		drawer, ok := byID[drawerRef]
		if !ok {
			continue
		}

		key := readingKey{sensorType: reading.SensorType, specID: reading.SpecID}
		if seen[drawerRef] == nil {
			seen[drawerRef] = make(map[readingKey]bool)
		}
		if seen[drawerRef][key] {
			// An older observation of a stream identity we already hold.
			continue
		}
		seen[drawerRef][key] = true

		snap, ok := snapshots[drawerRef]
		if !ok {
			snap = &DrawerSnapshot{
				DrawerRef: drawerRef,
				DrawerID:  drawer.DrawerID,
			}
			if drawer.Level != nil {
				snap.LevelDisplay = drawer.Level.Display()
			}
			snapshots[drawerRef] = snap
		}

		snap.Readings = append(snap.Readings, reading)
		snap.ReadingCount++
		if reading.AlertFlag == entity.AlertFlagAlert {
			snap.AlertCount++
		}
	}

	return snapshots, nil
}
