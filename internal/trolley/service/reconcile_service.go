package service

import (
	"context"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"github.com/galleyops/trolleyd/internal/trolley/repository"
)

// Marker messages for valid-but-empty report states. These are expected
// operational states, not errors.
const (
	MsgNoSpecifications = "No specifications associated with this trolley"
	MsgNoDrawers        = "Trolley has no drawers"
)

// RequiredContentsReport is what a trolley MUST carry according to its
// specifications. Computed per request, never persisted.
type RequiredContentsReport struct {
	TrolleyID      uint        `json:"trolley_id"`
	TrolleyName    string      `json:"trolley_name"`
	Airline        string      `json:"airline"`
	Message        string      `json:"message,omitempty"`
	TotalSpecs     int         `json:"total_specs"`
	TotalItems     int         `json:"total_items"`
	TotalQuantity  int         `json:"total_quantity"`
	Specifications []SpecGroup `json:"specifications"`
}

// CurrentContentsReport is what a trolley ACTUALLY carries according to
// the most recent sensor readings. Computed per request, never persisted.
type CurrentContentsReport struct {
	TrolleyID           uint             `json:"trolley_id"`
	TrolleyName         string           `json:"trolley_name"`
	Airline             string           `json:"airline"`
	Message             string           `json:"message,omitempty"`
	TotalDrawers        int              `json:"total_drawers"`
	DrawersWithData     int              `json:"drawers_with_data"`
	TotalSensorReadings int              `json:"total_sensor_readings"`
	TotalAlerts         int              `json:"total_alerts"`
	Drawers             []DrawerSnapshot `json:"drawers"`
}

// ReconcileService composes the expander and the reducer into the two
// externally visible reports. Both operations are pure reads: idempotent
// and safe to call concurrently.
type ReconcileService struct {
	trolleys TrolleyStore
	expander *SpecExpander
	reducer  *SensorReducer
}

func NewReconcileService(trolleys TrolleyStore, expander *SpecExpander, reducer *SensorReducer) *ReconcileService {
	return &ReconcileService{
		trolleys: trolleys,
		expander: expander,
		reducer:  reducer,
	}
}

// RequiredContents expands every applicable specification of the trolley
// into the required-contents report. A trolley without specifications
// yields an explicit marker, not an error.
func (s *ReconcileService) RequiredContents(ctx context.Context, trolleyID uint, specID string) (*RequiredContentsReport, error) {
	trolley, err := s.trolleys.FindByID(ctx, trolleyID)
	if err != nil {
		return nil, err
	}

	groups, err := s.expander.Expand(ctx, trolleyID, specID)
	if err != nil {
		return nil, err
	}

	report := &RequiredContentsReport{
		TrolleyID:      trolley.ID,
		TrolleyName:    trolley.Name,
		Airline:        trolley.Airline,
		Specifications: groups,
	}

	if len(groups) == 0 {
		report.Message = MsgNoSpecifications
		return report, nil
	}

	report.TotalSpecs = len(groups)
	for i := range groups {
		report.TotalItems += groups[i].TotalItems
		report.TotalQuantity += groups[i].TotalQuantity
	}
	return report, nil
}

// CurrentContents reduces the trolley's sensor history into the
// current-contents report, optionally filtered by flight number and
// alert flag. Only drawers with matching data appear in the drawer list;
// TotalDrawers counts all drawers regardless.
func (s *ReconcileService) CurrentContents(ctx context.Context, trolleyID uint, flightNumber, alertFlag string) (*CurrentContentsReport, error) {
	if alertFlag != "" && !entity.ValidAlertFlag(alertFlag) {
		return nil, Validationf("alert_flag must be %q or %q", entity.AlertFlagOK, entity.AlertFlagAlert)
	}

	trolley, err := s.trolleys.FindByID(ctx, trolleyID)
	if err != nil {
		return nil, err
	}

	report := &CurrentContentsReport{
		TrolleyID:   trolley.ID,
		TrolleyName: trolley.Name,
		Airline:     trolley.Airline,
		Drawers:     []DrawerSnapshot{},
	}

	drawers, err := s.trolleys.ListDrawers(ctx, trolleyID)
	if err != nil {
		return nil, err
	}
	if len(drawers) == 0 {
		report.Message = MsgNoDrawers
		return report, nil
	}
	report.TotalDrawers = len(drawers)

	snapshots, err := s.reducer.Reduce(ctx, drawers, repository.ReadingFilter{
		FlightNumber: flightNumber,
		AlertFlag:    alertFlag,
	})
	if err != nil {
		return nil, err
	}

	for _, drawer := range drawers {
		snap, ok := snapshots[drawer.ID]
		if !ok {
			continue
		}
		report.DrawersWithData++
		report.TotalSensorReadings += snap.ReadingCount
		report.TotalAlerts += snap.AlertCount
		report.Drawers = append(report.Drawers, *snap)
	}

	return report, nil
}
