package service

import (
	"context"
	"time"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"github.com/galleyops/trolleyd/internal/trolley/repository"
)

type SensorService struct {
	readings SensorReadingStore
}

func NewSensorService(readings SensorReadingStore) *SensorService {
	return &SensorService{readings: readings}
}

type CreateReadingInput struct {
	StreamID       string    `json:"stream_id" binding:"required"`
	Timestamp      time.Time `json:"timestamp" binding:"required"`
	StationID      string    `json:"station_id" binding:"required"`
	DrawerRefID    *uint     `json:"drawer_ref_id"`
	SpecID         string    `json:"spec_id"`
	SensorType     string    `json:"sensor_type" binding:"required"`
	ExpectedValue  string    `json:"expected_value"`
	DetectedValue  string    `json:"detected_value"`
	DeviationScore float64   `json:"deviation_score"`
	AlertFlag      string    `json:"alert_flag"`
	OperatorID     string    `json:"operator_id"`
	FlightNumber   string    `json:"flight_number"`
	CustomerName   string    `json:"customer_name"`
}

// Create records one sensor observation. Readings are immutable facts:
// there is no update path.
func (s *SensorService) Create(ctx context.Context, input *CreateReadingInput) (*entity.SensorReading, error) {
	if !entity.ValidSensorType(input.SensorType) {
		return nil, Validationf("unknown sensor_type %q", input.SensorType)
	}
	if input.DeviationScore < 0 || input.DeviationScore > 1 {
		return nil, Validationf("deviation_score must be between 0 and 1")
	}
	alertFlag := input.AlertFlag
	if alertFlag == "" {
		alertFlag = entity.AlertFlagOK
	}
	if !entity.ValidAlertFlag(alertFlag) {
		return nil, Validationf("alert_flag must be %q or %q", entity.AlertFlagOK, entity.AlertFlagAlert)
	}

	reading := &entity.SensorReading{
		StreamID:       input.StreamID,
		Timestamp:      input.Timestamp,
		StationID:      input.StationID,
		DrawerRefID:    input.DrawerRefID,
		SpecID:         input.SpecID,
		SensorType:     input.SensorType,
		ExpectedValue:  input.ExpectedValue,
		DetectedValue:  input.DetectedValue,
		DeviationScore: input.DeviationScore,
		AlertFlag:      alertFlag,
		OperatorID:     input.OperatorID,
		FlightNumber:   input.FlightNumber,
		CustomerName:   input.CustomerName,
	}
	if err := s.readings.Create(ctx, reading); err != nil {
		return nil, err
	}
	return reading, nil
}

func (s *SensorService) Get(ctx context.Context, id uint) (*entity.SensorReading, error) {
	return s.readings.FindByID(ctx, id)
}

func (s *SensorService) List(ctx context.Context, f repository.ReadingFilter, offset, limit int) ([]entity.SensorReading, int64, error) {
	if f.AlertFlag != "" && !entity.ValidAlertFlag(f.AlertFlag) {
		return nil, 0, Validationf("alert_flag must be %q or %q", entity.AlertFlagOK, entity.AlertFlagAlert)
	}
	if f.SensorType != "" && !entity.ValidSensorType(f.SensorType) {
		return nil, 0, Validationf("unknown sensor_type %q", f.SensorType)
	}
	return s.readings.List(ctx, f, offset, limit)
}
