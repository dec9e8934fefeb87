package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"github.com/galleyops/trolleyd/internal/trolley/repository"
	"github.com/galleyops/trolleyd/internal/trolley/testutil"
)

func TestSensorCreateValidation(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFakes()
	svc := NewSensorService(f.Sensor)
	ts := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	reading, err := svc.Create(ctx, &CreateReadingInput{
		StreamID:   "stream-1",
		Timestamp:  ts,
		StationID:  "station-1",
		SensorType: entity.SensorTypeCamera,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	// Alert flag defaults to OK.
	if reading.AlertFlag != entity.AlertFlagOK {
		t.Errorf("Expected default alert flag OK, got %s", reading.AlertFlag)
	}

	var verr *ValidationError

	_, err = svc.Create(ctx, &CreateReadingInput{
		StreamID: "s", Timestamp: ts, StationID: "st", SensorType: "sonar",
	})
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError for unknown sensor type, got %v", err)
	}

	_, err = svc.Create(ctx, &CreateReadingInput{
		StreamID: "s", Timestamp: ts, StationID: "st",
		SensorType: entity.SensorTypeScale, DeviationScore: 1.5,
	})
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError for out-of-range deviation, got %v", err)
	}

	_, err = svc.Create(ctx, &CreateReadingInput{
		StreamID: "s", Timestamp: ts, StationID: "st",
		SensorType: entity.SensorTypeScale, AlertFlag: "MAYBE",
	})
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError for bad alert flag, got %v", err)
	}
}

func TestSensorListNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFakes()
	svc := NewSensorService(f.Sensor)
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	for i, ts := range []time.Time{base, base.Add(2 * time.Hour), base.Add(time.Hour)} {
		_, err := svc.Create(ctx, &CreateReadingInput{
			StreamID:   "stream-1",
			Timestamp:  ts,
			StationID:  "station-1",
			SensorType: entity.SensorTypeCamera,
			SpecID:     "SPEC-001",
		})
		if err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}

	readings, total, err := svc.List(ctx, repository.ReadingFilter{}, 0, 20)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("Expected 3 readings, got %d", total)
	}
	for i := 1; i < len(readings); i++ {
		if readings[i].Timestamp.After(readings[i-1].Timestamp) {
			t.Errorf("Expected newest-first ordering at index %d", i)
		}
	}

	_, _, err = svc.List(ctx, repository.ReadingFilter{AlertFlag: "MAYBE"}, 0, 20)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError for bad filter flag, got %v", err)
	}
}
