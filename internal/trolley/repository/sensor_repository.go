package repository

import (
	"context"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"gorm.io/gorm"
)

type SensorReadingRepository struct {
	db *gorm.DB
}

func NewSensorReadingRepository(db *gorm.DB) *SensorReadingRepository {
	return &SensorReadingRepository{db: db}
}

func (r *SensorReadingRepository) Create(ctx context.Context, reading *entity.SensorReading) error {
	return r.db.WithContext(ctx).Create(reading).Error
}

func (r *SensorReadingRepository) FindByID(ctx context.Context, id uint) (*entity.SensorReading, error) {
	var reading entity.SensorReading
	err := r.db.WithContext(ctx).
		Preload("Drawer").
		Preload("Drawer.Level").
		First(&reading, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &reading, nil
}

func (r *SensorReadingRepository) List(ctx context.Context, f ReadingFilter, offset, limit int) ([]entity.SensorReading, int64, error) {
	var readings []entity.SensorReading
	var total int64

	q := applyReadingFilter(r.db.WithContext(ctx).Model(&entity.SensorReading{}), f)
	if f.DrawerID != 0 {
		q = q.Where("drawer_ref_id = ?", f.DrawerID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Drawer").
		Order("timestamp DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&readings).Error
	return readings, total, err
}

// ListByDrawers fetches the readings of every given drawer in one query,
// newest first. Ties on timestamp are broken by primary key so the order
// is deterministic.
func (r *SensorReadingRepository) ListByDrawers(ctx context.Context, drawerIDs []uint, f ReadingFilter) ([]entity.SensorReading, error) {
	if len(drawerIDs) == 0 {
		return nil, nil
	}
	var readings []entity.SensorReading
	q := applyReadingFilter(r.db.WithContext(ctx), f).
		Where("drawer_ref_id IN ?", drawerIDs)
	err := q.Order("timestamp DESC, id DESC").Find(&readings).Error
	return readings, err
}

func applyReadingFilter(q *gorm.DB, f ReadingFilter) *gorm.DB {
	if f.FlightNumber != "" {
		q = q.Where("flight_number = ?", f.FlightNumber)
	}
	if f.AlertFlag != "" {
		q = q.Where("alert_flag = ?", f.AlertFlag)
	}
	if f.SensorType != "" {
		q = q.Where("sensor_type = ?", f.SensorType)
	}
	return q
}
