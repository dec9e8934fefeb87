package repository

import (
	"context"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"gorm.io/gorm"
)

type QRScanRepository struct {
	db *gorm.DB
}

func NewQRScanRepository(db *gorm.DB) *QRScanRepository {
	return &QRScanRepository{db: db}
}

// Create inserts the scan and attaches the referenced trolleys in one
// transaction.
func (r *QRScanRepository) Create(ctx context.Context, scan *entity.QRScan, trolleyIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(scan).Error; err != nil {
			return err
		}
		if len(trolleyIDs) == 0 {
			return nil
		}
		var trolleys []entity.Trolley
		if err := tx.Find(&trolleys, "id IN ?", trolleyIDs).Error; err != nil {
			return err
		}
		if len(trolleys) != len(trolleyIDs) {
			return ErrNotFound
		}
		if err := tx.Model(scan).Association("Trolleys").Append(&trolleys); err != nil {
			return err
		}
		scan.Trolleys = trolleys
		return nil
	})
}

func (r *QRScanRepository) FindByID(ctx context.Context, id uint) (*entity.QRScan, error) {
	var scan entity.QRScan
	err := r.db.WithContext(ctx).
		Preload("Trolleys").
		First(&scan, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &scan, nil
}

func (r *QRScanRepository) List(ctx context.Context, offset, limit int) ([]entity.QRScan, int64, error) {
	var scans []entity.QRScan
	var total int64

	q := r.db.WithContext(ctx).Model(&entity.QRScan{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Trolleys").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&scans).Error
	return scans, total, err
}

// Latest returns the most recent scan, or ErrNotFound when none exist.
func (r *QRScanRepository) Latest(ctx context.Context) (*entity.QRScan, error) {
	var scan entity.QRScan
	err := r.db.WithContext(ctx).
		Preload("Trolleys").
		Order("created_at DESC").
		First(&scan).Error
	if err != nil {
		return nil, translate(err)
	}
	return &scan, nil
}
