package service

import (
	"context"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"github.com/galleyops/trolleyd/internal/trolley/notify"
	"go.uber.org/zap"
)

type QRScanService struct {
	scans    QRScanStore
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewQRScanService(scans QRScanStore, notifier notify.Notifier, logger *zap.Logger) *QRScanService {
	return &QRScanService{scans: scans, notifier: notifier, logger: logger}
}

type CreateQRScanInput struct {
	StationID    string `json:"station_id" binding:"required"`
	FlightNumber string `json:"flight_number" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	DrawerID     string `json:"drawer_id" binding:"required"`
	TrolleyIDs   []uint `json:"trolley_ids"`
}

// Create persists the scan and then notifies subscribers. Notification is
// best-effort: a failing notifier is logged and swallowed, never failing
// the creation itself.
func (s *QRScanService) Create(ctx context.Context, input *CreateQRScanInput) (*entity.QRScan, error) {
	scan := &entity.QRScan{
		StationID:    input.StationID,
		FlightNumber: input.FlightNumber,
		CustomerName: input.CustomerName,
		DrawerID:     input.DrawerID,
	}
	if err := s.scans.Create(ctx, scan, input.TrolleyIDs); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.QRScanCreated(ctx, scan); err != nil {
			s.logger.Warn("QR scan notification failed",
				zap.Uint("scan_id", scan.ID),
				zap.Error(err),
			)
		}
	}

	return scan, nil
}

func (s *QRScanService) Get(ctx context.Context, id uint) (*entity.QRScan, error) {
	return s.scans.FindByID(ctx, id)
}

func (s *QRScanService) List(ctx context.Context, offset, limit int) ([]entity.QRScan, int64, error) {
	return s.scans.List(ctx, offset, limit)
}

func (s *QRScanService) Latest(ctx context.Context) (*entity.QRScan, error) {
	return s.scans.Latest(ctx)
}
