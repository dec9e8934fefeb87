package entity

import (
	"time"
)

// QRScan is a record created when a station operator scans a QR code
// identifying a flight/trolley/drawer combination.
type QRScan struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	StationID    string    `json:"station_id" gorm:"size:255;not null"`
	FlightNumber string    `json:"flight_number" gorm:"size:255;not null;index"`
	CustomerName string    `json:"customer_name" gorm:"size:255;not null"`
	DrawerID     string    `json:"drawer_id" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Trolleys []Trolley `json:"trolleys,omitempty" gorm:"many2many:qr_scan_trolleys"`
}

func (QRScan) TableName() string {
	return "qr_scans"
}
