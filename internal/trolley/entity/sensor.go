package entity

import (
	"time"
)

// SensorType identifies the kind of sensor that produced a reading.
const (
	SensorTypeCamera  = "camera"
	SensorTypeBarcode = "barcode"
	SensorTypeRFID    = "rfid"
	SensorTypeScale   = "scale"
	SensorTypeOther   = "other"
)

// AlertFlag values for a sensor reading.
const (
	AlertFlagOK    = "OK"
	AlertFlagAlert = "ALERT"
)

// SensorReading is one immutable timestamped observation from a physical
// sensor about a drawer's expected-vs-detected contents. DrawerRefID is a
// weak back reference kept for audit: it becomes null when the referenced
// drawer is deleted, and the reading stays.
type SensorReading struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	StreamID       string    `json:"stream_id" gorm:"size:255;not null"`
	Timestamp      time.Time `json:"timestamp" gorm:"not null;index"`
	StationID      string    `json:"station_id" gorm:"size:255;not null"`
	DrawerRefID    *uint     `json:"drawer_ref_id" gorm:"index"`
	SpecID         string    `json:"spec_id" gorm:"size:100;index"`
	SensorType     string    `json:"sensor_type" gorm:"size:20;not null;default:other"`
	ExpectedValue  string    `json:"expected_value" gorm:"size:255"`
	DetectedValue  string    `json:"detected_value" gorm:"size:255"`
	DeviationScore float64   `json:"deviation_score" gorm:"not null;default:0"`
	AlertFlag      string    `json:"alert_flag" gorm:"size:10;not null;default:OK;index"`
	OperatorID     string    `json:"operator_id" gorm:"size:255"`
	FlightNumber   string    `json:"flight_number" gorm:"size:255;index"`
	CustomerName   string    `json:"customer_name" gorm:"size:255"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Drawer *TrolleyDrawer `json:"drawer,omitempty" gorm:"foreignKey:DrawerRefID;constraint:OnDelete:SET NULL"`
}

func (SensorReading) TableName() string {
	return "sensor_readings"
}

// ValidSensorType reports whether t is a known sensor type.
func ValidSensorType(t string) bool {
	switch t {
	case SensorTypeCamera, SensorTypeBarcode, SensorTypeRFID, SensorTypeScale, SensorTypeOther:
		return true
	}
	return false
}

// ValidAlertFlag reports whether f is a known alert flag.
func ValidAlertFlag(f string) bool {
	return f == AlertFlagOK || f == AlertFlagAlert
}
