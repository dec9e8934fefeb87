package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	Category      string // substring match
	AvailableOnly bool   // stock_quantity > 0
	Search        string // substring match on name, description, sku
}

// ReadingFilter narrows sensor reading queries. Zero values mean "no filter".
type ReadingFilter struct {
	FlightNumber string
	AlertFlag    string
	SensorType   string
	DrawerID     uint
}

// Repositories bundles every store implementation.
type Repositories struct {
	Trolley       *TrolleyRepository
	Level         *LevelRepository
	Drawer        *DrawerRepository
	Product       *ProductRepository
	Specification *SpecificationRepository
	Sensor        *SensorReadingRepository
	QRScan        *QRScanRepository
}

// NewRepositories creates the store bundle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Trolley:       NewTrolleyRepository(db),
		Level:         NewLevelRepository(db),
		Drawer:        NewDrawerRepository(db),
		Product:       NewProductRepository(db),
		Specification: NewSpecificationRepository(db),
		Sensor:        NewSensorReadingRepository(db),
		QRScan:        NewQRScanRepository(db),
	}
}

// translate maps gorm's not-found sentinel to the repository one.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
