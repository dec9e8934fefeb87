package service

import (
	"context"
	"fmt"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"github.com/galleyops/trolleyd/internal/trolley/notify"
	"github.com/galleyops/trolleyd/internal/trolley/repository"
	"go.uber.org/zap"
)

// ValidationError reports malformed or out-of-range input to a mutation.
// It is never retried automatically.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Store interfaces consumed by the services. The gorm implementations live
// in the repository package; tests substitute in-memory fakes.

type TrolleyStore interface {
	Create(ctx context.Context, trolley *entity.Trolley) error
	FindByID(ctx context.Context, id uint) (*entity.Trolley, error)
	List(ctx context.Context, offset, limit int) ([]entity.Trolley, int64, error)
	Update(ctx context.Context, trolley *entity.Trolley) error
	Delete(ctx context.Context, id uint) error
	ListLevels(ctx context.Context, trolleyID uint) ([]entity.TrolleyLevel, error)
	ListDrawers(ctx context.Context, trolleyID uint) ([]entity.TrolleyDrawer, error)
}

type LevelStore interface {
	Create(ctx context.Context, level *entity.TrolleyLevel) error
	FindByID(ctx context.Context, id uint) (*entity.TrolleyLevel, error)
	List(ctx context.Context, offset, limit int) ([]entity.TrolleyLevel, int64, error)
	Update(ctx context.Context, level *entity.TrolleyLevel) error
	Delete(ctx context.Context, id uint) error
}

type DrawerStore interface {
	Create(ctx context.Context, drawer *entity.TrolleyDrawer) error
	FindByID(ctx context.Context, id uint) (*entity.TrolleyDrawer, error)
	List(ctx context.Context, offset, limit int) ([]entity.TrolleyDrawer, int64, error)
	Update(ctx context.Context, drawer *entity.TrolleyDrawer) error
	Delete(ctx context.Context, id uint) error
}

type ProductStore interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	FindBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context, f repository.ProductFilter, offset, limit int) ([]entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
	SetStock(ctx context.Context, id uint, quantity int) error
	DecreaseStock(ctx context.Context, id uint, amount int) (int64, error)
}

type SpecificationStore interface {
	Create(ctx context.Context, spec *entity.Specification) error
	FindByID(ctx context.Context, id uint) (*entity.Specification, error)
	List(ctx context.Context, offset, limit int) ([]entity.Specification, int64, error)
	ListByTemplate(ctx context.Context, trolleyID uint, specID string) ([]entity.Specification, error)
	Update(ctx context.Context, spec *entity.Specification) error
	Delete(ctx context.Context, id uint) error

	CreateItem(ctx context.Context, item *entity.SpecificationItem) error
	FindItemByID(ctx context.Context, id uint) (*entity.SpecificationItem, error)
	ListItems(ctx context.Context, offset, limit int) ([]entity.SpecificationItem, int64, error)
	UpdateItem(ctx context.Context, item *entity.SpecificationItem) error
	DeleteItem(ctx context.Context, id uint) error
}

type SensorReadingStore interface {
	Create(ctx context.Context, reading *entity.SensorReading) error
	FindByID(ctx context.Context, id uint) (*entity.SensorReading, error)
	List(ctx context.Context, f repository.ReadingFilter, offset, limit int) ([]entity.SensorReading, int64, error)
	ListByDrawers(ctx context.Context, drawerIDs []uint, f repository.ReadingFilter) ([]entity.SensorReading, error)
}

type QRScanStore interface {
	Create(ctx context.Context, scan *entity.QRScan, trolleyIDs []uint) error
	FindByID(ctx context.Context, id uint) (*entity.QRScan, error)
	List(ctx context.Context, offset, limit int) ([]entity.QRScan, int64, error)
	Latest(ctx context.Context) (*entity.QRScan, error)
}

// Services bundles every service.
type Services struct {
	Trolley       *TrolleyService
	Level         *LevelService
	Drawer        *DrawerService
	Product       *ProductService
	Specification *SpecificationService
	Sensor        *SensorService
	QRScan        *QRScanService
	Reconcile     *ReconcileService
}

// NewServices wires the service bundle on top of the store bundle.
func NewServices(repos *repository.Repositories, notifier notify.Notifier, logger *zap.Logger) *Services {
	expander := NewSpecExpander(repos.Specification)
	reducer := NewSensorReducer(repos.Sensor)
	return &Services{
		Trolley:       NewTrolleyService(repos.Trolley, repos.Level, repos.Specification),
		Level:         NewLevelService(repos.Level),
		Drawer:        NewDrawerService(repos.Drawer),
		Product:       NewProductService(repos.Product),
		Specification: NewSpecificationService(repos.Specification),
		Sensor:        NewSensorService(repos.Sensor),
		QRScan:        NewQRScanService(repos.QRScan, notifier, logger),
		Reconcile:     NewReconcileService(repos.Trolley, expander, reducer),
	}
}
