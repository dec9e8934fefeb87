package handler

import (
	"testing"

	"github.com/galleyops/trolleyd/internal/trolley/service"
	"github.com/galleyops/trolleyd/internal/trolley/sse"
	"github.com/galleyops/trolleyd/internal/trolley/testutil"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// setupTest wires the full route table on top of in-memory stores.
func setupTest(t *testing.T) (*gin.Engine, *testutil.Fakes) {
	t.Helper()
	f := testutil.NewFakes()

	expander := service.NewSpecExpander(f.Specification)
	reducer := service.NewSensorReducer(f.Sensor)
	services := &service.Services{
		Trolley:       service.NewTrolleyService(f.Trolley, f.Level, f.Specification),
		Level:         service.NewLevelService(f.Level),
		Drawer:        service.NewDrawerService(f.Drawer),
		Product:       service.NewProductService(f.Product),
		Specification: service.NewSpecificationService(f.Specification),
		Sensor:        service.NewSensorService(f.Sensor),
		QRScan:        service.NewQRScanService(f.QRScan, nil, zap.NewNop()),
		Reconcile:     service.NewReconcileService(f.Trolley, expander, reducer),
	}

	router := testutil.SetupRouter()
	RegisterRoutes(router, NewHandlers(services, sse.NewHub()))
	return router, f
}
