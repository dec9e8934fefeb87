package handler

import (
	"errors"
	"strconv"

	"github.com/galleyops/trolleyd/internal/trolley/repository"
	"github.com/galleyops/trolleyd/internal/trolley/service"
	"github.com/galleyops/trolleyd/internal/trolley/sse"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler.
type Handlers struct {
	Trolley       *TrolleyHandler
	Level         *LevelHandler
	Drawer        *DrawerHandler
	Product       *ProductHandler
	Specification *SpecificationHandler
	Sensor        *SensorHandler
	QRScan        *QRScanHandler
	SSE           *SSEHandler
}

// NewHandlers creates the handler bundle.
func NewHandlers(svc *service.Services, hub *sse.Hub) *Handlers {
	return &Handlers{
		Trolley:       NewTrolleyHandler(svc.Trolley, svc.Reconcile),
		Level:         NewLevelHandler(svc.Level, svc.Trolley),
		Drawer:        NewDrawerHandler(svc.Drawer),
		Product:       NewProductHandler(svc.Product),
		Specification: NewSpecificationHandler(svc.Specification),
		Sensor:        NewSensorHandler(svc.Sensor),
		QRScan:        NewQRScanHandler(svc.QRScan),
		SSE:           NewSSEHandler(hub),
	}
}

// RegisterRoutes wires every handler under /api/v1.
func RegisterRoutes(r gin.IRouter, h *Handlers) {
	v1 := r.Group("/api/v1")

	trolleys := v1.Group("/trolleys")
	trolleys.GET("", h.Trolley.List)
	trolleys.POST("", h.Trolley.Create)
	trolleys.GET("/:id", h.Trolley.Get)
	trolleys.PUT("/:id", h.Trolley.Update)
	trolleys.DELETE("/:id", h.Trolley.Delete)
	trolleys.GET("/:id/levels", h.Trolley.ListLevels)
	trolleys.POST("/:id/levels", h.Trolley.CreateLevel)
	trolleys.GET("/:id/stats", h.Trolley.Stats)
	trolleys.GET("/:id/required-contents", h.Trolley.RequiredContents)
	trolleys.GET("/:id/current-contents", h.Trolley.CurrentContents)

	levels := v1.Group("/levels")
	levels.GET("", h.Level.List)
	levels.POST("", h.Level.Create)
	levels.GET("/:id", h.Level.Get)
	levels.PUT("/:id", h.Level.Update)
	levels.DELETE("/:id", h.Level.Delete)

	drawers := v1.Group("/drawers")
	drawers.GET("", h.Drawer.List)
	drawers.POST("", h.Drawer.Create)
	drawers.GET("/:id", h.Drawer.Get)
	drawers.PUT("/:id", h.Drawer.Update)
	drawers.DELETE("/:id", h.Drawer.Delete)

	products := v1.Group("/products")
	products.GET("", h.Product.List)
	products.POST("", h.Product.Create)
	products.GET("/search", h.Product.Search)
	products.GET("/sku/:sku", h.Product.GetBySKU)
	products.GET("/:id", h.Product.Get)
	products.PUT("/:id", h.Product.Update)
	products.DELETE("/:id", h.Product.Delete)
	products.POST("/:id/update-stock", h.Product.UpdateStock)
	products.POST("/:id/decrease-stock", h.Product.DecreaseStock)

	specs := v1.Group("/specifications")
	specs.GET("", h.Specification.List)
	specs.POST("", h.Specification.Create)
	specs.GET("/:id", h.Specification.Get)
	specs.PUT("/:id", h.Specification.Update)
	specs.DELETE("/:id", h.Specification.Delete)

	items := v1.Group("/specification-items")
	items.GET("", h.Specification.ListItems)
	items.POST("", h.Specification.CreateItem)
	items.GET("/:id", h.Specification.GetItem)
	items.PUT("/:id", h.Specification.UpdateItem)
	items.DELETE("/:id", h.Specification.DeleteItem)

	readings := v1.Group("/sensor-readings")
	readings.GET("", h.Sensor.List)
	readings.POST("", h.Sensor.Create)
	readings.GET("/:id", h.Sensor.Get)

	scans := v1.Group("/qr-scans")
	scans.GET("", h.QRScan.List)
	scans.POST("", h.QRScan.Create)
	scans.GET("/latest", h.QRScan.Latest)
	scans.GET("/:id", h.QRScan.Get)

	v1.GET("/events", h.SSE.Stream)
}

// Response is the common response envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse is the payload shape for paginated listings.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// Pagination carries paging metadata.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func NewPagination(page, pageSize int, total int64) *Pagination {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}
	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Success writes a 200 envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created writes a 201 envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error writes an error envelope. The HTTP status is the leading three
// digits of the code.
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// HandleError maps service and repository errors to the envelope:
// ValidationError to 400, ErrNotFound to 404, everything else to 500.
func HandleError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		BadRequest(c, verr.Message)
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, err.Error())
	default:
		InternalError(c, err.Error())
	}
}

// GetPagination reads page/page_size query params with defaults.
func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}

	return page, pageSize
}

// IDParam parses the :id path parameter.
func IDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
