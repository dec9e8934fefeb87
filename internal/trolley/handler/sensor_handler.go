package handler

import (
	"strconv"

	"github.com/galleyops/trolleyd/internal/trolley/repository"
	"github.com/galleyops/trolleyd/internal/trolley/service"
	"github.com/gin-gonic/gin"
)

type SensorHandler struct {
	svc *service.SensorService
}

func NewSensorHandler(svc *service.SensorService) *SensorHandler {
	return &SensorHandler{svc: svc}
}

// List GET /sensor-readings?drawer_id=&flight_number=&alert_flag=&sensor_type=
func (h *SensorHandler) List(c *gin.Context) {
	f := repository.ReadingFilter{
		FlightNumber: c.Query("flight_number"),
		AlertFlag:    c.Query("alert_flag"),
		SensorType:   c.Query("sensor_type"),
	}
	if d := c.Query("drawer_id"); d != "" {
		v, err := strconv.ParseUint(d, 10, 64)
		if err != nil {
			BadRequest(c, "drawer_id must be an integer")
			return
		}
		f.DrawerID = uint(v)
	}

	page, pageSize := GetPagination(c)
	readings, total, err := h.svc.List(c.Request.Context(), f, (page-1)*pageSize, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, ListResponse{Items: readings, Pagination: NewPagination(page, pageSize, total)})
}

// Create POST /sensor-readings
func (h *SensorHandler) Create(c *gin.Context) {
	var input service.CreateReadingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	reading, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, reading)
}

// Get GET /sensor-readings/:id
func (h *SensorHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	reading, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, reading)
}
