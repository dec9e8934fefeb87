package handler

import (
	"github.com/galleyops/trolleyd/internal/trolley/service"
	"github.com/gin-gonic/gin"
)

type TrolleyHandler struct {
	svc       *service.TrolleyService
	reconcile *service.ReconcileService
}

func NewTrolleyHandler(svc *service.TrolleyService, reconcile *service.ReconcileService) *TrolleyHandler {
	return &TrolleyHandler{svc: svc, reconcile: reconcile}
}

// List GET /trolleys
func (h *TrolleyHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	trolleys, total, err := h.svc.List(c.Request.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, ListResponse{Items: trolleys, Pagination: NewPagination(page, pageSize, total)})
}

// Create POST /trolleys
func (h *TrolleyHandler) Create(c *gin.Context) {
	var input service.CreateTrolleyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	trolley, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, trolley)
}

// Get GET /trolleys/:id
func (h *TrolleyHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	trolley, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, trolley)
}

// Update PUT /trolleys/:id
func (h *TrolleyHandler) Update(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var input service.CreateTrolleyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	trolley, err := h.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, trolley)
}

// Delete DELETE /trolleys/:id
func (h *TrolleyHandler) Delete(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, nil)
}

// ListLevels GET /trolleys/:id/levels
func (h *TrolleyHandler) ListLevels(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	levels, err := h.svc.ListLevels(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"items": levels})
}

// CreateLevel POST /trolleys/:id/levels
func (h *TrolleyHandler) CreateLevel(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var input service.CreateLevelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	level, err := h.svc.CreateLevel(c.Request.Context(), id, &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, level)
}

// Stats GET /trolleys/:id/stats
func (h *TrolleyHandler) Stats(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	stats, err := h.svc.Stats(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, stats)
}

// RequiredContents GET /trolleys/:id/required-contents?spec_id=
func (h *TrolleyHandler) RequiredContents(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	report, err := h.reconcile.RequiredContents(c.Request.Context(), id, c.Query("spec_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, report)
}

// CurrentContents GET /trolleys/:id/current-contents?flight_number=&alert_flag=
func (h *TrolleyHandler) CurrentContents(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	report, err := h.reconcile.CurrentContents(
		c.Request.Context(), id, c.Query("flight_number"), c.Query("alert_flag"),
	)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, report)
}
