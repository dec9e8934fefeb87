package handler

import (
	"github.com/galleyops/trolleyd/internal/trolley/service"
	"github.com/gin-gonic/gin"
)

type LevelHandler struct {
	svc      *service.LevelService
	trolleys *service.TrolleyService
}

func NewLevelHandler(svc *service.LevelService, trolleys *service.TrolleyService) *LevelHandler {
	return &LevelHandler{svc: svc, trolleys: trolleys}
}

type createLevelRequest struct {
	TrolleyID uint `json:"trolley_id" binding:"required"`
	service.CreateLevelInput
}

// Create POST /levels
func (h *LevelHandler) Create(c *gin.Context) {
	var req createLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	level, err := h.trolleys.CreateLevel(c.Request.Context(), req.TrolleyID, &req.CreateLevelInput)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, level)
}

// List GET /levels
func (h *LevelHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	levels, total, err := h.svc.List(c.Request.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, ListResponse{Items: levels, Pagination: NewPagination(page, pageSize, total)})
}

// Get GET /levels/:id
func (h *LevelHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	level, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, level)
}

// Update PUT /levels/:id
func (h *LevelHandler) Update(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var input service.UpdateLevelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	level, err := h.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, level)
}

// Delete DELETE /levels/:id
func (h *LevelHandler) Delete(c *gin.Context) {
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
