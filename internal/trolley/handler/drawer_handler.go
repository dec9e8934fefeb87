package handler

import (
	"github.com/galleyops/trolleyd/internal/trolley/service"
	"github.com/gin-gonic/gin"
)

type DrawerHandler struct {
	svc *service.DrawerService
}

func NewDrawerHandler(svc *service.DrawerService) *DrawerHandler {
	return &DrawerHandler{svc: svc}
}

// List GET /drawers
func (h *DrawerHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	drawers, total, err := h.svc.List(c.Request.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, ListResponse{Items: drawers, Pagination: NewPagination(page, pageSize, total)})
}

// Create POST /drawers
func (h *DrawerHandler) Create(c *gin.Context) {
	var input service.CreateDrawerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	drawer, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, drawer)
}

// Get GET /drawers/:id
func (h *DrawerHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	drawer, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, drawer)
}

// Update PUT /drawers/:id
func (h *DrawerHandler) Update(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var input service.UpdateDrawerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	drawer, err := h.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, drawer)
}

// Delete DELETE /drawers/:id
func (h *DrawerHandler) Delete(c *gin.Context) {
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
