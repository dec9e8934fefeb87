package handler

import (
	"github.com/galleyops/trolleyd/internal/trolley/service"
	"github.com/gin-gonic/gin"
)

type SpecificationHandler struct {
	svc *service.SpecificationService
}

func NewSpecificationHandler(svc *service.SpecificationService) *SpecificationHandler {
	return &SpecificationHandler{svc: svc}
}

// List GET /specifications
func (h *SpecificationHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	specs, total, err := h.svc.List(c.Request.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, ListResponse{Items: specs, Pagination: NewPagination(page, pageSize, total)})
}

// Create POST /specifications
func (h *SpecificationHandler) Create(c *gin.Context) {
	var input service.CreateSpecificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	spec, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, spec)
}

// Get GET /specifications/:id
func (h *SpecificationHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	spec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, spec)
}

// Update PUT /specifications/:id
func (h *SpecificationHandler) Update(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var input service.CreateSpecificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	spec, err := h.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, spec)
}

// Delete DELETE /specifications/:id
func (h *SpecificationHandler) Delete(c *gin.Context) {
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

// ListItems GET /specification-items
func (h *SpecificationHandler) ListItems(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.ListItems(c.Request.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, ListResponse{Items: items, Pagination: NewPagination(page, pageSize, total)})
}

// CreateItem POST /specification-items
func (h *SpecificationHandler) CreateItem(c *gin.Context) {
	var input service.CreateSpecItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	item, err := h.svc.CreateItem(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, item)
}

// GetItem GET /specification-items/:id
func (h *SpecificationHandler) GetItem(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	item, err := h.svc.GetItem(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, item)
}

// UpdateItem PUT /specification-items/:id
func (h *SpecificationHandler) UpdateItem(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var input service.UpdateSpecItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	item, err := h.svc.UpdateItem(c.Request.Context(), id, &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, item)
}

// DeleteItem DELETE /specification-items/:id
func (h *SpecificationHandler) DeleteItem(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteItem(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, nil)
}
