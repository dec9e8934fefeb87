package handler

import (
	"errors"

	"github.com/galleyops/trolleyd/internal/trolley/repository"
	"github.com/galleyops/trolleyd/internal/trolley/service"
	"github.com/gin-gonic/gin"
)

type QRScanHandler struct {
	svc *service.QRScanService
}

func NewQRScanHandler(svc *service.QRScanService) *QRScanHandler {
	return &QRScanHandler{svc: svc}
}

// List GET /qr-scans
func (h *QRScanHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	scans, total, err := h.svc.List(c.Request.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, ListResponse{Items: scans, Pagination: NewPagination(page, pageSize, total)})
}

// Create POST /qr-scans
func (h *QRScanHandler) Create(c *gin.Context) {
	var input service.CreateQRScanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	scan, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, scan)
}

// Get GET /qr-scans/:id
func (h *QRScanHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	scan, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, scan)
}

// Latest GET /qr-scans/latest
func (h *QRScanHandler) Latest(c *gin.Context) {
	scan, err := h.svc.Latest(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// No scans yet is an expected state, not a missing resource.
			Success(c, nil)
			return
		}
		HandleError(c, err)
		return
	}
	Success(c, scan)
}
