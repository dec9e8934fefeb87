package handler

import (
	"github.com/galleyops/trolleyd/internal/trolley/repository"
	"github.com/galleyops/trolleyd/internal/trolley/service"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func productFilter(c *gin.Context) repository.ProductFilter {
	return repository.ProductFilter{
		Category:      c.Query("category"),
		AvailableOnly: c.Query("available") == "true",
		Search:        c.Query("search"),
	}
}

// List GET /products?category=&available=&search=
func (h *ProductHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	products, total, err := h.svc.List(c.Request.Context(), productFilter(c), (page-1)*pageSize, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, ListResponse{Items: products, Pagination: NewPagination(page, pageSize, total)})
}

// Search GET /products/search?query=
func (h *ProductHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		BadRequest(c, "query parameter is required")
		return
	}
	page, pageSize := GetPagination(c)
	f := repository.ProductFilter{Search: query}
	products, total, err := h.svc.List(c.Request.Context(), f, (page-1)*pageSize, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"count": total, "results": products})
}

// Create POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var input service.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	product, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, product)
}

// Get GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	product, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, product)
}

// GetBySKU GET /products/sku/:sku
func (h *ProductHandler) GetBySKU(c *gin.Context) {
	product, err := h.svc.GetBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, product)
}

// Update PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var input service.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	product, err := h.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, product)
}

// Delete DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
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

// UpdateStock POST /products/:id/update-stock
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var input struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "quantity is required and must be an integer")
		return
	}
	product, err := h.svc.SetStock(c.Request.Context(), id, *input.Quantity)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, product)
}

// DecreaseStock POST /products/:id/decrease-stock
func (h *ProductHandler) DecreaseStock(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var input struct {
		Amount *int `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "amount must be an integer")
		return
	}
	amount := 1
	if input.Amount != nil {
		amount = *input.Amount
	}
	product, err := h.svc.DecreaseStock(c.Request.Context(), id, amount)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, product)
}
