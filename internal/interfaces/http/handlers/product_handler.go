package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"handshake.backend/internal/domain/entities"
	domainerrors "handshake.backend/internal/domain/errors"
	"handshake.backend/internal/interfaces/http/middleware"
	"handshake.backend/internal/interfaces/http/response"
	"handshake.backend/internal/usecases"
)

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	productUsecase *usecases.ProductUsecase
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase *usecases.ProductUsecase) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
	}
}

// CreateProduct creates a listing owned by the caller
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	var input entities.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.CreateProduct(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, product)
}

// GetProduct gets a listing by ID
// GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	product, err := h.productUsecase.GetProduct(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("product not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

// ListProducts lists active listings
// GET /api/v1/products?category=slug&category_id=1&limit=20&offset=0
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := entities.ProductFilter{
		CategorySlug: c.Query("category"),
		CategoryID:   uint(intQuery(c, "category_id", 0)),
		Limit:        intQuery(c, "limit", 0),
		Offset:       intQuery(c, "offset", 0),
	}

	products, err := h.productUsecase.ListProducts(c.Request.Context(), filter)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("category not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// UpdateProduct applies a partial update to a listing
// PUT /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	var input entities.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.UpdateProduct(c.Request.Context(), id, userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes a listing
// DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	if err := h.productUsecase.DeleteProduct(c.Request.Context(), id, userID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCategoryProducts lists the active listings of one category
// GET /api/v1/categories/:slug/products
func (h *ProductHandler) ListCategoryProducts(c *gin.Context) {
	filter := entities.ProductFilter{
		CategorySlug: c.Param("slug"),
		Limit:        intQuery(c, "limit", 0),
		Offset:       intQuery(c, "offset", 0),
	}

	products, err := h.productUsecase.ListProducts(c.Request.Context(), filter)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("category not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// ListCategories lists all categories
// GET /api/v1/categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.productUsecase.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"categories": categories,
	})
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
