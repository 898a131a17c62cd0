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

// OrderHandler handles order and location endpoints
type OrderHandler struct {
	orderUsecase *usecases.OrderUsecase
	geocoder     usecases.Geocoder
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase *usecases.OrderUsecase, geocoder usecases.Geocoder) *OrderHandler {
	return &OrderHandler{
		orderUsecase: orderUsecase,
		geocoder:     geocoder,
	}
}

// CreateOrder places an order
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	var input entities.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	details, err := h.orderUsecase.CreateOrder(c.Request.Context(), userID, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("product not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, details)
}

// GetOrder gets an order with the calculated meeting point
// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid order id"))
		return
	}

	details, err := h.orderUsecase.GetOrder(c.Request.Context(), id, userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("order not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, details)
}

// MyOrders lists the caller's orders
// GET /api/v1/orders/my-orders
func (h *OrderHandler) MyOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	orders, err := h.orderUsecase.MyOrders(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// UpsertLocation stores or replaces the caller's meeting location
// PUT /api/v1/locations/me
func (h *OrderHandler) UpsertLocation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	var input entities.LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	location, err := h.orderUsecase.UpsertMyLocation(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, location)
}

// Geocode resolves a free-form address to coordinates
// GET /api/v1/geocode?address=...
func (h *OrderHandler) Geocode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		response.Error(c, domainerrors.BadRequest("address query parameter is required"))
		return
	}

	result, err := h.geocoder.Geocode(c.Request.Context(), address)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("address not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ReverseGeocode resolves coordinates to the nearest address
// GET /api/v1/geocode/reverse?lat=...&lon=...
func (h *OrderHandler) ReverseGeocode(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid lat"))
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid lon"))
		return
	}

	result, err := h.geocoder.ReverseGeocode(c.Request.Context(), lat, lon)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("no address at those coordinates"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
