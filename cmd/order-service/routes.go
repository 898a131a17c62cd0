package main

import (
	"github.com/gin-gonic/gin"

	"handshake.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	orderHandler   *handlers.OrderHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		orders := v1.Group("/orders")
		orders.Use(d.authMiddleware)
		{
			orders.POST("", d.orderHandler.CreateOrder)
			orders.GET("/my-orders", d.orderHandler.MyOrders)
			orders.GET("/:id", d.orderHandler.GetOrder)
		}

		v1.PUT("/locations/me", d.authMiddleware, d.orderHandler.UpsertLocation)

		v1.GET("/geocode", d.orderHandler.Geocode)
		v1.GET("/geocode/reverse", d.orderHandler.ReverseGeocode)
	}
}
