package main

import (
	"github.com/gin-gonic/gin"

	"handshake.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	productHandler *handlers.ProductHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", d.productHandler.ListProducts)
			products.GET("/:id", d.productHandler.GetProduct)
			products.POST("", d.authMiddleware, d.productHandler.CreateProduct)
			products.PUT("/:id", d.authMiddleware, d.productHandler.UpdateProduct)
			products.DELETE("/:id", d.authMiddleware, d.productHandler.DeleteProduct)
		}

		v1.GET("/categories", d.productHandler.ListCategories)
		v1.GET("/categories/:slug/products", d.productHandler.ListCategoryProducts)
	}
}
