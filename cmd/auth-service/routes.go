package main

import (
	"github.com/gin-gonic/gin"

	"handshake.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/verify-email", d.authHandler.VerifyEmail)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/resend-otp", d.authHandler.ResendOTP)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}
	}
}
