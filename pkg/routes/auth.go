package routes

import (
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/controllers/auth"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers all authentication routes
func RegisterAuthRoutes(router *gin.RouterGroup, h *auth.Handler) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signin", h.SignIn)
		authGroup.POST("/signout", h.SignOut)

		// Anonymous callers get an unauthenticated session, not a 401
		authGroup.GET("/me", h.Me)
	}
}
