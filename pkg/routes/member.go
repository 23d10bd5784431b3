package routes

import (
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/controllers/pages"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// Sign-in prompts shown per page
const (
	DashboardSignIn     = "Sign in to access your dashboard"
	InventorySignIn     = "Sign in to manage inventory"
	SalesSignIn         = "Sign in to view sales"
	ForecastingSignIn   = "Sign in to view forecasting"
	NotificationsSignIn = "Sign in to view notifications"
)

// RegisterMemberRoutes registers the signed-in pages
func RegisterMemberRoutes(router *gin.RouterGroup, h *pages.Handler) {
	router.GET("/dashboard", middleware.RequireMember(DashboardSignIn), h.Dashboard)

	// Inventory management
	inventory := router.Group("/inventory")
	inventory.Use(middleware.RequireMember(InventorySignIn))
	{
		inventory.GET("", h.Inventory)
		inventory.POST("/products", h.CreateProduct)
		inventory.PUT("/products/:id", h.UpdateProduct)
		inventory.DELETE("/products/:id", h.DeleteProduct)
		inventory.POST("/products/:id/image", h.UploadProductImage)
	}

	// Sales orders
	sales := router.Group("/sales")
	sales.Use(middleware.RequireMember(SalesSignIn))
	{
		sales.GET("", h.Sales)
		sales.POST("/orders", h.CreateOrder)
		sales.POST("/orders/:id/payment", h.StartPayment)
		sales.POST("/orders/:id/payment/verify", h.ConfirmPayment)
	}

	router.GET("/forecasting", middleware.RequireMember(ForecastingSignIn), h.Forecasting)

	// Notifications
	notifications := router.Group("/notifications")
	notifications.Use(middleware.RequireMember(NotificationsSignIn))
	{
		notifications.GET("", h.Notifications)
		notifications.POST("", h.CreateNotification)
		notifications.POST("/read-all", h.MarkAllAsRead)
		notifications.POST("/:id/read", h.MarkAsRead)
	}

	router.GET("/profile", middleware.RequireMember(""), h.Profile)
}
