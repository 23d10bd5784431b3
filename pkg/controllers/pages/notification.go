package pages

import (
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/utils"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/views"
	"github.com/gin-gonic/gin"
)

func (h *Handler) loadNotifications(c *gin.Context) (*views.Notifications, views.NotificationFilter, bool) {
	var filter views.NotificationFilter
	if !bindFilter(c, &filter) {
		return nil, filter, false
	}
	page := views.NewNotifications(h.repos, h.integrations)
	page.Load(c.Request.Context())
	return page, filter, true
}

// Notifications returns notifications filtered by ?search=, ?type= and ?status=
func (h *Handler) Notifications(c *gin.Context) {
	page, filter, ok := h.loadNotifications(c)
	if !ok {
		return
	}
	utils.SuccessResponseWithData(c, page.View(filter))
}

func (h *Handler) CreateNotification(c *gin.Context) {
	var req views.NotificationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid notification data")
		return
	}

	page, filter, ok := h.loadNotifications(c)
	if !ok {
		return
	}
	notification, err := page.CreateNotification(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, gin.H{"notification": notification, "page": page.View(filter)}, "Notification created successfully")
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	page, filter, ok := h.loadNotifications(c)
	if !ok {
		return
	}
	if err := page.MarkAsRead(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, page.View(filter), "Notification marked as read")
}

func (h *Handler) MarkAllAsRead(c *gin.Context) {
	page, filter, ok := h.loadNotifications(c)
	if !ok {
		return
	}
	if err := page.MarkAllAsRead(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, page.View(filter), "All notifications marked as read")
}
