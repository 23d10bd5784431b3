package pages

import (
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/utils"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/views"
	"github.com/gin-gonic/gin"
)

// Dashboard returns the dashboard page. A failed load still answers 200 with an empty page.
func (h *Handler) Dashboard(c *gin.Context) {
	page := views.NewDashboard(h.repos)
	page.Load(c.Request.Context())
	utils.SuccessResponseWithData(c, page.View())
}
