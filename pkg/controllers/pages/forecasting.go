package pages

import (
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/utils"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/views"
	"github.com/gin-gonic/gin"
)

// Forecasting returns the forecasting page for ?product= and ?range= (7, 14 or 30 days)
func (h *Handler) Forecasting(c *gin.Context) {
	var filter views.ForecastFilter
	if !bindFilter(c, &filter) {
		return
	}

	page := views.NewForecasting(h.repos)
	page.Load(c.Request.Context())
	utils.SuccessResponseWithData(c, page.View(filter))
}
