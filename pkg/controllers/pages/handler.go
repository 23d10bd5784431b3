// Package pages serves one JSON page view per application screen.
package pages

import (
	"errors"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/utils"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/views"
	"github.com/gin-gonic/gin"
)

// Handler builds a fresh page view per request, so requests never share a snapshot
type Handler struct {
	repos        store.Repositories
	integrations views.Integrations
}

func NewHandler(repos store.Repositories, integrations views.Integrations) *Handler {
	return &Handler{repos: repos, integrations: integrations}
}

// bindFilter reads the page filter from the query string. Malformed values,
// such as a non-numeric ?range=, answer 400 instead of falling back to defaults.
func bindFilter(c *gin.Context, filter interface{}) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		utils.BadRequestResponse(c, "Invalid query parameters")
		return false
	}
	return true
}

// respondError answers integration failures directly and hands store failures
// to middleware.ErrorMiddleware, which maps them by kind
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, views.ErrImagesUnavailable), errors.Is(err, views.ErrPaymentsUnavailable):
		utils.ServiceUnavailableResponse(c, err.Error())
	case errors.Is(err, views.ErrInvalidPayment):
		utils.BadRequestResponse(c, err.Error())
	default:
		_ = c.Error(err)
	}
}
