package pages

import (
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/utils"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/views"
	"github.com/gin-gonic/gin"
)

func (h *Handler) loadSales(c *gin.Context) (*views.Sales, views.SalesFilter, bool) {
	var filter views.SalesFilter
	if !bindFilter(c, &filter) {
		return nil, filter, false
	}
	page := views.NewSales(h.repos, h.integrations)
	page.Load(c.Request.Context())
	return page, filter, true
}

// Sales returns the order list filtered by ?search= and ?status=
func (h *Handler) Sales(c *gin.Context) {
	page, filter, ok := h.loadSales(c)
	if !ok {
		return
	}
	utils.SuccessResponseWithData(c, page.View(filter))
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req views.OrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid order data")
		return
	}

	page, filter, ok := h.loadSales(c)
	if !ok {
		return
	}
	order, err := page.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, gin.H{"order": order, "page": page.View(filter)}, "Order created successfully")
}

// StartPayment opens a Razorpay order for the sales order's total
func (h *Handler) StartPayment(c *gin.Context) {
	page, _, ok := h.loadSales(c)
	if !ok {
		return
	}
	payment, err := page.StartPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, payment, "Payment order created")
}

// ConfirmPayment verifies the checkout signature and marks the order paid
func (h *Handler) ConfirmPayment(c *gin.Context) {
	var req views.PaymentConfirmation
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid payment confirmation")
		return
	}

	page, filter, ok := h.loadSales(c)
	if !ok {
		return
	}
	order, err := page.ConfirmPayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"order": order, "page": page.View(filter)}, "Payment verified successfully")
}
