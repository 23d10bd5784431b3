package pages

import (
	"io"
	"net/http"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/utils"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/views"
	"github.com/gin-gonic/gin"
)

const maxImageBytes = 5 << 20

func (h *Handler) loadInventory(c *gin.Context) (*views.Inventory, views.InventoryFilter, bool) {
	var filter views.InventoryFilter
	if !bindFilter(c, &filter) {
		return nil, filter, false
	}
	page := views.NewInventory(h.repos, h.integrations)
	page.Load(c.Request.Context())
	return page, filter, true
}

// Inventory returns the product list filtered by ?search= and ?status=
func (h *Handler) Inventory(c *gin.Context) {
	page, filter, ok := h.loadInventory(c)
	if !ok {
		return
	}
	utils.SuccessResponseWithData(c, page.View(filter))
}

// CreateProduct adds a product; any id in the body is ignored
func (h *Handler) CreateProduct(c *gin.Context) {
	var req views.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid product data")
		return
	}
	req.ID = ""

	page, filter, ok := h.loadInventory(c)
	if !ok {
		return
	}
	product, err := page.SaveProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, gin.H{"product": product, "page": page.View(filter)}, "Product created successfully")
}

// UpdateProduct replaces the product named by :id
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req views.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid product data")
		return
	}
	req.ID = c.Param("id")

	page, filter, ok := h.loadInventory(c)
	if !ok {
		return
	}
	product, err := page.SaveProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"product": product, "page": page.View(filter)}, "Product updated successfully")
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	page, filter, ok := h.loadInventory(c)
	if !ok {
		return
	}
	if err := page.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"page": page.View(filter)}, "Product deleted successfully")
}

// UploadProductImage expects a multipart "image" field
func (h *Handler) UploadProductImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "Image file is required")
		return
	}
	if file.Size > maxImageBytes {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "Image must be 5MB or smaller")
		return
	}

	f, err := file.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Could not read image")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		utils.BadRequestResponse(c, "Could not read image")
		return
	}

	page, filter, ok := h.loadInventory(c)
	if !ok {
		return
	}
	product, err := page.UploadProductImage(c.Request.Context(), c.Param("id"), data, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"product": product, "page": page.View(filter)}, "Product image uploaded successfully")
}
