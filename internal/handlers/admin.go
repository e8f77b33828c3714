// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/terrazul/terrazul-backend/internal/services"
	"github.com/terrazul/terrazul-backend/internal/utils"
)

type AdminHandler struct {
	productService *services.ProductService
}

func NewAdminHandler(productService *services.ProductService) *AdminHandler {
	return &AdminHandler{
		productService: productService,
	}
}

// GET /admin/dashboard
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	total, fresh, err := h.productService.CountProducts()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": gin.H{
			"total": total,
			"new":   fresh,
		},
	})
}
