// internal/handlers/cart.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/terrazul/terrazul-backend/internal/cart"
	"github.com/terrazul/terrazul-backend/internal/i18n"
	"github.com/terrazul/terrazul-backend/internal/middleware"
	"github.com/terrazul/terrazul-backend/internal/services"
	"github.com/terrazul/terrazul-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

type addItemRequest struct {
	ProductID      string `json:"product_id" validate:"required"`
	Quantity       int    `json:"quantity"`
	SelectedWeight string `json:"selected_weight"`
	SelectedGrind  string `json:"selected_grind"`
}

// Deliberately unvalidated: quantities below 1 are a silent no-op in the
// engine, so rejecting them here would change behavior.
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartPayload is the response shape shared by all cart endpoints: the
// ordered items plus the derived totals the storefront header shows.
func cartPayload(c *cart.Cart) gin.H {
	return gin.H{
		"items": c.Items(),
		"total": c.Total(),
		"count": c.Count(),
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.GetCartSession(c)

	userCart, err := h.cartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, cartPayload(userCart))
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID := middleware.GetCartSession(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	userCart, err := h.cartService.AddItem(c.Request.Context(), sessionID, req.ProductID, req.Quantity, req.SelectedWeight, req.SelectedGrind)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	payload := cartPayload(userCart)
	payload["message"] = i18n.T(lang, i18n.KeyCartItemAdded)
	utils.SuccessResponse(c, payload)
}

// PUT /cart/items/:cartId
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID := middleware.GetCartSession(c)
	cartID := c.Param("cartId")

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	userCart, err := h.cartService.UpdateQuantity(c.Request.Context(), sessionID, cartID, req.Quantity)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	payload := cartPayload(userCart)
	payload["message"] = i18n.T(lang, i18n.KeyCartUpdated)
	utils.SuccessResponse(c, payload)
}

// DELETE /cart/items/:cartId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID := middleware.GetCartSession(c)
	cartID := c.Param("cartId")

	userCart, err := h.cartService.RemoveItem(c.Request.Context(), sessionID, cartID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	payload := cartPayload(userCart)
	payload["message"] = i18n.T(lang, i18n.KeyCartItemRemoved)
	utils.SuccessResponse(c, payload)
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID := middleware.GetCartSession(c)

	userCart, err := h.cartService.ClearCart(c.Request.Context(), sessionID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	payload := cartPayload(userCart)
	payload["message"] = i18n.T(lang, i18n.KeyCartCleared)
	utils.SuccessResponse(c, payload)
}
