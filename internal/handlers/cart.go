// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rmagrichem/agrichem-backend/internal/i18n"
	"github.com/rmagrichem/agrichem-backend/internal/services"
	"github.com/rmagrichem/agrichem-backend/internal/store"
	"github.com/rmagrichem/agrichem-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type setQuantityRequest struct {
	// No binding guard on purpose: values below 1 must reach the
	// store, which ignores them and leaves the cart unchanged.
	Quantity int `json:"quantity"`
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := utils.GetSessionIDFromContext(c)

	cart := h.cartService.GetCart(sessionID)

	utils.SuccessResponse(c, gin.H{
		"cart":             cart,
		"total_item_count": cart.TotalItemCount(),
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID := utils.GetSessionIDFromContext(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	cart, err := h.cartService.AddItem(sessionID, req.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":          i18n.T(lang, i18n.KeyCartItemAdded),
		"cart":             cart,
		"total_item_count": cart.TotalItemCount(),
	})
}

// PUT /cart/items/:productId
func (h *CartHandler) SetQuantity(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID := utils.GetSessionIDFromContext(c)
	productID := c.Param("productId")

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Quantities below 1 are ignored by the store on purpose; the
	// response simply reflects the unchanged cart.
	cart := h.cartService.SetQuantity(sessionID, productID, req.Quantity)

	utils.SuccessResponse(c, gin.H{
		"message":          i18n.T(lang, i18n.KeyCartUpdated),
		"cart":             cart,
		"total_item_count": cart.TotalItemCount(),
	})
}

// DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID := utils.GetSessionIDFromContext(c)
	productID := c.Param("productId")

	cart := h.cartService.RemoveItem(sessionID, productID)

	utils.SuccessResponse(c, gin.H{
		"message":          i18n.T(lang, i18n.KeyCartItemRemoved),
		"cart":             cart,
		"total_item_count": cart.TotalItemCount(),
	})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID := utils.GetSessionIDFromContext(c)

	h.cartService.Clear(sessionID)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartCleared),
	})
}

// GET /cart/enquiry-link
func (h *CartHandler) GetEnquiryLink(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID := utils.GetSessionIDFromContext(c)

	link, err := h.cartService.BuildEnquiryLink(sessionID)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartEmpty), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"link":             link,
		"total_item_count": h.cartService.TotalItemCount(sessionID),
	})
}
