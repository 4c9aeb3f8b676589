// internal/handlers/advice.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rmagrichem/agrichem-backend/internal/i18n"
	"github.com/rmagrichem/agrichem-backend/internal/services"
	"github.com/rmagrichem/agrichem-backend/internal/utils"
)

type AdviceHandler struct {
	adviceService *services.AdviceService
}

func NewAdviceHandler(adviceService *services.AdviceService) *AdviceHandler {
	return &AdviceHandler{adviceService: adviceService}
}

type adviceRequest struct {
	Query string `json:"query" binding:"required"`
}

// POST /advice
//
// Always answers 200 with a text reply: collaborator failures degrade
// to a fixed fallback message instead of an error status.
func (h *AdviceHandler) GetAdvice(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req adviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	reply := h.adviceService.GetAdvice(c.Request.Context(), req.Query)

	utils.SuccessResponse(c, gin.H{
		"reply": reply,
	})
}
