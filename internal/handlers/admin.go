// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rmagrichem/agrichem-backend/internal/services"
	"github.com/rmagrichem/agrichem-backend/internal/store"
	"github.com/rmagrichem/agrichem-backend/internal/utils"
)

type AdminHandler struct {
	st             *store.Store
	contactService *services.ContactService
}

func NewAdminHandler(st *store.Store, contactService *services.ContactService) *AdminHandler {
	return &AdminHandler{
		st:             st,
		contactService: contactService,
	}
}

// GET /admin/stats
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	byCategory := h.st.Catalog.CountByCategory()

	categories := make(map[string]int, len(byCategory))
	for category, count := range byCategory {
		categories[string(category)] = count
	}

	utils.SuccessResponse(c, gin.H{
		"stats": gin.H{
			"total_products":       h.st.Catalog.Len(),
			"products_by_category": categories,
			"total_enquiries":      h.st.Enquiries.Len(),
		},
	})
}

// GET /admin/enquiries
func (h *AdminHandler) GetEnquiries(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	enquiries := h.contactService.ListEnquiries()
	total := int64(len(enquiries))
	page := utils.Paginate(enquiries, params)

	result := utils.CreatePaginationResult(page, total, params)
	utils.PaginatedResponse(c, result)
}
