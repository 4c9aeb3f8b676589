// internal/services/product_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/rmagrichem/agrichem-backend/internal/models"
	"github.com/rmagrichem/agrichem-backend/internal/store"
	"github.com/rmagrichem/agrichem-backend/internal/utils"
)

type ProductService struct {
	catalog *store.Catalog
}

// ProductRequest carries every product field. Updates use the same
// shape as creates because updates are full replaces, not patches.
type ProductRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	Category    string   `json:"category" validate:"required,category"`
	Description string   `json:"description" validate:"required"`
	Dosage      string   `json:"dosage" validate:"required"`
	Crops       []string `json:"crops,omitempty"`
	Benefits    []string `json:"benefits,omitempty"`
	PackSize    string   `json:"pack_size" validate:"required"`
	Price       float64  `json:"price" validate:"min=0"`
	IsFeatured  bool     `json:"is_featured"`
	Image       string   `json:"image"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	Featured *bool
}

func NewProductService(catalog *store.Catalog) *ProductService {
	return &ProductService{catalog: catalog}
}

// SearchProducts filters the catalog snapshot linearly and returns one
// page plus the filtered total.
func (s *ProductService) SearchProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	all := s.catalog.List()

	filtered := make([]models.Product, 0, len(all))
	search := strings.ToLower(params.Search)
	for _, p := range all {
		if params.Category != "" && string(p.Category) != params.Category {
			continue
		}
		if params.Featured != nil && p.IsFeatured != *params.Featured {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	total := int64(len(filtered))
	return utils.Paginate(filtered, params.PaginationParams), total, nil
}

func (s *ProductService) GetProduct(id string) (models.Product, error) {
	product, ok := s.catalog.Get(id)
	if !ok {
		return models.Product{}, store.ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) CreateProduct(req *ProductRequest) (models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Product{}, fmt.Errorf("validation failed: %w", err)
	}

	return s.catalog.Create(draftFromRequest(req)), nil
}

func (s *ProductService) UpdateProduct(id string, req *ProductRequest) (models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Product{}, fmt.Errorf("validation failed: %w", err)
	}

	return s.catalog.Update(id, draftFromRequest(req))
}

func (s *ProductService) DeleteProduct(id string) error {
	return s.catalog.Delete(id)
}

// GetFeaturedProducts returns up to limit products flagged for the
// home page, newest first.
func (s *ProductService) GetFeaturedProducts(limit int) []models.Product {
	all := s.catalog.List()

	featured := make([]models.Product, 0, limit)
	for _, p := range all {
		if !p.IsFeatured {
			continue
		}
		featured = append(featured, p)
		if len(featured) == limit {
			break
		}
	}
	return featured
}

func draftFromRequest(req *ProductRequest) models.ProductDraft {
	return models.ProductDraft{
		Title:       req.Title,
		Category:    models.ProductCategory(req.Category),
		Description: req.Description,
		Dosage:      req.Dosage,
		Crops:       req.Crops,
		Benefits:    req.Benefits,
		PackSize:    req.PackSize,
		Price:       req.Price,
		IsFeatured:  req.IsFeatured,
		Image:       req.Image,
	}
}
