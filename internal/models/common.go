// internal/models/common.go
package models

// ProductCategory is the closed set of catalog categories.
type ProductCategory string

const (
	CategoryFertilizer     ProductCategory = "Fertilizer"
	CategoryPesticide      ProductCategory = "Pesticide"
	CategoryHerbicide      ProductCategory = "Herbicide"
	CategoryFungicide      ProductCategory = "Fungicide"
	CategoryGrowthPromoter ProductCategory = "Growth Promoter"
	CategorySeeds          ProductCategory = "Seeds"
)

// Categories lists every valid ProductCategory, in display order.
func Categories() []ProductCategory {
	return []ProductCategory{
		CategoryFertilizer,
		CategoryPesticide,
		CategoryHerbicide,
		CategoryFungicide,
		CategoryGrowthPromoter,
		CategorySeeds,
	}
}

// IsValid reports whether c is one of the known categories.
func (c ProductCategory) IsValid() bool {
	switch c {
	case CategoryFertilizer, CategoryPesticide, CategoryHerbicide,
		CategoryFungicide, CategoryGrowthPromoter, CategorySeeds:
		return true
	}
	return false
}
