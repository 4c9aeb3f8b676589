// internal/store/seed.go
package store

import (
	"time"

	"github.com/rmagrichem/agrichem-backend/internal/models"
)

// DefaultSeed returns the launch catalog shown before any admin edits.
func DefaultSeed() []models.Product {
	now := time.Now()
	return []models.Product{
		{
			ID:          "1",
			Title:       "GrowMax Yield Booster",
			Category:    models.CategoryFertilizer,
			Description: "A premium liquid fertilizer designed to maximize crop yield by enhancing nutrient absorption.",
			Dosage:      "2-3 ml per liter of water",
			Crops:       []string{"Wheat", "Rice", "Corn", "Soybean"},
			Benefits:    []string{"Increases root development", "Boosts flowering", "Enhances stress resistance"},
			PackSize:    "1L",
			Price:       1200,
			IsFeatured:  true,
			Image:       "https://picsum.photos/seed/agri1/600/600",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Title:       "PestControl Pro",
			Category:    models.CategoryPesticide,
			Description: "Broad-spectrum insecticide for controlling aphids, thrips, and whiteflies effectively.",
			Dosage:      "1.5 ml per liter",
			Crops:       []string{"Cotton", "Vegetables", "Fruits"},
			Benefits:    []string{"Quick knockdown effect", "Long-lasting protection", "Rainfast in 2 hours"},
			PackSize:    "500ml",
			Price:       850,
			IsFeatured:  true,
			Image:       "https://picsum.photos/seed/pest2/600/600",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "3",
			Title:       "RootKing Humic Acid",
			Category:    models.CategoryGrowthPromoter,
			Description: "Concentrated humic acid to improve soil structure and nutrient uptake.",
			Dosage:      "5kg per acre (Soil Application)",
			Crops:       []string{"All Crops"},
			Benefits:    []string{"Improves soil aeration", "Increases water holding capacity", "Stimulates microbial activity"},
			PackSize:    "1kg",
			Price:       450,
			IsFeatured:  false,
			Image:       "https://picsum.photos/seed/soil3/600/600",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "4",
			Title:       "WeedWipe Herbicide",
			Category:    models.CategoryHerbicide,
			Description: "Post-emergence herbicide for effective control of broadleaf weeds.",
			Dosage:      "10ml per liter",
			Crops:       []string{"Sugarcane", "Maize"},
			Benefits:    []string{"Selective action", "Safe for main crop", "Controls tough weeds"},
			PackSize:    "1L",
			Price:       1500,
			IsFeatured:  false,
			Image:       "https://picsum.photos/seed/weed4/600/600",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "5",
			Title:       "FungiGuard Plus",
			Category:    models.CategoryFungicide,
			Description: "Systemic fungicide for prevention and cure of fungal diseases like powdery mildew.",
			Dosage:      "2g per liter",
			Crops:       []string{"Grapes", "Tomato", "Potato"},
			Benefits:    []string{"Curative and preventive", "Systemic action", "Low residue"},
			PackSize:    "250g",
			Price:       600,
			IsFeatured:  true,
			Image:       "https://picsum.photos/seed/fungi5/600/600",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
