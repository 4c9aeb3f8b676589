// internal/models/product.go
package models

import "time"

// Product is a single catalog entry. The catalog store owns the
// authoritative list; everything else works on copies.
type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Category    ProductCategory `json:"category"`
	Description string          `json:"description"`
	Dosage      string          `json:"dosage"`
	Crops       []string        `json:"crops"`
	Benefits    []string        `json:"benefits"`
	PackSize    string          `json:"pack_size"`
	Price       float64         `json:"price"` // display-only estimate, no currency logic
	IsFeatured  bool            `json:"is_featured"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductDraft carries every Product field except the identifier and
// timestamps, which the catalog store assigns.
type ProductDraft struct {
	Title       string          `json:"title"`
	Category    ProductCategory `json:"category"`
	Description string          `json:"description"`
	Dosage      string          `json:"dosage"`
	Crops       []string        `json:"crops"`
	Benefits    []string        `json:"benefits"`
	PackSize    string          `json:"pack_size"`
	Price       float64         `json:"price"`
	IsFeatured  bool            `json:"is_featured"`
	Image       string          `json:"image"`
}
