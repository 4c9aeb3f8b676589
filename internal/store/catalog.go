// internal/store/catalog.go
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rmagrichem/agrichem-backend/internal/models"
)

// Catalog is the authoritative in-memory registry of products.
// New records prepend, updates replace in place, order is otherwise stable.
type Catalog struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// List returns a copy of the current records, newest-created first.
func (c *Catalog) List() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, len(c.products))
	for i, p := range c.products {
		out[i] = cloneProduct(p)
	}
	return out
}

// Get returns a copy of the record with the given id.
func (c *Catalog) Get(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return cloneProduct(p), true
		}
	}
	return models.Product{}, false
}

// Create assigns a fresh unique id, prepends the record and returns it.
func (c *Catalog) Create(draft models.ProductDraft) models.Product {
	now := time.Now()
	product := productFromDraft(draft)
	product.ID = uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append([]models.Product{product}, c.products...)

	return cloneProduct(product)
}

// Update replaces the full record matching id with the supplied fields,
// preserving its position and creation time.
func (c *Catalog) Update(id string, draft models.ProductDraft) (models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.products {
		if p.ID != id {
			continue
		}
		replacement := productFromDraft(draft)
		replacement.ID = id
		replacement.CreatedAt = p.CreatedAt
		replacement.UpdatedAt = time.Now()
		c.products[i] = replacement
		return cloneProduct(replacement), nil
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes the record matching id. Existing cart copies of the
// product are left untouched.
func (c *Catalog) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Len reports the current number of records.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// CountByCategory tallies records per category.
func (c *Catalog) CountByCategory() map[models.ProductCategory]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	counts := make(map[models.ProductCategory]int)
	for _, p := range c.products {
		counts[p.Category]++
	}
	return counts
}

func (c *Catalog) load(products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range products {
		c.products = append(c.products, cloneProduct(p))
	}
}

func productFromDraft(draft models.ProductDraft) models.Product {
	return models.Product{
		Title:       draft.Title,
		Category:    draft.Category,
		Description: draft.Description,
		Dosage:      draft.Dosage,
		Crops:       cloneStrings(draft.Crops),
		Benefits:    cloneStrings(draft.Benefits),
		PackSize:    draft.PackSize,
		Price:       draft.Price,
		IsFeatured:  draft.IsFeatured,
		Image:       draft.Image,
	}
}

// cloneProduct copies the record including its slices so callers can
// never alias store-owned memory.
func cloneProduct(p models.Product) models.Product {
	p.Crops = cloneStrings(p.Crops)
	p.Benefits = cloneStrings(p.Benefits)
	return p
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
