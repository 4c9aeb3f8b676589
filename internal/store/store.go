// internal/store/store.go
package store

import (
	"errors"

	"github.com/rmagrichem/agrichem-backend/internal/models"
)

// ErrProductNotFound signals an update or delete against an absent id.
var ErrProductNotFound = errors.New("product not found")

// Store is the single process-scoped instance of catalog, cart and
// session state. It is created once in main and injected explicitly
// into every consumer.
type Store struct {
	Catalog   *Catalog
	Carts     *Carts
	Session   *Session
	Enquiries *Enquiries
}

func New() *Store {
	return &Store{
		Catalog:   NewCatalog(),
		Carts:     NewCarts(),
		Session:   NewSession(),
		Enquiries: NewEnquiries(),
	}
}

// LoadSeed appends products to the catalog preserving the given order.
// It is meant for startup seeding only.
func (s *Store) LoadSeed(products []models.Product) {
	s.Catalog.load(products)
}
