// internal/store/cart.go
package store

import (
	"sync"
	"time"

	"github.com/rmagrichem/agrichem-backend/internal/models"
)

// Carts tracks per-session enquiry lists. Each item is a snapshot
// copy of a product taken at add time; later catalog edits and
// deletes do not propagate into carts.
type Carts struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func NewCarts() *Carts {
	return &Carts{carts: make(map[string]*models.Cart)}
}

// Get returns a copy of the session's cart, or an empty cart when the
// session has never added anything.
func (s *Carts) Get(sessionID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return models.Cart{SessionID: sessionID}
	}
	return cloneCart(cart)
}

// Add merges the product into the session's cart: an existing item's
// quantity grows by one, otherwise a new item with quantity 1 is
// appended. It never fails.
func (s *Carts) Add(sessionID string, product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	now := time.Now()
	for i := range cart.Items {
		if cart.Items[i].ID == product.ID {
			cart.Items[i].Quantity++
			cart.UpdatedAt = now
			return
		}
	}
	cart.Items = append(cart.Items, models.CartItem{
		Product:  cloneProduct(product),
		Quantity: 1,
		AddedAt:  now,
	})
	cart.UpdatedAt = now
}

// Remove deletes the item with the given product id. Absent ids are a
// no-op, not an error.
func (s *Carts) Remove(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return
	}
	for i := range cart.Items {
		if cart.Items[i].ID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			cart.UpdatedAt = time.Now()
			return
		}
	}
}

// SetQuantity replaces the item's quantity. Quantities below 1 leave
// the existing quantity unchanged; this is a guard, not an error path.
// Absent ids are a no-op.
func (s *Carts) SetQuantity(sessionID, productID string, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return
	}
	for i := range cart.Items {
		if cart.Items[i].ID == productID {
			cart.Items[i].Quantity = quantity
			cart.UpdatedAt = time.Now()
			return
		}
	}
}

// Clear empties the session's cart unconditionally.
func (s *Carts) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// TotalItemCount sums quantities across the session's items.
func (s *Carts) TotalItemCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return 0
	}
	total := 0
	for _, item := range cart.Items {
		total += item.Quantity
	}
	return total
}

func (s *Carts) cart(sessionID string) *models.Cart {
	cart, ok := s.carts[sessionID]
	if !ok {
		cart = &models.Cart{SessionID: sessionID}
		s.carts[sessionID] = cart
	}
	return cart
}

func cloneCart(cart *models.Cart) models.Cart {
	out := models.Cart{
		SessionID: cart.SessionID,
		UpdatedAt: cart.UpdatedAt,
		Items:     make([]models.CartItem, len(cart.Items)),
	}
	for i, item := range cart.Items {
		item.Product = cloneProduct(item.Product)
		out.Items[i] = item
	}
	return out
}
