// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rmagrichem/agrichem-backend/internal/config"
	"github.com/rmagrichem/agrichem-backend/internal/models"
	"github.com/rmagrichem/agrichem-backend/internal/store"
)

// ErrCartEmpty signals an enquiry-link request against an empty cart.
var ErrCartEmpty = errors.New("enquiry list is empty")

// CartService manages per-session enquiry lists. Items are copies of
// catalog records taken when the shopper adds them; a later catalog
// edit or delete leaves the cart untouched.
type CartService struct {
	catalog *store.Catalog
	carts   *store.Carts
	cfg     *config.Config
}

func NewCartService(catalog *store.Catalog, carts *store.Carts, cfg *config.Config) *CartService {
	return &CartService{
		catalog: catalog,
		carts:   carts,
		cfg:     cfg,
	}
}

func (s *CartService) GetCart(sessionID string) models.Cart {
	return s.carts.Get(sessionID)
}

// AddItem resolves the product from the live catalog and merges it
// into the cart.
func (s *CartService) AddItem(sessionID, productID string) (models.Cart, error) {
	product, ok := s.catalog.Get(productID)
	if !ok {
		return models.Cart{}, store.ErrProductNotFound
	}

	s.carts.Add(sessionID, product)
	return s.carts.Get(sessionID), nil
}

func (s *CartService) RemoveItem(sessionID, productID string) models.Cart {
	s.carts.Remove(sessionID, productID)
	return s.carts.Get(sessionID)
}

func (s *CartService) SetQuantity(sessionID, productID string, quantity int) models.Cart {
	s.carts.SetQuantity(sessionID, productID, quantity)
	return s.carts.Get(sessionID)
}

func (s *CartService) Clear(sessionID string) {
	s.carts.Clear(sessionID)
}

func (s *CartService) TotalItemCount(sessionID string) int {
	return s.carts.TotalItemCount(sessionID)
}

// BuildEnquiryLink serializes the cart into a WhatsApp deep link: one
// line per item with title, pack size and quantity. One-way export, no
// response expected.
func (s *CartService) BuildEnquiryLink(sessionID string) (string, error) {
	cart := s.carts.Get(sessionID)
	if len(cart.Items) == 0 {
		return "", ErrCartEmpty
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s! I am interested in the following products:\n\n", s.cfg.Company.Name)
	for i, item := range cart.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- *%s* (%s) x %d", item.Title, item.PackSize, item.Quantity)
	}
	b.WriteString("\n\nPlease provide me with a quotation and availability.")

	query := url.Values{}
	query.Set("text", b.String())

	return fmt.Sprintf("https://wa.me/%s?%s", s.cfg.Company.WhatsAppNumber, query.Encode()), nil
}
