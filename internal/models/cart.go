// internal/models/cart.go
package models

import "time"

// CartItem is a point-in-time copy of a Product plus a desired quantity.
// It deliberately does not track later catalog edits or deletes.
type CartItem struct {
	Product
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

// Cart is one shopper's enquiry list, keyed by an opaque session id.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TotalItemCount sums quantities across all items, for display badges.
func (c *Cart) TotalItemCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}
