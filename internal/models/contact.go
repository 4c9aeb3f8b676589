// internal/models/contact.go
package models

import "time"

// ContactEnquiry is a message submitted through the contact form.
type ContactEnquiry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Location   string    `json:"location"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}
