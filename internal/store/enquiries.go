// internal/store/enquiries.go
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rmagrichem/agrichem-backend/internal/models"
)

// Enquiries keeps contact-form submissions for the admin panel,
// newest first.
type Enquiries struct {
	mu      sync.RWMutex
	entries []models.ContactEnquiry
}

func NewEnquiries() *Enquiries {
	return &Enquiries{}
}

// Record stores the enquiry with a fresh id and returns it.
func (e *Enquiries) Record(enquiry models.ContactEnquiry) models.ContactEnquiry {
	enquiry.ID = uuid.NewString()
	enquiry.ReceivedAt = time.Now()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = append([]models.ContactEnquiry{enquiry}, e.entries...)

	return enquiry
}

// List returns a copy of all recorded enquiries, newest first.
func (e *Enquiries) List() []models.ContactEnquiry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]models.ContactEnquiry, len(e.entries))
	copy(out, e.entries)
	return out
}

// Len reports the number of recorded enquiries.
func (e *Enquiries) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.entries)
}
