// internal/services/contact_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rmagrichem/agrichem-backend/internal/config"
	"github.com/rmagrichem/agrichem-backend/internal/models"
	"github.com/rmagrichem/agrichem-backend/internal/store"
	"github.com/rmagrichem/agrichem-backend/internal/utils"
)

// ContactService records contact-form enquiries and notifies the sales
// inbox. The email collaborator failing never fails the submission.
type ContactService struct {
	enquiries    *store.Enquiries
	notification *NotificationService
	cfg          *config.Config
}

type ContactRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7,max=20"`
	Location string `json:"location,omitempty" validate:"omitempty,max=255"`
	Message  string `json:"message" validate:"required,min=10"`
}

func NewContactService(enquiries *store.Enquiries, notification *NotificationService, cfg *config.Config) *ContactService {
	return &ContactService{
		enquiries:    enquiries,
		notification: notification,
		cfg:          cfg,
	}
}

func (s *ContactService) Submit(req *ContactRequest) (models.ContactEnquiry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.ContactEnquiry{}, fmt.Errorf("validation failed: %w", err)
	}

	enquiry := s.enquiries.Record(models.ContactEnquiry{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		Message:  req.Message,
	})

	// Notify sales asynchronously; a mail failure stays an internal log line.
	go func(e models.ContactEnquiry) {
		if err := s.notification.SendEnquiryNotification(&e); err != nil {
			logrus.WithError(err).WithField("enquiry_id", e.ID).Error("Failed to send enquiry notification")
		}
	}(enquiry)

	return enquiry, nil
}

func (s *ContactService) ListEnquiries() []models.ContactEnquiry {
	return s.enquiries.List()
}
