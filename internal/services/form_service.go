package services

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"regform/internal/models"
	"regform/internal/repositories"
)

// EventPublisher publishes accepted-submission events. *rabbitmq.Client
// satisfies it; a nil publisher disables publishing.
type EventPublisher interface {
	PublishSubmissionAccepted(event map[string]interface{}) error
}

// FormService builds and persists submission records from validated
// registration requests.
type FormService struct {
	submissionRepo repositories.SubmissionRepository
	publisher      EventPublisher
}

// NewFormService creates a new FormService. publisher may be nil.
func NewFormService(submissionRepo repositories.SubmissionRepository, publisher EventPublisher) *FormService {
	return &FormService{
		submissionRepo: submissionRepo,
		publisher:      publisher,
	}
}

// SubmitBasic persists a validated basic registration and returns the
// stored record.
func (s *FormService) SubmitBasic(req *models.BasicRegistration) (*models.Submission, error) {
	submission := &models.Submission{
		ID:        uuid.New().String(),
		Variant:   models.VariantBasic,
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now(),
	}
	return s.store(submission, req.Password)
}

// SubmitSeller persists a validated seller registration together with
// the metadata of its stored ID proof. ConfirmPassword is dropped here;
// it exists only for validation.
func (s *FormService) SubmitSeller(req *models.SellerRegistration, idProof models.AttachmentMeta) (*models.Submission, error) {
	submission := &models.Submission{
		ID:           uuid.New().String(),
		Variant:      models.VariantSeller,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Gender:       req.Gender,
		DOB:          req.DOB,
		Address:      req.Address,
		Pincode:      req.Pincode,
		GovtIDType:   req.GovtIDType,
		GovtIDNumber: req.GovtIDNumber,
		GSTNo:        req.GSTNo,
		IDProof:      idProof,
		CreatedAt:    time.Now(),
	}
	return s.store(submission, req.Password)
}

// store hashes the password, inserts the record, and publishes the
// acceptance event. Publish failures are logged and never surfaced: the
// record is already durable at that point.
func (s *FormService) store(submission *models.Submission, password string) (*models.Submission, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	submission.Password = string(hashedPassword)

	if err := s.submissionRepo.Create(submission); err != nil {
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"submissionID": submission.ID,
			"variant":      submission.Variant,
			"email":        submission.Email,
			"createdAt":    submission.CreatedAt.Format(time.RFC3339),
		}
		if err := s.publisher.PublishSubmissionAccepted(event); err != nil {
			log.Printf("Warning: failed to publish submission accepted event for %s: %v", submission.ID, err)
		}
	} else {
		log.Println("Event publisher is not configured. Skipping message publication.")
	}

	return submission, nil
}
