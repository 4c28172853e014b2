package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regform/internal/models"
)

// GORMSubmissionRepository is a GORM implementation of SubmissionRepository.
type GORMSubmissionRepository struct {
	db *gorm.DB
}

// NewGORMSubmissionRepository creates a new instance of GORMSubmissionRepository.
func NewGORMSubmissionRepository(db *gorm.DB) *GORMSubmissionRepository {
	return &GORMSubmissionRepository{
		db: db,
	}
}

// Create inserts a new submission record. The insert is a single
// statement; a failure leaves no partial record behind.
func (r *GORMSubmissionRepository) Create(submission *models.Submission) error {
	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	if err := r.db.Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

// GetByID retrieves a submission by its ID from the database.
func (r *GORMSubmissionRepository) GetByID(id string) (*models.Submission, error) {
	var submission models.Submission
	if err := r.db.First(&submission, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("submission with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get submission by ID %s: %w", id, err)
	}
	return &submission, nil
}
