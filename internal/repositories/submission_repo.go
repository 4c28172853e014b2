package repositories

import "regform/internal/models"

// SubmissionRepository defines the interface for submission data access.
// Records are immutable: there is no update or delete.
type SubmissionRepository interface {
	Create(submission *models.Submission) error
	GetByID(id string) (*models.Submission, error)
}
