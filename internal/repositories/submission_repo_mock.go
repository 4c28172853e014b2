package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"regform/internal/models"
)

// MockSubmissionRepository is an in-memory implementation of
// SubmissionRepository, used in tests and local runs without a database.
type MockSubmissionRepository struct {
	submissions map[string]models.Submission
	mu          sync.RWMutex

	// FailCreate forces Create to return an error, for store-failure tests.
	FailCreate bool
}

// NewMockSubmissionRepository creates a new instance of MockSubmissionRepository.
func NewMockSubmissionRepository() *MockSubmissionRepository {
	return &MockSubmissionRepository{
		submissions: make(map[string]models.Submission),
	}
}

// Create adds a new submission.
func (r *MockSubmissionRepository) Create(submission *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailCreate {
		return fmt.Errorf("failed to create submission: store unavailable")
	}
	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	r.submissions[submission.ID] = *submission
	return nil
}

// GetByID returns a submission by its ID.
func (r *MockSubmissionRepository) GetByID(id string) (*models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	submission, ok := r.submissions[id]
	if !ok {
		return nil, fmt.Errorf("submission with ID %s not found", id)
	}
	return &submission, nil
}
