package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"regform/internal/models"
	"regform/internal/repositories"
	"regform/internal/services"
)

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishSubmissionAccepted(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func TestFormService_SubmitBasic(t *testing.T) {
	repo := repositories.NewMockSubmissionRepository()
	publisher := new(MockEventPublisher)
	publisher.On("PublishSubmissionAccepted", mock.Anything).Return(nil).Once()

	formService := services.NewFormService(repo, publisher)

	req := &models.BasicRegistration{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "Passw0rd",
	}
	submission, err := formService.SubmitBasic(req)
	assert.NoError(t, err)
	assert.NotEmpty(t, submission.ID)
	assert.Equal(t, models.VariantBasic, submission.Variant)
	assert.False(t, submission.CreatedAt.IsZero())

	// Password is stored hashed, never verbatim.
	assert.NotEqual(t, "Passw0rd", submission.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(submission.Password), []byte("Passw0rd")))

	// The record is retrievable by the generated ID.
	stored, err := repo.GetByID(submission.ID)
	assert.NoError(t, err)
	assert.Equal(t, "ravi@example.com", stored.Email)

	publisher.AssertExpectations(t)
}

func TestFormService_SubmitSellerCarriesAttachmentMetadata(t *testing.T) {
	repo := repositories.NewMockSubmissionRepository()
	formService := services.NewFormService(repo, nil) // nil publisher: publishing disabled

	req := &models.SellerRegistration{
		Name:            "Ravi Kumar",
		Email:           "seller@example.com",
		Phone:           "9876543210",
		Gender:          "male",
		DOB:             "1990-05-15",
		Address:         "12 MG Road, Bengaluru",
		Pincode:         "560001",
		GovtIDType:      "PAN",
		GovtIDNumber:    "ABCDE1234F",
		GSTNo:           "29ABCDE1234F1Z5",
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd",
	}
	idProof := models.AttachmentMeta{
		OriginalName: "id-proof.pdf",
		StoredName:   "abc123-id-proof.pdf",
		ContentType:  "application/pdf",
		Size:         10240,
		Path:         "uploads/abc123-id-proof.pdf",
	}

	submission, err := formService.SubmitSeller(req, idProof)
	assert.NoError(t, err)
	assert.Equal(t, models.VariantSeller, submission.Variant)

	stored, err := repo.GetByID(submission.ID)
	assert.NoError(t, err)
	assert.Equal(t, idProof, stored.IDProof)
	assert.Equal(t, "9876543210", stored.Phone)
	assert.Equal(t, "29ABCDE1234F1Z5", stored.GSTNo)
}

func TestFormService_StoreFailure(t *testing.T) {
	repo := repositories.NewMockSubmissionRepository()
	repo.FailCreate = true

	publisher := new(MockEventPublisher)
	formService := services.NewFormService(repo, publisher)

	_, err := formService.SubmitBasic(&models.BasicRegistration{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "Passw0rd",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store submission")

	// No event is published for a submission that was never stored.
	publisher.AssertNotCalled(t, "PublishSubmissionAccepted", mock.Anything)
}

func TestFormService_PublishFailureDoesNotFailSubmission(t *testing.T) {
	repo := repositories.NewMockSubmissionRepository()
	publisher := new(MockEventPublisher)
	publisher.On("PublishSubmissionAccepted", mock.Anything).Return(assert.AnError).Once()

	formService := services.NewFormService(repo, publisher)

	submission, err := formService.SubmitBasic(&models.BasicRegistration{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "Passw0rd",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, submission.ID)
	publisher.AssertExpectations(t)
}
