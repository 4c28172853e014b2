package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"regform/internal/models"
	"regform/internal/services"
	"regform/internal/storage"
	"regform/internal/validation"
)

// FormHandler handles HTTP requests for form submissions.
type FormHandler struct {
	formService *services.FormService
	attachments *storage.AttachmentStore
	validate    *validator.Validate
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(formService *services.FormService, attachments *storage.AttachmentStore) *FormHandler {
	return &FormHandler{
		formService: formService,
		attachments: attachments,
		validate:    validation.New(),
	}
}

// RegisterRoutes registers the form routes with the Fiber app.
func (h *FormHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/form", h.HandleSubmit)
}

// HandleSubmit accepts a registration. A multipart body is the seller
// variant with an idProof file part; a JSON body is the basic variant.
func (h *FormHandler) HandleSubmit(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return h.handleSeller(c)
	}
	return h.handleBasic(c)
}

// handleBasic processes the JSON basic variant {name, email, password}.
func (h *FormHandler) handleBasic(c *fiber.Ctx) error {
	var req models.BasicRegistration
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing form request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validation.Errors(err),
		})
	}

	if _, err := h.formService.SubmitBasic(&req); err != nil {
		log.Printf("Error storing submission: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Form submitted",
	})
}

// handleSeller processes the multipart seller variant. The idProof file
// is extracted and stored before the field rules run, so a missing or
// empty attachment is reported on its own, ahead of field errors.
func (h *FormHandler) handleSeller(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("idProof")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID proof file is required",
		})
	}

	idProof, err := h.attachments.SaveUpload(fileHeader)
	if err != nil {
		if errors.Is(err, storage.ErrMissingAttachment) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "ID proof file is required",
			})
		}
		log.Printf("Error storing attachment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	req := models.SellerRegistration{
		Name:            c.FormValue("name"),
		Email:           c.FormValue("email"),
		Phone:           c.FormValue("phone"),
		Gender:          c.FormValue("gender"),
		DOB:             c.FormValue("dob"),
		Address:         c.FormValue("address"),
		Pincode:         c.FormValue("pincode"),
		GovtIDType:      c.FormValue("govtIdType"),
		GovtIDNumber:    c.FormValue("govtIdNumber"),
		GSTNo:           c.FormValue("gstNo"),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirmPassword"),
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validation.Errors(err),
		})
	}

	if _, err := h.formService.SubmitSeller(&req, idProof); err != nil {
		log.Printf("Error storing submission: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Form submitted",
	})
}
