// Package formclient is the client half of the registration pipeline:
// it validates a draft registration locally with its own copy of the
// field rule set and submits it to the form endpoint. The rule table
// here is deliberately independent of the server's validator so the two
// sides stay separately testable; the server remains authoritative.
package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

// Draft variants.
const (
	VariantBasic  = "basic"
	VariantSeller = "seller"
)

// ErrTransport marks failures where no HTTP response arrived at all.
// Callers distinguish it from field errors with errors.Is.
var ErrTransport = errors.New("transport failure")

// Attachment is an in-memory file to be uploaded as the idProof part.
type Attachment struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Draft is the in-memory form state before submission. Validate never
// mutates it; Submit sends it as-is once the caller has validated it.
type Draft struct {
	Variant string // VariantBasic or VariantSeller; empty means basic

	Name            string
	Email           string
	Phone           string
	Gender          string
	DOB             string // YYYY-MM-DD
	Address         string
	Pincode         string
	GovtIDType      string
	GovtIDNumber    string
	GSTNo           string
	Password        string
	ConfirmPassword string
	IDProof         *Attachment
}

func (d *Draft) seller() bool {
	return d.Variant == VariantSeller
}

func (d *Draft) fieldValue(field string) string {
	switch field {
	case "name":
		return d.Name
	case "email":
		return d.Email
	case "phone":
		return d.Phone
	case "gender":
		return d.Gender
	case "dob":
		return d.DOB
	case "address":
		return d.Address
	case "pincode":
		return d.Pincode
	case "govtIdType":
		return d.GovtIDType
	case "govtIdNumber":
		return d.GovtIDNumber
	case "gstNo":
		return d.GSTNo
	case "password":
		return d.Password
	default:
		return ""
	}
}

// Validate runs the full rule table for the draft's variant and returns
// a mapping from field name to failure message covering every failing
// field. An empty map means the draft may be submitted. The cross-field
// confirmPassword check runs after the per-field pass.
func (d *Draft) Validate() map[string]string {
	rules := basicRules
	if d.seller() {
		rules = sellerRules
	}

	errs := make(map[string]string)
	for _, rule := range rules {
		if !rule.valid(d.fieldValue(rule.field)) {
			errs[rule.field] = rule.message
		}
	}

	if d.seller() {
		if d.IDProof == nil || len(d.IDProof.Content) == 0 {
			errs["idProof"] = "ID proof is required"
		}
		if d.ConfirmPassword != d.Password {
			errs["confirmPassword"] = "Passwords do not match"
		}
	}

	return errs
}

// FieldErrors is the server's structured validation verdict, keyed by
// field name. It implements error.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	return fmt.Sprintf("validation failed for fields: %s", strings.Join(fields, ", "))
}

// ServerError is a non-success response carrying a single message, such
// as the missing-attachment rejection or a store failure.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Result is the confirmation payload of an accepted submission. The
// caller is responsible for resetting its draft state on success.
type Result struct {
	Message string
}

// Client submits drafts to the form endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the server at baseURL, e.g.
// "http://localhost:5000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Submit sends the draft to POST /api/form: JSON for the basic variant,
// multipart with the idProof binary part for the seller variant. It
// returns the confirmation on success, FieldErrors or *ServerError on a
// rejected submission, and an error wrapping ErrTransport when no
// response arrived.
func (c *Client) Submit(ctx context.Context, d *Draft) (*Result, error) {
	var body bytes.Buffer
	var contentType string
	var err error

	if d.seller() {
		contentType, err = encodeMultipart(&body, d)
	} else {
		contentType = "application/json"
		err = json.NewEncoder(&body).Encode(map[string]string{
			"name":     d.Name,
			"email":    d.Email,
			"password": d.Password,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/form", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Errors  []struct {
			Param string `json:"param"`
			Msg   string `json:"msg"`
		} `json:"errors"`
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil && resp.StatusCode < 300 {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Result{Message: payload.Message}, nil
	}

	if len(payload.Errors) > 0 {
		fieldErrs := make(FieldErrors, len(payload.Errors))
		for _, fe := range payload.Errors {
			fieldErrs[fe.Param] = fe.Msg
		}
		return nil, fieldErrs
	}

	msg := payload.Error
	if msg == "" {
		msg = payload.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return nil, &ServerError{StatusCode: resp.StatusCode, Message: msg}
}

// encodeMultipart writes the seller fields and the idProof part into w
// and returns the multipart content type.
func encodeMultipart(w *bytes.Buffer, d *Draft) (string, error) {
	mw := multipart.NewWriter(w)

	fields := map[string]string{
		"name":            d.Name,
		"email":           d.Email,
		"phone":           d.Phone,
		"gender":          d.Gender,
		"dob":             d.DOB,
		"address":         d.Address,
		"pincode":         d.Pincode,
		"govtIdType":      d.GovtIDType,
		"govtIdNumber":    d.GovtIDNumber,
		"gstNo":           d.GSTNo,
		"password":        d.Password,
		"confirmPassword": d.ConfirmPassword,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return "", err
		}
	}

	if d.IDProof != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="idProof"; filename="%s"`, d.IDProof.FileName))
		contentType := d.IDProof.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := mw.CreatePart(header)
		if err != nil {
			return "", err
		}
		if _, err := part.Write(d.IDProof.Content); err != nil {
			return "", err
		}
	}

	if err := mw.Close(); err != nil {
		return "", err
	}
	return mw.FormDataContentType(), nil
}
