package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DOBLayout is the only accepted wire format for dates of birth.
const DOBLayout = "2006-01-02"

var (
	mobileRegex  = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
	gstinRegex   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)

	lowerRegex = regexp.MustCompile(`[a-z]`)
	upperRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex = regexp.MustCompile(`\d`)
)

var genders = map[string]bool{
	"male":              true,
	"female":            true,
	"prefer not to say": true,
}

var govtIDTypes = map[string]bool{
	"Aadhar":          true,
	"PAN":             true,
	"Driving License": true,
	"Passport":        true,
}

// FieldError is one entry of the structured validation error list
// returned to clients.
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

// fieldMessages maps a wire field name to its human-readable failure
// message. One message per field: the first violated rule wins and the
// caller never sees which rule it was.
var fieldMessages = map[string]string{
	"name":            "Name must be at least 3 characters long",
	"email":           "Please provide a valid email address",
	"phone":           "Invalid phone number",
	"gender":          "Select a valid gender",
	"dob":             "You must be at least 18 years old",
	"address":         "Address must be at least 5 characters",
	"pincode":         "Invalid pincode",
	"govtIdType":      "Invalid Govt ID Type",
	"govtIdNumber":    "Enter a valid ID number",
	"gstNo":           "Invalid GSTIN format",
	"password":        "Password must include uppercase, lowercase, and number",
	"confirmPassword": "Passwords do not match",
}

// New builds the server copy of the field rule set: a validator
// configured with the registration-specific rules and reporting wire
// field names (json tags) rather than Go struct names.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobileRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincodeRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		return gstinRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return genders[fl.Field().String()]
	})
	v.RegisterValidation("govtid", func(fl validator.FieldLevel) bool {
		return govtIDTypes[fl.Field().String()]
	})
	v.RegisterValidation("pwdclass", func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	})
	v.RegisterValidation("adult", func(fl validator.FieldLevel) bool {
		return Adult(fl.Field().String(), time.Now())
	})

	return v
}

// StrongPassword reports whether s is at least 6 characters and
// contains a lowercase letter, an uppercase letter, and a digit.
func StrongPassword(s string) bool {
	return len(s) >= 6 &&
		lowerRegex.MatchString(s) &&
		upperRegex.MatchString(s) &&
		digitRegex.MatchString(s)
}

// Adult reports whether dob parses as a calendar date and the person is
// at least 18 years old at now. The boundary is inclusive: an 18th
// birthday falling on now's date passes.
func Adult(dob string, now time.Time) bool {
	d, err := time.Parse(DOBLayout, dob)
	if err != nil {
		return false
	}
	cutoff := now.AddDate(-18, 0, 0)
	return !d.After(cutoff)
}

// Errors converts a validator error into the structured {param, msg}
// list of the API contract. All failing fields are reported; each field
// carries its fixed message regardless of which rule tripped first.
func Errors(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Param: "", Msg: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		msg, ok := fieldMessages[e.Field()]
		if !ok {
			msg = fmt.Sprintf("Invalid value for %s", e.Field())
		}
		out = append(out, FieldError{Param: e.Field(), Msg: msg})
	}
	return out
}
