package formclient

import (
	"regexp"
	"time"
)

// fieldRule is one entry of the client-side rule table: a field name, a
// predicate on the raw value, and the message shown when it fails. One
// message per field; the first violated rule wins.
type fieldRule struct {
	field   string
	valid   func(value string) bool
	message string
}

var (
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileRegex  = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
	gstinRegex   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)

	lowerRegex = regexp.MustCompile(`[a-z]`)
	upperRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex = regexp.MustCompile(`\d`)
)

func minLen(n int) func(string) bool {
	return func(value string) bool { return len(value) >= n }
}

func matches(re *regexp.Regexp) func(string) bool {
	return func(value string) bool { return re.MatchString(value) }
}

func oneOf(values ...string) func(string) bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return func(value string) bool { return set[value] }
}

func strongPassword(value string) bool {
	return len(value) >= 6 &&
		lowerRegex.MatchString(value) &&
		upperRegex.MatchString(value) &&
		digitRegex.MatchString(value)
}

// adult reports whether value is a YYYY-MM-DD date at least 18 years in
// the past. The boundary is inclusive: an 18th birthday today passes.
func adult(value string) bool {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return false
	}
	return !d.After(time.Now().AddDate(-18, 0, 0))
}

// basicRules is the rule table of the basic registration form.
var basicRules = []fieldRule{
	{"name", minLen(3), "Name must be at least 3 characters"},
	{"email", matches(emailRegex), "Invalid email address"},
	{"password", strongPassword, "Password must include at least one uppercase letter, one lowercase letter, and one number"},
}

// sellerRules is the rule table of the seller registration form. The
// confirmPassword equality check is a cross-field rule and runs as a
// separate pass after these.
var sellerRules = []fieldRule{
	{"name", minLen(3), "Name must be at least 3 characters"},
	{"email", matches(emailRegex), "Invalid email address"},
	{"phone", matches(mobileRegex), "Invalid phone number"},
	{"gender", oneOf("male", "female", "prefer not to say"), "Select a valid gender"},
	{"dob", adult, "You must be at least 18 years old"},
	{"address", minLen(5), "Address must be at least 5 characters"},
	{"pincode", matches(pincodeRegex), "Invalid pincode"},
	{"govtIdType", oneOf("Aadhar", "PAN", "Driving License", "Passport"), "Invalid Govt ID Type"},
	{"govtIdNumber", minLen(5), "Enter a valid ID number"},
	{"gstNo", matches(gstinRegex), "Invalid GSTIN format"},
	{"password", strongPassword, "Password must include at least one uppercase letter, one lowercase letter, and one number"},
}
