// Package validation holds the field rules a contact record must pass
// before it is accepted into form state. All checks are pure; the result
// maps field name to a human-readable message, nil meaning valid.
package validation

import (
	"regexp"
	"strings"
	"time"
)

const (
	maxCombinedNameLen = 50
	MaxPictureBytes    = 2 << 20 // 2 MiB

	DateLayout = "2006-01-02"
)

var (
	nameRe    = regexp.MustCompile(`^[A-Z][a-z]*$`)
	phoneRe   = regexp.MustCompile(`^\+91\d{10}$`)
	allZeroRe = regexp.MustCompile(`^\+910{10}$`)
	badLeadRe = regexp.MustCompile(`^\+91[12]`)
	emailRe   = regexp.MustCompile(`^[\w.-]+@[a-zA-Z\d.-]+\.[a-zA-Z]{2,}$`)
)

// Record is a candidate contact as entered into the form, all fields raw
// strings the way they arrive from input widgets.
type Record struct {
	FirstName string
	LastName  string
	Contact   string
	Birthday  string
	Email     string
	Picture   string
}

func Validate(r Record) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.FirstName) == "" {
		errs["firstName"] = "first name is required"
	} else if !nameRe.MatchString(r.FirstName) {
		errs["firstName"] = "first letter must be capital, only alphabets allowed"
	}

	if strings.TrimSpace(r.LastName) == "" {
		errs["lastName"] = "last name is required"
	} else if !nameRe.MatchString(r.LastName) {
		errs["lastName"] = "first letter must be capital, only alphabets allowed"
	}

	if len(r.FirstName)+len(r.LastName) > maxCombinedNameLen {
		if _, ok := errs["firstName"]; !ok {
			errs["firstName"] = "total name length must be <= 50 characters"
		}
		if _, ok := errs["lastName"]; !ok {
			errs["lastName"] = "total name length must be <= 50 characters"
		}
	}

	switch {
	case strings.TrimSpace(r.Contact) == "":
		errs["contact"] = "contact number is required"
	case !phoneRe.MatchString(r.Contact):
		errs["contact"] = "must be +91 followed by 10 digits"
	case allZeroRe.MatchString(r.Contact):
		errs["contact"] = "contact cannot be all zeros"
	case badLeadRe.MatchString(r.Contact):
		errs["contact"] = "number cannot start with 1 or 2 after +91"
	}

	if strings.TrimSpace(r.Birthday) == "" {
		errs["birthday"] = "birthday is required"
	} else if bday, err := time.Parse(DateLayout, r.Birthday); err != nil {
		errs["birthday"] = "must be YYYY-MM-DD"
	} else if bday.After(time.Now()) {
		errs["birthday"] = "birthday cannot be in the future"
	}

	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "email is required"
	} else if !emailRe.MatchString(r.Email) {
		errs["email"] = "invalid email address"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidatePicture gates a picked file before it enters form state.
// Returns an empty string when the pick is acceptable.
func ValidatePicture(mimeType string, sizeBytes int64) string {
	if mimeType != "image/jpeg" && mimeType != "image/png" {
		return "only JPG or PNG allowed"
	}
	if sizeBytes > MaxPictureBytes {
		return "max size is 2MB"
	}
	return ""
}
