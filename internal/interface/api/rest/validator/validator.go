package validator

import (
	"errors"
	"strconv"
	"strings"

	"contact-manager-api/internal/interface/api/rest/dto/contact"
)

// ValidateCreateContact checks presence only; format rules run client-side
// before the record is ever submitted.
func ValidateCreateContact(r contact.CreateRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.FirstName) == "" {
		errs["firstName"] = "firstName is required"
	}
	if strings.TrimSpace(r.Contact) == "" {
		errs["contact"] = "contact is required"
	}
	if strings.TrimSpace(r.Birthday) == "" {
		errs["birthday"] = "birthday is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "email is required"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ParseContactID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("contact_id must be a positive integer")
	}
	return id, nil
}
