package contact

import (
	"errors"
	"time"

	domain "contact-manager-api/internal/domain/contact"
	"contact-manager-api/internal/validation"
)

func ToResponseContact(cDomain domain.Contact) Contact {
	var c = Contact{
		ID:        int64(cDomain.ID),
		FirstName: cDomain.FirstName,
		LastName:  cDomain.LastName,
		Phone:     cDomain.Phone,
		Birthday:  cDomain.Birthday.Format(validation.DateLayout),
		Email:     cDomain.Email,
		Picture:   cDomain.Picture,
		IsDeleted: cDomain.IsDeleted,
	}

	return c
}

func ToResponseContacts(csDomain domain.Contacts) Contacts {
	cs := make(Contacts, len(csDomain))
	for idx, c := range csDomain {
		cs[idx] = ToResponseContact(*c)
	}

	return cs
}

func ToDomainContact(req CreateRequest) (domain.Contact, error) {
	d, err := time.Parse(validation.DateLayout, req.Birthday)
	if err != nil {
		return domain.Contact{}, errors.New("invalid birthday format, want YYYY-MM-DD")
	}

	var c = domain.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Contact,
		Birthday:  d,
		Email:     req.Email,
	}

	return c, nil
}
