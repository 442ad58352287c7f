package contact

import (
	"time"
)

type (
	Contact struct {
		ID        int64
		FirstName string
		LastName  *string
		Phone     string
		Birthday  time.Time
		Email     string
		Picture   *string

		IsDeleted bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Contacts []*Contact
)
