package contact

import (
	"time"
)

type (
	ID      int64
	Contact struct {
		ID        ID
		FirstName string
		LastName  string
		Phone     string
		Birthday  time.Time
		Email     string
		Picture   string

		IsDeleted bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Contacts []*Contact
)
