package contact

type (
	Contact struct {
		ID        int64  `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName,omitempty"`
		Phone     string `json:"contact"`
		Birthday  string `json:"birthday"`
		Email     string `json:"email"`
		Picture   string `json:"picture,omitempty"`
		IsDeleted bool   `json:"isDeleted"`
	}
	Contacts []Contact

	Message struct {
		Message string `json:"message"`
	}
)
