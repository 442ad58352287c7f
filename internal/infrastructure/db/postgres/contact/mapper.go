package contact

import (
	domain "contact-manager-api/internal/domain/contact"
)

func fromDBModel(model *Contact) *domain.Contact {
	var c = &domain.Contact{
		ID:        domain.ID(model.ID),
		FirstName: model.FirstName,
		Phone:     model.Phone,
		Birthday:  model.Birthday,
		Email:     model.Email,

		IsDeleted: model.IsDeleted,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	if model.LastName != nil {
		c.LastName = *model.LastName
	}
	if model.Picture != nil {
		c.Picture = *model.Picture
	}

	return c
}

func fromDBModels(models *Contacts) domain.Contacts {
	cs := make(domain.Contacts, len(*models))
	for idx, c := range *models {
		cs[idx] = fromDBModel(c)
	}

	return cs
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
