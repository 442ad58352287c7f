package ports

import (
	"context"

	"contact-manager-api/internal/domain/contact"
)

type ContactService interface {
	ListActive(ctx context.Context) (contact.Contacts, error)
	Create(ctx context.Context, c contact.Contact) (*contact.Contact, error)
	SoftDelete(ctx context.Context, id contact.ID) error
	RecoverAll(ctx context.Context) error
	RecoverOne(ctx context.Context, id contact.ID) error
}
