package contact

import (
	"context"
)

type Repository interface {
	FetchActive(ctx context.Context) (Contacts, error)
	CreateContact(ctx context.Context, req Contact) (*Contact, error)
	SoftDeleteContact(ctx context.Context, id ID) error
	RecoverAllContacts(ctx context.Context) error
	RecoverContact(ctx context.Context, id ID) error
}
