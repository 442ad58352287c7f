package ports

import (
	"context"

	"contact-manager-api/internal/domain/contact"
)

// ListCache mirrors the active contact list; misses and failures are soft,
// the store stays the source of truth.
type ListCache interface {
	GetActive(ctx context.Context) (contact.Contacts, bool)
	SetActive(ctx context.Context, cs contact.Contacts) error
	Invalidate(ctx context.Context) error
}
