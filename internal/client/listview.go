package client

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// ListView mirrors the server's active-contact view for display. Sorting is
// display-only; the server keeps its own id-descending order. Refresh runs
// off the UI goroutine, so all list state sits behind the mutex.
type ListView struct {
	api    *APIClient
	logger *zap.Logger

	mu       sync.Mutex
	contacts []Contact
	desc     bool
}

func NewListView(api *APIClient, logger *zap.Logger) *ListView {
	return &ListView{api: api, logger: logger}
}

// Refresh replaces the display list with the server's active view. On
// failure the current list stays as it was and the caller retries manually.
func (v *ListView) Refresh(ctx context.Context) error {
	cs, err := v.api.FetchContacts(ctx)
	if err != nil {
		v.logger.Error("error fetching contacts", zap.Error(err))
		return err
	}

	v.mu.Lock()
	v.contacts = cs
	v.mu.Unlock()
	return nil
}

func (v *ListView) ToggleSort() {
	v.mu.Lock()
	v.desc = !v.desc
	v.mu.Unlock()
}

// Contacts returns the display list ordered by firstName in the current
// direction.
func (v *ListView) Contacts() []Contact {
	v.mu.Lock()
	out := make([]Contact, len(v.contacts))
	copy(out, v.contacts)
	desc := v.desc
	v.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return out[j].FirstName < out[i].FirstName
		}
		return out[i].FirstName < out[j].FirstName
	})

	return out
}

func (v *ListView) Delete(ctx context.Context, id int64) error {
	if err := v.api.DeleteContact(ctx, id); err != nil {
		v.logger.Error("error deleting contact", zap.Error(err))
		return err
	}
	return v.Refresh(ctx)
}

func (v *ListView) RecoverAll(ctx context.Context) error {
	if err := v.api.RecoverAll(ctx); err != nil {
		v.logger.Error("error recovering contacts", zap.Error(err))
		return err
	}
	return v.Refresh(ctx)
}
