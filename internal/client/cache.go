// Package client holds the session-local side of the contact manager: an
// in-memory contact cache the form edits without any round trips, and a
// list view bound to the server API. The cache is deliberately independent
// of the server's soft-delete state; "deleting" here moves an entry into a
// separate deleted list and never talks to the store.
package client

import (
	"sort"
	"strings"
	"time"

	"contact-manager-api/internal/validation"
)

type Entry struct {
	ID int64
	validation.Record
}

// FormState is the whole state of the form at one point in time; cache
// operations take it by value and return the next state.
type FormState struct {
	Record    validation.Record
	Errors    map[string]string
	EditIndex int
	Preview   string
}

func NewFormState() FormState {
	return FormState{EditIndex: -1}
}

type Cache struct {
	contacts []Entry
	deleted  []Entry
	lastID   int64
}

func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) Contacts() []Entry {
	out := make([]Entry, len(c.contacts))
	copy(out, c.contacts)
	return out
}

func (c *Cache) Deleted() []Entry {
	out := make([]Entry, len(c.deleted))
	copy(out, c.deleted)
	return out
}

// Submit validates the record and either appends it or, when EditIndex is
// set, replaces that entry keeping its original id. The returned state is
// reset on success and carries field errors otherwise.
func (c *Cache) Submit(st FormState) FormState {
	if errs := validation.Validate(st.Record); errs != nil {
		st.Errors = errs
		return st
	}

	if st.EditIndex >= 0 && st.EditIndex < len(c.contacts) {
		id := c.contacts[st.EditIndex].ID
		c.contacts[st.EditIndex] = Entry{ID: id, Record: st.Record}
	} else {
		c.contacts = append(c.contacts, Entry{ID: c.nextID(), Record: st.Record})
	}

	return NewFormState()
}

// StartEdit loads the entry at index back into the form.
func (c *Cache) StartEdit(st FormState, index int) FormState {
	if index < 0 || index >= len(c.contacts) {
		return st
	}

	e := c.contacts[index]
	st.Record = e.Record
	st.Preview = e.Picture
	st.EditIndex = index
	st.Errors = nil

	return st
}

// SetPicture gates a picked file before it enters form state.
func (c *Cache) SetPicture(st FormState, path, mimeType string, sizeBytes int64) FormState {
	if msg := validation.ValidatePicture(mimeType, sizeBytes); msg != "" {
		if st.Errors == nil {
			st.Errors = make(map[string]string)
		}
		st.Errors["picture"] = msg
		return st
	}

	st.Record.Picture = path
	st.Preview = path
	delete(st.Errors, "picture")

	return st
}

// Delete moves the entry with the given id into the deleted list.
func (c *Cache) Delete(id int64) bool {
	for i, e := range c.contacts {
		if e.ID == id {
			c.deleted = append(c.deleted, e)
			c.contacts = append(c.contacts[:i], c.contacts[i+1:]...)
			return true
		}
	}
	return false
}

// Recover moves the first deleted entry whose phone number matches back
// into the contact list. Matching is by phone, not id, so if two deleted
// entries share a number only the earliest one comes back.
func (c *Cache) Recover(phone string) (Entry, bool) {
	phone = strings.TrimSpace(phone)
	for i, e := range c.deleted {
		if strings.TrimSpace(e.Contact) == phone {
			c.contacts = append(c.contacts, e)
			c.deleted = append(c.deleted[:i], c.deleted[i+1:]...)
			return e, true
		}
	}
	return Entry{}, false
}

// Sort reorders the contact list in place by the given field; birthday
// compares as a date, everything else as a case-sensitive string.
func (c *Cache) Sort(key string) {
	if key == "birthday" {
		sort.SliceStable(c.contacts, func(i, j int) bool {
			a, _ := time.Parse(validation.DateLayout, c.contacts[i].Birthday)
			b, _ := time.Parse(validation.DateLayout, c.contacts[j].Birthday)
			return a.Before(b)
		})
		return
	}

	sort.SliceStable(c.contacts, func(i, j int) bool {
		return fieldValue(c.contacts[i].Record, key) < fieldValue(c.contacts[j].Record, key)
	})
}

func fieldValue(r validation.Record, key string) string {
	switch key {
	case "lastName":
		return r.LastName
	case "contact":
		return r.Contact
	case "email":
		return r.Email
	default:
		return r.FirstName
	}
}

// nextID is timestamp based the way the original form generated ids, bumped
// when two entries land on the same millisecond.
func (c *Cache) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return id
}
