package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-manager-api/internal/validation"
)

func record(first, phone, bday string) validation.Record {
	return validation.Record{
		FirstName: first,
		LastName:  "Kumar",
		Contact:   phone,
		Birthday:  bday,
		Email:     "x@example.com",
	}
}

func mustAdd(t *testing.T, c *Cache, r validation.Record) Entry {
	t.Helper()
	st := NewFormState()
	st.Record = r
	st = c.Submit(st)
	require.Empty(t, st.Errors)
	contacts := c.Contacts()
	return contacts[len(contacts)-1]
}

func TestCache_SubmitAdd(t *testing.T) {
	c := NewCache()

	st := NewFormState()
	st.Record = record("Ravi", "+919812345678", "1990-01-01")
	st = c.Submit(st)

	assert.Empty(t, st.Errors)
	assert.Equal(t, -1, st.EditIndex)
	assert.Empty(t, st.Record.FirstName, "form resets after a successful submit")

	contacts := c.Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, "Ravi", contacts[0].FirstName)
	assert.NotZero(t, contacts[0].ID)
}

func TestCache_SubmitInvalidBlocksAndKeepsForm(t *testing.T) {
	c := NewCache()

	st := NewFormState()
	st.Record = record("ravi", "+919812345678", "1990-01-01")
	st = c.Submit(st)

	require.NotEmpty(t, st.Errors)
	assert.Contains(t, st.Errors, "firstName")
	assert.Equal(t, "ravi", st.Record.FirstName, "form keeps the rejected input")
	assert.Empty(t, c.Contacts())
}

func TestCache_UniqueIDs(t *testing.T) {
	c := NewCache()
	a := mustAdd(t, c, record("Ravi", "+919812345678", "1990-01-01"))
	b := mustAdd(t, c, record("Asha", "+919876543210", "1992-05-05"))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCache_EditKeepsID(t *testing.T) {
	c := NewCache()
	orig := mustAdd(t, c, record("Ravi", "+919812345678", "1990-01-01"))

	st := c.StartEdit(NewFormState(), 0)
	require.Equal(t, 0, st.EditIndex)
	require.Equal(t, "Ravi", st.Record.FirstName)

	st.Record.FirstName = "Ram"
	st = c.Submit(st)
	require.Empty(t, st.Errors)

	contacts := c.Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, "Ram", contacts[0].FirstName)
	assert.Equal(t, orig.ID, contacts[0].ID)
}

func TestCache_DeleteThenRecoverByPhone(t *testing.T) {
	c := NewCache()
	x := mustAdd(t, c, record("Ravi", "+919812345678", "1990-01-01"))

	require.True(t, c.Delete(x.ID))
	assert.Empty(t, c.Contacts())
	require.Len(t, c.Deleted(), 1)
	assert.Equal(t, x.ID, c.Deleted()[0].ID)

	got, ok := c.Recover(" +919812345678 ")
	require.True(t, ok)
	assert.Equal(t, x.ID, got.ID)
	assert.Len(t, c.Contacts(), 1)
	assert.Empty(t, c.Deleted())
}

func TestCache_RecoverUnknownPhone(t *testing.T) {
	c := NewCache()
	_, ok := c.Recover("+919812345678")
	assert.False(t, ok)
}

func TestCache_RecoverDuplicatePhoneTakesFirst(t *testing.T) {
	c := NewCache()
	a := mustAdd(t, c, record("Ravi", "+919812345678", "1990-01-01"))
	b := mustAdd(t, c, record("Asha", "+919812345678", "1992-05-05"))

	require.True(t, c.Delete(a.ID))
	require.True(t, c.Delete(b.ID))

	got, ok := c.Recover("+919812345678")
	require.True(t, ok)
	assert.Equal(t, a.ID, got.ID, "first deleted match in list order comes back")
	require.Len(t, c.Deleted(), 1)
	assert.Equal(t, b.ID, c.Deleted()[0].ID)
}

func TestCache_SortByBirthday(t *testing.T) {
	c := NewCache()
	mustAdd(t, c, record("Ravi", "+919812345678", "1995-06-15"))
	mustAdd(t, c, record("Asha", "+919876543210", "1988-02-01"))
	mustAdd(t, c, record("Vikram", "+919555555555", "1992-11-30"))

	c.Sort("birthday")

	got := c.Contacts()
	require.Len(t, got, 3)
	assert.Equal(t, "1988-02-01", got[0].Birthday)
	assert.Equal(t, "1992-11-30", got[1].Birthday)
	assert.Equal(t, "1995-06-15", got[2].Birthday)
}

func TestCache_SortByFirstName(t *testing.T) {
	c := NewCache()
	mustAdd(t, c, record("Ravi", "+919812345678", "1995-06-15"))
	mustAdd(t, c, record("Asha", "+919876543210", "1988-02-01"))
	mustAdd(t, c, record("Vikram", "+919555555555", "1992-11-30"))

	c.Sort("firstName")

	got := c.Contacts()
	require.Len(t, got, 3)
	assert.Equal(t, "Asha", got[0].FirstName)
	assert.Equal(t, "Ravi", got[1].FirstName)
	assert.Equal(t, "Vikram", got[2].FirstName)
}

func TestCache_SetPicture(t *testing.T) {
	c := NewCache()
	st := NewFormState()

	st = c.SetPicture(st, "me.gif", "image/gif", 100)
	assert.Equal(t, "only JPG or PNG allowed", st.Errors["picture"])
	assert.Empty(t, st.Record.Picture, "rejected pick never enters form state")

	st = c.SetPicture(st, "me.png", "image/png", 100)
	assert.NotContains(t, st.Errors, "picture")
	assert.Equal(t, "me.png", st.Record.Picture)
	assert.Equal(t, "me.png", st.Preview)

	st = c.SetPicture(st, "big.png", "image/png", validation.MaxPictureBytes+1)
	assert.Equal(t, "max size is 2MB", st.Errors["picture"])
	assert.Equal(t, "me.png", st.Record.Picture, "previous picture survives a rejected pick")
}
