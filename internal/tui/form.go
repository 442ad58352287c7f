package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"contact-manager-api/internal/client"
)

// Input slots of the form, in focus order. The recover slot drives the
// deleted-contact lookup instead of the record itself.
const (
	fieldFirstName = iota
	fieldLastName
	fieldContact
	fieldBirthday
	fieldEmail
	fieldPicture
	fieldRecover
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"First name", "Last name", "Contact", "Birthday", "Email", "Picture", "Recover by #",
}

var fieldKeys = [fieldCount]string{
	"firstName", "lastName", "contact", "birthday", "email", "picture", "",
}

type savedMsg struct {
	err error
}

type formModel struct {
	cache  *client.Cache
	api    *client.APIClient
	state  client.FormState
	inputs [fieldCount]textinput.Model
	focus  int

	cursor int // selection inside the cached contact list
	notice string
}

func newFormModel(api *client.APIClient) formModel {
	m := formModel{
		cache: client.NewCache(),
		api:   api,
		state: client.NewFormState(),
	}

	placeholders := [fieldCount]string{
		"Ravi", "Kumar", "+91XXXXXXXXXX", "YYYY-MM-DD", "you@example.com",
		"path/to/photo.png", "+91XXXXXXXXXX",
	}
	for i := 0; i < fieldCount; i++ {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = ""
		ti.CharLimit = 64
		m.inputs[i] = ti
	}
	m.inputs[fieldFirstName].Focus()

	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			m.notice = errorStyle.Render("server save failed, contact kept locally only")
		} else {
			m.notice = successStyle.Render("contact saved to server")
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return m.moveFocus(1), nil
		case "shift+tab", "up":
			return m.moveFocus(-1), nil
		case "enter":
			if m.focus == fieldRecover {
				return m.recover(), nil
			}
			return m.submit()
		case "ctrl+j":
			if n := len(m.cache.Contacts()); n > 0 && m.cursor < n-1 {
				m.cursor++
			}
			return m, nil
		case "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "ctrl+e":
			return m.startEdit(), nil
		case "ctrl+d":
			return m.deleteSelected(), nil
		case "ctrl+n":
			m.cache.Sort("firstName")
			m.notice = "sorted by name"
			return m, nil
		case "ctrl+b":
			m.cache.Sort("birthday")
			m.notice = "sorted by birthday"
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) moveFocus(delta int) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	return m
}

// submit runs the full validation, stores the record in the session cache
// and, when that succeeds, posts it to the server in the background.
func (m formModel) submit() (formModel, tea.Cmd) {
	m.state.Record.FirstName = m.inputs[fieldFirstName].Value()
	m.state.Record.LastName = m.inputs[fieldLastName].Value()
	m.state.Record.Contact = m.inputs[fieldContact].Value()
	m.state.Record.Birthday = m.inputs[fieldBirthday].Value()
	m.state.Record.Email = m.inputs[fieldEmail].Value()

	if path := strings.TrimSpace(m.inputs[fieldPicture].Value()); path != "" {
		info, err := os.Stat(path)
		if err != nil {
			m.state.Errors = map[string]string{"picture": "cannot read picture file"}
			return m, nil
		}
		m.state = m.cache.SetPicture(m.state, path, mimeByExt(path), info.Size())
		if _, bad := m.state.Errors["picture"]; bad {
			return m, nil
		}
	}

	rec := m.state.Record
	editing := m.state.EditIndex >= 0
	m.state = m.cache.Submit(m.state)
	if m.state.Errors != nil {
		m.notice = errorStyle.Render("fix the highlighted fields")
		return m, nil
	}

	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.notice = "contact added"
	if editing {
		m.notice = "contact updated"
		return m, nil
	}

	pic := rec.Picture
	api := m.api
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return savedMsg{err: api.CreateContact(ctx, rec, pic)}
	}
}

func (m formModel) startEdit() formModel {
	contacts := m.cache.Contacts()
	if m.cursor >= len(contacts) {
		return m
	}

	m.state = m.cache.StartEdit(m.state, m.cursor)
	m.inputs[fieldFirstName].SetValue(m.state.Record.FirstName)
	m.inputs[fieldLastName].SetValue(m.state.Record.LastName)
	m.inputs[fieldContact].SetValue(m.state.Record.Contact)
	m.inputs[fieldBirthday].SetValue(m.state.Record.Birthday)
	m.inputs[fieldEmail].SetValue(m.state.Record.Email)
	m.inputs[fieldPicture].SetValue(m.state.Record.Picture)
	m.notice = fmt.Sprintf("editing #%d", m.cursor+1)
	return m
}

func (m formModel) deleteSelected() formModel {
	contacts := m.cache.Contacts()
	if m.cursor >= len(contacts) {
		return m
	}

	m.cache.Delete(contacts[m.cursor].ID)
	if m.cursor > 0 {
		m.cursor--
	}
	m.notice = "moved to deleted list"
	return m
}

func (m formModel) recover() formModel {
	phone := m.inputs[fieldRecover].Value()
	if e, ok := m.cache.Recover(phone); ok {
		m.inputs[fieldRecover].SetValue("")
		m.notice = successStyle.Render("recovered " + e.FirstName)
	} else {
		m.notice = errorStyle.Render("no deleted contact found with that contact number")
	}
	return m
}

func (m formModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Add Contact") + "\n\n")

	for i := 0; i < fieldCount; i++ {
		if i == fieldRecover {
			b.WriteString("\n" + titleStyle.Render("Recover Deleted Contact") + "\n")
		}
		b.WriteString(labelStyle.Render(fieldLabels[i]) + m.inputs[i].View() + "\n")
		if msg, ok := m.state.Errors[fieldKeys[i]]; ok && fieldKeys[i] != "" {
			b.WriteString(labelStyle.Render("") + errorStyle.Render(msg) + "\n")
		}
	}

	contacts := m.cache.Contacts()
	b.WriteString("\n" + titleStyle.Render("Saved Contacts") +
		mutedStyle.Render(fmt.Sprintf("  %d saved, %d deleted", len(contacts), len(m.cache.Deleted()))) + "\n")
	for i, e := range contacts {
		line := fmt.Sprintf("%s %s  %s  %s", e.FirstName, e.LastName, e.Contact, e.Birthday)
		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
		}
		b.WriteString(prefix + line + "\n")
	}

	if m.notice != "" {
		b.WriteString("\n" + m.notice + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(
		"tab/↑↓ fields · enter save · ctrl+j/k select · ctrl+e edit · ctrl+d delete · ctrl+n/b sort · ctrl+t list view · ctrl+c quit"))

	return b.String()
}

func mimeByExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
