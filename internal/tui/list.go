package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"contact-manager-api/internal/client"
)

type refreshedMsg struct {
	err error
}

type actionDoneMsg struct {
	notice string
	err    error
}

// listModel is the server-backed tab: it renders the active contacts the
// store knows about and issues delete/recover calls against the API.
type listModel struct {
	view *client.ListView

	cursor int
	notice string
}

func newListModel(view *client.ListView) listModel {
	return listModel{view: view}
}

func (m listModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshedMsg:
		if msg.err != nil {
			m.notice = errorStyle.Render("server unreachable, showing last known list")
		} else {
			m.notice = ""
		}
		m.cursor = m.clampCursor()
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.notice = errorStyle.Render(msg.notice + " failed")
		} else {
			m.notice = successStyle.Render(msg.notice)
		}
		m.cursor = m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if n := len(m.view.Contacts()); n > 0 && m.cursor < n-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "r":
			m.notice = mutedStyle.Render("refreshing...")
			return m, m.refreshCmd()
		case "s":
			m.view.ToggleSort()
		case "d":
			return m.deleteSelected()
		case "R":
			view := m.view
			return m, func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				return actionDoneMsg{notice: "all deleted contacts recovered", err: view.RecoverAll(ctx)}
			}
		}
	}

	return m, nil
}

func (m listModel) deleteSelected() (listModel, tea.Cmd) {
	contacts := m.view.Contacts()
	if m.cursor >= len(contacts) {
		return m, nil
	}

	id := contacts[m.cursor].ID
	view := m.view
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return actionDoneMsg{notice: "contact marked as deleted", err: view.Delete(ctx, id)}
	}
}

func (m listModel) clampCursor() int {
	if n := len(m.view.Contacts()); m.cursor >= n {
		if n == 0 {
			return 0
		}
		return n - 1
	}
	return m.cursor
}

func (m listModel) refreshCmd() tea.Cmd {
	view := m.view
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return refreshedMsg{err: view.Refresh(ctx)}
	}
}

func (m listModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Contact List") + "\n\n")

	contacts := m.view.Contacts()
	if len(contacts) == 0 {
		b.WriteString(mutedStyle.Render("no active contacts") + "\n")
	}
	for i, c := range contacts {
		line := fmt.Sprintf("%-12s %-12s %-14s %-11s %s",
			c.FirstName, c.LastName, c.Phone, c.Birthday, c.Email)
		if c.Picture != "" {
			line += "  " + accentStyle.Render("[photo]")
		}
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
		"j/k select · r refresh · s sort · d delete · R recover all · ctrl+t form view · ctrl+c quit"))

	return b.String()
}
