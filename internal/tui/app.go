// Package tui is the terminal client: a form tab working against the
// session-local cache and a list tab bound to the server API.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"contact-manager-api/internal/client"
)

const (
	tabForm = iota
	tabList
)

type Model struct {
	tab  int
	form formModel
	list listModel
}

func New(api *client.APIClient, view *client.ListView) Model {
	return Model{
		form: newFormModel(api),
		list: newListModel(view),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.list.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			m.tab = (m.tab + 1) % 2
			if m.tab == tabList {
				return m, m.list.refreshCmd()
			}
			return m, nil
		}

		var cmd tea.Cmd
		if m.tab == tabForm {
			m.form, cmd = m.form.Update(msg)
		} else {
			m.list, cmd = m.list.Update(msg)
		}
		return m, cmd
	}

	// Everything else (ticks, completed commands) fans out to both tabs so
	// a background save still lands while the other tab is showing.
	var formCmd, listCmd tea.Cmd
	m.form, formCmd = m.form.Update(msg)
	m.list, listCmd = m.list.Update(msg)
	return m, tea.Batch(formCmd, listCmd)
}

func (m Model) View() string {
	tabs := tabActiveStyle.Render(" Form ") + " " + tabInactiveStyle.Render(" List ")
	if m.tab == tabList {
		tabs = tabInactiveStyle.Render(" Form ") + " " + tabActiveStyle.Render(" List ")
	}

	body := m.form.View()
	if m.tab == tabList {
		body = m.list.View()
	}

	return tabs + "\n\n" + body + "\n"
}
