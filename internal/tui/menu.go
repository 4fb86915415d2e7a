// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// menuEntry binds a visible action label to the page it opens.
type menuEntry struct {
	label string
	page  string
}

type MenuModel struct {
	entries []menuEntry
	idx     int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		entries: []menuEntry{
			{label: "Examine envelope", page: "envelope"},
			{label: "Examine media file", page: "media"},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case "enter":
		target := m.entries[m.idx].page
		return m, func() tea.Msg { return NavigateTo{Page: target} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	labelWidth := lipgloss.Width("Action")
	for _, entry := range m.entries {
		if w := lipgloss.Width(entry.label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", "ID", labelWidth, "Action"))
	b.WriteString(strings.Repeat("─", 4) + "─┼─" + strings.Repeat("─", labelWidth) + "\n")

	for i, entry := range m.entries {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", fmt.Sprintf("%s %d", cursor, i+1), labelWidth, entry.label))
	}

	return renderPage("ENVELOPE DOCTOR", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version")
}
