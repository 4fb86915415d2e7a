// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel routes between the console's pages. It owns the global
// hotkeys (ctrl+c quits everywhere, 'v' toggles the version overlay on
// the menu) and replays NavigateTo payloads into the target page.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model
	version string

	quitByUser  bool
	showVersion bool
}

// NewRootModel registers the pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, version string) RootModel {
	return RootModel{
		pages:   pages,
		current: pages[startPage],
		version: version,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if _, onMenu := r.current.(*MenuModel); onMenu {
				r.showVersion = !r.showVersion
				return r, nil
			}
		case "esc":
			if r.showVersion {
				r.showVersion = false
				return r, nil
			}
		}
		// the overlay swallows everything else while visible
		if r.showVersion {
			return r, nil
		}

	case NavigateTo:
		next, exists := r.pages[m.Page]
		if !exists {
			return r, nil
		}

		r.showVersion = false
		r.current = next

		if m.Payload != nil {
			return r, func() tea.Msg { return m.Payload }
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showVersion {
		return renderPage("VERSION", "envelope doctor "+r.version, "esc: back")
	}
	if r.current == nil {
		return renderPage("ENVELOPE DOCTOR", "", "")
	}
	return r.current.View()
}
