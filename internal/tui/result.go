package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// resultModel shows one examination outcome. The plaintext can be copied to
// the operator's clipboard with "c".
type resultModel struct {
	report Report
	err    error
	status string
}

func newResultModel() *resultModel {
	return &resultModel{}
}

func (m *resultModel) Init() tea.Cmd {
	return nil
}

func (m *resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case reportReadyMsg:
		m.report = typed.report
		m.err = typed.err
		m.status = ""
		return m, nil
	case copiedMsg:
		m.status = "plaintext copied to clipboard"
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(typed, keys.esc), key.Matches(typed, keys.enter):
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case key.Matches(typed, keys.copy):
			if m.err == nil {
				return m, m.copyPlaintext()
			}
		}
	}

	return m, nil
}

func (m *resultModel) copyPlaintext() tea.Cmd {
	plaintext := m.report.Plaintext
	return func() tea.Msg {
		if err := clipboard.WriteAll(plaintext); err != nil {
			return reportReadyMsg{report: m.report, err: err}
		}
		return copiedMsg{}
	}
}

func (m *resultModel) View() string {
	if m.err != nil {
		return renderPage("EXAMINATION FAILED",
			errorStyle.Render("ERROR: ")+m.err.Error(),
			"esc: back to menu")
	}

	var b strings.Builder
	b.WriteString("Domain:    " + string(m.report.Domain) + "\n")
	b.WriteString("Context:   " + m.report.Context.Label() + "\n")
	b.WriteString("Algorithm: " + m.report.Algorithm + "\n")
	if m.report.BlobSize > 0 {
		b.WriteString(fmt.Sprintf("Size:      %d bytes\n", m.report.BlobSize))
	}
	b.WriteString("\n")
	b.WriteString("Plaintext:\n")
	b.WriteString(fitText(m.report.Plaintext, 2000))

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("OK: " + m.status))
	}

	return renderPage("EXAMINATION RESULT", strings.TrimRight(b.String(), "\n"),
		"c: copy plaintext │ esc: back to menu")
}
