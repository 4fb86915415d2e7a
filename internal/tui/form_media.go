package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formMediaModel collects a blob-file path and the key context for a media
// examination.
type formMediaModel struct {
	doctor *Doctor

	inputs  []textinput.Model
	focus   int
	errText string
}

func newFormMediaModel(doctor *Doctor) *formMediaModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 20
	}
	inputs[0].Placeholder = "/var/lib/media/blobs/..."
	inputs[0].Width = 60
	inputs[0].Focus()
	inputs[1].Placeholder = "sender id"
	inputs[2].Placeholder = "receiver id"

	return &formMediaModel{doctor: doctor, inputs: inputs}
}

func (m *formMediaModel) Init() tea.Cmd {
	m.errText = ""
	return nil
}

func (m *formMediaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil
	case "enter":
		if m.focus < len(m.inputs)-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *formMediaModel) setFocus(next int) {
	if next < 0 {
		next = 0
	}
	if next > len(m.inputs)-1 {
		next = len(m.inputs) - 1
	}

	m.focus = next
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *formMediaModel) submit() tea.Cmd {
	path := strings.TrimSpace(m.inputs[0].Value())
	if path == "" {
		m.errText = "blob file path is required"
		return nil
	}

	partyA, errA := strconv.ParseInt(strings.TrimSpace(m.inputs[1].Value()), 10, 64)
	partyB, errB := strconv.ParseInt(strings.TrimSpace(m.inputs[2].Value()), 10, 64)
	if errA != nil || errB != nil {
		m.errText = "party identifiers must be integers"
		return nil
	}

	return func() tea.Msg {
		report, err := m.doctor.ExamineMediaFile(path, partyA, partyB)
		return NavigateTo{Page: "result", Payload: reportReadyMsg{report: report, err: err}}
	}
}

func (m *formMediaModel) View() string {
	var b strings.Builder

	cursor := func(field int) string {
		if m.focus == field {
			return ">"
		}
		return " "
	}

	b.WriteString(cursor(0) + " Blob file: [" + m.inputs[0].View() + "]\n")
	b.WriteString(cursor(1) + " Party A:   [" + m.inputs[1].View() + "]\n")
	b.WriteString(cursor(2) + " Party B:   [" + m.inputs[2].View() + "]\n")

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("ERROR: " + m.errText))
	}

	return renderPage("EXAMINE MEDIA FILE", strings.TrimRight(b.String(), "\n"),
		"enter: next / examine │ tab: next field │ esc: back")
}
