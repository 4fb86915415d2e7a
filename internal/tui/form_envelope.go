package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var envelopeDomains = []Domain{DomainMessages, DomainPosts, DomainMarketplace}

// formEnvelopeModel collects the key context and the raw envelope JSON, then
// hands both to the doctor.
type formEnvelopeModel struct {
	doctor *Doctor

	domainIdx int
	inputs    []textinput.Model
	focus     int // 0 = domain row, 1..len(inputs) = text inputs
	errText   string
}

func newFormEnvelopeModel(doctor *Doctor) *formEnvelopeModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
	}
	inputs[0].Placeholder = "sender id"
	inputs[0].Width = 20
	inputs[1].Placeholder = "receiver / group / user id"
	inputs[1].Width = 20
	inputs[2].Placeholder = `{"ciphertext":"...","iv":"...","algorithm":"aes-256-gcm","auth_tag":"...","hmac":"..."}`
	inputs[2].Width = 80

	return &formEnvelopeModel{doctor: doctor, inputs: inputs}
}

func (m *formEnvelopeModel) Init() tea.Cmd {
	m.errText = ""
	return nil
}

func (m *formEnvelopeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	case "left":
		if m.focus == 0 {
			m.domainIdx = (m.domainIdx + len(envelopeDomains) - 1) % len(envelopeDomains)
			return m, nil
		}
	case "right":
		if m.focus == 0 {
			m.domainIdx = (m.domainIdx + 1) % len(envelopeDomains)
			return m, nil
		}
	case "enter":
		if m.focus < len(m.inputs) {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		return m, m.submit()
	}

	if m.focus > 0 {
		var cmd tea.Cmd
		m.inputs[m.focus-1], cmd = m.inputs[m.focus-1].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *formEnvelopeModel) setFocus(next int) {
	if next < 0 {
		next = 0
	}
	if next > len(m.inputs) {
		next = len(m.inputs)
	}

	m.focus = next
	for i := range m.inputs {
		if i == m.focus-1 {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *formEnvelopeModel) submit() tea.Cmd {
	partyA, errA := strconv.ParseInt(strings.TrimSpace(m.inputs[0].Value()), 10, 64)
	partyB, errB := strconv.ParseInt(strings.TrimSpace(m.inputs[1].Value()), 10, 64)
	if errA != nil || errB != nil {
		m.errText = "party identifiers must be integers"
		return nil
	}

	domain := envelopeDomains[m.domainIdx]
	envelopeJSON := m.inputs[2].Value()

	return func() tea.Msg {
		report, err := m.doctor.ExamineEnvelope(domain, partyA, partyB, envelopeJSON)
		return NavigateTo{Page: "result", Payload: reportReadyMsg{report: report, err: err}}
	}
}

func (m *formEnvelopeModel) View() string {
	var b strings.Builder

	domainRow := make([]string, len(envelopeDomains))
	for i, d := range envelopeDomains {
		if i == m.domainIdx {
			domainRow[i] = "[" + string(d) + "]"
		} else {
			domainRow[i] = " " + string(d) + " "
		}
	}

	cursor := func(field int) string {
		if m.focus == field {
			return ">"
		}
		return " "
	}

	b.WriteString(cursor(0) + " Domain:   " + strings.Join(domainRow, " ") + "\n")
	b.WriteString(cursor(1) + " Party A:  [" + m.inputs[0].View() + "]\n")
	b.WriteString(cursor(2) + " Party B:  [" + m.inputs[1].View() + "]\n")
	b.WriteString(cursor(3) + " Envelope: [" + m.inputs[2].View() + "]\n")

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("ERROR: " + m.errText))
	}

	return renderPage("EXAMINE ENVELOPE", strings.TrimRight(b.String(), "\n"),
		"enter: next / examine │ tab: next field │ ←/→: domain │ esc: back")
}
