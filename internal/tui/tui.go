// Package tui implements the operator "envelope doctor" console.
//
// Support engineers use it to verify and decrypt a stored envelope or an
// encrypted media file during investigations. All decryption happens
// locally with the secrets from the operator's configuration; plaintext is
// shown on screen and optionally copied to the clipboard, never sent
// anywhere.
package tui

import (
	"errors"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the console")

type TUI struct {
	doctor *Doctor
}

func New(doctor *Doctor, _ *logger.Logger) (*TUI, error) {
	return &TUI{doctor: doctor}, nil
}

// Run opens the console and blocks until the operator quits.
func (t *TUI) Run(version string) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"envelope": newFormEnvelopeModel(t.doctor),
		"media":    newFormMediaModel(t.doctor),
		"result":   newResultModel(),
	}

	root := NewRootModel(pages, "menu", version)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
