// Package ui provides interactive confirmation prompts for the upgrade flow.
package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/velocity-kit/velocity-cli/internal/messages"
	"github.com/velocity-kit/velocity-cli/internal/terminal"
)

// ErrAborted is returned when the user exits a prompt with ctrl-c.
var ErrAborted = errors.New(messages.UIAborted)

// UI asks yes/no questions during an upgrade.
type UI interface {
	Confirm(title string, defaultYes bool) (bool, error)
}

// HuhUI implements UI using charmbracelet/huh forms.
type HuhUI struct {
	isTerminal func() bool
	ctrlCAbort bool // set by the key filter during form.Run(); reset before each form
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI using the default terminal check.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

// ensureInteractive returns an error when the UI is invoked without a terminal.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return fmt.Errorf(messages.UIRequiresTerminal)
}

// promptKeyMap binds ctrl+c to form abort.
func promptKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort"))
	return km
}

// formFilter records keyboard ctrl-c and converts InterruptMsg to QuitMsg so
// bubbletea takes the graceful shutdown path and clears the form output.
func (ui *HuhUI) formFilter() func(tea.Model, tea.Msg) tea.Msg {
	return func(_ tea.Model, msg tea.Msg) tea.Msg {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
			ui.ctrlCAbort = true
		}
		if _, ok := msg.(tea.InterruptMsg); ok {
			return tea.QuitMsg{}
		}
		return msg
	}
}

// runForm validates terminal availability and runs the provided form.
func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}

	ui.ctrlCAbort = false
	form.WithKeyMap(promptKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(ui.formFilter()),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		if ui.ctrlCAbort {
			return ErrAborted
		}
		// Esc and external interrupts decline rather than abort.
		return huh.ErrUserAborted
	}
	return err
}

// Confirm renders a yes/no prompt and returns the user's choice.
// Declining via Esc returns (false, nil); ctrl-c returns ErrAborted.
func (ui *HuhUI) Confirm(title string, defaultYes bool) (bool, error) {
	value := defaultYes
	err := ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&value),
		),
	))
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value, nil
}
