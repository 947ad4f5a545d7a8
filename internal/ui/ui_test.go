package ui

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHuhUI(t *testing.T) {
	u := NewHuhUI()
	assert.NotNil(t, u)
	assert.NotNil(t, u.isTerminal)
}

func TestEnsureInteractiveNilChecker(t *testing.T) {
	u := &HuhUI{isTerminal: nil}
	// Tests run without a TTY, so the default checker reports false.
	err := u.ensureInteractive()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestConfirmWithoutTerminal(t *testing.T) {
	u := &HuhUI{isTerminal: func() bool { return false }}
	_, err := u.Confirm("Apply?", true)
	assert.Error(t, err)
}

func TestConfirmAccepted(t *testing.T) {
	orig := runFormFunc
	runFormFunc = func(form *huh.Form) error { return nil }
	t.Cleanup(func() { runFormFunc = orig })

	u := &HuhUI{isTerminal: func() bool { return true }}
	ok, err := u.Confirm("Apply?", true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConfirmEscDeclines(t *testing.T) {
	orig := runFormFunc
	runFormFunc = func(form *huh.Form) error { return huh.ErrUserAborted }
	t.Cleanup(func() { runFormFunc = orig })

	u := &HuhUI{isTerminal: func() bool { return true }}
	ok, err := u.Confirm("Apply?", true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfirmCtrlCAborts(t *testing.T) {
	orig := runFormFunc
	runFormFunc = func(form *huh.Form) error { return huh.ErrUserAborted }
	t.Cleanup(func() { runFormFunc = orig })

	u := &HuhUI{isTerminal: func() bool { return true }}
	// Simulate the key filter having observed ctrl-c before the abort.
	runFormFunc = func(form *huh.Form) error {
		u.ctrlCAbort = true
		return huh.ErrUserAborted
	}
	_, err := u.Confirm("Apply?", true)
	assert.ErrorIs(t, err, ErrAborted)
}
