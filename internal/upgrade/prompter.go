package upgrade

import "fmt"

// Prompter provides user prompts at the two points the engine suspends for
// confirmation.
type Prompter interface {
	// ConfirmDirtyTree asks whether to continue over uncommitted git changes.
	ConfirmDirtyTree() (bool, error)
	// ConfirmApply asks whether to apply the computed changes.
	ConfirmApply() (bool, error)
}

// PromptFuncs adapts optional prompt callbacks into a Prompter.
type PromptFuncs struct {
	ConfirmDirtyTreeFunc func() (bool, error)
	ConfirmApplyFunc     func() (bool, error)
}

// ConfirmDirtyTree invokes the configured callback.
func (p PromptFuncs) ConfirmDirtyTree() (bool, error) {
	if p.ConfirmDirtyTreeFunc == nil {
		return false, fmt.Errorf("dirty-tree confirmation requires a prompt handler; rerun with --yes")
	}
	return p.ConfirmDirtyTreeFunc()
}

// ConfirmApply invokes the configured callback.
func (p PromptFuncs) ConfirmApply() (bool, error) {
	if p.ConfirmApplyFunc == nil {
		return false, fmt.Errorf("apply confirmation requires a prompt handler; rerun with --yes")
	}
	return p.ConfirmApplyFunc()
}
