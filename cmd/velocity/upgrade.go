package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/velocity-kit/velocity-cli/internal/fetch"
	"github.com/velocity-kit/velocity-cli/internal/gitutil"
	"github.com/velocity-kit/velocity-cli/internal/messages"
	"github.com/velocity-kit/velocity-cli/internal/settings"
	"github.com/velocity-kit/velocity-cli/internal/terminal"
	"github.com/velocity-kit/velocity-cli/internal/ui"
	"github.com/velocity-kit/velocity-cli/internal/upgrade"
)

// Test seams; production wiring stays in the defaults.
var (
	newFetcher       = func() fetch.Fetcher { return fetch.GetterFetcher{} }
	loadSettingsFunc = settings.LoadDefault
	isDirtyFunc      = gitutil.IsDirty
	isTerminalFunc   = terminal.IsInteractive
)

func newUpgradeCmd() *cobra.Command {
	var dryRun bool
	var assumeYes bool
	var templateSource string
	var diffLines int

	cmd := &cobra.Command{
		Use:   messages.UpgradeUse,
		Short: messages.UpgradeShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProjectRoot()
			if err != nil {
				return err
			}

			userSettings, err := loadSettingsFunc()
			if err != nil {
				return err
			}
			if templateSource == "" {
				templateSource = userSettings.Template
			}
			if !assumeYes {
				assumeYes = userSettings.AssumeYes
			}
			if !cmd.Flags().Changed("diff-lines") && userSettings.DiffLines > 0 {
				diffLines = userSettings.DiffLines
			}

			opts := upgrade.Options{
				DryRun:         dryRun,
				AssumeYes:      assumeYes,
				EngineVersion:  Version,
				TemplateSource: templateSource,
				DiffMaxLines:   diffLines,
				Fetcher:        newFetcher(),
				IsDirty:        isDirtyFunc,
				Out:            cmd.OutOrStdout(),
			}
			if !assumeYes {
				opts.Prompter = newUpgradePrompter(cmd)
			}
			return mapAbort(upgrade.Run(cmd.Context(), root, opts))
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.UpgradeFlagDryRun)
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, messages.UpgradeFlagYes)
	cmd.Flags().StringVar(&templateSource, "template", "", messages.UpgradeFlagTemplate)
	cmd.Flags().IntVar(&diffLines, "diff-lines", 0, messages.UpgradeFlagDiffLines)
	return cmd
}

// exitCodeAborted is the shell convention for an interrupted process.
const exitCodeAborted = 130

// mapAbort converts a ctrl-c abort from the prompt layer into a silent
// non-zero exit; no error output follows the user's own keystroke.
func mapAbort(err error) error {
	if errors.Is(err, ui.ErrAborted) {
		return &SilentExitError{Code: exitCodeAborted}
	}
	return err
}

// newUpgradePrompter builds the confirmation prompter: huh forms on a real
// terminal, a plain stdin reader otherwise (piped input, tests).
func newUpgradePrompter(cmd *cobra.Command) upgrade.Prompter {
	if isTerminalFunc() {
		huhUI := ui.NewHuhUI()
		return upgrade.PromptFuncs{
			ConfirmDirtyTreeFunc: func() (bool, error) {
				return huhUI.Confirm(messages.UpgradeDirtyTreePrompt, false)
			},
			ConfirmApplyFunc: func() (bool, error) {
				return huhUI.Confirm(messages.UpgradeConfirmPrompt, true)
			},
		}
	}
	return upgrade.PromptFuncs{
		ConfirmDirtyTreeFunc: func() (bool, error) {
			return promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), messages.UpgradeDirtyTreePrompt, false)
		},
		ConfirmApplyFunc: func() (bool, error) {
			return promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), messages.UpgradeConfirmPrompt, true)
		},
	}
}
