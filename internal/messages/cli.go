// Package messages centralizes user-facing strings for the Velocity CLI.
package messages

// Root command and shared CLI messages.
const (
	// RootUse is the root command name.
	RootUse = "velocity"
	// RootShort summarizes the CLI.
	RootShort = "Velocity project scaffolding and upgrades"
	// RootLong describes the CLI in help output.
	RootLong = "velocity scaffolds web projects from the Velocity template and keeps generated projects up to date with `velocity upgrade`."

	// VersionTemplate renders `velocity --version` output.
	VersionTemplate = "{{.Version}}\n"
	// VersionCommitFmt formats the build commit metadata.
	VersionCommitFmt = "commit %s"
	// VersionBuildFmt formats the build date metadata.
	VersionBuildFmt = "built %s"
	// VersionFullFmt combines the version with build metadata.
	VersionFullFmt = "%s (%s)"

	// PromptYesDefaultFmt renders a yes/no prompt defaulting to yes.
	PromptYesDefaultFmt = "%s [Y/n]: "
	// PromptNoDefaultFmt renders a yes/no prompt defaulting to no.
	PromptNoDefaultFmt = "%s [y/N]: "
	// PromptRetryYesNo asks the user to answer again after invalid input.
	PromptRetryYesNo = "Please answer \"y\" or \"n\"."
	// PromptInvalidResponse reports an unusable final response.
	PromptInvalidResponse = "invalid response %q"

	// UIRequiresTerminal indicates interactive prompts need a terminal.
	UIRequiresTerminal = "interactive prompts require a terminal; rerun with --yes to skip confirmations"
	// UIAborted indicates the user aborted a prompt with ctrl-c.
	UIAborted = "aborted"
)

// Settings messages.
const (
	SettingsReadErrFmt  = "read settings %s: %w"
	SettingsParseErrFmt = "parse settings %s: %w"
)
