package messages

// Upgrade command and engine messages.
const (
	// UpgradeUse is the upgrade subcommand name.
	UpgradeUse = "upgrade"
	// UpgradeShort summarizes the upgrade subcommand.
	UpgradeShort = "Upgrade this project to the latest Velocity template"
	// UpgradeFlagDryRun describes the --dry-run flag.
	UpgradeFlagDryRun = "compute and print the upgrade plan without writing anything"
	// UpgradeFlagYes describes the --yes flag.
	UpgradeFlagYes = "skip interactive confirmations (including the dirty git warning)"
	// UpgradeFlagTemplate describes the --template flag.
	UpgradeFlagTemplate = "template source to upgrade from (overrides settings)"
	// UpgradeFlagDiffLines describes the --diff-lines flag.
	UpgradeFlagDiffLines = "maximum diff preview lines shown per modified file"

	// UpgradeNotProjectFmt reports a directory without velocity.config.json.
	UpgradeNotProjectFmt = "%s is not a Velocity project (missing %s); run `velocity create` to scaffold one"
	// UpgradeReadConfigErrFmt reports an unreadable project config.
	UpgradeReadConfigErrFmt = "read project config %s: %w"
	// UpgradeParseConfigErrFmt reports a malformed project config.
	UpgradeParseConfigErrFmt = "parse project config %s: %w"
	// UpgradeWriteConfigErrFmt reports a failed project config rewrite.
	UpgradeWriteConfigErrFmt = "write project config %s: %w"

	// UpgradeDirtyTreePrompt asks whether to continue with uncommitted changes.
	UpgradeDirtyTreePrompt = "Your git working tree has uncommitted changes. Continue anyway?"
	// UpgradeDeclined reports a user-declined upgrade.
	UpgradeDeclined = "Upgrade cancelled. No files were changed."

	// UpgradeDownloadingFmt announces the template download.
	UpgradeDownloadingFmt = "Downloading template from %s...\n"
	// UpgradeDownloadErrFmt reports a failed template download.
	UpgradeDownloadErrFmt = "download template from %s: %w"

	// UpgradeEngineTooOldFmt instructs the user to update the CLI itself.
	UpgradeEngineTooOldFmt = "this template requires velocity >= %s (you have %s); update the CLI and rerun `velocity upgrade`"

	// UpgradeAlreadyCurrentFmt reports a project already on the target version.
	UpgradeAlreadyCurrentFmt = "Already up to date (version %s). Nothing to do.\n"
	// UpgradeMetadataOnlyFmt reports a version-marker-only upgrade.
	UpgradeMetadataOnlyFmt = "No file or dependency changes between %s and %s; updated the version marker only.\n"

	// UpgradeSummaryHeaderFmt introduces the change summary.
	UpgradeSummaryHeaderFmt = "Upgrading %s -> %s\n"
	// UpgradeSummaryCountsFmt renders the diff tally line.
	UpgradeSummaryCountsFmt = "Files: %d added, %d modified, %d unchanged\n"
	// UpgradeSummaryDepsHeader introduces the dependency delta section.
	UpgradeSummaryDepsHeader = "Dependency changes:"
	// UpgradeDepUpdateLineFmt renders one dependency update.
	UpgradeDepUpdateLineFmt = "  ~ %s %s\n"
	// UpgradeDepAddLineFmt renders one dependency addition.
	UpgradeDepAddLineFmt = "  + %s %s\n"
	// UpgradeDepRemoveLineFmt renders one dependency removal.
	UpgradeDepRemoveLineFmt = "  - %s\n"
	// UpgradeAddedHeader introduces the added-file list.
	UpgradeAddedHeader = "New files:"
	// UpgradeModifiedHeader introduces the modified-file list.
	UpgradeModifiedHeader = "Files to overwrite:"
	// UpgradeFileLineFmt renders one file path line.
	UpgradeFileLineFmt = "  - %s\n"

	// UpgradeConfirmPrompt asks whether to apply the computed changes.
	UpgradeConfirmPrompt = "Apply these changes?"
	// UpgradeDryRunNotice reminds the user nothing was written.
	UpgradeDryRunNotice = "Dry run: no files were written."

	// UpgradeApplyCopyErrFmt reports a failed safe-file copy.
	UpgradeApplyCopyErrFmt = "copy %s: %w"
	// UpgradeMergeDepsErrFmt reports a failed package.json merge.
	UpgradeMergeDepsErrFmt = "merge dependencies into %s: %w"
	// UpgradeDoneFmt reports a completed upgrade.
	UpgradeDoneFmt = "Upgraded to version %s.\n"

	// UpgradeMigrationsHeader introduces the manual migration section.
	UpgradeMigrationsHeader = "Manual migration steps:"
	// UpgradeMigrationStepFmt renders one migration step title.
	UpgradeMigrationStepFmt = "%s %s\n"
	// UpgradeMigrationDescFmt renders a migration step description.
	UpgradeMigrationDescFmt = "    %s\n"
	// UpgradeMigrationMatchFmt renders one matching file for a step.
	UpgradeMigrationMatchFmt = "      affects: %s\n"
	// UpgradeMigrationNoMatches notes a detection pattern with no hits.
	UpgradeMigrationNoMatches = "    (no affected files detected)"

	// ManifestParseErrFmt reports a malformed upgrade manifest.
	ManifestParseErrFmt = "parse upgrade manifest %s: %w"
	// ManifestPatternErrFmt reports an invalid migration detection pattern.
	ManifestPatternErrFmt = "compile migration pattern for step %q: %w"

	// PkgWriteErrFmt reports a failed package.json rewrite.
	PkgWriteErrFmt = "write %s: %w"
	// PkgParseErrFmt reports a malformed package.json.
	PkgParseErrFmt = "parse %s: %w"
)
