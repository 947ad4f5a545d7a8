package upgrade

import (
	"fmt"
	"sort"

	"github.com/fatih/color"

	"github.com/velocity-kit/velocity-cli/internal/diff"
	"github.com/velocity-kit/velocity-cli/internal/manifest"
	"github.com/velocity-kit/velocity-cli/internal/messages"
	"github.com/velocity-kit/velocity-cli/internal/project"
)

// renderSummary prints the change summary shown before confirmation: the
// version transition, the diff tally, per-status file lists with diff
// previews for modified files, and the dependency delta.
func (r *runner) renderSummary(cfg *project.Config, m *manifest.Manifest, diffs []diff.FileDiff, tally diff.Tally, tmpDir string) {
	_, _ = fmt.Fprintf(r.out, messages.UpgradeSummaryHeaderFmt, displayVersion(cfg.Version), displayVersion(m.Version))
	_, _ = fmt.Fprintf(r.out, messages.UpgradeSummaryCountsFmt, tally.Added, tally.Modified, tally.Unchanged)

	if added := diff.ByStatus(diffs, diff.StatusAdded); len(added) > 0 {
		_, _ = fmt.Fprintln(r.out)
		_, _ = fmt.Fprintln(r.out, color.GreenString(messages.UpgradeAddedHeader))
		for _, path := range added {
			_, _ = fmt.Fprintf(r.out, messages.UpgradeFileLineFmt, path)
		}
	}
	if modified := diff.ByStatus(diffs, diff.StatusModified); len(modified) > 0 {
		_, _ = fmt.Fprintln(r.out)
		_, _ = fmt.Fprintln(r.out, color.YellowString(messages.UpgradeModifiedHeader))
		for _, path := range modified {
			_, _ = fmt.Fprintf(r.out, messages.UpgradeFileLineFmt, path)
			preview, _, err := diff.Preview(r.root, tmpDir, path, r.opts.DiffMaxLines)
			if err != nil {
				// Previews are display-only; a failed preview never blocks the run.
				continue
			}
			_, _ = fmt.Fprint(r.out, preview)
		}
	}
	r.renderDependencyDelta(m.Dependencies)
	_, _ = fmt.Fprintln(r.out)
}

func (r *runner) renderDependencyDelta(deps manifest.Dependencies) {
	if deps.Empty() {
		return
	}
	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintln(r.out, messages.UpgradeSummaryDepsHeader)
	for _, name := range sortedKeys(deps.Update) {
		_, _ = fmt.Fprintf(r.out, messages.UpgradeDepUpdateLineFmt, name, deps.Update[name])
	}
	for _, name := range sortedKeys(deps.Add) {
		_, _ = fmt.Fprintf(r.out, messages.UpgradeDepAddLineFmt, name, deps.Add[name])
	}
	removed := append([]string(nil), deps.Remove...)
	sort.Strings(removed)
	for _, name := range removed {
		_, _ = fmt.Fprintf(r.out, messages.UpgradeDepRemoveLineFmt, name)
	}
}

// renderMigrations prints each manual migration step with its detection
// evidence from the live project tree.
func (r *runner) renderMigrations(steps []manifest.MigrationStep, matches map[string][]string) {
	if len(steps) == 0 {
		return
	}
	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintln(r.out, color.YellowString(messages.UpgradeMigrationsHeader))
	for i, step := range steps {
		_, _ = fmt.Fprintf(r.out, messages.UpgradeMigrationStepFmt, fmt.Sprintf("%d.", i+1), step.Title)
		if step.Description != "" {
			_, _ = fmt.Fprintf(r.out, messages.UpgradeMigrationDescFmt, step.Description)
		}
		if step.Pattern == "" {
			continue
		}
		stepMatches := matches[step.Title]
		if len(stepMatches) == 0 {
			_, _ = fmt.Fprintln(r.out, color.GreenString(messages.UpgradeMigrationNoMatches))
			continue
		}
		for _, path := range stepMatches {
			_, _ = fmt.Fprint(r.out, color.RedString(messages.UpgradeMigrationMatchFmt, path))
		}
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func displayVersion(v string) string {
	if v == "" {
		return "(unknown)"
	}
	return v
}
