// Package upgrade orchestrates template upgrades for Velocity projects.
package upgrade

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/velocity-kit/velocity-cli/internal/diff"
	"github.com/velocity-kit/velocity-cli/internal/fetch"
	"github.com/velocity-kit/velocity-cli/internal/manifest"
	"github.com/velocity-kit/velocity-cli/internal/messages"
	"github.com/velocity-kit/velocity-cli/internal/migrate"
	"github.com/velocity-kit/velocity-cli/internal/pkgjson"
	"github.com/velocity-kit/velocity-cli/internal/project"
	"github.com/velocity-kit/velocity-cli/internal/version"
)

// Sentinel errors for the fatal precondition taxonomy. main maps any of
// these to a non-zero exit; user declines return nil.
var (
	// ErrNotProject marks a directory without persisted project metadata.
	ErrNotProject = errors.New("not a velocity project")
	// ErrEngineOutdated marks a manifest requiring a newer engine.
	ErrEngineOutdated = errors.New("engine version too old")
	// ErrDownloadFailed marks a failed template download.
	ErrDownloadFailed = errors.New("template download failed")
)

// DefaultFallbackSafeFiles is the conservative safe-file list used when a
// template ships no manifest.
var DefaultFallbackSafeFiles = []string{
	"src/lib/",
	"vite.config.ts",
	"svelte.config.js",
	"tsconfig.json",
}

// Options configures a single upgrade run. Everything the engine touches is
// injected here so it is testable against arbitrary manifests and fallback
// lists.
type Options struct {
	// DryRun computes and reports the plan without writing anything.
	DryRun bool
	// AssumeYes skips interactive confirmations, including the dirty-git warning.
	AssumeYes bool

	// EngineVersion is the running CLI version, checked against minCliVersion.
	EngineVersion string
	// TemplateSource is the template to download. Defaults to the upstream repo.
	TemplateSource string
	// FallbackSafeFiles replaces DefaultFallbackSafeFiles when non-nil.
	FallbackSafeFiles []string
	// FallbackMinCliVersion is the engine floor for manifest-less templates.
	FallbackMinCliVersion string
	// DiffMaxLines caps per-file diff preview output.
	DiffMaxLines int

	Fetcher  fetch.Fetcher
	Prompter Prompter
	System   System
	// IsDirty reports whether the project's git working tree has uncommitted
	// changes. Nil disables the check.
	IsDirty func(root string) bool
	// Now supplies timestamps for metadata updates. Defaults to time.Now.
	Now func() time.Time
	// TempBase is the parent directory for the ephemeral template tree.
	// Defaults to the OS temp directory.
	TempBase string

	Out io.Writer
}

type runner struct {
	root string
	opts Options
	out  io.Writer
	sys  System
}

// Run executes the upgrade state machine against the project at root.
func Run(ctx context.Context, root string, opts Options) error {
	if root == "" {
		return fmt.Errorf("project root is required")
	}
	if opts.Fetcher == nil {
		return fmt.Errorf("template fetcher is required")
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	sys := opts.System
	if sys == nil {
		sys = RealSystem{}
	}
	r := &runner{root: root, opts: opts, out: out, sys: sys}
	return r.run(ctx)
}

func (r *runner) run(ctx context.Context) error {
	// Init: the project metadata is the only recognition signal.
	cfg, found, err := project.Load(r.root)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf(messages.UpgradeNotProjectFmt+": %w", r.root, project.ConfigFileName, ErrNotProject)
	}

	// GitCheck: warn about uncommitted changes before touching anything.
	if !r.opts.AssumeYes && r.opts.IsDirty != nil && r.opts.IsDirty(r.root) {
		cont, err := r.prompter().ConfirmDirtyTree()
		if err != nil {
			return err
		}
		if !cont {
			_, _ = fmt.Fprintln(r.out, messages.UpgradeDeclined)
			return nil
		}
	}

	// Download into a uniquely named ephemeral tree. Cleanup runs on every
	// exit path below; failures there are swallowed.
	source := r.templateSource()
	tmpDir := filepath.Join(r.tempBase(), fmt.Sprintf("velocity-template-%d", r.now().UnixNano()))
	defer func() {
		_ = r.sys.RemoveAll(tmpDir)
	}()

	_, _ = fmt.Fprintf(r.out, messages.UpgradeDownloadingFmt, source)
	if err := r.opts.Fetcher.Fetch(ctx, source, tmpDir); err != nil {
		return fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	// ManifestLoad: a manifest-less template falls back to a conservative
	// built-in contract rather than failing.
	m, found, err := manifest.Load(tmpDir)
	if err != nil {
		return err
	}
	if !found {
		m = manifest.Fallback(tmpDir, r.fallbackSafeFiles(), r.opts.FallbackMinCliVersion)
	}

	// VersionGate: never apply a manifest whose semantics this engine predates.
	if m.MinCliVersion != "" && version.Less(r.opts.EngineVersion, m.MinCliVersion) {
		return fmt.Errorf(messages.UpgradeEngineTooOldFmt+": %w", m.MinCliVersion, r.opts.EngineVersion, ErrEngineOutdated)
	}

	// NoopCheck: already on the target version.
	if m.Version != "" && cfg.Version == m.Version {
		_, _ = fmt.Fprintf(r.out, messages.UpgradeAlreadyCurrentFmt, cfg.Version)
		return nil
	}

	// Diff.
	diffs, err := diff.Classify(r.root, tmpDir, m.Files.Safe)
	if err != nil {
		return err
	}
	tally := diff.CountStatuses(diffs)
	if !tally.Changed() && m.Dependencies.Empty() {
		// Metadata-only upgrade: move the version marker and finish.
		// persistVersion mutates cfg, so hold on to the outgoing version
		// for the report line.
		previous := cfg.Version
		if !r.opts.DryRun {
			if err := r.persistVersion(cfg, m.Version); err != nil {
				return err
			}
		}
		_, _ = fmt.Fprintf(r.out, messages.UpgradeMetadataOnlyFmt, previous, m.Version)
		if r.opts.DryRun {
			_, _ = fmt.Fprintln(r.out, messages.UpgradeDryRunNotice)
		}
		return nil
	}

	// Confirm.
	r.renderSummary(cfg, m, diffs, tally, tmpDir)
	apply := false
	switch {
	case r.opts.DryRun:
		// Dry-run never applies but still reports migration evidence.
	case r.opts.AssumeYes:
		apply = true
	default:
		apply, err = r.prompter().ConfirmApply()
		if err != nil {
			return err
		}
		if !apply {
			_, _ = fmt.Fprintln(r.out, messages.UpgradeDeclined)
			return nil
		}
	}

	// Apply: whole-file copies only; files are never deleted by the engine.
	if apply {
		for _, d := range diffs {
			if d.Status != diff.StatusAdded && d.Status != diff.StatusModified {
				continue
			}
			src := filepath.Join(tmpDir, filepath.FromSlash(d.Path))
			dst := filepath.Join(r.root, filepath.FromSlash(d.Path))
			if err := r.sys.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				return fmt.Errorf(messages.UpgradeApplyCopyErrFmt, d.Path, err)
			}
			if err := r.sys.CopyFile(src, dst); err != nil {
				return fmt.Errorf(messages.UpgradeApplyCopyErrFmt, d.Path, err)
			}
		}
		if !m.Dependencies.Empty() {
			if err := pkgjson.Merge(r.root, m.Dependencies); err != nil {
				return fmt.Errorf(messages.UpgradeMergeDepsErrFmt, pkgjson.FileName, err)
			}
		}
		// The version marker is written only after all file and dependency
		// mutations complete, so an interrupted run re-runs safely.
		if err := r.persistVersion(cfg, m.Version); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(r.out, messages.UpgradeDoneFmt, m.Version)
	}

	// Report: scan the live project tree for migration evidence.
	matches, err := migrate.Scan(r.root, m.Migrations)
	if err != nil {
		return err
	}
	r.renderMigrations(m.Migrations, matches)

	if r.opts.DryRun {
		_, _ = fmt.Fprintln(r.out, messages.UpgradeDryRunNotice)
	}
	return nil
}

// persistVersion rewrites the project metadata with the new version cursor.
func (r *runner) persistVersion(cfg *project.Config, newVersion string) error {
	cfg.Version = newVersion
	cfg.UpdatedAt = r.now()
	return project.Save(r.root, cfg)
}

func (r *runner) prompter() Prompter {
	if r.opts.Prompter != nil {
		return r.opts.Prompter
	}
	return PromptFuncs{}
}

func (r *runner) templateSource() string {
	if r.opts.TemplateSource != "" {
		return r.opts.TemplateSource
	}
	return fetch.DefaultTemplateSource
}

func (r *runner) fallbackSafeFiles() []string {
	if r.opts.FallbackSafeFiles != nil {
		return r.opts.FallbackSafeFiles
	}
	return DefaultFallbackSafeFiles
}

func (r *runner) tempBase() string {
	if r.opts.TempBase != "" {
		return r.opts.TempBase
	}
	return os.TempDir()
}

func (r *runner) now() time.Time {
	if r.opts.Now != nil {
		return r.opts.Now()
	}
	return time.Now()
}
