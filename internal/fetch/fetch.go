// Package fetch materializes template sources into local directories.
package fetch

import (
	"context"
	"fmt"
	"strings"

	getter "github.com/hashicorp/go-getter"

	"github.com/velocity-kit/velocity-cli/internal/messages"
)

// DefaultTemplateSource is the upstream Velocity template repository.
// go-getter detects the forge from the source string, so git, http, and
// local file sources all work as overrides.
const DefaultTemplateSource = "github.com/velocity-kit/template-velocity"

// Fetcher downloads a named template source into a directory. The operation
// is treated as atomic by callers: it either fully materializes the tree or
// fails.
type Fetcher interface {
	Fetch(ctx context.Context, src string, dst string) error
}

// GetterFetcher implements Fetcher with hashicorp/go-getter.
type GetterFetcher struct{}

// Fetch materializes src into dst.
func (GetterFetcher) Fetch(ctx context.Context, src string, dst string) error {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return fmt.Errorf(messages.UpgradeDownloadErrFmt, src, errEmptySource)
	}
	if err := getter.GetAny(dst, trimmed, getter.WithContext(ctx)); err != nil {
		return fmt.Errorf(messages.UpgradeDownloadErrFmt, trimmed, err)
	}
	return nil
}

var errEmptySource = fmt.Errorf("template source is empty")
