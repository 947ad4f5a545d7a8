package diff

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// DefaultPreviewMaxLines caps diff preview output per file.
const DefaultPreviewMaxLines = 40

// Preview renders a truncated unified diff between the project and template
// copies of rel. Previews are display-only; application always replaces the
// whole file.
func Preview(currentRoot string, freshRoot string, rel string, maxLines int) (string, bool, error) {
	currentData, err := os.ReadFile(filepath.Join(currentRoot, filepath.FromSlash(rel)))
	if err != nil {
		return "", false, err
	}
	freshData, err := os.ReadFile(filepath.Join(freshRoot, filepath.FromSlash(rel)))
	if err != nil {
		return "", false, err
	}
	rendered, truncated := renderTruncatedUnifiedDiff(
		rel+" (current)",
		rel+" (template)",
		string(currentData),
		string(freshData),
		maxLines,
	)
	return rendered, truncated, nil
}

func normalizePreviewMaxLines(value int) int {
	if value <= 0 {
		return DefaultPreviewMaxLines
	}
	return value
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizePreviewMaxLines(maxLines)
	rendered := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(rendered)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := lines[:limit]
	truncated = append(truncated, fmt.Sprintf("... (truncated to %d lines; rerun with --diff-lines <n> to see more)", limit))
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" {
		return content
	}
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
