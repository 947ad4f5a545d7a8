package pathset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, root string, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(rel), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func TestExpandDirectoryEntry(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/lib/a.ts")
	writeFile(t, root, "src/lib/deep/b.ts")
	writeFile(t, root, "src/other.ts")

	got := Expand(root, []string{"src/lib/"})
	want := []string{"src/lib/a.ts", "src/lib/deep/b.ts"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expand = %v, want %v", got, want)
	}
}

func TestExpandTrailingSeparatorIrrelevantForExistingDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/lib/a.ts")

	withSlash := Expand(root, []string{"src/lib/"})
	withoutSlash := Expand(root, []string{"src/lib"})
	if !reflect.DeepEqual(withSlash, withoutSlash) {
		t.Fatalf("trailing separator changed the result: %v vs %v", withSlash, withoutSlash)
	}
}

func TestExpandLiteralFileEntry(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "vite.config.ts")

	got := Expand(root, []string{"vite.config.ts"})
	want := []string{"vite.config.ts"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expand = %v, want %v", got, want)
	}
}

func TestExpandMissingFileKeptAsLiteral(t *testing.T) {
	root := t.TempDir()
	got := Expand(root, []string{"src/absent.ts"})
	want := []string{"src/absent.ts"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expand = %v, want %v", got, want)
	}
}

func TestExpandMissingDirectoryIsEmpty(t *testing.T) {
	root := t.TempDir()
	got := Expand(root, []string{"src/absent/"})
	if len(got) != 0 {
		t.Fatalf("Expand = %v, want empty", got)
	}
}

func TestExpandOverlappingEntriesDeduplicate(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/lib/a.ts")

	got := Expand(root, []string{"src/", "src/lib/", "src/lib/a.ts"})
	want := []string{"src/lib/a.ts"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expand = %v, want %v", got, want)
	}
}

func TestExpandEmptyAndBlankEntries(t *testing.T) {
	root := t.TempDir()
	if got := Expand(root, []string{"", "   "}); len(got) != 0 {
		t.Fatalf("Expand = %v, want empty", got)
	}
	if got := Expand(root, nil); len(got) != 0 {
		t.Fatalf("Expand(nil) = %v, want empty", got)
	}
}
