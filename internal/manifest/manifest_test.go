package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleManifest = `{
  "version": "2.1.0",
  "minCliVersion": "1.3.0",
  "files": {
    "safe": ["src/lib/", "vite.config.ts"],
    "protected": ["src/routes/"]
  },
  "dependencies": {
    "update": {"svelte": "^5.0.0"},
    "add": {"@velocity/icons": "^1.0.0"},
    "remove": ["left-pad"]
  },
  "migrations": [
    {
      "title": "Rename oldApi",
      "description": "Replace oldApi() calls with newApi().",
      "pattern": "oldApi\\(",
      "searchPaths": ["src/"]
    },
    {
      "title": "Review routing",
      "description": "Routing conventions changed; review src/routes."
    }
  ]
}
`

func TestLoadParsesManifest(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(sampleManifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, found, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatal("expected manifest to be found")
	}
	if m.Version != "2.1.0" || m.MinCliVersion != "1.3.0" {
		t.Fatalf("unexpected versions: %q / %q", m.Version, m.MinCliVersion)
	}
	if len(m.Files.Safe) != 2 || m.Files.Safe[0] != "src/lib/" {
		t.Fatalf("unexpected safe files: %v", m.Files.Safe)
	}
	if len(m.Files.Protected) != 1 {
		t.Fatalf("unexpected protected files: %v", m.Files.Protected)
	}
	if m.Dependencies.Update["svelte"] != "^5.0.0" {
		t.Fatalf("unexpected update delta: %v", m.Dependencies.Update)
	}
	if len(m.Migrations) != 2 {
		t.Fatalf("unexpected migrations: %v", m.Migrations)
	}
	if m.Migrations[1].Pattern != "" {
		t.Fatalf("informational step should have no pattern, got %q", m.Migrations[1].Pattern)
	}
}

func TestLoadMissingManifest(t *testing.T) {
	m, found, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found || m != nil {
		t.Fatalf("expected not found, got %v", m)
	}
}

func TestLoadMalformedManifest(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if _, _, err := Load(root); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFallbackReadsTemplatePackageVersion(t *testing.T) {
	root := t.TempDir()
	pkg := `{"name": "velocity-template", "version": "3.4.5"}`
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(pkg), 0o644); err != nil {
		t.Fatalf("write package.json: %v", err)
	}

	m := Fallback(root, []string{"src/lib/"}, "1.0.0")
	if m.Version != "3.4.5" {
		t.Fatalf("version = %q, want 3.4.5", m.Version)
	}
	if m.MinCliVersion != "1.0.0" {
		t.Fatalf("minCliVersion = %q, want 1.0.0", m.MinCliVersion)
	}
	if len(m.Files.Safe) != 1 || m.Files.Safe[0] != "src/lib/" {
		t.Fatalf("safe files = %v", m.Files.Safe)
	}
	if len(m.Migrations) != 0 || !m.Dependencies.Empty() {
		t.Fatal("fallback must declare no migrations or dependency changes")
	}
}

func TestFallbackWithoutPackageJSON(t *testing.T) {
	m := Fallback(t.TempDir(), nil, "1.0.0")
	if m.Version != "" {
		t.Fatalf("version = %q, want empty", m.Version)
	}
}

func TestDependenciesEmpty(t *testing.T) {
	if !(Dependencies{}).Empty() {
		t.Fatal("zero value should be empty")
	}
	if (Dependencies{Remove: []string{"x"}}).Empty() {
		t.Fatal("remove-only delta should not be empty")
	}
}
