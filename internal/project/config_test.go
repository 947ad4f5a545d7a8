package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cfg := &Config{
		Version:   "1.2.0",
		CreatedAt: created,
		UpdatedAt: created,
		Features:  Features{Demo: true, Components: true},
	}
	if err := Save(root, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, found, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatal("expected config to be found")
	}
	if loaded.Version != "1.2.0" {
		t.Fatalf("version = %q", loaded.Version)
	}
	if !loaded.CreatedAt.Equal(created) {
		t.Fatalf("createdAt = %v", loaded.CreatedAt)
	}
	if !loaded.Features.Demo || loaded.Features.I18n || !loaded.Features.Components {
		t.Fatalf("features = %+v", loaded.Features)
	}
}

func TestLoadMissingConfig(t *testing.T) {
	cfg, found, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found || cfg != nil {
		t.Fatalf("expected not found, got %+v", cfg)
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("nope"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := Load(root); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveFormatting(t *testing.T) {
	root := t.TempDir()
	if err := Save(root, &Config{Version: "1.0.0"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, ConfigFileName))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(data)
	if !strings.HasSuffix(text, "\n") {
		t.Fatal("config must end with a trailing newline")
	}
	if !strings.Contains(text, "\n  \"version\": \"1.0.0\"") {
		t.Fatalf("expected 2-space indentation, got:\n%s", text)
	}
}
