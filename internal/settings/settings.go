// Package settings loads optional user-level CLI settings.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/velocity-kit/velocity-cli/internal/messages"
)

// Settings are user-level defaults for the upgrade command. Flags always win
// over settings values.
type Settings struct {
	// Template overrides the upstream template source.
	Template string `toml:"template"`
	// AssumeYes skips interactive confirmations by default.
	AssumeYes bool `toml:"assume_yes"`
	// DiffLines caps per-file diff preview output.
	DiffLines int `toml:"diff_lines"`
}

// DefaultPath returns ~/.config/velocity/settings.toml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "velocity", "settings.toml"), nil
}

// Load reads settings from path. A missing file yields zero-value settings.
func Load(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf(messages.SettingsReadErrFmt, path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf(messages.SettingsParseErrFmt, path, err)
	}
	return s, nil
}

// LoadDefault reads settings from the default location.
func LoadDefault() (Settings, error) {
	path, err := DefaultPath()
	if err != nil {
		return Settings{}, err
	}
	return Load(path)
}
