// Package project reads and writes persisted Velocity project metadata.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/velocity-kit/velocity-cli/internal/fsutil"
	"github.com/velocity-kit/velocity-cli/internal/messages"
)

// ConfigFileName is the metadata file written at the project root.
const ConfigFileName = "velocity.config.json"

// Config is the persisted project metadata. Its Version field is the sole
// upgrade cursor; there is no history or rollback log.
type Config struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Features  Features  `json:"features"`
}

// Features records which optional scaffolding features the project was
// generated with.
type Features struct {
	Demo       bool `json:"demo"`
	I18n       bool `json:"i18n"`
	Components bool `json:"components"`
}

// Load reads the project config from root. The found flag is false when the
// directory is not a recognized Velocity project.
func Load(root string) (*Config, bool, error) {
	path := filepath.Join(root, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf(messages.UpgradeReadConfigErrFmt, path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, false, fmt.Errorf(messages.UpgradeParseConfigErrFmt, path, err)
	}
	return &cfg, true, nil
}

// Save rewrites the project config atomically with 2-space indentation and a
// trailing newline.
func Save(root string, cfg *Config) error {
	path := filepath.Join(root, ConfigFileName)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf(messages.UpgradeWriteConfigErrFmt, path, err)
	}
	data = append(data, '\n')
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf(messages.UpgradeWriteConfigErrFmt, path, err)
	}
	return nil
}
