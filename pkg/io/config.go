package io

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pillarchart/pillar/pkg/barchart"
	"github.com/pillarchart/pillar/pkg/errors"
	"github.com/pillarchart/pillar/pkg/timeline"
)

// FileConfig is the decoded shape of a TOML configuration file: one
// table per chart kind. Both tables start from the package defaults,
// so a file only names what it changes.
type FileConfig struct {
	Barchart barchart.Config `toml:"barchart"`
	Timeline timeline.Config `toml:"timeline"`
}

// DefaultFileConfig returns the defaults a loaded file is layered
// over.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Barchart: barchart.DefaultConfig(),
		Timeline: timeline.DefaultConfig(),
	}
}

// LoadConfig reads a TOML configuration file. An empty path returns
// the defaults untouched. Unknown keys are CONFIG_INVALID so a typoed
// key fails loudly instead of silently keeping the default.
func LoadConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeConfigInvalid, err, "parsing %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeConfigInvalid, "unknown config keys in %s: %v", path, undecoded)
	}
	return cfg, nil
}
