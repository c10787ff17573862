// Package config loads the optional YAML configuration file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
)

const dbname = "z10triage.db"

// Config holds everything tunable from the config file. All fields have
// working defaults; the file is optional.
type Config struct {
	DataDir       string        `koanf:"data_dir"`
	SnapshotKeep  int           `koanf:"snapshot_keep"`
	SnapshotEvery time.Duration `koanf:"snapshot_every"`
}

// Load reads the config file at path when it exists and layers it over
// the defaults. An empty path means defaults only.
func Load(path string) (Config, error) {
	konf := koanf.New(".")

	err := konf.Load(confmap.Provider(map[string]interface{}{
		"data_dir":       defaultDataDir(),
		"snapshot_keep":  5,
		"snapshot_every": "15m",
	}, "."), nil)
	if err != nil {
		return Config{}, errors.Wrap(err, "load default configuration")
	}

	if path != "" {
		if err := konf.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, errors.Wrapf(err, "load configuration %s", path)
		}
	}

	var c Config
	if err := konf.Unmarshal("", &c); err != nil {
		return Config{}, errors.Wrap(err, "parse configuration")
	}
	return c, nil
}

// DatabasePath is the storm database file inside the data directory.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, dbname)
}

// LogPath is the rotating log file inside the data directory.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "z10triage.log")
}

// SnapshotDir is where the background snapshot keeper writes.
func (c Config) SnapshotDir() string {
	return filepath.Join(c.DataDir, "snapshots")
}

// EnsureDataDir creates the data directory when missing.
func (c Config) EnsureDataDir() error {
	return errors.Wrap(os.MkdirAll(c.DataDir, 0o755), "create data directory")
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".z10triage"
	}
	return filepath.Join(base, "z10triage")
}
