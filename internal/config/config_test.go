package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, c.DataDir)
	assert.Equal(t, 5, c.SnapshotKeep)
	assert.Equal(t, 15*time.Minute, c.SnapshotEvery)
	assert.Equal(t, filepath.Join(c.DataDir, "z10triage.db"), c.DatabasePath())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /tmp/triage\nsnapshot_keep: 9\nsnapshot_every: 1h\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/triage", c.DataDir)
	assert.Equal(t, 9, c.SnapshotKeep)
	assert.Equal(t, time.Hour, c.SnapshotEvery)
	assert.Equal(t, filepath.Join("/tmp/triage", "snapshots"), c.SnapshotDir())
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
