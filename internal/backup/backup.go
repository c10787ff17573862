// Package backup runs the snapshot keeper: an independent background
// task that periodically writes JSON snapshots of the collection and
// evicts stale ones. The board never reads from it.
package backup

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Devesh-1988-Wan/z10triage/internal/model"
	"github.com/Devesh-1988-Wan/z10triage/internal/transfer"
)

const snapshotPrefix = "z10triage-"

// Source yields the current collection; the keeper holds no store of
// its own beyond this read hook.
type Source func() ([]model.TriageItem, error)

// Keeper owns one snapshot directory.
type Keeper struct {
	Dir    string
	Keep   int           // snapshots retained after eviction
	Every  time.Duration // snapshot interval
	Source Source
	Log    *logrus.Logger
}

// Run installs the snapshot directory, evicts anything beyond the
// retention count, then snapshots on every tick until ctx is done.
func (k *Keeper) Run(ctx context.Context) {
	if err := os.MkdirAll(k.Dir, 0o755); err != nil {
		k.Log.WithError(err).Error("snapshot keeper: create directory")
		return
	}
	if err := k.evict(); err != nil {
		k.Log.WithError(err).Warn("snapshot keeper: evict stale snapshots")
	}

	ticker := time.NewTicker(k.Every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := k.Snapshot(); err != nil {
				k.Log.WithError(err).Error("snapshot keeper: snapshot")
			}
		}
	}
}

// Snapshot writes one timestamped snapshot file and evicts old ones.
func (k *Keeper) Snapshot() error {
	items, err := k.Source()
	if err != nil {
		return errors.Wrap(err, "read collection")
	}

	name := snapshotPrefix + time.Now().UTC().Format("20060102-150405") + ".json"
	f, err := os.Create(filepath.Join(k.Dir, name))
	if err != nil {
		return errors.Wrap(err, "create snapshot file")
	}
	if err := transfer.Export(items, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close snapshot file")
	}
	return k.evict()
}

// evict removes the oldest snapshots beyond the retention count. The
// timestamped names sort chronologically, so name order is age order.
func (k *Keeper) evict() error {
	entries, err := os.ReadDir(k.Dir)
	if err != nil {
		return errors.Wrap(err, "list snapshots")
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), snapshotPrefix) {
			continue
		}
		names = append(names, e.Name())
	}
	if k.Keep <= 0 || len(names) <= k.Keep {
		return nil
	}
	sort.Strings(names)

	for _, name := range names[:len(names)-k.Keep] {
		if err := os.Remove(filepath.Join(k.Dir, name)); err != nil {
			return errors.Wrapf(err, "remove snapshot %s", name)
		}
	}
	return nil
}
