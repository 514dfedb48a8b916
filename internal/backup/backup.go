// Package backup exports and restores the full commerce keyspace as a
// filesystem snapshot. A manifest file always points at the latest snapshot
// so restore needs no arguments.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"shopcore/internal/kv"
)

type Manifest struct {
	SnapshotID           string `json:"snapshotId"`
	KeyCount             int    `json:"keyCount"`
	CreatedAtEpochSecond int64  `json:"createdAt"`
}

type Snapshotter struct {
	baseDir string
}

func NewSnapshotter(baseDir string) *Snapshotter {
	return &Snapshotter{baseDir: baseDir}
}

// WriteSnapshot dumps every key in the store to <dir>/<id>/state.json and
// publishes the manifest pointing at it.
func (s *Snapshotter) WriteSnapshot(snapshotID string, store kv.Iterable) error {
	if err := os.MkdirAll(filepath.Join(s.baseDir, snapshotID), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	dump := make(map[string]string)
	if err := store.Range(func(key, value string) error {
		dump[key] = value
		return nil
	}); err != nil {
		return fmt.Errorf("dump store: %w", err)
	}

	file := filepath.Join(s.baseDir, snapshotID, "state.json")
	out, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer out.Close()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return s.publishManifest(Manifest{
		SnapshotID:           snapshotID,
		KeyCount:             len(dump),
		CreatedAtEpochSecond: time.Now().UTC().Unix(),
	})
}

func (s *Snapshotter) publishManifest(m Manifest) error {
	file := filepath.Join(s.baseDir, "manifest.latest.json")
	out, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	defer out.Close()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}

// ReadManifest returns the manifest for the latest snapshot.
func ReadManifest(baseDir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, "manifest.latest.json"))
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return m, nil
}

type Restorer struct {
	baseDir string
}

func NewRestorer(baseDir string) *Restorer {
	return &Restorer{baseDir: baseDir}
}

// RestoreLatest replaces the store contents with the latest snapshot.
func (r *Restorer) RestoreLatest(store kv.Iterable) (Manifest, error) {
	m, err := ReadManifest(r.baseDir)
	if err != nil {
		return Manifest{}, err
	}
	if err := r.Restore(m.SnapshotID, store); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Restore loads one snapshot by id into the store, dropping current keys.
func (r *Restorer) Restore(snapshotID string, store kv.Iterable) error {
	path := filepath.Join(r.baseDir, snapshotID, "state.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	var dump map[string]string
	if err := json.Unmarshal(data, &dump); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if err := store.ReplaceAll(dump); err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	return nil
}
