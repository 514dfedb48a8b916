package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"shopcore/internal/backup"
	"shopcore/internal/kv"
)

func main() {
	var (
		backend     string
		dataDir     string
		snapshotDir string
		mode        string
	)
	flag.StringVar(&backend, "backend", "pebble", "kv backend: pebble|badger")
	flag.StringVar(&dataDir, "data-dir", "./data", "store directory")
	flag.StringVar(&snapshotDir, "snapshot-dir", "./snapshots", "snapshot base directory")
	flag.StringVar(&mode, "mode", "export", "export|restore")
	flag.Parse()

	store, err := openStore(backend, dataDir)
	if err != nil {
		slog.Error("open store", "backend", backend, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	switch mode {
	case "export":
		id := fmt.Sprintf("snap-%d", time.Now().UTC().Unix())
		snap := backup.NewSnapshotter(snapshotDir)
		if err := snap.WriteSnapshot(id, store); err != nil {
			slog.Error("export failed", "error", err)
			os.Exit(1)
		}
		slog.Info("export complete", "snapshot", id)
	case "restore":
		r := backup.NewRestorer(snapshotDir)
		m, err := r.RestoreLatest(store)
		if err != nil {
			slog.Error("restore failed", "error", err)
			os.Exit(1)
		}
		slog.Info("restore complete", "snapshot", m.SnapshotID, "keys", m.KeyCount)
	default:
		slog.Error("unknown mode", "mode", mode)
		os.Exit(1)
	}
}

// backupStore is a durable backend that can also be enumerated.
type backupStore interface {
	kv.Store
	kv.Iterable
}

func openStore(backend, dataDir string) (backupStore, error) {
	switch backend {
	case "badger":
		return kv.NewBadgerStore(dataDir)
	default:
		return kv.NewPebbleStore(dataDir)
	}
}
