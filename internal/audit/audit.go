// Package audit appends mutation events to a JSONL trail. The trail is a
// diagnostic artifact; nothing in the engine reads it back.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Event struct {
	Op       string `json:"op"`
	Identity string `json:"identity"`
	Subject  string `json:"subject,omitempty"`
	TS       int64  `json:"ts"`
}

type Writer interface {
	Append(e Event) error
}

// FileWriter appends one JSON document per line.
type FileWriter struct {
	path string
}

func NewFileWriter(dir, filename string) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &FileWriter{path: filepath.Join(dir, filename)}, nil
}

func (w *FileWriter) Append(e Event) error {
	if e.TS == 0 {
		e.TS = time.Now().UTC().Unix()
	}
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(&e); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
