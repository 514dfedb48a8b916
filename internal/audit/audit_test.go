package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriter_AppendsJSONL(t *testing.T) {
	dir := t.TempDir()
	w, err := NewFileWriter(dir, "trail.jsonl")
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	events := []Event{
		{Op: "add_to_cart", Identity: "anonymous", Subject: "Headphones"},
		{Op: "place_order", Identity: "jane@example.com", Subject: "ORD-1234-ABC"},
	}
	for _, e := range events {
		if err := w.Append(e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	f, err := os.Open(filepath.Join(dir, "trail.jsonl"))
	if err != nil {
		t.Fatalf("open trail: %v", err)
	}
	defer f.Close()

	var got []Event
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Event
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("bad line: %v", err)
		}
		got = append(got, e)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Op != "add_to_cart" || got[1].Subject != "ORD-1234-ABC" {
		t.Fatalf("unexpected events: %+v", got)
	}
	if got[0].TS == 0 {
		t.Fatalf("timestamp should be filled in")
	}
}
