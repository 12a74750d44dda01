package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestHistoryAppendAndRead(t *testing.T) {
	s := Store{Path: filepath.Join(t.TempDir(), "config.json")}
	ctx := context.Background()

	if err := s.AppendHistory(ctx, "entry.add", "", map[string]any{"kind": "action", "index": 0}); err != nil {
		t.Fatalf("AppendHistory: %v", err)
	}
	if err := s.AppendHistory(ctx, "entry.delete", "o", map[string]any{"index": 1}); err != nil {
		t.Fatalf("AppendHistory: %v", err)
	}

	entries, err := s.ReadHistory(ctx, 0)
	if err != nil {
		t.Fatalf("ReadHistory: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Type != "entry.delete" || entries[0].Path != "o" {
		t.Fatalf("unexpected head entry: %+v", entries[0])
	}
	if entries[1].Payload["kind"] != "action" {
		t.Fatalf("payload lost: %+v", entries[1].Payload)
	}
	if entries[0].ID == entries[1].ID {
		t.Fatalf("event ids must be unique")
	}
}

func TestHistoryOrderStableWithinSameMillisecond(t *testing.T) {
	s := Store{Path: filepath.Join(t.TempDir(), "config.json")}
	ctx := context.Background()

	// Back-to-back appends routinely share a millisecond timestamp;
	// insertion order must still come back reversed exactly.
	for i := 0; i < 10; i++ {
		if err := s.AppendHistory(ctx, "entry.add", "", map[string]any{"index": i}); err != nil {
			t.Fatalf("AppendHistory: %v", err)
		}
	}

	entries, err := s.ReadHistory(ctx, 0)
	if err != nil {
		t.Fatalf("ReadHistory: %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(entries))
	}
	for i, e := range entries {
		want := float64(9 - i) // JSON round-trip turns ints into float64
		if e.Payload["index"] != want {
			t.Fatalf("entry %d: index = %v, want %v", i, e.Payload["index"], want)
		}
	}
}

func TestHistoryLimit(t *testing.T) {
	s := Store{Path: filepath.Join(t.TempDir(), "config.json")}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := s.AppendHistory(ctx, "entry.add", "", map[string]any{"index": i}); err != nil {
			t.Fatalf("AppendHistory: %v", err)
		}
	}
	entries, err := s.ReadHistory(ctx, 3)
	if err != nil {
		t.Fatalf("ReadHistory: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}
