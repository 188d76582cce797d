package snapshots

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFSStoreLoadRoundTripsWriter(t *testing.T) {
	dir := t.TempDir()
	writePayload(t, NewWriter(dir, nil), StandingsFile, samplePayload{LastUpdated: "now", Items: []string{"COL"}})

	var got samplePayload
	if err := NewFSStore(dir).Load(StandingsFile, &got); err != nil {
		t.Fatalf("failed to load snapshot: %v", err)
	}
	if got.LastUpdated != "now" || len(got.Items) != 1 || got.Items[0] != "COL" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

func TestFSStoreErrors(t *testing.T) {
	dir := t.TempDir()
	store := NewFSStore(dir)
	var dest samplePayload
	if err := store.Load(OddsFile, &dest); err == nil {
		t.Fatalf("expected error for missing snapshot")
	}
	if err := store.Load("", &dest); err == nil {
		t.Fatalf("expected error for empty name")
	}

	if err := os.WriteFile(filepath.Join(dir, OddsFile), []byte("{bad"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := store.Load(OddsFile, &dest); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFSStoreNilReceiver(t *testing.T) {
	var store *FSStore
	if err := store.Load(OddsFile, &samplePayload{}); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if _, err := store.Manifest(); err == nil {
		t.Fatalf("expected error for nil store manifest")
	}
}

func TestSnapshotPathJoinsBase(t *testing.T) {
	if got := SnapshotPath("data", OddsFile); got != filepath.Join("data", "odds.json") {
		t.Fatalf("unexpected path %s", got)
	}
}
