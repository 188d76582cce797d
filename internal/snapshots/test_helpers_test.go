package snapshots

import (
	"os"
	"testing"
)

type samplePayload struct {
	LastUpdated string   `json:"lastUpdated"`
	Items       []string `json:"items"`
}

func writePayload(t *testing.T, w *Writer, name string, payload any) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for %s", name)
	}
	if err := w.Write(name, payload); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", name, err)
	}
}

func readRaw(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
