package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/preston-bernstein/sports-snapshots/internal/metrics"
)

// Writer persists named JSON snapshots under a base directory, replacing prior content.
type Writer struct {
	basePath string
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewWriter constructs a writer rooted at basePath. recorder may be nil.
func NewWriter(basePath string, recorder *metrics.Recorder) *Writer {
	return &Writer{
		basePath: basePath,
		metrics:  recorder,
		now:      time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// Write serializes payload as indented JSON to basePath/name. The directory is created
// when missing and any previous file is fully replaced.
func (w *Writer) Write(name string, payload any) error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	if name == "" {
		return errors.New("snapshot name required")
	}

	size, err := w.write(name, payload)
	w.metrics.RecordSnapshotWrite(name, size, err)
	return err
}

func (w *Writer) write(name string, payload any) (int, error) {
	target := SnapshotPath(w.basePath, name)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, fmt.Errorf("create snapshot dir: %w", err)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode snapshot %s: %w", name, err)
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return len(data), w.updateManifest(name, len(data))
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return 0, fmt.Errorf("write snapshot %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return 0, fmt.Errorf("replace snapshot %s: %w", name, err)
	}

	return len(data), w.updateManifest(name, len(data))
}

func (w *Writer) updateManifest(name string, size int) error {
	m, _ := readManifest(filepath.Join(w.basePath, manifestFile))
	now := w.now().UTC()
	m.Snapshots[name] = SnapshotMeta{LastWritten: now, Bytes: size}
	return writeManifest(w.basePath, m, now)
}
