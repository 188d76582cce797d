package snapshots

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// Load decodes the named snapshot into payload.
func (s *FSStore) Load(name string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	if name == "" {
		return errors.New("snapshot name required")
	}
	return s.decodeFile(SnapshotPath(s.basePath, name), payload)
}

// Manifest returns the manifest describing the last writes.
func (s *FSStore) Manifest() (Manifest, error) {
	if s == nil {
		return Manifest{}, errors.New("snapshot store not configured")
	}
	return readManifest(filepath.Join(s.basePath, manifestFile))
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
