package snapshots

import "path/filepath"

// Snapshot file names written under the data directory.
const (
	OddsFile      = "odds.json"
	StandingsFile = "standings.json"
	manifestFile  = "manifest.json"
)

// SnapshotPath builds the path to a named snapshot file under basePath.
func SnapshotPath(basePath, name string) string {
	return filepath.Join(basePath, name)
}
