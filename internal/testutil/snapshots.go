package testutil

import (
	"encoding/json"
	"os"
	"testing"
)

// ReadJSONFile decodes the JSON file at path into dest, failing the test on error.
func ReadJSONFile(t *testing.T, path string, dest any) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		t.Fatalf("failed to decode %s: %v", path, err)
	}
}
