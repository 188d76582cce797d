package logging

import (
	"log/slog"
	"testing"
)

func TestWithCommonTagsServiceAndVersion(t *testing.T) {
	attrs := WithCommon([]slog.Attr{slog.String(FieldMode, "odds")}, "sports-snapshots", "dev")
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != FieldMode {
		t.Fatalf("expected existing attrs first, got %+v", attrs[0])
	}
	if attrs[1].Key != FieldService || attrs[1].Value.String() != "sports-snapshots" {
		t.Fatalf("expected service attr, got %+v", attrs[1])
	}
	if attrs[2].Key != FieldVersion || attrs[2].Value.String() != "dev" {
		t.Fatalf("expected version attr, got %+v", attrs[2])
	}
}

func TestWithCommonOmitsBlankValues(t *testing.T) {
	if attrs := WithCommon(nil, "", ""); len(attrs) != 0 {
		t.Fatalf("expected no attrs, got %+v", attrs)
	}
}

func TestFieldKeysAreDistinct(t *testing.T) {
	keys := []string{
		FieldService, FieldVersion, FieldProvider, FieldMode, FieldSport, FieldTeam,
		FieldOpponent, FieldStatusCode, FieldPath, FieldCount, FieldDurationMS, FieldAPICalls,
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k == "" || seen[k] {
			t.Fatalf("duplicate or empty field key %q", k)
		}
		seen[k] = true
	}
}
