package testutil

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNowAt(t *testing.T) {
	fixed := MustParseRFC3339("2024-01-02T03:04:05Z")
	if got := NowAt(fixed)(); !got.Equal(fixed) {
		t.Fatalf("expected fixed clock, got %s", got)
	}
}

func TestMustParseRFC3339Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on bad timestamp")
		}
	}()
	MustParseRFC3339("nope")
}

func TestClientFuncUsesTransport(t *testing.T) {
	client := ClientFunc(func(req *http.Request) (*http.Response, error) {
		return Response(http.StatusTeapot, "short and stout"), nil
	})
	resp, err := client.Get("http://example.com")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusTeapot {
		t.Fatalf("expected teapot, got %d", resp.StatusCode)
	}
}

func TestFixturesAreValidJSON(t *testing.T) {
	payloads := []string{
		OddsGameJSON("g1", "basketball_nba"),
		TeamProfileJSON("7", "Denver Nuggets", "DEN", 10, 5, 0, 0.667, "1st in Northwest Division"),
		TeamProfileJSON("7", "Denver Nuggets", "DEN", 10, 5, 0, 0.667, ""),
		ScheduleEventJSON("e1", "2024-01-02T02:00Z", "pre", "7", "13"),
	}
	for _, p := range payloads {
		if !json.Valid([]byte(p)) {
			t.Fatalf("invalid fixture json: %s", p)
		}
	}
}

func TestReadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	var out map[string]int
	ReadJSONFile(t, path, &out)
	if out["a"] != 1 {
		t.Fatalf("unexpected decode %+v", out)
	}
}

func TestNewBufferLogger(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "at", time.Time{}.Year())
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
}

func TestStepClockAdvances(t *testing.T) {
	start := MustParseRFC3339("2024-01-02T00:00:00Z")
	clock := StepClock(start, time.Second)
	if got := clock(); !got.Equal(start) {
		t.Fatalf("expected first tick at start, got %s", got)
	}
	if got := clock(); !got.Equal(start.Add(time.Second)) {
		t.Fatalf("expected second tick one step later, got %s", got)
	}
}

func TestNewDebugBufferLogger(t *testing.T) {
	logger, buf := NewDebugBufferLogger()
	logger.Debug("quiet")
	if buf.Len() == 0 {
		t.Fatalf("expected debug output")
	}
}
