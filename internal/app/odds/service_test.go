package odds

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	domainodds "github.com/preston-bernstein/sports-snapshots/internal/domain/odds"
	"github.com/preston-bernstein/sports-snapshots/internal/metrics"
	"github.com/preston-bernstein/sports-snapshots/internal/providers"
	"github.com/preston-bernstein/sports-snapshots/internal/providers/oddsapi"
	"github.com/preston-bernstein/sports-snapshots/internal/snapshots"
	"github.com/preston-bernstein/sports-snapshots/internal/teststubs"
	"github.com/preston-bernstein/sports-snapshots/internal/testutil"
)

func rawGames(sport string, ids ...string) []domainodds.Game {
	out := make([]domainodds.Game, 0, len(ids))
	for _, id := range ids {
		out = append(out, domainodds.Game(testutil.OddsGameJSON(id, sport)))
	}
	return out
}

func newTestService(provider providers.OddsProvider, writer SnapshotWriter, sports ...string) *Service {
	logger, _ := testutil.NewBufferLogger()
	svc := NewService(provider, writer, Config{Sports: sports, Location: time.UTC, Logger: logger})
	svc.now = testutil.NowAt(testutil.MustParseRFC3339("2024-01-02T03:04:05Z"))
	return svc
}

func TestFetchKeepsConfiguredOrderAndDropsFailures(t *testing.T) {
	stub := &teststubs.StubOddsProvider{
		Games: map[string][]domainodds.Game{
			"a": rawGames("a", "a1"),
			"c": rawGames("c", "c1", "c2"),
			"d": {},
		},
		Errs: map[string]error{
			"b": &providers.StatusError{Provider: "oddsapi", StatusCode: http.StatusUnauthorized},
		},
	}
	svc := newTestService(stub, nil, "a", "b", "c", "d")

	snap := svc.Fetch(context.Background())

	if len(snap.Sports) != 3 {
		t.Fatalf("expected 3 sports, got %d", len(snap.Sports))
	}
	want := []string{"a", "c", "d"}
	for i, sport := range want {
		if snap.Sports[i].Sport != sport {
			t.Fatalf("expected sport %s at %d, got %s", sport, i, snap.Sports[i].Sport)
		}
	}
	if len(snap.Sports[1].Games) != 2 {
		t.Fatalf("expected c to keep both games, got %d", len(snap.Sports[1].Games))
	}
	if snap.Sports[2].Games == nil {
		t.Fatalf("expected empty games list to stay non-nil")
	}
	if len(stub.Calls()) != 4 || svc.Calls() != 4 {
		t.Fatalf("expected one request per sport, got %v", stub.Calls())
	}
}

func TestFetchStampsTimestamps(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	denver, err := time.LoadLocation("America/Denver")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	svc := NewService(&teststubs.StubOddsProvider{}, nil, Config{Location: denver, Logger: logger})
	svc.now = testutil.NowAt(testutil.MustParseRFC3339("2024-01-02T03:04:05Z"))

	snap := svc.Fetch(context.Background())

	if snap.LastUpdated != "2024-01-02T03:04:05.000Z" {
		t.Fatalf("unexpected lastUpdated %s", snap.LastUpdated)
	}
	if snap.LastUpdatedMT != "1/1/2024, 8:04:05 PM" {
		t.Fatalf("unexpected lastUpdatedMT %s", snap.LastUpdatedMT)
	}
	if snap.Sports == nil {
		t.Fatalf("expected empty sports list, got nil")
	}
}

func TestFetchLogsFailureWithStatusCode(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	stub := &teststubs.StubOddsProvider{
		Errs: map[string]error{"x": &providers.StatusError{Provider: "oddsapi", StatusCode: 422}},
	}
	svc := NewService(stub, nil, Config{Sports: []string{"x"}, Logger: logger})

	svc.Fetch(context.Background())

	out := buf.String()
	if !strings.Contains(out, "odds fetch failed") || !strings.Contains(out, "status_code=422") {
		t.Fatalf("expected failure log with status code, got %s", out)
	}
}

func TestRunWritesSnapshotEvenWhenAllFail(t *testing.T) {
	stub := &teststubs.StubOddsProvider{
		Errs: map[string]error{"a": errors.New("boom")},
	}
	writer := &teststubs.StubSnapshotWriter{}
	svc := newTestService(stub, writer, "a")

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, ok := writer.Written[snapshots.OddsFile].(domainodds.Snapshot)
	if !ok {
		t.Fatalf("expected odds snapshot written, got %+v", writer.Written)
	}
	if len(snap.Sports) != 0 {
		t.Fatalf("expected no sports, got %+v", snap.Sports)
	}
}

func TestRunReturnsWriteError(t *testing.T) {
	rec := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()
	writer := &teststubs.StubSnapshotWriter{Err: errors.New("disk full")}
	svc := NewService(&teststubs.StubOddsProvider{}, writer, Config{Sports: []string{"a"}, Logger: logger, Metrics: rec})

	err := svc.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestRunEndToEndWithTwoSports(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sport := strings.Split(strings.TrimPrefix(r.URL.Path, "/sports/"), "/")[0]
		w.Header().Set("x-requests-remaining", "498")
		w.Header().Set("x-requests-used", "2")
		_, _ = w.Write([]byte("[" + testutil.OddsGameJSON(sport+"-1", sport) + "]"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	client := oddsapi.NewClient(oddsapi.Config{BaseURL: srv.URL, APIKey: "test", HTTPClient: srv.Client()})
	svc := newTestService(client, snapshots.NewWriter(dir, nil), "icehockey_nhl", "basketball_nba")

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var got struct {
		LastUpdated   string `json:"lastUpdated"`
		LastUpdatedMT string `json:"lastUpdatedMT"`
		Sports        []struct {
			Sport string            `json:"sport"`
			Games []json.RawMessage `json:"games"`
		} `json:"sports"`
	}
	testutil.ReadJSONFile(t, filepath.Join(dir, snapshots.OddsFile), &got)

	if len(got.Sports) != 2 || got.Sports[0].Sport != "icehockey_nhl" || got.Sports[1].Sport != "basketball_nba" {
		t.Fatalf("unexpected sports %+v", got.Sports)
	}
	for _, s := range got.Sports {
		if len(s.Games) != 1 {
			t.Fatalf("expected one game for %s, got %d", s.Sport, len(s.Games))
		}
	}
	if _, err := time.Parse(time.RFC3339Nano, got.LastUpdated); err != nil {
		t.Fatalf("expected ISO lastUpdated, got %q: %v", got.LastUpdated, err)
	}
	if !strings.HasSuffix(got.LastUpdated, "Z") || got.LastUpdatedMT == "" {
		t.Fatalf("unexpected timestamps %+v", got)
	}
	if q := client.Quota(); q.Remaining != "498" {
		t.Fatalf("expected quota tracked, got %+v", q)
	}
}

func TestRunIsDeterministicForSameInput(t *testing.T) {
	stub := &teststubs.StubOddsProvider{
		Games: map[string][]domainodds.Game{"a": rawGames("a", "a1"), "b": rawGames("b", "b1")},
	}
	first, second := t.TempDir(), t.TempDir()

	for _, dir := range []string{first, second} {
		svc := newTestService(stub, snapshots.NewWriter(dir, nil), "a", "b")
		if err := svc.Run(context.Background()); err != nil {
			t.Fatalf("run failed: %v", err)
		}
	}

	a, _ := os.ReadFile(filepath.Join(first, snapshots.OddsFile))
	b, _ := os.ReadFile(filepath.Join(second, snapshots.OddsFile))
	if string(a) != string(b) {
		t.Fatalf("expected identical snapshots:\n%s\n%s", a, b)
	}
}

// barrierOdds only answers once every expected sport has a request in flight.
type barrierOdds struct {
	started sync.WaitGroup
	release chan struct{}
	once    sync.Once
}

func newBarrierOdds(n int) *barrierOdds {
	b := &barrierOdds{release: make(chan struct{})}
	b.started.Add(n)
	go func() {
		b.started.Wait()
		b.once.Do(func() { close(b.release) })
	}()
	return b
}

func (b *barrierOdds) FetchOdds(ctx context.Context, sport string) ([]domainodds.Game, error) {
	b.started.Done()
	select {
	case <-b.release:
		return rawGames(sport, sport+"-1"), nil
	case <-time.After(2 * time.Second):
		return nil, errors.New("requests were not issued concurrently")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestFetchIssuesSportRequestsConcurrently(t *testing.T) {
	sports := []string{"icehockey_nhl", "basketball_nba", "americanfootball_nfl", "americanfootball_ncaaf"}
	svc := newTestService(newBarrierOdds(len(sports)), nil, sports...)

	snap := svc.Fetch(context.Background())

	if len(snap.Sports) != len(sports) {
		t.Fatalf("expected every sport to succeed concurrently, got %+v", snap.Sports)
	}
	for i, sport := range sports {
		if snap.Sports[i].Sport != sport {
			t.Fatalf("expected %s at %d, got %s", sport, i, snap.Sports[i].Sport)
		}
	}
}

func TestRunWithCancelledContextKeepsPreviousSnapshot(t *testing.T) {
	dir := t.TempDir()
	writer := snapshots.NewWriter(dir, nil)
	stub := &teststubs.StubOddsProvider{
		Games: map[string][]domainodds.Game{"a": rawGames("a", "a1")},
	}
	if err := newTestService(stub, writer, "a").Run(context.Background()); err != nil {
		t.Fatalf("initial run failed: %v", err)
	}
	before, err := os.ReadFile(filepath.Join(dir, snapshots.OddsFile))
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	failing := &teststubs.StubOddsProvider{Errs: map[string]error{"a": context.Canceled}}
	err = newTestService(failing, writer, "a").Run(ctx)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation error, got %v", err)
	}
	after, _ := os.ReadFile(filepath.Join(dir, snapshots.OddsFile))
	if string(before) != string(after) {
		t.Fatalf("expected previous snapshot kept:\n%s\n%s", before, after)
	}
}
