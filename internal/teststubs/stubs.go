package teststubs

import (
	"context"
	"sync"

	"github.com/preston-bernstein/sports-snapshots/internal/domain/odds"
	"github.com/preston-bernstein/sports-snapshots/internal/domain/standings"
)

// StubOddsProvider is a test double for providers.OddsProvider keyed by sport.
type StubOddsProvider struct {
	Games map[string][]odds.Game
	Errs  map[string]error

	mu    sync.Mutex
	calls []string
}

// FetchOdds returns configured games or error for the sport while tracking calls.
func (s *StubOddsProvider) FetchOdds(ctx context.Context, sport string) ([]odds.Game, error) {
	_ = ctx
	s.mu.Lock()
	s.calls = append(s.calls, sport)
	s.mu.Unlock()
	if err, ok := s.Errs[sport]; ok {
		return nil, err
	}
	return s.Games[sport], nil
}

// Calls returns the sports requested so far (order is not guaranteed across goroutines).
func (s *StubOddsProvider) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// StubStandingsProvider is a test double for providers.StandingsProvider.
// Profiles, Schedules and errors are keyed by standings.OpponentKey(sport, id).
type StubStandingsProvider struct {
	Profiles     map[string]standings.TeamProfile
	Schedules    map[string][]standings.ScheduledGame
	TeamErrs     map[string]error
	ScheduleErrs map[string]error

	mu            sync.Mutex
	teamCalls     map[string]int
	scheduleCalls map[string]int
}

// FetchTeam returns the configured profile and counts lookups per key.
func (s *StubStandingsProvider) FetchTeam(ctx context.Context, sport, teamID string) (standings.TeamProfile, error) {
	_ = ctx
	key := standings.OpponentKey(sport, teamID)
	s.mu.Lock()
	if s.teamCalls == nil {
		s.teamCalls = make(map[string]int)
	}
	s.teamCalls[key]++
	s.mu.Unlock()
	if err, ok := s.TeamErrs[key]; ok {
		return standings.TeamProfile{}, err
	}
	return s.Profiles[key], nil
}

// FetchSchedule returns the configured schedule and counts lookups per key.
func (s *StubStandingsProvider) FetchSchedule(ctx context.Context, sport, teamID string) ([]standings.ScheduledGame, error) {
	_ = ctx
	key := standings.OpponentKey(sport, teamID)
	s.mu.Lock()
	if s.scheduleCalls == nil {
		s.scheduleCalls = make(map[string]int)
	}
	s.scheduleCalls[key]++
	s.mu.Unlock()
	if err, ok := s.ScheduleErrs[key]; ok {
		return nil, err
	}
	return s.Schedules[key], nil
}

// TeamCalls returns how many profile lookups happened for the key.
func (s *StubStandingsProvider) TeamCalls(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.teamCalls[key]
}

// ScheduleCalls returns how many schedule lookups happened for the key.
func (s *StubStandingsProvider) ScheduleCalls(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduleCalls[key]
}

// StubSnapshotWriter is a test double for the snapshot writer.
type StubSnapshotWriter struct {
	Written map[string]any
	Err     error
}

// Write records the payload for verification in tests.
func (w *StubSnapshotWriter) Write(name string, payload any) error {
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[string]any)
	}
	w.Written[name] = payload
	return nil
}
