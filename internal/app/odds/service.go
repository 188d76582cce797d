package odds

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	domainodds "github.com/preston-bernstein/sports-snapshots/internal/domain/odds"
	"github.com/preston-bernstein/sports-snapshots/internal/logging"
	"github.com/preston-bernstein/sports-snapshots/internal/metrics"
	"github.com/preston-bernstein/sports-snapshots/internal/providers"
	"github.com/preston-bernstein/sports-snapshots/internal/snapshots"
	"github.com/preston-bernstein/sports-snapshots/internal/timeutil"
)

const workflowName = "odds"

// SnapshotWriter persists named snapshots.
type SnapshotWriter interface {
	Write(name string, payload any) error
}

// Config carries the per-run settings of the odds workflow.
type Config struct {
	Sports   []string
	Location *time.Location
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Service fetches odds for every configured sport and writes odds.json.
type Service struct {
	provider providers.OddsProvider
	writer   SnapshotWriter
	sports   []string
	location *time.Location
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	calls atomic.Int64
}

// NewService constructs an odds Service.
func NewService(provider providers.OddsProvider, writer SnapshotWriter, cfg Config) *Service {
	return &Service{
		provider: provider,
		writer:   writer,
		sports:   append([]string(nil), cfg.Sports...),
		location: cfg.Location,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		now:      time.Now,
	}
}

// Fetch requests every sport concurrently. Failed sports are logged and left out;
// the remaining sports keep their configured order.
func (s *Service) Fetch(ctx context.Context) domainodds.Snapshot {
	results := make([]*domainodds.SportOdds, len(s.sports))

	var g errgroup.Group
	for i, sport := range s.sports {
		g.Go(func() error {
			s.calls.Add(1)
			games, err := s.provider.FetchOdds(ctx, sport)
			if err != nil {
				s.logFailure(sport, err)
				return nil
			}
			logging.Info(s.logger, "odds fetched",
				logging.FieldSport, sport,
				logging.FieldCount, len(games),
			)
			entry := domainodds.NewSportOdds(sport, games)
			results[i] = &entry
			return nil
		})
	}
	_ = g.Wait()

	sports := make([]domainodds.SportOdds, 0, len(results))
	for _, r := range results {
		if r != nil {
			sports = append(sports, *r)
		}
	}

	now := s.now()
	return domainodds.NewSnapshot(timeutil.FormatISO(now), timeutil.FormatLocal(now, s.location), sports)
}

// Run fetches all sports and writes odds.json, even when every sport failed. A cancelled
// context aborts the run before anything is written.
func (s *Service) Run(ctx context.Context) error {
	start := s.now()
	logging.Info(s.logger, "fetching odds",
		logging.FieldCount, len(s.sports),
		"local_time", timeutil.FormatLocal(start, s.location),
	)

	snap := s.Fetch(ctx)
	if err := ctx.Err(); err != nil {
		s.metrics.RecordWorkflow(workflowName, s.now().Sub(start), 0, err)
		return fmt.Errorf("odds run interrupted: %w", err)
	}
	err := s.writer.Write(snapshots.OddsFile, snap)
	s.metrics.RecordWorkflow(workflowName, s.now().Sub(start), len(snap.Sports), err)
	if err != nil {
		return fmt.Errorf("write odds snapshot: %w", err)
	}

	logging.Info(s.logger, "odds snapshot written",
		logging.FieldPath, snapshots.OddsFile,
		logging.FieldCount, len(snap.Sports),
		logging.FieldAPICalls, s.Calls(),
	)
	return nil
}

// Calls returns how many upstream odds requests this service has issued.
func (s *Service) Calls() int {
	return int(s.calls.Load())
}

func (s *Service) logFailure(sport string, err error) {
	args := []any{logging.FieldSport, sport}
	if code := providers.StatusCode(err); code != 0 {
		args = append(args, logging.FieldStatusCode, code)
	}
	logging.Error(s.logger, "odds fetch failed", err, args...)
}
