package standings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	domainstandings "github.com/preston-bernstein/sports-snapshots/internal/domain/standings"
	"github.com/preston-bernstein/sports-snapshots/internal/logging"
	"github.com/preston-bernstein/sports-snapshots/internal/metrics"
	"github.com/preston-bernstein/sports-snapshots/internal/providers"
	"github.com/preston-bernstein/sports-snapshots/internal/snapshots"
	"github.com/preston-bernstein/sports-snapshots/internal/timeutil"
)

const (
	workflowName         = "standings"
	defaultUpcomingGames = 3
)

// SnapshotWriter persists named snapshots.
type SnapshotWriter interface {
	Write(name string, payload any) error
}

// Config carries the per-run settings of the standings workflow.
// A nil Teams uses the tracked teams.
type Config struct {
	Teams         []domainstandings.TeamDescriptor
	UpcomingGames int
	Location      *time.Location
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
}

// Service fetches tracked team standings and their upcoming opponents, then writes standings.json.
type Service struct {
	provider providers.StandingsProvider
	writer   SnapshotWriter
	teams    []domainstandings.TeamDescriptor
	upcoming int
	location *time.Location
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewService constructs a standings Service.
func NewService(provider providers.StandingsProvider, writer SnapshotWriter, cfg Config) *Service {
	teams := cfg.Teams
	if teams == nil {
		teams = domainstandings.Teams()
	}
	upcoming := cfg.UpcomingGames
	if upcoming <= 0 {
		upcoming = defaultUpcomingGames
	}
	return &Service{
		provider: provider,
		writer:   writer,
		teams:    append([]domainstandings.TeamDescriptor(nil), teams...),
		upcoming: upcoming,
		location: cfg.Location,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		now:      time.Now,
	}
}

// FetchTeams looks up every tracked team concurrently. Failed teams are logged and
// left out; the rest keep their configured order.
func (s *Service) FetchTeams(ctx context.Context) []domainstandings.TeamStanding {
	results := make([]*domainstandings.TeamStanding, len(s.teams))

	var g errgroup.Group
	for i, team := range s.teams {
		g.Go(func() error {
			profile, err := s.provider.FetchTeam(ctx, team.Sport, team.IDString())
			if err != nil {
				s.logTeamError("team standing fetch failed", team, err)
				return nil
			}
			entry := domainstandings.NewTeamStanding(team, profile)
			results[i] = &entry
			return nil
		})
	}
	_ = g.Wait()

	out := make([]domainstandings.TeamStanding, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// Fetch assembles the standings snapshot for the tracked teams and their opponents.
func (s *Service) Fetch(ctx context.Context) domainstandings.Snapshot {
	teams := s.FetchTeams(ctx)
	opponents := s.FetchOpponents(ctx)

	now := s.now()
	return domainstandings.NewSnapshot(timeutil.FormatISO(now), timeutil.FormatLocal(now, s.location), teams, opponents)
}

// Run fetches standings and writes standings.json. A cancelled context aborts the run
// before anything is written.
func (s *Service) Run(ctx context.Context) error {
	start := s.now()
	logging.Info(s.logger, "fetching standings", logging.FieldCount, len(s.teams))

	snap := s.Fetch(ctx)
	if err := ctx.Err(); err != nil {
		s.metrics.RecordWorkflow(workflowName, s.now().Sub(start), 0, err)
		return fmt.Errorf("standings run interrupted: %w", err)
	}
	err := s.writer.Write(snapshots.StandingsFile, snap)
	s.metrics.RecordWorkflow(workflowName, s.now().Sub(start), len(snap.Teams)+len(snap.Opponents), err)
	if err != nil {
		return fmt.Errorf("write standings snapshot: %w", err)
	}

	logging.Info(s.logger, "standings snapshot written",
		logging.FieldPath, snapshots.StandingsFile,
		"teams", len(snap.Teams),
		"opponents", len(snap.Opponents),
	)
	return nil
}

func (s *Service) logTeamError(msg string, team domainstandings.TeamDescriptor, err error) {
	args := []any{
		logging.FieldSport, team.Sport,
		logging.FieldTeam, team.Name,
	}
	if code := providers.StatusCode(err); code != 0 {
		args = append(args, logging.FieldStatusCode, code)
	}
	logging.Error(s.logger, msg, err, args...)
}
