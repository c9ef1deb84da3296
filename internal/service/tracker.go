// Package service runs the matchup pipeline and keeps the latest result for
// the API layers.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/config"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/ingest/espn"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/matchup"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/publisher"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/roster"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/scoring"
)

// ErrNotReady is returned before the first refresh completes.
var ErrNotReady = errors.New("no matchup computed yet")

// Ingester collects one slate of games into a stat book.
type Ingester interface {
	Ingest(ctx context.Context, q espn.ScoreboardQuery) *espn.IngestResult
}

// IngestSummary describes the ingest pass behind a snapshot.
type IngestSummary struct {
	Games     int      `json:"games"`
	Processed int      `json:"processed"`
	Failed    []string `json:"failed"`
	Players   int      `json:"players"`
	Kickers   int      `json:"kickers"`
	Defenses  int      `json:"defenses"`
}

// Snapshot is one computed matchup. Snapshots are immutable once published
// through Latest.
type Snapshot struct {
	RunID    string
	Result   *matchup.Result
	Document matchup.Document
	Ingest   IngestSummary
	Duration time.Duration
}

// Tracker owns the league, the scorer and the latest snapshot.
type Tracker struct {
	ingester  Ingester
	scorer    *scoring.Scorer
	league    *config.League
	publisher publisher.Publisher
	topN      int
	now       func() time.Time
	log       *logrus.Entry

	refreshMu sync.Mutex

	mu     sync.RWMutex
	latest *Snapshot
}

// Option customizes a Tracker.
type Option func(*Tracker)

// WithPublisher sends every computed document to p.
func WithPublisher(p publisher.Publisher) Option {
	return func(t *Tracker) { t.publisher = p }
}

// WithTopN sets the number of top performers.
func WithTopN(n int) Option {
	return func(t *Tracker) { t.topN = n }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// NewTracker builds a tracker for league. The league's rules must be valid.
func NewTracker(ingester Ingester, league *config.League, log *logrus.Entry, opts ...Option) (*Tracker, error) {
	scorer, err := scoring.NewScorer(league.Rules)
	if err != nil {
		return nil, fmt.Errorf("building scorer: %w", err)
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	t := &Tracker{
		ingester:  ingester,
		scorer:    scorer,
		league:    league,
		publisher: publisher.Noop{},
		topN:      matchup.DefaultTopN,
		now:       time.Now,
		log:       log.WithField("component", "tracker"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// League returns the tracked league.
func (t *Tracker) League() *config.League {
	return t.league
}

// Refresh runs the full pipeline and swaps in the new snapshot. Concurrent
// calls are serialized; readers keep seeing the previous snapshot until the
// swap.
func (t *Tracker) Refresh(ctx context.Context) (*Snapshot, error) {
	t.refreshMu.Lock()
	defer t.refreshMu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := t.now()
	runID := uuid.NewString()
	log := t.log.WithField("run_id", runID)
	log.WithField("weekend", t.league.Weekend).Info("refreshing matchup")

	ingest := t.ingester.Ingest(ctx, t.league.Scoreboard)
	resolver := roster.NewResolver(ingest.Book)

	result := matchup.Compute(t.scorer, resolver, t.league.Team1, t.league.Team2, matchup.Options{
		RunID:   runID,
		Weekend: t.league.Weekend,
		TopN:    t.topN,
		Now:     t.now,
	})

	snap := &Snapshot{
		RunID:    runID,
		Result:   result,
		Document: result.Document(),
		Ingest:   summarize(ingest),
	}

	if err := t.publisher.Publish(ctx, runID, snap.Document); err != nil {
		log.WithError(err).Warn("publish failed")
	}

	snap.Duration = t.now().Sub(start)

	t.mu.Lock()
	t.latest = snap
	t.mu.Unlock()

	outcome := result.Outcome()
	log.WithFields(logrus.Fields{
		"team1_total": result.Team1.Total,
		"team2_total": result.Team2.Total,
		"winner":      outcome.Winner,
		"tie":         outcome.Tie,
		"duration_ms": snap.Duration.Milliseconds(),
	}).Info("matchup refreshed")

	return snap, nil
}

func summarize(r *espn.IngestResult) IngestSummary {
	s := IngestSummary{
		Games:     len(r.GameIDs),
		Processed: len(r.Processed),
		Failed:    append([]string{}, r.Failed...),
	}
	if r.Book != nil {
		s.Players, s.Kickers, s.Defenses = r.Book.Counts()
	}
	return s
}

// Latest returns the most recent snapshot or ErrNotReady.
func (t *Tracker) Latest() (*Snapshot, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.latest == nil {
		return nil, ErrNotReady
	}
	return t.latest, nil
}

// FindPlayer returns every rostered entry of the latest snapshot whose name
// contains query, case-insensitively. Team 1 entries come first.
func (t *Tracker) FindPlayer(query string) ([]PlayerScore, error) {
	snap, err := t.Latest()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, errors.New("player name is required")
	}

	var found []PlayerScore
	for _, team := range []matchup.TeamResult{snap.Result.Team1, snap.Result.Team2} {
		for _, e := range team.Entries {
			if strings.Contains(strings.ToLower(e.Entry.Name), q) {
				found = append(found, PlayerScore{
					FantasyTeam: team.Name,
					Name:        e.Entry.Name,
					Position:    e.Entry.Position,
					Team:        e.Entry.Team,
					Matched:     e.Resolved.Matched,
					Stats:       e.Summary,
					Points:      e.Points,
				})
			}
		}
	}
	return found, nil
}

// PlayerScore is one rostered entry's score.
type PlayerScore struct {
	FantasyTeam string  `json:"fantasy_team"`
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	Team        string  `json:"team"`
	Matched     bool    `json:"matched"`
	Stats       string  `json:"stats"`
	Points      float64 `json:"points"`
}
