// Package matchup scores two fantasy rosters against one weekend's statistics
// and derives totals, the winner and the top performers.
package matchup

import (
	"sort"
	"time"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/roster"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/scoring"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/stats"
)

// DefaultTopN is the number of top performers reported.
const DefaultTopN = 5

// ScoredEntry is a roster entry with its resolved record and score.
type ScoredEntry struct {
	Entry    roster.Entry
	Resolved roster.Resolved
	Line     stats.Line
	Points   float64
	Summary  string
}

// TeamResult is one scored roster.
type TeamResult struct {
	Name    string
	Entries []ScoredEntry
	Total   float64
}

// Ranked is a top performer.
type Ranked struct {
	ScoredEntry
	Rank int
}

// Outcome is the result of the head-to-head.
type Outcome struct {
	Tie    bool
	Winner string
	Loser  string
	Margin float64
}

// Result is a fully computed matchup. It is never mutated after Compute.
type Result struct {
	RunID       string
	GeneratedAt time.Time
	Weekend     string
	Team1       TeamResult
	Team2       TeamResult
	Top         []Ranked
}

// Options controls Compute.
type Options struct {
	RunID   string
	Weekend string
	TopN    int
	Now     func() time.Time
}

// Compute resolves and scores both rosters.
func Compute(scorer *scoring.Scorer, resolver *roster.Resolver, team1, team2 roster.Team, opts Options) *Result {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	r := &Result{
		RunID:       opts.RunID,
		GeneratedAt: now(),
		Weekend:     opts.Weekend,
		Team1:       ScoreTeam(scorer, resolver, team1),
		Team2:       ScoreTeam(scorer, resolver, team2),
	}

	r.Top = Rank(r.Entries(), opts.TopN)

	return r
}

// ScoreTeam resolves and scores every entry of team in roster order. The
// total sums the already rounded entry scores and is rounded again.
func ScoreTeam(scorer *scoring.Scorer, resolver *roster.Resolver, team roster.Team) TeamResult {
	tr := TeamResult{Name: team.Name, Entries: make([]ScoredEntry, 0, len(team.Roster))}

	var total float64
	for _, e := range team.Roster {
		resolved := resolver.Resolve(e)
		line := resolved.Line()
		points := scorer.Score(line)

		tr.Entries = append(tr.Entries, ScoredEntry{
			Entry:    e,
			Resolved: resolved,
			Line:     line,
			Points:   points,
			Summary:  StatSummary(resolved.Position, line),
		})
		total += points
	}
	tr.Total = scoring.Round2(total)

	return tr
}

// Rank orders entries by points descending, keeping roster order for ties,
// and returns the first n with 1-based ranks.
func Rank(entries []ScoredEntry, n int) []Ranked {
	sorted := make([]ScoredEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})

	if n > len(sorted) || n <= 0 {
		n = len(sorted)
	}
	ranked := make([]Ranked, 0, n)
	for i := 0; i < n; i++ {
		ranked = append(ranked, Ranked{ScoredEntry: sorted[i], Rank: i + 1})
	}
	return ranked
}

// Outcome compares the two team totals.
func (r *Result) Outcome() Outcome {
	t1, t2 := r.Team1, r.Team2
	switch {
	case t1.Total > t2.Total:
		return Outcome{Winner: t1.Name, Loser: t2.Name, Margin: scoring.Round2(t1.Total - t2.Total)}
	case t2.Total > t1.Total:
		return Outcome{Winner: t2.Name, Loser: t1.Name, Margin: scoring.Round2(t2.Total - t1.Total)}
	default:
		return Outcome{Tie: true}
	}
}

// Team returns team 1 or 2.
func (r *Result) Team(n int) (TeamResult, bool) {
	switch n {
	case 1:
		return r.Team1, true
	case 2:
		return r.Team2, true
	default:
		return TeamResult{}, false
	}
}

// Entries returns both rosters' entries, team 1 first.
func (r *Result) Entries() []ScoredEntry {
	all := make([]ScoredEntry, 0, len(r.Team1.Entries)+len(r.Team2.Entries))
	all = append(all, r.Team1.Entries...)
	return append(all, r.Team2.Entries...)
}
