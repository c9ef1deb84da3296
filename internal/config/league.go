package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/ingest/espn"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/roster"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/scoring"
)

// ErrNoRoster is returned when a league defines a team without entries.
var ErrNoRoster = errors.New("team has no roster entries")

// League is one weekend's matchup: the slate to fetch, both rosters and the
// scoring table.
type League struct {
	Weekend    string               `yaml:"weekend"`
	Scoreboard espn.ScoreboardQuery `yaml:"scoreboard"`
	Team1      roster.Team          `yaml:"team1"`
	Team2      roster.Team          `yaml:"team2"`
	Rules      scoring.Rules        `yaml:"-"`
	Scoring    yaml.Node            `yaml:"scoring"`
}

// LoadLeague reads, merges and validates a league file. An empty path
// returns the built-in league.
func LoadLeague(path string) (*League, error) {
	if path == "" {
		l := DefaultLeague()
		return &l, nil
	}

	l, err := LoadLeagueUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("league %s: %w", path, err)
	}
	return l, nil
}

// LoadLeagueUnchecked reads a league file over the defaults without
// validation.
func LoadLeagueUnchecked(path string) (*League, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read league: %w", err)
	}
	return ParseLeague(raw)
}

// ParseLeague decodes league YAML. Missing scalar fields keep the defaults;
// a team given in the file replaces the default team entirely. The optional
// scoring section overrides DefaultRules.
func ParseLeague(raw []byte) (*League, error) {
	l := DefaultLeague()

	var file League
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode league: %w", err)
	}

	if file.Weekend != "" {
		l.Weekend = file.Weekend
	}
	if file.Scoreboard.Dates != "" {
		l.Scoreboard.Dates = file.Scoreboard.Dates
	}
	if file.Scoreboard.SeasonType > 0 {
		l.Scoreboard.SeasonType = file.Scoreboard.SeasonType
	}
	if file.Scoreboard.Limit > 0 {
		l.Scoreboard.Limit = file.Scoreboard.Limit
	}

	l.Team1 = mergeTeam(l.Team1, file.Team1)
	l.Team2 = mergeTeam(l.Team2, file.Team2)

	if file.Scoring.Kind != 0 {
		rules := scoring.DefaultRules()
		if err := file.Scoring.Decode(&rules); err != nil {
			return nil, fmt.Errorf("decode scoring: %w", err)
		}
		l.Rules = rules
	}

	return &l, nil
}

func mergeTeam(base, override roster.Team) roster.Team {
	if override.Name == "" && override.Roster == nil {
		return base
	}
	if override.Name == "" {
		override.Name = base.Name
	}
	return override
}

// Validate checks both rosters and the scoring table.
func (l *League) Validate() error {
	if l.Scoreboard.Dates == "" {
		return errors.New("scoreboard.dates is required")
	}
	for i, team := range []roster.Team{l.Team1, l.Team2} {
		if team.Name == "" {
			return fmt.Errorf("team%d has no name", i+1)
		}
		if len(team.Roster) == 0 {
			return fmt.Errorf("team%d %q: %w", i+1, team.Name, ErrNoRoster)
		}
		for _, e := range team.Roster {
			if err := e.Validate(); err != nil {
				return fmt.Errorf("team%d %q: %w", i+1, team.Name, err)
			}
		}
	}
	if err := l.Rules.Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	return nil
}
