package espn

import (
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/playbyplay"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/stats"
)

// ScoreboardQuery selects a slate of games, e.g. Dates "20260125-20260126",
// SeasonType 3 (postseason).
type ScoreboardQuery struct {
	Dates      string `yaml:"dates" json:"dates"`
	SeasonType int    `yaml:"season_type" json:"season_type"`
	Limit      int    `yaml:"limit" json:"limit"`
}

// TeamMeta captures ESPN team identifiers for one game.
type TeamMeta struct {
	Abbreviation string
	ESPNID       string
	Score        int
	HasScore     bool
}

// ParsedGame is everything the pipeline needs from one summary payload.
type ParsedGame struct {
	ID      string
	Teams   []TeamMeta
	Table   playbyplay.TeamTable
	Players *stats.Book // offensive records and partial defenses
	Plays   []playbyplay.Play
}

// IngestResult is the outcome of one sequential pass over a slate.
type IngestResult struct {
	Book      *stats.Book
	GameIDs   []string
	Processed []string
	Failed    []string
}
