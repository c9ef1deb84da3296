package matchup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Document is the JSON contract consumed by the display site.
type Document struct {
	GeneratedAt   string         `json:"generated_at"`
	Weekend       string         `json:"weekend"`
	Team1         TeamDocument   `json:"team1"`
	Team2         TeamDocument   `json:"team2"`
	TopPerformers []PerformerRow `json:"top_performers"`
}

type TeamDocument struct {
	Name        string      `json:"name"`
	TotalPoints float64     `json:"total_points"`
	Roster      []RosterRow `json:"roster"`
}

type RosterRow struct {
	Position string  `json:"position"`
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Stats    string  `json:"stats"`
	Points   float64 `json:"points"`
}

type PerformerRow struct {
	RosterRow
	Rank int `json:"rank"`
}

// Document converts the result into its JSON contract.
func (r *Result) Document() Document {
	return Document{
		GeneratedAt:   r.GeneratedAt.Format(time.RFC3339),
		Weekend:       r.Weekend,
		Team1:         teamDocument(r.Team1),
		Team2:         teamDocument(r.Team2),
		TopPerformers: PerformerRows(r.Top),
	}
}

// PerformerRows converts ranked entries into document rows.
func PerformerRows(ranked []Ranked) []PerformerRow {
	rows := make([]PerformerRow, 0, len(ranked))
	for _, p := range ranked {
		rows = append(rows, PerformerRow{RosterRow: rosterRow(p.ScoredEntry), Rank: p.Rank})
	}
	return rows
}

func teamDocument(t TeamResult) TeamDocument {
	td := TeamDocument{Name: t.Name, TotalPoints: t.Total, Roster: make([]RosterRow, 0, len(t.Entries))}
	for _, e := range t.Entries {
		td.Roster = append(td.Roster, rosterRow(e))
	}
	return td
}

func rosterRow(e ScoredEntry) RosterRow {
	return RosterRow{
		Position: e.Entry.Position,
		Name:     e.Entry.Name,
		Team:     e.Entry.Team,
		Stats:    e.Summary,
		Points:   e.Points,
	}
}

// Marshal encodes the document with two-space indentation.
func (d Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// WriteDocument writes doc to path, creating parent directories.
func WriteDocument(path string, doc Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	b, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
