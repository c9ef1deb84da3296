package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/matchup"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/roster"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/stats"
)

func sampleResult() *matchup.Result {
	maye := matchup.ScoredEntry{
		Entry:    roster.Entry{Name: "Drake Maye", Position: roster.QB, Team: "NE"},
		Resolved: roster.Resolved{Kind: roster.KindPlayer, Matched: true},
		Line:     stats.Line{PassingYards: 350, PassingTDs: 3, Interceptions: 1, PointsAllowed: -1},
		Points:   40,
		Summary:  "350 pass yds, 3 pass TD, 1 INT",
	}
	lutz := matchup.ScoredEntry{
		Entry:    roster.Entry{Name: "Will Lutz", Position: roster.Kicker, Team: "DEN"},
		Resolved: roster.Resolved{Kind: roster.KindKicker, Matched: true},
		Line:     stats.Line{Kicking: stats.Kicking{FG0To39: 1, Miss50Plus: 1, PATMade: 2}, PointsAllowed: -1},
		Points:   5,
		Summary:  "1/2 FG, 2/2 XP",
	}
	sea := matchup.ScoredEntry{
		Entry:    roster.Entry{Name: "Seahawks D/ST", Position: roster.Defense, Team: "SEA"},
		Resolved: roster.Resolved{Kind: roster.KindDefense},
		Line:     stats.Line{},
		Points:   15,
		Summary:  "0 PA",
	}

	return &matchup.Result{
		GeneratedAt: time.Date(2026, 1, 27, 9, 30, 0, 0, time.UTC),
		Weekend:     "Conference Championships - Jan 25-26, 2026",
		Team1:       matchup.TeamResult{Name: "TEAM 1", Entries: []matchup.ScoredEntry{maye}, Total: 40},
		Team2:       matchup.TeamResult{Name: "TEAM 2", Entries: []matchup.ScoredEntry{lutz, sea}, Total: 20},
		Top: []matchup.Ranked{
			{ScoredEntry: maye, Rank: 1},
			{ScoredEntry: sea, Rank: 2},
		},
	}
}

func TestWriteConsole(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteConsole(&buf, sampleResult()); err != nil {
		t.Fatalf("WriteConsole: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"CONFERENCE CHAMPIONSHIPS - JAN 25-26, 2026",
		"1. Drake Maye (QB, NE) - 40.00 pts",
		"   Passing: 350 yds, 3 TD, 1 INT",
		"   FG: 1/2, XP: 2/2",
		"     0-39 yds: 1 made",
		"     50+ yds: 1 missed",
		"   Points Allowed: 0",
		"   (no stats found)",
		"TOTAL POINTS: 20.00",
		"TEAM 1: 40.00 points",
		"TEAM 1 WINS by 20.00 points!",
		"2. Seahawks D/ST (D/ST, SEA) - 15.00 pts - 0 PA",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q", want)
		}
	}
}

func TestWriteConsoleTie(t *testing.T) {
	r := sampleResult()
	r.Team2.Total = 40

	var buf bytes.Buffer
	if err := WriteConsole(&buf, r); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "TIE GAME!") {
		t.Error("tie not reported")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteConsoleReturnsWriteError(t *testing.T) {
	if err := WriteConsole(failingWriter{}, sampleResult()); err == nil {
		t.Error("err = nil, want write error")
	}
}

func TestWritePage(t *testing.T) {
	doc := sampleResult().Document()

	var buf bytes.Buffer
	if err := WritePage(&buf, doc); err != nil {
		t.Fatalf("WritePage: %v", err)
	}

	page, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if got := page.Find("#team1-score").Text(); got != "40.00" {
		t.Errorf("team1 score = %q, want 40.00", got)
	}
	if got := page.Find("#team2-total").Text(); got != "20.00" {
		t.Errorf("team2 total = %q, want 20.00", got)
	}
	if got := page.Find("#team2-tbody tr").Length(); got != 2 {
		t.Errorf("team2 rows = %d, want 2", got)
	}
	if got := strings.TrimSpace(page.Find("#winner").Text()); got != "TEAM 1 WINS by 20.00 points!" {
		t.Errorf("winner = %q", got)
	}

	first := page.Find("#top-performers tbody tr").First()
	if got := first.Find(".rank").Text(); got != "1" {
		t.Errorf("rank = %q, want 1", got)
	}
	if got := first.Find(".name").Text(); got != "Drake Maye" {
		t.Errorf("name = %q, want Drake Maye", got)
	}
	if got := page.Find("#team1-tbody .stats").First().Text(); got != "350 pass yds, 3 pass TD, 1 INT" {
		t.Errorf("stats = %q", got)
	}
}

func TestWritePageEscapesNames(t *testing.T) {
	doc := sampleResult().Document()
	doc.Team1.Name = "<script>alert(1)</script>"

	var buf bytes.Buffer
	if err := WritePage(&buf, doc); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<script>alert(1)</script>") {
		t.Error("team name was not escaped")
	}
}
