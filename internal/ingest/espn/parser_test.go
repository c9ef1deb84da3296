package espn

import (
	"encoding/json"
	"testing"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/stats"
)

const summaryFixture = `{
  "header": {
    "competitions": [{
      "id": "401772988",
      "competitors": [
        {"id": "17", "homeAway": "home", "score": "27", "team": {"id": "17", "abbreviation": "NE"}},
        {"id": "7", "homeAway": "away", "score": "20", "team": {"id": "7", "abbreviation": "DEN"}}
      ]
    }]
  },
  "boxscore": {
    "players": [
      {
        "team": {"id": "17", "abbreviation": "NE"},
        "statistics": [
          {
            "name": "passing",
            "labels": ["C/ATT", "YDS", "AVG", "TD", "INT", "SACKS", "QBR", "RTG"],
            "athletes": [
              {"athlete": {"id": "4431452", "displayName": "Drake Maye", "position": {"abbreviation": "QB"}},
               "stats": ["24/33", "312", "9.5", "2", "1", "2-14", "71.2", "104.3"]}
            ]
          },
          {
            "name": "rushing",
            "labels": ["CAR", "YDS", "AVG", "TD", "LONG"],
            "athletes": [
              {"athlete": {"id": "4431452", "displayName": "Drake Maye", "position": {"abbreviation": "QB"}},
               "stats": ["6", "41", "6.8", "1", "15"]},
              {"athlete": {"id": "4569173", "displayName": "Rhamondre Stevenson", "position": {"abbreviation": "RB"}},
               "stats": ["14", "--", "--", "0", "9"]}
            ]
          },
          {
            "name": "receiving",
            "labels": ["REC", "YDS", "AVG", "TD", "LONG", "TGTS"],
            "athletes": [
              {"athlete": {"id": "3046439", "displayName": "Hunter Henry", "position": {"abbreviation": "TE"}},
               "stats": ["6", "88", "14.7", "1", "31", "8"]}
            ]
          },
          {
            "name": "fumbles",
            "labels": ["FUM", "LOST", "REC"],
            "athletes": [
              {"athlete": {"id": "4569173", "displayName": "Rhamondre Stevenson", "position": {"abbreviation": "RB"}},
               "stats": ["1", "1", "0"]}
            ]
          },
          {
            "name": "defensive",
            "labels": ["TOT", "SOLO", "SACKS", "TFL", "PD", "QB HTS", "TD"],
            "athletes": [
              {"athlete": {"id": "1", "displayName": "Christian Gonzalez"}, "stats": ["7", "5", "1.5", "1", "2", "2", "0"]},
              {"athlete": {"id": "2", "displayName": "Milton Williams"}, "stats": ["3", "2", "1", "1", "0", "3", "0"]},
              {"athlete": {"id": "3", "displayName": "Robert Spillane"}, "stats": ["9", "6", "--", "0", "0", "0", "0"]}
            ]
          },
          {
            "name": "interceptions",
            "labels": ["INT", "YDS", "TD"],
            "athletes": [
              {"athlete": {"id": "1", "displayName": "Christian Gonzalez"}, "stats": ["1", "64", "1"]}
            ]
          }
        ]
      },
      {
        "team": {"id": "7", "abbreviation": "DEN"},
        "statistics": [
          {
            "name": "passing",
            "labels": ["C/ATT", "TD", "YDS", "AVG", "INT"],
            "athletes": [
              {"athlete": {"id": "4432577", "displayName": "Bo Nix", "position": {"abbreviation": "QB"}},
               "stats": ["19/30", "1", "205", "6.8", "2"]}
            ]
          },
          {
            "name": "defensive",
            "labels": ["TOT", "SOLO", "TFL", "SACKS"],
            "athletes": [
              {"athlete": {"id": "9", "displayName": "Nik Bonitto"}, "stats": ["4", "3", "1", "2"]}
            ]
          }
        ]
      }
    ]
  },
  "drives": {
    "previous": [
      {"plays": [
        {"text": "W.Lutz 38 yard field goal is Good, Center-M.Fraboni, Holder-J.Stout."},
        {"text": "R.Stevenson up the middle to DEN 30 for 2 yards. FUMBLES (N.Bonitto), RECOVERED by DEN-P.Surtain at DEN 29."}
      ]},
      {"plays": [
        {"text": "A.Borregales 44 yard field goal is BLOCKED (Z.Allen).",
         "teamParticipants": [{"id": "17", "type": "offense"}, {"id": "7", "type": "defense"}]},
        {"text": "A.Borregales extra point is GOOD, Center-J.Cardona, Holder-B.Baringer."}
      ]}
    ]
  }
}`

func loadFixture(t *testing.T) map[string]interface{} {
	t.Helper()
	var summary map[string]interface{}
	if err := json.Unmarshal([]byte(summaryFixture), &summary); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return summary
}

func TestParseBoxScore(t *testing.T) {
	book := ParseBoxScore(loadFixture(t))

	tests := []struct {
		name string
		key  stats.PlayerKey
		want stats.PlayerStats
	}{
		{
			name: "quarterback passing and rushing merge",
			key:  stats.PlayerKey{Team: "NE", PlayerID: "4431452"},
			want: stats.PlayerStats{PassingYards: 312, PassingTDs: 2, Interceptions: 1, RushingYards: 41, RushingTDs: 1},
		},
		{
			name: "no-data cells read as zero",
			key:  stats.PlayerKey{Team: "NE", PlayerID: "4569173"},
			want: stats.PlayerStats{FumblesLost: 1},
		},
		{
			name: "receiving",
			key:  stats.PlayerKey{Team: "NE", PlayerID: "3046439"},
			want: stats.PlayerStats{Receptions: 6, ReceivingYards: 88, ReceivingTDs: 1},
		},
		{
			name: "labels override positional columns",
			key:  stats.PlayerKey{Team: "DEN", PlayerID: "4432577"},
			want: stats.PlayerStats{PassingYards: 205, PassingTDs: 1, Interceptions: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := book.Players[tt.key]
			if !ok {
				t.Fatalf("no record for %+v", tt.key)
			}
			if got.Line() != tt.want.Line() {
				t.Errorf("line = %+v, want %+v", got.Line(), tt.want.Line())
			}
		})
	}

	maye := book.Players[stats.PlayerKey{Team: "NE", PlayerID: "4431452"}]
	if maye.Name != "Drake Maye" || maye.Position != "QB" || maye.Team != "NE" {
		t.Errorf("identity = %q/%q/%q", maye.Name, maye.Position, maye.Team)
	}

	if _, ok := book.Players[stats.PlayerKey{Team: "NE", PlayerID: "1"}]; ok {
		t.Error("defensive-only athlete produced an offensive record")
	}
}

func TestParseDefense(t *testing.T) {
	summary := loadFixture(t)
	book := ParseDefense(summary, ParseTeams(summary))

	ne := book.Defenses["NE"]
	if ne == nil {
		t.Fatal("no NE defense")
	}
	if ne.PointsAllowed != 20 {
		t.Errorf("NE PointsAllowed = %d, want 20", ne.PointsAllowed)
	}
	if ne.Sacks != 2.5 {
		t.Errorf("NE Sacks = %v, want 2.5", ne.Sacks)
	}
	if ne.Interceptions != 1 || ne.ReturnTDs != 1 {
		t.Errorf("NE Interceptions/ReturnTDs = %d/%d, want 1/1", ne.Interceptions, ne.ReturnTDs)
	}

	den := book.Defenses["DEN"]
	if den == nil {
		t.Fatal("no DEN defense")
	}
	if den.PointsAllowed != 27 {
		t.Errorf("DEN PointsAllowed = %d, want 27", den.PointsAllowed)
	}
	if den.Sacks != 2 {
		t.Errorf("DEN Sacks = %v, want 2 (SACKS located by label)", den.Sacks)
	}
}

func TestPointsAllowedWithoutScores(t *testing.T) {
	teams := []TeamMeta{{Abbreviation: "NE"}, {Abbreviation: "DEN"}}
	if got := pointsAllowed("NE", teams); got != 0 {
		t.Errorf("pointsAllowed = %d, want 0", got)
	}
}

func TestParseTeamTableAndPlays(t *testing.T) {
	summary := loadFixture(t)
	table := ParseTeamTable(summary, ParseTeams(summary))

	if table["17"] != "NE" || table["7"] != "DEN" {
		t.Errorf("table = %v", table)
	}

	plays := ParsePlays(summary)
	if len(plays) != 4 {
		t.Fatalf("plays = %d, want 4", len(plays))
	}
	blocked := plays[2]
	if len(blocked.Participants) != 2 || blocked.Participants[1].TeamID != "7" || blocked.Participants[1].Type != "defense" {
		t.Errorf("participants = %+v", blocked.Participants)
	}
}

func TestParseScoreboardGameIDs(t *testing.T) {
	var scoreboard map[string]interface{}
	raw := `{"events": [{"id": "401772988"}, {"name": "no id"}, "junk", {"id": "401772989"}]}`
	if err := json.Unmarshal([]byte(raw), &scoreboard); err != nil {
		t.Fatal(err)
	}

	got := ParseScoreboardGameIDs(scoreboard)
	want := []string{"401772988", "401772989"}
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseGameToleratesEmptyPayload(t *testing.T) {
	game := ParseGame("1", map[string]interface{}{})
	if game.Players == nil {
		t.Fatal("Players = nil")
	}
	if p, k, d := game.Players.Counts(); p+k+d != 0 {
		t.Errorf("counts = %d/%d/%d, want empty", p, k, d)
	}
	if len(game.Plays) != 0 || len(game.Table) != 0 {
		t.Errorf("plays/table = %d/%d, want empty", len(game.Plays), len(game.Table))
	}
}

func TestParseIntHandlesProviderValues(t *testing.T) {
	tests := []struct {
		in   interface{}
		want int
	}{
		{"12", 12},
		{"--", 0},
		{"", 0},
		{float64(7), 7},
		{"1.0", 1},
		{nil, 0},
		{"abc", 0},
	}
	for _, tt := range tests {
		if got := parseInt(tt.in); got != tt.want {
			t.Errorf("parseInt(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
