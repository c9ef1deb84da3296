package roster

import (
	"testing"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/stats"
)

func testBook() *stats.Book {
	book := stats.NewBook()

	maye := book.Player(stats.PlayerKey{Team: "NE", PlayerID: "4431452"})
	maye.Name, maye.Position = "Drake Maye", "QB"
	maye.PassingYards = 312

	walker := book.Player(stats.PlayerKey{Team: "SEA", PlayerID: "4567048"})
	walker.Name, walker.Position = "Kenneth Walker III", "RB"
	walker.RushingYards = 97

	// same surname on another team must not be picked up
	other := book.Player(stats.PlayerKey{Team: "LAR", PlayerID: "1"})
	other.Name, other.Position = "Kenneth Walker", "RB"
	other.RushingYards = 5

	nacua := book.Player(stats.PlayerKey{Team: "LAR", PlayerID: "4426515"})
	nacua.Name, nacua.Position = "Puka Nacúa", "WR"
	nacua.Receptions = 9

	book.Kicker("W.Lutz").FG0To39 = 2
	book.Kicker("J.Myers").PATMade = 3

	sea := book.Defense("SEA")
	sea.PointsAllowed = 7
	sea.Sacks = 4

	return book
}

func TestResolvePlayers(t *testing.T) {
	r := NewResolver(testBook())

	tests := []struct {
		name      string
		entry     Entry
		wantID    string
		wantMatch bool
		wantPos   string
	}{
		{"exact", Entry{"Drake Maye", QB, "NE"}, "4431452", true, "QB"},
		{"substring within team", Entry{"Kenneth Walker", RB, "SEA"}, "4567048", true, "RB"},
		{"case and accents folded", Entry{"puka nacua", WR, "LAR"}, "4426515", true, "WR"},
		{"team mismatch", Entry{"Drake Maye", QB, "DEN"}, "", false, "N/A"},
		{"unknown player", Entry{"Nobody Here", WR, "NE"}, "", false, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.entry)
			if got.Kind != KindPlayer {
				t.Fatalf("Kind = %v, want player", got.Kind)
			}
			if got.Player == nil {
				t.Fatal("Player = nil")
			}
			if got.Matched != tt.wantMatch {
				t.Errorf("Matched = %v, want %v", got.Matched, tt.wantMatch)
			}
			if got.Player.Key.PlayerID != tt.wantID {
				t.Errorf("PlayerID = %q, want %q", got.Player.Key.PlayerID, tt.wantID)
			}
			if got.Position != tt.wantPos {
				t.Errorf("Position = %q, want %q", got.Position, tt.wantPos)
			}
		})
	}
}

func TestExactMatchWinsOverSubstring(t *testing.T) {
	book := stats.NewBook()
	a := book.Player(stats.PlayerKey{Team: "NE", PlayerID: "1"})
	a.Name = "Hunter Henry Jr"
	b := book.Player(stats.PlayerKey{Team: "NE", PlayerID: "2"})
	b.Name = "Hunter Henry"

	got := NewResolver(book).Resolve(Entry{"Hunter Henry", TE, "NE"})
	if got.Player.Key.PlayerID != "2" {
		t.Errorf("PlayerID = %q, want exact match 2", got.Player.Key.PlayerID)
	}
}

func TestUnknownPlayerScoresZeroLine(t *testing.T) {
	got := NewResolver(testBook()).Resolve(Entry{"Nobody Here", WR, "NE"})
	if got.Line() != stats.EmptyLine() {
		t.Errorf("Line() = %+v, want zero line", got.Line())
	}
	if got.Player.Name != "Nobody Here" || got.Player.Team != "NE" {
		t.Errorf("zero record identity = %q/%q", got.Player.Name, got.Player.Team)
	}
}

func TestResolveKickers(t *testing.T) {
	r := NewResolver(testBook())

	lutz := r.Resolve(Entry{"Will Lutz", Kicker, "DEN"})
	if lutz.Kind != KindKicker || !lutz.Matched || lutz.Kicker.Token != "W.Lutz" {
		t.Errorf("Will Lutz = %+v", lutz)
	}
	if lutz.Position != Kicker {
		t.Errorf("Position = %q, want K", lutz.Position)
	}

	myers := r.Resolve(Entry{"JASON MYERS", Kicker, "SEA"})
	if !myers.Matched || myers.Kicker.PATMade != 3 {
		t.Errorf("Jason Myers = %+v", myers.Kicker)
	}

	missing := r.Resolve(Entry{"Harrison Mevis", Kicker, "LAR"})
	if missing.Matched || missing.Kicker == nil {
		t.Fatalf("missing kicker = %+v", missing)
	}
	if missing.Line() != stats.EmptyLine() {
		t.Errorf("missing kicker line = %+v, want zero", missing.Line())
	}
}

func TestResolveKickerDeterministic(t *testing.T) {
	book := stats.NewBook()
	book.Kicker("B.Smith").PATMade = 1
	book.Kicker("A.Smith").PATMade = 2

	for i := 0; i < 20; i++ {
		got := NewResolver(book).Resolve(Entry{"Joe Smith", Kicker, "NE"})
		if got.Kicker.Token != "A.Smith" {
			t.Fatalf("Token = %q, want first sorted token A.Smith", got.Kicker.Token)
		}
	}
}

func TestResolveDefense(t *testing.T) {
	r := NewResolver(testBook())

	sea := r.Resolve(Entry{"Seahawks D/ST", Defense, "SEA"})
	if sea.Kind != KindDefense || !sea.Matched || sea.Defense.Sacks != 4 {
		t.Errorf("Seahawks D/ST = %+v", sea.Defense)
	}

	// the name decides, whatever the position says
	byName := r.Resolve(Entry{"Seattle DST", WR, "SEA"})
	if byName.Kind != KindDefense {
		t.Errorf("Kind = %v, want defense", byName.Kind)
	}

	ne := r.Resolve(Entry{"Patriots D/ST", Defense, "NE"})
	if ne.Matched {
		t.Error("Matched = true for team without data")
	}
	want := stats.Line{}
	if ne.Line() != want {
		t.Errorf("zero defense line = %+v, want all zero", ne.Line())
	}
}

func TestPlayerNameContainingDSTLettersIsNotDefense(t *testing.T) {
	book := testBook()
	lindstrom := book.Player(stats.PlayerKey{Team: "ATL", PlayerID: "3046439"})
	lindstrom.Name, lindstrom.Position = "Chris Lindstrom", "WR"
	lindstrom.ReceivingYards = 40
	book.Defense("ATL").PointsAllowed = 40

	entry := Entry{"Chris Lindstrom", WR, "ATL"}
	if entry.IsDefense() {
		t.Fatal("IsDefense = true for an offensive player")
	}
	got := NewResolver(book).Resolve(entry)
	if got.Kind != KindPlayer {
		t.Fatalf("Kind = %v, want player", got.Kind)
	}
	if !got.Matched || got.Player.Key.PlayerID != "3046439" {
		t.Errorf("resolved %+v, want Lindstrom's record", got.Player)
	}
}

func TestResolveNilBook(t *testing.T) {
	got := NewResolver(nil).Resolve(Entry{"Drake Maye", QB, "NE"})
	if got.Player == nil || got.Matched {
		t.Errorf("Resolve on nil book = %+v", got)
	}
}

func TestEntryValidate(t *testing.T) {
	tests := []struct {
		entry   Entry
		wantErr bool
	}{
		{Entry{"Drake Maye", QB, "NE"}, false},
		{Entry{"Patriots D/ST", Defense, "NE"}, false},
		{Entry{"", QB, "NE"}, true},
		{Entry{"Drake Maye", QB, ""}, true},
		{Entry{"Drake Maye", "LB", "NE"}, true},
	}
	for _, tt := range tests {
		if err := tt.entry.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) = %v, wantErr %v", tt.entry, err, tt.wantErr)
		}
	}
}
