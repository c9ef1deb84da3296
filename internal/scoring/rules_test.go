package scoring

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultRulesValid(t *testing.T) {
	if err := DefaultRules().Validate(); err != nil {
		t.Fatalf("DefaultRules().Validate() = %v", err)
	}
}

func TestParseRulesOverrides(t *testing.T) {
	raw := []byte(`
receiving:
  reception: 0.5
kicking:
  fg_miss_50_plus: -1
`)
	rules, err := ParseRules(raw)
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}

	if rules.Receiving.Reception != 0.5 {
		t.Errorf("Reception = %v, want 0.5", rules.Receiving.Reception)
	}
	if rules.Kicking.Miss50Plus != -1 {
		t.Errorf("Miss50Plus = %v, want -1", rules.Kicking.Miss50Plus)
	}
	// untouched values keep their defaults
	if rules.Receiving.YardsPerPoint != 10 {
		t.Errorf("Receiving.YardsPerPoint = %v, want 10", rules.Receiving.YardsPerPoint)
	}
	if rules.Passing.Touchdown != 8 {
		t.Errorf("Passing.Touchdown = %v, want 8", rules.Passing.Touchdown)
	}
	if len(rules.Defense.PointsAllowed) != 9 {
		t.Errorf("PointsAllowed bands = %d, want 9", len(rules.Defense.PointsAllowed))
	}
}

func TestParseRulesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{
			name:    "zero divisor",
			raw:     "passing:\n  yards_per_point: 0\n",
			wantErr: "passing.yards_per_point",
		},
		{
			name: "gap in bands",
			raw: `defense:
  points_allowed:
    - {min: 0, max: 6, points: 10}
    - {min: 8, max: -1, points: 0}
`,
			wantErr: "starts at 8, want 7",
		},
		{
			name: "closed last band",
			raw: `defense:
  points_allowed:
    - {min: 0, max: 6, points: 10}
`,
			wantErr: "open-ended",
		},
		{
			name:    "malformed yaml",
			raw:     "passing: [",
			wantErr: "decode rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules([]byte(tt.raw))
			if err == nil {
				t.Fatalf("ParseRules() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseRules() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("fumble_lost: -2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if rules.FumbleLost != -2 {
		t.Errorf("FumbleLost = %v, want -2", rules.FumbleLost)
	}

	if _, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadRules(missing) error = nil, want error")
	}
}
