package scoring

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bonus awards Points when Min <= yards and, if Max > 0, yards < Max.
type Bonus struct {
	Min    int     `yaml:"min" json:"min"`
	Max    int     `yaml:"max" json:"max"`
	Points float64 `yaml:"points" json:"points"`
}

func (b Bonus) matches(yards int) bool {
	if yards < b.Min {
		return false
	}
	return b.Max <= 0 || yards < b.Max
}

// YardageRules covers a yardage-based category (passing, rushing, receiving).
type YardageRules struct {
	YardsPerPoint float64 `yaml:"yards_per_point" json:"yards_per_point"`
	Touchdown     float64 `yaml:"touchdown" json:"touchdown"`
	TwoPoint      float64 `yaml:"two_point" json:"two_point"`
	// Bonuses are evaluated in order and only the first match is awarded.
	Bonuses []Bonus `yaml:"bonuses" json:"bonuses"`
}

type PassingRules struct {
	YardageRules `yaml:",inline"`
	Interception float64 `yaml:"interception" json:"interception"`
}

type ReceivingRules struct {
	YardageRules `yaml:",inline"`
	Reception float64 `yaml:"reception" json:"reception"`
}

type KickingRules struct {
	PATMade    float64 `yaml:"pat_made" json:"pat_made"`
	PATMissed  float64 `yaml:"pat_missed" json:"pat_missed"`
	FG0To39    float64 `yaml:"fg_0_39" json:"fg_0_39"`
	FG40To49   float64 `yaml:"fg_40_49" json:"fg_40_49"`
	FG50Plus   float64 `yaml:"fg_50_plus" json:"fg_50_plus"`
	Miss0To39  float64 `yaml:"fg_miss_0_39" json:"fg_miss_0_39"`
	Miss40To49 float64 `yaml:"fg_miss_40_49" json:"fg_miss_40_49"`
	Miss50Plus float64 `yaml:"fg_miss_50_plus" json:"fg_miss_50_plus"`
}

// Band maps an inclusive points-allowed range to a score. Max < 0 is open-ended.
type Band struct {
	Min    int     `yaml:"min" json:"min"`
	Max    int     `yaml:"max" json:"max"`
	Points float64 `yaml:"points" json:"points"`
}

type DefenseRules struct {
	Sack            float64 `yaml:"sack" json:"sack"`
	Interception    float64 `yaml:"interception" json:"interception"`
	FumbleRecovery  float64 `yaml:"fumble_recovery" json:"fumble_recovery"`
	Safety          float64 `yaml:"safety" json:"safety"`
	BlockedKick     float64 `yaml:"blocked_kick" json:"blocked_kick"`
	ReturnTouchdown float64 `yaml:"return_td" json:"return_td"`
	PointsAllowed   []Band  `yaml:"points_allowed" json:"points_allowed"`
}

// Rules is a league's complete scoring table. A Rules value is never mutated
// once handed to a Scorer.
type Rules struct {
	Passing    PassingRules   `yaml:"passing" json:"passing"`
	Rushing    YardageRules   `yaml:"rushing" json:"rushing"`
	Receiving  ReceivingRules `yaml:"receiving" json:"receiving"`
	FumbleLost float64        `yaml:"fumble_lost" json:"fumble_lost"`
	Kicking    KickingRules   `yaml:"kicking" json:"kicking"`
	Defense    DefenseRules   `yaml:"defense" json:"defense"`
}

// DefaultRules returns the playoff league's scoring table.
func DefaultRules() Rules {
	return Rules{
		Passing: PassingRules{
			YardageRules: YardageRules{
				YardsPerPoint: 25,
				Touchdown:     8,
				TwoPoint:      2,
				Bonuses: []Bonus{
					{Min: 300, Max: 400, Points: 5},
					{Min: 400, Points: 10},
				},
			},
			Interception: -3,
		},
		Rushing: YardageRules{
			YardsPerPoint: 10,
			Touchdown:     10,
			TwoPoint:      2,
			Bonuses: []Bonus{
				{Min: 100, Max: 200, Points: 5},
				{Min: 200, Points: 10},
			},
		},
		Receiving: ReceivingRules{
			YardageRules: YardageRules{
				YardsPerPoint: 10,
				Touchdown:     10,
				TwoPoint:      2,
				Bonuses: []Bonus{
					{Min: 100, Max: 200, Points: 5},
					{Min: 200, Points: 10},
				},
			},
			Reception: 1,
		},
		FumbleLost: -3,
		Kicking: KickingRules{
			PATMade:    1,
			PATMissed:  -3,
			FG0To39:    3,
			FG40To49:   4,
			FG50Plus:   6,
			Miss0To39:  -3,
			Miss40To49: -2,
			Miss50Plus: 0,
		},
		Defense: DefenseRules{
			Sack:            1,
			Interception:    5,
			FumbleRecovery:  5,
			Safety:          5,
			BlockedKick:     5,
			ReturnTouchdown: 5,
			PointsAllowed: []Band{
				{Min: 0, Max: 0, Points: 15},
				{Min: 1, Max: 6, Points: 12},
				{Min: 7, Max: 13, Points: 9},
				{Min: 14, Max: 17, Points: 6},
				{Min: 18, Max: 21, Points: 3},
				{Min: 22, Max: 27, Points: 0},
				{Min: 28, Max: 34, Points: -3},
				{Min: 35, Max: 45, Points: -6},
				{Min: 46, Max: -1, Points: -9},
			},
		},
	}
}

// LoadRules reads YAML overrides from path on top of DefaultRules.
// Lists (bonuses, bands) replace the defaults wholesale.
func LoadRules(path string) (Rules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules: %w", err)
	}
	return ParseRules(raw)
}

// ParseRules decodes YAML overrides on top of DefaultRules and validates the result.
func ParseRules(raw []byte) (Rules, error) {
	rules := DefaultRules()
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return Rules{}, fmt.Errorf("decode rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// Validate checks the yardage divisors and that the points-allowed bands
// partition every non-negative score exactly once.
func (r Rules) Validate() error {
	divisors := map[string]float64{
		"passing":   r.Passing.YardsPerPoint,
		"rushing":   r.Rushing.YardsPerPoint,
		"receiving": r.Receiving.YardsPerPoint,
	}
	for name, d := range divisors {
		if d <= 0 {
			return fmt.Errorf("%s.yards_per_point must be positive, got %v", name, d)
		}
	}

	bands := r.Defense.PointsAllowed
	if len(bands) == 0 {
		return errors.New("defense.points_allowed must define at least one band")
	}
	next := 0
	for i, b := range bands {
		if b.Min != next {
			return fmt.Errorf("defense.points_allowed[%d] starts at %d, want %d", i, b.Min, next)
		}
		last := i == len(bands)-1
		if b.Max < 0 {
			if !last {
				return fmt.Errorf("defense.points_allowed[%d] is open-ended but not last", i)
			}
			return nil
		}
		if b.Max < b.Min {
			return fmt.Errorf("defense.points_allowed[%d] has max %d below min %d", i, b.Max, b.Min)
		}
		next = b.Max + 1
	}
	return errors.New("defense.points_allowed must end with an open-ended band (max: -1)")
}
