package scoring

import (
	"math"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/stats"
)

// Scorer applies one league's Rules to statistics lines.
type Scorer struct {
	rules Rules
}

// NewScorer validates rules and returns a scorer bound to them.
func NewScorer(rules Rules) (*Scorer, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{rules: rules}, nil
}

// Rules returns the table the scorer was built with.
func (s *Scorer) Rules() Rules {
	return s.rules
}

// Score returns the fantasy points for line, rounded to two decimals.
func (s *Scorer) Score(line stats.Line) float64 {
	return Round2(s.Breakdown(line).Total())
}

// Breakdown holds the unrounded contribution of each scoring block.
type Breakdown struct {
	Passing       float64 `json:"passing"`
	Rushing       float64 `json:"rushing"`
	Receiving     float64 `json:"receiving"`
	Fumbles       float64 `json:"fumbles"`
	Kicking       float64 `json:"kicking"`
	PointsAllowed float64 `json:"points_allowed"`
	Defense       float64 `json:"defense"`
}

// Total sums every block.
func (b Breakdown) Total() float64 {
	return b.Passing + b.Rushing + b.Receiving + b.Fumbles + b.Kicking + b.PointsAllowed + b.Defense
}

// Breakdown scores each block of line independently.
func (s *Scorer) Breakdown(line stats.Line) Breakdown {
	r := s.rules
	var b Breakdown

	if line.PassingYards > 0 || line.PassingTDs > 0 {
		b.Passing = yardage(r.Passing.YardageRules, line.PassingYards, line.PassingTDs, line.Passing2Pt) +
			float64(line.Interceptions)*r.Passing.Interception
	}

	if line.RushingYards > 0 || line.RushingTDs > 0 {
		b.Rushing = yardage(r.Rushing, line.RushingYards, line.RushingTDs, line.Rushing2Pt)
	}

	if line.Receptions > 0 || line.ReceivingTDs > 0 {
		b.Receiving = float64(line.Receptions)*r.Receiving.Reception +
			yardage(r.Receiving.YardageRules, line.ReceivingYards, line.ReceivingTDs, line.Receiving2Pt)
	}

	b.Fumbles = float64(line.FumblesLost) * r.FumbleLost

	k := line.Kicking
	b.Kicking = float64(k.PATMade)*r.Kicking.PATMade +
		float64(k.PATMissed)*r.Kicking.PATMissed +
		float64(k.FG0To39)*r.Kicking.FG0To39 +
		float64(k.FG40To49)*r.Kicking.FG40To49 +
		float64(k.FG50Plus)*r.Kicking.FG50Plus +
		float64(k.Miss0To39)*r.Kicking.Miss0To39 +
		float64(k.Miss40To49)*r.Kicking.Miss40To49 +
		float64(k.Miss50Plus)*r.Kicking.Miss50Plus

	if line.PointsAllowed >= 0 {
		b.PointsAllowed = pointsAllowed(r.Defense.PointsAllowed, line.PointsAllowed)
	}

	d := r.Defense
	b.Defense = line.Sacks*d.Sack +
		float64(line.DefInterceptions)*d.Interception +
		float64(line.FumbleRecoveries)*d.FumbleRecovery +
		float64(line.Safeties)*d.Safety +
		float64(line.BlockedKicks)*d.BlockedKick +
		float64(line.ReturnTDs)*d.ReturnTouchdown

	return b
}

func yardage(r YardageRules, yards, tds, twoPoint int) float64 {
	points := float64(yards)/r.YardsPerPoint +
		float64(tds)*r.Touchdown +
		float64(twoPoint)*r.TwoPoint
	for _, bonus := range r.Bonuses {
		if bonus.matches(yards) {
			points += bonus.Points
			break
		}
	}
	return points
}

func pointsAllowed(bands []Band, allowed int) float64 {
	for _, band := range bands {
		if allowed >= band.Min && (band.Max < 0 || allowed <= band.Max) {
			return band.Points
		}
	}
	return 0
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
