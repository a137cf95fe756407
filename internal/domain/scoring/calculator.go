package scoring

import (
	"math"

	"github.com/Keegs21/Bunkered/internal/domain/league"
)

const (
	// Position score bounds: 1st place maps to MaxPositionPoints, the last
	// spot that made the cut still earns MinPositionPoints.
	MinPositionPoints = 5.0
	MaxPositionPoints = 200.0

	// Odds multiplier clamp before the league's odds weight is applied.
	MinOddsMultiplier = 0.8
	MaxOddsMultiplier = 3.5

	// Decimal odds of 3.0 are the neutral point of the multiplier curve.
	oddsPivot = 3.0
	oddsSlope = 0.4
)

// Score computes the full breakdown for one golfer performance.
//
// position and odds are nullable because both come from external feeds that
// sometimes omit them; every such gap is clamped or defaulted, never raised.
// A golfer who missed the cut scores zero no matter what the other inputs
// say.
func Score(position *int, madeCut bool, odds *float64, fieldSize int, cfg league.ScoringConfig) Breakdown {
	if !madeCut {
		// Multiplier stays 1.0 for reporting symmetry.
		return Breakdown{OddsMultiplier: 1.0}
	}

	positionScore := PositionScore(position, fieldSize)
	oddsMultiplier := OddsMultiplier(odds, cfg.OddsWeight)
	bonus := achievementBonus(position, cfg)

	baseScore := positionScore * oddsMultiplier

	return Breakdown{
		PositionScore:    positionScore,
		OddsMultiplier:   oddsMultiplier,
		AchievementBonus: bonus,
		BaseScore:        baseScore,
		TotalScore:       Round2(baseScore + bonus),
	}
}

// PositionScore rewards better finishes on a logarithmic curve: differences
// near the top of the field are amplified, differences among weak finishers
// are compressed. The curve is exactly MaxPositionPoints at 1st place and
// approaches MinPositionPoints at the bottom of the field.
func PositionScore(position *int, fieldSize int) float64 {
	if position == nil || *position <= 0 {
		return 0.0
	}
	if fieldSize <= 0 {
		fieldSize = 1
	}

	pos := *position
	if pos > fieldSize {
		pos = fieldSize
	}

	ratio := float64(fieldSize-pos+1) / float64(fieldSize)
	// ln(1 + ratio·(e−1)) is 0 at ratio=0 and exactly 1 at ratio=1.
	logScore := math.Log(1 + ratio*(math.E-1))

	return Round2(MinPositionPoints + (MaxPositionPoints-MinPositionPoints)*logScore)
}

// OddsMultiplier converts decimal odds into a base-score multiplier. Longer
// odds at submission time earn a larger multiplier, scaled logarithmically so
// extreme longshots cannot dominate; heavy favorites floor at
// MinOddsMultiplier. oddsWeight blends the raw multiplier toward neutral
// before it is applied.
func OddsMultiplier(odds *float64, oddsWeight float64) float64 {
	if odds == nil || *odds <= 1.0 {
		return 1.0
	}

	raw := 1.0 + oddsSlope*math.Log(*odds/oddsPivot)
	if raw < MinOddsMultiplier {
		raw = MinOddsMultiplier
	}
	if raw > MaxOddsMultiplier {
		raw = MaxOddsMultiplier
	}

	return round3(1.0 + (raw-1.0)*oddsWeight)
}

// achievementBonus stacks the flat bonuses: a winner collects win, top-5,
// top-10 and made-cut bonuses at once. Only the made-cut bonus applies when
// the feed delivered no finishing position.
func achievementBonus(position *int, cfg league.ScoringConfig) float64 {
	bonus := cfg.MadeCutBonus

	if position == nil || *position < 1 {
		return bonus
	}
	if *position == 1 {
		bonus += cfg.WinBonus
	}
	if *position <= 5 {
		bonus += cfg.Top5Bonus
	}
	if *position <= 10 {
		bonus += cfg.Top10Bonus
	}

	return bonus
}

// Round2 rounds to two decimals, the precision every persisted point value
// uses.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
