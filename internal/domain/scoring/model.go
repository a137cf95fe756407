package scoring

// Breakdown is the explainable output of scoring one golfer performance. It
// is ephemeral: settlement persists only the slot totals derived from it.
type Breakdown struct {
	PositionScore    float64
	OddsMultiplier   float64
	AchievementBonus float64
	BaseScore        float64
	TotalScore       float64
}
