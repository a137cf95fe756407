package league

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// League is a season-long fantasy golf league.
type League struct {
	ID          string
	Name        string
	SeasonYear  int
	Description string
	MaxMembers  int
	Status      Status
	Scoring     ScoringConfig
	CreatedAt   time.Time
}

// ScoringConfig is the immutable scoring snapshot a league owns. Settlement
// reads it once per run; lineups scored under it never see later edits.
type ScoringConfig struct {
	WinBonus     float64
	Top5Bonus    float64
	Top10Bonus   float64
	MadeCutBonus float64
	// OddsWeight blends the odds multiplier toward neutral:
	// 0 ignores odds entirely, 1 applies the full multiplier.
	OddsWeight float64
}

// DefaultScoringConfig is the documented fallback used when a league carries
// no explicit scoring settings, so settlement can always proceed.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		WinBonus:     100.0,
		Top5Bonus:    50.0,
		Top10Bonus:   25.0,
		MadeCutBonus: 10.0,
		OddsWeight:   1.0,
	}
}

// IsZero reports whether the config was never set for a league.
func (c ScoringConfig) IsZero() bool {
	return c == ScoringConfig{}
}

func (c ScoringConfig) Validate() error {
	if c.WinBonus < 0 || c.Top5Bonus < 0 || c.Top10Bonus < 0 || c.MadeCutBonus < 0 {
		return fmt.Errorf("scoring bonuses cannot be negative")
	}
	if c.OddsWeight < 0 || c.OddsWeight > 1 {
		return fmt.Errorf("odds weight must be between 0 and 1")
	}

	return nil
}

// Membership is one user's row in a league table.
type Membership struct {
	ID          string
	LeagueID    string
	UserID      string
	TotalPoints float64
	Position    int
	JoinedAt    time.Time
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.SeasonYear <= 0 {
		return fmt.Errorf("league season year is required")
	}
	if l.MaxMembers < 0 {
		return fmt.Errorf("league max members cannot be negative")
	}
	if !l.Scoring.IsZero() {
		return l.Scoring.Validate()
	}

	return nil
}
