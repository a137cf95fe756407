package team

import (
	"fmt"
	"time"
)

// Team is one user's fantasy entry in a league. TotalPoints is the season
// aggregate and is owned by the settlement pipeline; it always equals the sum
// of the team's lineup totals after a settlement run completes.
type Team struct {
	ID          string
	UserID      string
	LeagueID    string
	Name        string
	TotalPoints float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.UserID == "" {
		return fmt.Errorf("team user id is required")
	}
	if t.LeagueID == "" {
		return fmt.Errorf("team league id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
