package lineup

import (
	"fmt"
	"time"
)

// SlotCount is the fixed number of golfers in a weekly lineup.
const SlotCount = 3

// Slot is one golfer pick with the decimal odds frozen at submission time.
// Points is written by settlement only.
type Slot struct {
	GolferID string
	Odds     *float64
	Points   float64
}

// Lineup is a team's 3-golfer selection for one tournament. At most one
// lineup exists per (team, tournament). Once IsLocked is set the picks are
// immutable; settlement still overwrites the points fields on every run.
type Lineup struct {
	ID           string
	TeamID       string
	TournamentID string
	Slots        [SlotCount]Slot
	TotalPoints  float64
	IsLocked     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (l Lineup) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("lineup id is required")
	}
	if l.TeamID == "" {
		return fmt.Errorf("lineup team id is required")
	}
	if l.TournamentID == "" {
		return fmt.Errorf("lineup tournament id is required")
	}

	seen := make(map[string]struct{}, SlotCount)
	for i, slot := range l.Slots {
		if slot.GolferID == "" {
			return fmt.Errorf("lineup slot %d golfer id is required", i+1)
		}
		if _, dup := seen[slot.GolferID]; dup {
			return fmt.Errorf("duplicate golfer %s in lineup", slot.GolferID)
		}
		seen[slot.GolferID] = struct{}{}
	}

	return nil
}

// GolferIDs returns the slot golfer ids in fixed slot order.
func (l Lineup) GolferIDs() []string {
	out := make([]string, 0, SlotCount)
	for _, slot := range l.Slots {
		out = append(out, slot.GolferID)
	}
	return out
}
