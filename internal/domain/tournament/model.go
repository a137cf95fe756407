package tournament

import (
	"fmt"
	"time"
)

// DefaultFieldSize is the standard PGA Tour full-field size, used when an
// event does not report its own.
const DefaultFieldSize = 156

// Tournament is one golf event in a season.
type Tournament struct {
	ID          string
	Name        string
	Season      int
	StartAt     time.Time
	EndAt       time.Time
	CourseName  string
	Purse       float64
	FieldSize   int
	IsCompleted bool
	CreatedAt   time.Time
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}
	if t.Season <= 0 {
		return fmt.Errorf("tournament season is required")
	}
	if t.FieldSize < 0 {
		return fmt.Errorf("tournament field size cannot be negative")
	}

	return nil
}

// EffectiveFieldSize falls back to the standard field when the event did not
// report one.
func (t Tournament) EffectiveFieldSize() int {
	if t.FieldSize > 0 {
		return t.FieldSize
	}
	return DefaultFieldSize
}

// HasStarted reports whether lineups for the event should be locked.
func (t Tournament) HasStarted(now time.Time) bool {
	return !t.StartAt.IsZero() && !now.Before(t.StartAt)
}
