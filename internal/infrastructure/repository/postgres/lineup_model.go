package postgres

import "time"

// Lineups are stored with the three slots flattened into columns; the slot
// count is fixed so a join table buys nothing.
type lineupTableModel struct {
	ID           string    `db:"id"`
	TeamID       string    `db:"team_id"`
	TournamentID string    `db:"tournament_id"`
	Slot1Golfer  string    `db:"slot1_golfer_id"`
	Slot1Odds    *float64  `db:"slot1_odds"`
	Slot1Points  float64   `db:"slot1_points"`
	Slot2Golfer  string    `db:"slot2_golfer_id"`
	Slot2Odds    *float64  `db:"slot2_odds"`
	Slot2Points  float64   `db:"slot2_points"`
	Slot3Golfer  string    `db:"slot3_golfer_id"`
	Slot3Odds    *float64  `db:"slot3_odds"`
	Slot3Points  float64   `db:"slot3_points"`
	TotalPoints  float64   `db:"total_points"`
	IsLocked     bool      `db:"is_locked"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
