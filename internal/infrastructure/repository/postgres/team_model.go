package postgres

import "time"

type teamTableModel struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	LeagueID    string    `db:"league_id"`
	Name        string    `db:"name"`
	TotalPoints float64   `db:"total_points"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
