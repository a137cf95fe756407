package postgres

import "time"

type leagueTableModel struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	SeasonYear   int       `db:"season_year"`
	Description  string    `db:"description"`
	MaxMembers   int       `db:"max_members"`
	Status       string    `db:"status"`
	WinBonus     float64   `db:"win_bonus"`
	Top5Bonus    float64   `db:"top5_bonus"`
	Top10Bonus   float64   `db:"top10_bonus"`
	MadeCutBonus float64   `db:"made_cut_bonus"`
	OddsWeight   float64   `db:"odds_weight"`
	CreatedAt    time.Time `db:"created_at"`
}

type membershipTableModel struct {
	ID          string    `db:"id"`
	LeagueID    string    `db:"league_id"`
	UserID      string    `db:"user_id"`
	TotalPoints float64   `db:"total_points"`
	Position    int       `db:"position"`
	JoinedAt    time.Time `db:"joined_at"`
}
