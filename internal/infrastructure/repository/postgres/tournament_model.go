package postgres

import "time"

type tournamentTableModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Season      int       `db:"season"`
	StartAt     time.Time `db:"start_at"`
	EndAt       time.Time `db:"end_at"`
	CourseName  string    `db:"course_name"`
	Purse       float64   `db:"purse"`
	FieldSize   int       `db:"field_size"`
	IsCompleted bool      `db:"is_completed"`
	CreatedAt   time.Time `db:"created_at"`
}

type resultTableModel struct {
	TournamentID string  `db:"tournament_id"`
	GolferID     string  `db:"golfer_id"`
	Position     *int    `db:"position"`
	Score        int     `db:"score"`
	PrizeMoney   float64 `db:"prize_money"`
	MadeCut      bool    `db:"made_cut"`
	RoundsPlayed int     `db:"rounds_played"`
}

type golferTableModel struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Country      string `db:"country"`
	WorldRanking int    `db:"world_ranking"`
}
