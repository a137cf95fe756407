package lineup

import "context"

// SlotPoints carries the settled per-slot totals for one lineup, in slot
// order. A named, typed write: settlement never mutates lineups field by
// field.
type SlotPoints struct {
	LineupID string
	Points   [SlotCount]float64
	Total    float64
}

// Repository describes lineup persistence needs from use cases.
type Repository interface {
	GetByTeamAndTournament(ctx context.Context, teamID, tournamentID string) (Lineup, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]Lineup, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Lineup, error)
	Upsert(ctx context.Context, item Lineup) error

	// UpdatePoints overwrites the points fields only; picks and lock state
	// are untouched. Re-applying the same values is a no-op.
	UpdatePoints(ctx context.Context, points SlotPoints) error

	// SumPointsByTeam aggregates TotalPoints across all of a team's lineups
	// for the season.
	SumPointsByTeam(ctx context.Context, teamID string) (float64, error)

	// LockByTournament marks every lineup of a tournament immutable.
	LockByTournament(ctx context.Context, tournamentID string) error
}
