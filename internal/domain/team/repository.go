package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Team) error
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	GetByUserAndLeague(ctx context.Context, userID, leagueID string) (Team, bool, error)
	ListByUser(ctx context.Context, userID string) ([]Team, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Team, error)
	UpdateSeasonTotal(ctx context.Context, teamID string, totalPoints float64) error
}
