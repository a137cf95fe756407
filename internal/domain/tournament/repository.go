package tournament

import "context"

// Repository describes tournament persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, tournamentID string) (Tournament, bool, error)
	List(ctx context.Context) ([]Tournament, error)
	ListCompletedBySeason(ctx context.Context, season int) ([]Tournament, error)
	MarkCompleted(ctx context.Context, tournamentID string) error
}
