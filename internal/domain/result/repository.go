package result

import "context"

// Repository describes result persistence needs from use cases. Rows are
// created by result ingestion and read-only to settlement.
type Repository interface {
	Get(ctx context.Context, tournamentID, golferID string) (TournamentResult, bool, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]TournamentResult, error)
	UpsertBatch(ctx context.Context, items []TournamentResult) error
}
