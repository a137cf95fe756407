package memory

import (
	"context"
	"sync"

	"github.com/Keegs21/Bunkered/internal/domain/result"
)

type resultKey struct {
	tournamentID string
	golferID     string
}

type ResultRepository struct {
	mu    sync.RWMutex
	items map[resultKey]result.TournamentResult
	order []resultKey
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{
		items: make(map[resultKey]result.TournamentResult),
	}
}

func (r *ResultRepository) Get(_ context.Context, tournamentID, golferID string) (result.TournamentResult, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[resultKey{tournamentID: tournamentID, golferID: golferID}]
	if !ok {
		return result.TournamentResult{}, false, nil
	}
	return item, true, nil
}

func (r *ResultRepository) ListByTournament(_ context.Context, tournamentID string) ([]result.TournamentResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.TournamentResult, 0)
	for _, key := range r.order {
		if key.tournamentID == tournamentID {
			out = append(out, r.items[key])
		}
	}
	return out, nil
}

func (r *ResultRepository) UpsertBatch(_ context.Context, items []result.TournamentResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		key := resultKey{tournamentID: item.TournamentID, golferID: item.GolferID}
		if _, exists := r.items[key]; !exists {
			r.order = append(r.order, key)
		}
		r.items[key] = item
	}
	return nil
}
