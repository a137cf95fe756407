package memory

import (
	"context"
	"sync"

	"github.com/Keegs21/Bunkered/internal/domain/tournament"
)

type TournamentRepository struct {
	mu    sync.RWMutex
	items map[string]tournament.Tournament
	order []string
}

func NewTournamentRepository(tournaments []tournament.Tournament) *TournamentRepository {
	items := make(map[string]tournament.Tournament, len(tournaments))
	order := make([]string, 0, len(tournaments))
	for _, t := range tournaments {
		items[t.ID] = t
		order = append(order, t.ID)
	}

	return &TournamentRepository{
		items: items,
		order: order,
	}
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[tournamentID]
	if !ok {
		return tournament.Tournament{}, false, nil
	}
	return item, true, nil
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *TournamentRepository) ListCompletedBySeason(_ context.Context, season int) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0)
	for _, id := range r.order {
		item := r.items[id]
		if item.Season == season && item.IsCompleted {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *TournamentRepository) MarkCompleted(_ context.Context, tournamentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[tournamentID]
	if !ok {
		return nil
	}
	item.IsCompleted = true
	r.items[tournamentID] = item
	return nil
}
