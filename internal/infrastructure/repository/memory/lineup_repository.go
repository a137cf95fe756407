package memory

import (
	"context"
	"sync"

	"github.com/Keegs21/Bunkered/internal/domain/lineup"
)

type LineupRepository struct {
	mu    sync.RWMutex
	items map[string]lineup.Lineup
	order []string
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{
		items: make(map[string]lineup.Lineup),
	}
}

func (r *LineupRepository) GetByTeamAndTournament(_ context.Context, teamID, tournamentID string) (lineup.Lineup, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		item := r.items[id]
		if item.TeamID == teamID && item.TournamentID == tournamentID {
			return item, true, nil
		}
	}
	return lineup.Lineup{}, false, nil
}

func (r *LineupRepository) ListByTeam(_ context.Context, teamID string) ([]lineup.Lineup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Lineup, 0)
	for _, id := range r.order {
		if item := r.items[id]; item.TeamID == teamID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *LineupRepository) ListByTournament(_ context.Context, tournamentID string) ([]lineup.Lineup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Lineup, 0)
	for _, id := range r.order {
		if item := r.items[id]; item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *LineupRepository) Upsert(_ context.Context, item lineup.Lineup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = item
	return nil
}

func (r *LineupRepository) UpdatePoints(_ context.Context, points lineup.SlotPoints) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[points.LineupID]
	if !ok {
		return nil
	}
	for idx := range item.Slots {
		item.Slots[idx].Points = points.Points[idx]
	}
	item.TotalPoints = points.Total
	r.items[points.LineupID] = item
	return nil
}

func (r *LineupRepository) SumPointsByTeam(_ context.Context, teamID string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0.0
	for _, id := range r.order {
		if item := r.items[id]; item.TeamID == teamID {
			total += item.TotalPoints
		}
	}
	return total, nil
}

func (r *LineupRepository) LockByTournament(_ context.Context, tournamentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		item := r.items[id]
		if item.TournamentID == tournamentID && !item.IsLocked {
			item.IsLocked = true
			r.items[id] = item
		}
	}
	return nil
}
