package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Keegs21/Bunkered/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items map[string]team.Team
	order []string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	items := make(map[string]team.Team, len(teams))
	order := make([]string, 0, len(teams))
	for _, t := range teams {
		items[t.ID] = t
		order = append(order, t.ID)
	}

	return &TeamRepository{
		items: items,
		order: order,
	}
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = item
	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[teamID]
	if !ok {
		return team.Team{}, false, nil
	}
	return item, true, nil
}

func (r *TeamRepository) GetByUserAndLeague(_ context.Context, userID, leagueID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		item := r.items[id]
		if item.UserID == userID && item.LeagueID == leagueID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) ListByUser(_ context.Context, userID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, id := range r.order {
		if item := r.items[id]; item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, id := range r.order {
		if item := r.items[id]; item.LeagueID == leagueID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *TeamRepository) UpdateSeasonTotal(_ context.Context, teamID string, totalPoints float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[teamID]
	if !ok {
		return nil
	}
	item.TotalPoints = totalPoints
	item.UpdatedAt = time.Now().UTC()
	r.items[teamID] = item
	return nil
}
