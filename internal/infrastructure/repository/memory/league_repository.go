package memory

import (
	"context"
	"sync"

	"github.com/Keegs21/Bunkered/internal/domain/league"
)

type LeagueRepository struct {
	mu          sync.RWMutex
	items       map[string]league.League
	order       []string
	memberships map[string][]league.Membership
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	order := make([]string, 0, len(leagues))
	for _, l := range leagues {
		items[l.ID] = l
		order = append(order, l.ID)
	}

	return &LeagueRepository{
		items:       items,
		order:       order,
		memberships: make(map[string][]league.Membership),
	}
}

func (r *LeagueRepository) Create(_ context.Context, item league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = item
	return nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}
	return item, true, nil
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *LeagueRepository) CreateMembership(_ context.Context, membership league.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.memberships[membership.LeagueID] = append(r.memberships[membership.LeagueID], membership)
	return nil
}

func (r *LeagueRepository) GetMembership(_ context.Context, leagueID, userID string) (league.Membership, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, member := range r.memberships[leagueID] {
		if member.UserID == userID {
			return member, true, nil
		}
	}
	return league.Membership{}, false, nil
}

func (r *LeagueRepository) ListMemberships(_ context.Context, leagueID string) ([]league.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]league.Membership(nil), r.memberships[leagueID]...), nil
}

func (r *LeagueRepository) CountMemberships(_ context.Context, leagueID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.memberships[leagueID]), nil
}

func (r *LeagueRepository) UpdateMembershipTotal(_ context.Context, leagueID, userID string, totalPoints float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	members := r.memberships[leagueID]
	for idx := range members {
		if members[idx].UserID == userID {
			members[idx].TotalPoints = totalPoints
			return nil
		}
	}
	return nil
}

func (r *LeagueRepository) UpdateMembershipPositions(_ context.Context, leagueID string, positionByMembershipID map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	members := r.memberships[leagueID]
	for idx := range members {
		if position, ok := positionByMembershipID[members[idx].ID]; ok {
			members[idx].Position = position
		}
	}
	return nil
}
