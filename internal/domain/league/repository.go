package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item League) error
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	List(ctx context.Context) ([]League, error)

	CreateMembership(ctx context.Context, membership Membership) error
	GetMembership(ctx context.Context, leagueID, userID string) (Membership, bool, error)
	ListMemberships(ctx context.Context, leagueID string) ([]Membership, error)
	CountMemberships(ctx context.Context, leagueID string) (int, error)
	UpdateMembershipTotal(ctx context.Context, leagueID, userID string, totalPoints float64) error
	UpdateMembershipPositions(ctx context.Context, leagueID string, positionByMembershipID map[string]int) error
}
