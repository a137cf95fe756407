package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Keegs21/Bunkered/internal/domain/league"
	"github.com/Keegs21/Bunkered/internal/domain/team"
)

// StandingsService maintains league standings. Positions are strict: every
// member gets a distinct position 1..N, ties on points are broken by
// membership ID so reruns over the same data always produce the same order.
type StandingsService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
}

type Standing struct {
	Position     int
	MembershipID string
	UserID       string
	TeamID       string
	TeamName     string
	TotalPoints  float64
}

func NewStandingsService(leagueRepo league.Repository, teamRepo team.Repository) *StandingsService {
	return &StandingsService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
	}
}

// Rank orders every membership of the league and persists the resulting
// positions. It returns the full table in ranked order.
func (s *StandingsService) Rank(ctx context.Context, leagueID string) ([]Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Rank")
	defer span.End()

	if strings.TrimSpace(leagueID) == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	memberships, err := s.leagueRepo.ListMemberships(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list memberships for standings: %w", err)
	}
	if len(memberships) == 0 {
		return []Standing{}, nil
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams for standings: %w", err)
	}
	teamByUser := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		teamByUser[item.UserID] = item
	}

	sort.SliceStable(memberships, func(i, j int) bool {
		if memberships[i].TotalPoints != memberships[j].TotalPoints {
			return memberships[i].TotalPoints > memberships[j].TotalPoints
		}
		return memberships[i].ID < memberships[j].ID
	})

	standings := make([]Standing, 0, len(memberships))
	positionByMembership := make(map[string]int, len(memberships))
	for idx, member := range memberships {
		position := idx + 1
		positionByMembership[member.ID] = position

		row := Standing{
			Position:     position,
			MembershipID: member.ID,
			UserID:       member.UserID,
			TotalPoints:  member.TotalPoints,
		}
		if item, ok := teamByUser[member.UserID]; ok {
			row.TeamID = item.ID
			row.TeamName = item.Name
		}
		standings = append(standings, row)
	}

	if err := s.leagueRepo.UpdateMembershipPositions(ctx, leagueID, positionByMembership); err != nil {
		return nil, fmt.Errorf("update membership positions: %w", err)
	}

	return standings, nil
}
