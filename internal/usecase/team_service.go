package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Keegs21/Bunkered/internal/domain/league"
	"github.com/Keegs21/Bunkered/internal/domain/team"
	"github.com/Keegs21/Bunkered/internal/platform/id"
)

// TeamService manages team registration. A user carries one team per league;
// the team is the anchor every lineup and season total hangs off.
type TeamService struct {
	teamRepo   team.Repository
	leagueRepo league.Repository
	idGen      id.Generator
	now        func() time.Time
}

func NewTeamService(teamRepo team.Repository, leagueRepo league.Repository, idGen id.Generator) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		leagueRepo: leagueRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// RegisterTeam creates the user's team in a league they are a member of.
func (s *TeamService) RegisterTeam(ctx context.Context, userID, leagueID, name string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.RegisterTeam")
	defer span.End()

	name = strings.TrimSpace(name)
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(leagueID) == "" {
		return team.Team{}, fmt.Errorf("%w: user and league ids are required", ErrInvalidInput)
	}
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	if _, found, err := s.leagueRepo.GetMembership(ctx, leagueID, userID); err != nil {
		return team.Team{}, fmt.Errorf("get membership for team registration: %w", err)
	} else if !found {
		return team.Team{}, fmt.Errorf("%w: user is not a member of league %s", ErrUnauthorized, leagueID)
	}

	if _, exists, err := s.teamRepo.GetByUserAndLeague(ctx, userID, leagueID); err != nil {
		return team.Team{}, fmt.Errorf("get existing team: %w", err)
	} else if exists {
		return team.Team{}, fmt.Errorf("%w: user already has a team in league %s", ErrConflict, leagueID)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.now().UTC()
	item := team.Team{
		ID:        teamID,
		UserID:    userID,
		LeagueID:  leagueID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return item, nil
}

// GetTeam returns one team by ID.
func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	item, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}
	return item, nil
}

// ListUserTeams returns every team the user owns across leagues.
func (s *TeamService) ListUserTeams(ctx context.Context, userID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListUserTeams")
	defer span.End()

	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	items, err := s.teamRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list teams by user: %w", err)
	}
	return items, nil
}
