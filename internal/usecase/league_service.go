package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Keegs21/Bunkered/internal/domain/league"
	"github.com/Keegs21/Bunkered/internal/platform/id"
)

// LeagueService manages league lifecycle and membership.
type LeagueService struct {
	leagueRepo league.Repository
	standings  *StandingsService
	idGen      id.Generator
	now        func() time.Time
}

func NewLeagueService(leagueRepo league.Repository, standings *StandingsService, idGen id.Generator) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		standings:  standings,
		idGen:      idGen,
		now:        time.Now,
	}
}

// CreateLeague creates a league and enrolls the creator as its first member.
// An all-zero scoring config falls back to the defaults.
func (s *LeagueService) CreateLeague(ctx context.Context, creatorID string, item league.League) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateLeague")
	defer span.End()

	if strings.TrimSpace(creatorID) == "" {
		return league.League{}, fmt.Errorf("%w: creator id is required", ErrInvalidInput)
	}
	if item.Scoring.IsZero() {
		item.Scoring = league.DefaultScoringConfig()
	}

	leagueID, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}
	item.ID = leagueID
	item.Status = league.StatusOpen
	item.CreatedAt = s.now().UTC()

	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.leagueRepo.Create(ctx, item); err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}

	if _, err := s.JoinLeague(ctx, item.ID, creatorID); err != nil {
		return league.League{}, fmt.Errorf("enroll creator: %w", err)
	}

	return item, nil
}

// JoinLeague adds a user to an open league with capacity left.
func (s *LeagueService) JoinLeague(ctx context.Context, leagueID, userID string) (league.Membership, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.JoinLeague")
	defer span.End()

	if strings.TrimSpace(leagueID) == "" || strings.TrimSpace(userID) == "" {
		return league.Membership{}, fmt.Errorf("%w: league and user ids are required", ErrInvalidInput)
	}

	item, found, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.Membership{}, fmt.Errorf("get league for join: %w", err)
	}
	if !found {
		return league.Membership{}, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}
	if item.Status != league.StatusOpen {
		return league.Membership{}, fmt.Errorf("%w: league %s is not open", ErrConflict, leagueID)
	}

	if _, exists, err := s.leagueRepo.GetMembership(ctx, leagueID, userID); err != nil {
		return league.Membership{}, fmt.Errorf("get membership for join: %w", err)
	} else if exists {
		return league.Membership{}, fmt.Errorf("%w: user already joined league %s", ErrConflict, leagueID)
	}

	if item.MaxMembers > 0 {
		count, err := s.leagueRepo.CountMemberships(ctx, leagueID)
		if err != nil {
			return league.Membership{}, fmt.Errorf("count memberships for join: %w", err)
		}
		if count >= item.MaxMembers {
			return league.Membership{}, fmt.Errorf("%w: league %s is full", ErrConflict, leagueID)
		}
	}

	membershipID, err := s.idGen.NewID()
	if err != nil {
		return league.Membership{}, fmt.Errorf("generate membership id: %w", err)
	}
	membership := league.Membership{
		ID:       membershipID,
		LeagueID: leagueID,
		UserID:   userID,
		JoinedAt: s.now().UTC(),
	}

	if err := s.leagueRepo.CreateMembership(ctx, membership); err != nil {
		return league.Membership{}, fmt.Errorf("create membership: %w", err)
	}

	return membership, nil
}

// GetLeague returns one league by ID.
func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	item, found, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !found {
		return league.League{}, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}
	return item, nil
}

// ListLeagues returns every league.
func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	items, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return items, nil
}

// Leaderboard returns the league table in ranked order, refreshing positions
// first so the response never shows stale ranks alongside fresh totals.
func (s *LeagueService) Leaderboard(ctx context.Context, leagueID string) ([]Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Leaderboard")
	defer span.End()

	if _, found, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, fmt.Errorf("get league for leaderboard: %w", err)
	} else if !found {
		return nil, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}

	return s.standings.Rank(ctx, leagueID)
}
