package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Keegs21/Bunkered/internal/domain/golfer"
	"github.com/Keegs21/Bunkered/internal/domain/lineup"
	"github.com/Keegs21/Bunkered/internal/domain/team"
	"github.com/Keegs21/Bunkered/internal/domain/tournament"
	"github.com/Keegs21/Bunkered/internal/platform/id"
)

// LineupService manages lineup submission and retrieval. Odds are captured
// at submission time and are never refreshed afterwards; they are the basis
// of the longshot multiplier once the tournament settles.
type LineupService struct {
	lineupRepo     lineup.Repository
	teamRepo       team.Repository
	tournamentRepo tournament.Repository
	golferRepo     golfer.Repository
	idGen          id.Generator
	now            func() time.Time
}

// LineupPick is one requested slot: the golfer and the decimal odds quoted
// when the user picked them.
type LineupPick struct {
	GolferID string
	Odds     *float64
}

func NewLineupService(
	lineupRepo lineup.Repository,
	teamRepo team.Repository,
	tournamentRepo tournament.Repository,
	golferRepo golfer.Repository,
	idGen id.Generator,
) *LineupService {
	return &LineupService{
		lineupRepo:     lineupRepo,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		golferRepo:     golferRepo,
		idGen:          idGen,
		now:            time.Now,
	}
}

// SubmitLineup creates or replaces the user's lineup for a tournament.
// Submissions close once the tournament starts or the lineup is locked by
// settlement.
func (s *LineupService) SubmitLineup(
	ctx context.Context,
	userID, leagueID, tournamentID string,
	picks [lineup.SlotCount]LineupPick,
) (lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.SubmitLineup")
	defer span.End()

	if strings.TrimSpace(userID) == "" || strings.TrimSpace(leagueID) == "" || strings.TrimSpace(tournamentID) == "" {
		return lineup.Lineup{}, fmt.Errorf("%w: user, league and tournament ids are required", ErrInvalidInput)
	}
	for idx, pick := range picks {
		if strings.TrimSpace(pick.GolferID) == "" {
			return lineup.Lineup{}, fmt.Errorf("%w: slot %d has no golfer", ErrInvalidInput, idx+1)
		}
		if pick.Odds != nil && *pick.Odds <= 1.0 {
			return lineup.Lineup{}, fmt.Errorf("%w: slot %d odds must be above 1.0", ErrInvalidInput, idx+1)
		}
	}

	tourn, found, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("get tournament for lineup: %w", err)
	}
	if !found {
		return lineup.Lineup{}, fmt.Errorf("%w: tournament %s", ErrNotFound, tournamentID)
	}
	now := s.now().UTC()
	if tourn.HasStarted(now) {
		return lineup.Lineup{}, fmt.Errorf("%w: tournament %s has started", ErrLineupLocked, tournamentID)
	}

	owner, found, err := s.teamRepo.GetByUserAndLeague(ctx, userID, leagueID)
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("get team for lineup: %w", err)
	}
	if !found {
		return lineup.Lineup{}, fmt.Errorf("%w: no team registered for user in league %s", ErrNotFound, leagueID)
	}

	item := lineup.Lineup{
		TeamID:       owner.ID,
		TournamentID: tournamentID,
		UpdatedAt:    now,
	}
	for idx, pick := range picks {
		item.Slots[idx] = lineup.Slot{
			GolferID: pick.GolferID,
			Odds:     pick.Odds,
		}
	}
	if err := item.Validate(); err != nil {
		return lineup.Lineup{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	known, err := s.golferRepo.GetByIDs(ctx, item.GolferIDs())
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("get golfers for lineup: %w", err)
	}
	if len(known) != lineup.SlotCount {
		return lineup.Lineup{}, fmt.Errorf("%w: one or more golfers do not exist", ErrInvalidInput)
	}

	existing, found, err := s.lineupRepo.GetByTeamAndTournament(ctx, owner.ID, tournamentID)
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("get existing lineup: %w", err)
	}
	if found {
		if existing.IsLocked {
			return lineup.Lineup{}, fmt.Errorf("%w: lineup %s", ErrLineupLocked, existing.ID)
		}
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
	} else {
		newID, err := s.idGen.NewID()
		if err != nil {
			return lineup.Lineup{}, fmt.Errorf("generate lineup id: %w", err)
		}
		item.ID = newID
		item.CreatedAt = now
	}

	if err := s.lineupRepo.Upsert(ctx, item); err != nil {
		return lineup.Lineup{}, fmt.Errorf("upsert lineup: %w", err)
	}

	return item, nil
}

// GetLineup returns the user's lineup for a tournament, if any.
func (s *LineupService) GetLineup(ctx context.Context, userID, leagueID, tournamentID string) (lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.GetLineup")
	defer span.End()

	owner, found, err := s.teamRepo.GetByUserAndLeague(ctx, userID, leagueID)
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("get team for lineup lookup: %w", err)
	}
	if !found {
		return lineup.Lineup{}, fmt.Errorf("%w: no team registered for user in league %s", ErrNotFound, leagueID)
	}

	item, found, err := s.lineupRepo.GetByTeamAndTournament(ctx, owner.ID, tournamentID)
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("get lineup: %w", err)
	}
	if !found {
		return lineup.Lineup{}, fmt.Errorf("%w: lineup for tournament %s", ErrNotFound, tournamentID)
	}

	return item, nil
}

// ListTeamLineups returns every lineup a team has entered this season.
func (s *LineupService) ListTeamLineups(ctx context.Context, teamID string) ([]lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.ListTeamLineups")
	defer span.End()

	if strings.TrimSpace(teamID) == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	items, err := s.lineupRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list lineups by team: %w", err)
	}
	return items, nil
}
