package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Keegs21/Bunkered/internal/domain/golfer"
	"github.com/Keegs21/Bunkered/internal/domain/tournament"
	"github.com/Keegs21/Bunkered/internal/platform/cache"
)

const (
	cacheKeySchedule = "tournaments:all"
	cacheKeyGolfers  = "golfers:all"
)

// TournamentService serves the schedule and the golfer pool users pick from.
// Both are read-mostly, so listings go through a short-lived cache.
type TournamentService struct {
	tournamentRepo tournament.Repository
	golferRepo     golfer.Repository
	cache          *cache.Store
}

func NewTournamentService(tournamentRepo tournament.Repository, golferRepo golfer.Repository, store *cache.Store) *TournamentService {
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		golferRepo:     golferRepo,
		cache:          store,
	}
}

func (s *TournamentService) GetTournament(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.GetTournament")
	defer span.End()

	if strings.TrimSpace(tournamentID) == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	item, found, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !found {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament %s", ErrNotFound, tournamentID)
	}
	return item, nil
}

func (s *TournamentService) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListTournaments")
	defer span.End()

	load := func(ctx context.Context) (any, error) {
		items, err := s.tournamentRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list tournaments: %w", err)
		}
		return items, nil
	}

	if s.cache == nil {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return value.([]tournament.Tournament), nil
	}

	value, err := s.cache.GetOrLoad(ctx, cacheKeySchedule, load)
	if err != nil {
		return nil, err
	}
	return value.([]tournament.Tournament), nil
}

func (s *TournamentService) ListGolfers(ctx context.Context) ([]golfer.Golfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListGolfers")
	defer span.End()

	load := func(ctx context.Context) (any, error) {
		items, err := s.golferRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list golfers: %w", err)
		}
		return items, nil
	}

	if s.cache == nil {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return value.([]golfer.Golfer), nil
	}

	value, err := s.cache.GetOrLoad(ctx, cacheKeyGolfers, load)
	if err != nil {
		return nil, err
	}
	return value.([]golfer.Golfer), nil
}
