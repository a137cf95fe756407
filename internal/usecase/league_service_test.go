package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Keegs21/Bunkered/internal/domain/league"
	"github.com/Keegs21/Bunkered/internal/infrastructure/repository/memory"
)

type seqIDGenerator struct {
	prefix string
	next   int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%03d", g.prefix, g.next), nil
}

func TestLeagueService_CreateLeague_EnrollsCreator(t *testing.T) {
	leagueRepo := memory.NewLeagueRepository(nil)
	teamRepo := memory.NewTeamRepository(nil)

	service := NewLeagueService(leagueRepo, NewStandingsService(leagueRepo, teamRepo), &seqIDGenerator{prefix: "id"})
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.CreateLeague(t.Context(), "user-1", league.League{
		Name:       "Winter Major Pool",
		SeasonYear: 2026,
		MaxMembers: 8,
	})
	if err != nil {
		t.Fatalf("create league failed: %v", err)
	}

	if created.ID != "id-001" {
		t.Fatalf("unexpected league id: %s", created.ID)
	}
	if created.Status != league.StatusOpen {
		t.Fatalf("expected open status, got %s", created.Status)
	}
	if created.Scoring.IsZero() {
		t.Fatal("expected default scoring config to be applied")
	}
	if !created.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", created.CreatedAt)
	}

	membership, found, err := leagueRepo.GetMembership(t.Context(), created.ID, "user-1")
	if err != nil || !found {
		t.Fatalf("expected creator membership, found=%v err=%v", found, err)
	}
	if membership.LeagueID != created.ID {
		t.Fatalf("membership bound to wrong league: %s", membership.LeagueID)
	}
}

func TestLeagueService_JoinLeague_DuplicateMember(t *testing.T) {
	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	teamRepo := memory.NewTeamRepository(nil)
	service := NewLeagueService(leagueRepo, NewStandingsService(leagueRepo, teamRepo), &seqIDGenerator{prefix: "m"})

	if _, err := service.JoinLeague(t.Context(), memory.LeagueIDClubhouse, "user-1"); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	if _, err := service.JoinLeague(t.Context(), memory.LeagueIDClubhouse, "user-1"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate join, got %v", err)
	}
}

func TestLeagueService_JoinLeague_FullLeague(t *testing.T) {
	leagueRepo := memory.NewLeagueRepository([]league.League{
		{
			ID:         "tiny-league",
			Name:       "Tiny League",
			SeasonYear: 2026,
			MaxMembers: 1,
			Status:     league.StatusOpen,
			Scoring:    league.DefaultScoringConfig(),
		},
	})
	teamRepo := memory.NewTeamRepository(nil)
	service := NewLeagueService(leagueRepo, NewStandingsService(leagueRepo, teamRepo), &seqIDGenerator{prefix: "m"})

	if _, err := service.JoinLeague(t.Context(), "tiny-league", "user-1"); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	if _, err := service.JoinLeague(t.Context(), "tiny-league", "user-2"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for full league, got %v", err)
	}
}

func TestLeagueService_JoinLeague_UnknownLeague(t *testing.T) {
	leagueRepo := memory.NewLeagueRepository(nil)
	teamRepo := memory.NewTeamRepository(nil)
	service := NewLeagueService(leagueRepo, NewStandingsService(leagueRepo, teamRepo), &seqIDGenerator{prefix: "m"})

	if _, err := service.JoinLeague(t.Context(), "missing", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeagueService_Leaderboard_UnknownLeague(t *testing.T) {
	leagueRepo := memory.NewLeagueRepository(nil)
	teamRepo := memory.NewTeamRepository(nil)
	service := NewLeagueService(leagueRepo, NewStandingsService(leagueRepo, teamRepo), &seqIDGenerator{prefix: "m"})

	if _, err := service.Leaderboard(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
