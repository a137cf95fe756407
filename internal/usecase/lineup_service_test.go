package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/Keegs21/Bunkered/internal/domain/lineup"
	"github.com/Keegs21/Bunkered/internal/domain/team"
	"github.com/Keegs21/Bunkered/internal/infrastructure/repository/memory"
)

func floatPtr(v float64) *float64 { return &v }

func newLineupServiceFixture(t *testing.T) (*LineupService, *memory.LineupRepository) {
	t.Helper()

	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-001", UserID: "user-1", LeagueID: memory.LeagueIDClubhouse, Name: "Fairway Finders"},
	})
	lineupRepo := memory.NewLineupRepository()

	service := NewLineupService(
		lineupRepo,
		teamRepo,
		memory.NewTournamentRepository(memory.SeedTournaments()),
		memory.NewGolferRepository(memory.SeedGolfers()),
		&seqIDGenerator{prefix: "lineup"},
	)
	return service, lineupRepo
}

func standardPicks() [lineup.SlotCount]LineupPick {
	return [lineup.SlotCount]LineupPick{
		{GolferID: "g-scheffler", Odds: floatPtr(4.5)},
		{GolferID: "g-mcilroy", Odds: floatPtr(8.0)},
		{GolferID: "g-fleetwood"},
	}
}

func TestLineupService_SubmitLineup_CreateThenReplace(t *testing.T) {
	service, _ := newLineupServiceFixture(t)

	firstNow := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return firstNow }

	created, err := service.SubmitLineup(t.Context(), "user-1", memory.LeagueIDClubhouse, memory.TournamentIDPebble, standardPicks())
	if err != nil {
		t.Fatalf("submit lineup failed: %v", err)
	}
	if created.ID != "lineup-001" {
		t.Fatalf("unexpected lineup id: %s", created.ID)
	}
	if created.Slots[0].GolferID != "g-scheffler" || created.Slots[0].Odds == nil || *created.Slots[0].Odds != 4.5 {
		t.Fatalf("slot 1 not captured: %+v", created.Slots[0])
	}
	if created.Slots[2].Odds != nil {
		t.Fatal("expected slot 3 odds to stay unset")
	}

	secondNow := firstNow.Add(2 * time.Hour)
	service.now = func() time.Time { return secondNow }

	picks := standardPicks()
	picks[2] = LineupPick{GolferID: "g-hovland", Odds: floatPtr(15.0)}
	replaced, err := service.SubmitLineup(t.Context(), "user-1", memory.LeagueIDClubhouse, memory.TournamentIDPebble, picks)
	if err != nil {
		t.Fatalf("resubmit lineup failed: %v", err)
	}
	if replaced.ID != created.ID {
		t.Fatalf("expected same lineup id on replace, got %s vs %s", replaced.ID, created.ID)
	}
	if !replaced.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected created_at preserved, got %v vs %v", replaced.CreatedAt, created.CreatedAt)
	}
	if !replaced.UpdatedAt.Equal(secondNow) {
		t.Fatalf("expected updated_at %v, got %v", secondNow, replaced.UpdatedAt)
	}
	if replaced.Slots[2].GolferID != "g-hovland" {
		t.Fatalf("slot 3 not replaced: %+v", replaced.Slots[2])
	}
}

func TestLineupService_SubmitLineup_ClosedAfterStart(t *testing.T) {
	service, _ := newLineupServiceFixture(t)
	service.now = func() time.Time {
		return time.Date(2026, 1, 29, 15, 0, 0, 0, time.UTC)
	}

	_, err := service.SubmitLineup(t.Context(), "user-1", memory.LeagueIDClubhouse, memory.TournamentIDPebble, standardPicks())
	if !errors.Is(err, ErrLineupLocked) {
		t.Fatalf("expected ErrLineupLocked at tee time, got %v", err)
	}
}

func TestLineupService_SubmitLineup_LockedBySettlement(t *testing.T) {
	service, lineupRepo := newLineupServiceFixture(t)
	service.now = func() time.Time {
		return time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	}

	if _, err := service.SubmitLineup(t.Context(), "user-1", memory.LeagueIDClubhouse, memory.TournamentIDPebble, standardPicks()); err != nil {
		t.Fatalf("submit lineup failed: %v", err)
	}
	if err := lineupRepo.LockByTournament(t.Context(), memory.TournamentIDPebble); err != nil {
		t.Fatalf("lock lineups: %v", err)
	}

	_, err := service.SubmitLineup(t.Context(), "user-1", memory.LeagueIDClubhouse, memory.TournamentIDPebble, standardPicks())
	if !errors.Is(err, ErrLineupLocked) {
		t.Fatalf("expected ErrLineupLocked for locked lineup, got %v", err)
	}
}

func TestLineupService_SubmitLineup_Validation(t *testing.T) {
	service, _ := newLineupServiceFixture(t)
	service.now = func() time.Time {
		return time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	}

	t.Run("duplicate golfer", func(t *testing.T) {
		picks := standardPicks()
		picks[1] = picks[0]
		if _, err := service.SubmitLineup(t.Context(), "user-1", memory.LeagueIDClubhouse, memory.TournamentIDPebble, picks); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown golfer", func(t *testing.T) {
		picks := standardPicks()
		picks[2] = LineupPick{GolferID: "g-nobody"}
		if _, err := service.SubmitLineup(t.Context(), "user-1", memory.LeagueIDClubhouse, memory.TournamentIDPebble, picks); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("odds at or below evens", func(t *testing.T) {
		picks := standardPicks()
		picks[0].Odds = floatPtr(1.0)
		if _, err := service.SubmitLineup(t.Context(), "user-1", memory.LeagueIDClubhouse, memory.TournamentIDPebble, picks); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("no team in league", func(t *testing.T) {
		if _, err := service.SubmitLineup(t.Context(), "user-2", memory.LeagueIDClubhouse, memory.TournamentIDPebble, standardPicks()); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestLineupService_GetLineup_NotFound(t *testing.T) {
	service, _ := newLineupServiceFixture(t)
	if _, err := service.GetLineup(t.Context(), "user-1", memory.LeagueIDClubhouse, memory.TournamentIDPebble); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
