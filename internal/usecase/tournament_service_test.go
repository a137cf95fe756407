package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/Keegs21/Bunkered/internal/infrastructure/repository/memory"
	"github.com/Keegs21/Bunkered/internal/platform/cache"
)

func TestTournamentService_ListTournaments_CachesWithinTTL(t *testing.T) {
	tournamentRepo := memory.NewTournamentRepository(memory.SeedTournaments())
	service := NewTournamentService(tournamentRepo, memory.NewGolferRepository(memory.SeedGolfers()), cache.NewStore(time.Minute))

	first, err := service.ListTournaments(t.Context())
	if err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 seeded tournaments, got %d", len(first))
	}

	if err := tournamentRepo.MarkCompleted(t.Context(), memory.TournamentIDPebble); err != nil {
		t.Fatalf("mark completed: %v", err)
	}

	second, err := service.ListTournaments(t.Context())
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	for _, item := range second {
		if item.ID == memory.TournamentIDPebble && item.IsCompleted {
			t.Fatal("cached listing must not observe the write inside the TTL")
		}
	}
}

func TestTournamentService_ListTournaments_NoCachePassesThrough(t *testing.T) {
	tournamentRepo := memory.NewTournamentRepository(memory.SeedTournaments())
	service := NewTournamentService(tournamentRepo, memory.NewGolferRepository(nil), nil)

	if _, err := service.ListTournaments(t.Context()); err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	if err := tournamentRepo.MarkCompleted(t.Context(), memory.TournamentIDPebble); err != nil {
		t.Fatalf("mark completed: %v", err)
	}

	items, err := service.ListTournaments(t.Context())
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	var sawCompleted bool
	for _, item := range items {
		if item.ID == memory.TournamentIDPebble {
			sawCompleted = item.IsCompleted
		}
	}
	if !sawCompleted {
		t.Fatal("uncached listing must observe the write")
	}
}

func TestTournamentService_ListGolfers(t *testing.T) {
	service := NewTournamentService(
		memory.NewTournamentRepository(nil),
		memory.NewGolferRepository(memory.SeedGolfers()),
		nil,
	)

	golfers, err := service.ListGolfers(t.Context())
	if err != nil {
		t.Fatalf("list golfers failed: %v", err)
	}
	if len(golfers) == 0 {
		t.Fatal("expected seeded golfers")
	}
	for idx := 1; idx < len(golfers); idx++ {
		if golfers[idx-1].WorldRanking > golfers[idx].WorldRanking {
			t.Fatalf("golfers not ordered by world ranking at index %d", idx)
		}
	}
}

func TestTournamentService_GetTournament(t *testing.T) {
	service := NewTournamentService(memory.NewTournamentRepository(memory.SeedTournaments()), memory.NewGolferRepository(nil), nil)

	item, err := service.GetTournament(t.Context(), memory.TournamentIDMasters)
	if err != nil {
		t.Fatalf("get tournament failed: %v", err)
	}
	if item.Name != "The Masters" {
		t.Fatalf("unexpected tournament: %+v", item)
	}

	if _, err := service.GetTournament(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.GetTournament(t.Context(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
