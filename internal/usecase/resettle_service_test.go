package usecase

import (
	"errors"
	"testing"

	"github.com/Keegs21/Bunkered/internal/domain/league"
	"github.com/Keegs21/Bunkered/internal/domain/lineup"
	"github.com/Keegs21/Bunkered/internal/domain/result"
	"github.com/Keegs21/Bunkered/internal/domain/team"
	"github.com/Keegs21/Bunkered/internal/infrastructure/repository/memory"
)

func TestResettleService_ResettleSeason(t *testing.T) {
	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-1", UserID: "user-1", LeagueID: memory.LeagueIDClubhouse, Name: "Fairway Finders"},
	})
	lineupRepo := memory.NewLineupRepository()
	resultRepo := memory.NewResultRepository()
	tournamentRepo := memory.NewTournamentRepository(memory.SeedTournaments())

	if err := leagueRepo.CreateMembership(t.Context(), league.Membership{
		ID:       "m-1",
		LeagueID: memory.LeagueIDClubhouse,
		UserID:   "user-1",
	}); err != nil {
		t.Fatalf("create membership: %v", err)
	}

	if err := lineupRepo.Upsert(t.Context(), lineup.Lineup{
		ID:           "lineup-1",
		TeamID:       "team-1",
		TournamentID: memory.TournamentIDPebble,
		Slots: [lineup.SlotCount]lineup.Slot{
			{GolferID: "g-scheffler", Odds: floatPtr(4.5)},
			{GolferID: "g-mcilroy", Odds: floatPtr(8.0)},
			{GolferID: "g-fleetwood"},
		},
		IsLocked: true,
	}); err != nil {
		t.Fatalf("upsert lineup: %v", err)
	}
	if err := resultRepo.UpsertBatch(t.Context(), []result.TournamentResult{
		{TournamentID: memory.TournamentIDPebble, GolferID: "g-scheffler", Position: intPtr(1), MadeCut: true, RoundsPlayed: 4},
		{TournamentID: memory.TournamentIDPebble, GolferID: "g-mcilroy", Position: intPtr(5), MadeCut: true, RoundsPlayed: 4},
		{TournamentID: memory.TournamentIDPebble, GolferID: "g-fleetwood", Position: intPtr(40), MadeCut: true, RoundsPlayed: 4},
	}); err != nil {
		t.Fatalf("upsert results: %v", err)
	}

	for _, id := range []string{memory.TournamentIDPebble, memory.TournamentIDPlayers} {
		if err := tournamentRepo.MarkCompleted(t.Context(), id); err != nil {
			t.Fatalf("mark %s completed: %v", id, err)
		}
	}

	standings := NewStandingsService(leagueRepo, teamRepo)
	settlementSvc := NewSettlementService(tournamentRepo, resultRepo, lineupRepo, teamRepo, leagueRepo, standings)
	service := NewResettleService(tournamentRepo, settlementSvc)

	res, err := service.ResettleSeason(t.Context(), ResettleInput{Season: 2026, MaxWorkers: 8})
	if err != nil {
		t.Fatalf("resettle season failed: %v", err)
	}

	if res.TournamentCount != 2 {
		t.Fatalf("expected 2 completed tournaments, got %d", res.TournamentCount)
	}
	if res.SuccessCount != 2 || res.FailedCount != 0 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if res.WorkerCount != 2 {
		t.Fatalf("worker count should shrink to the task count, got %d", res.WorkerCount)
	}

	if len(res.Tasks) != 2 {
		t.Fatalf("expected 2 task rows, got %d", len(res.Tasks))
	}
	if res.Tasks[0].TournamentID != memory.TournamentIDPebble || res.Tasks[1].TournamentID != memory.TournamentIDPlayers {
		t.Fatalf("tasks not sorted by tournament id: %+v", res.Tasks)
	}
	if res.Tasks[0].LineupsScored != 1 {
		t.Fatalf("expected 1 lineup scored at pebble, got %d", res.Tasks[0].LineupsScored)
	}

	team1, _, err := teamRepo.GetByID(t.Context(), "team-1")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if team1.TotalPoints <= 0 {
		t.Fatalf("expected season total after resettle, got %f", team1.TotalPoints)
	}
}

func TestResettleService_ResettleSeason_NoCompletedTournaments(t *testing.T) {
	tournamentRepo := memory.NewTournamentRepository(memory.SeedTournaments())
	leagueRepo := memory.NewLeagueRepository(nil)
	teamRepo := memory.NewTeamRepository(nil)
	standings := NewStandingsService(leagueRepo, teamRepo)
	settlementSvc := NewSettlementService(tournamentRepo, memory.NewResultRepository(), memory.NewLineupRepository(), teamRepo, leagueRepo, standings)
	service := NewResettleService(tournamentRepo, settlementSvc)

	res, err := service.ResettleSeason(t.Context(), ResettleInput{Season: 2026})
	if err != nil {
		t.Fatalf("resettle failed: %v", err)
	}
	if res.TournamentCount != 0 || len(res.Tasks) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestResettleService_ResettleSeason_RequiresSeason(t *testing.T) {
	service := NewResettleService(memory.NewTournamentRepository(nil), nil)
	if _, err := service.ResettleSeason(t.Context(), ResettleInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNormalizeResettleWorkerCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		requested int
		tasks     int
		want      int
	}{
		{"default when unset", 0, 100, defaultResettleWorkers},
		{"capped at max", 64, 100, maxResettleWorkers},
		{"shrinks to task count", 8, 3, 3},
		{"explicit within bounds", 6, 100, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeResettleWorkerCount(tc.requested, tc.tasks); got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}
