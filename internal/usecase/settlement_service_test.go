package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/Keegs21/Bunkered/internal/domain/league"
	"github.com/Keegs21/Bunkered/internal/domain/lineup"
	"github.com/Keegs21/Bunkered/internal/domain/result"
	"github.com/Keegs21/Bunkered/internal/domain/team"
	"github.com/Keegs21/Bunkered/internal/infrastructure/repository/memory"
)

type settlementFixture struct {
	service    *SettlementService
	leagueRepo *memory.LeagueRepository
	teamRepo   *memory.TeamRepository
	lineupRepo *memory.LineupRepository
	resultRepo *memory.ResultRepository
}

func intPtr(v int) *int { return &v }

// newSettlementFixture builds a two-team league entered into the seeded
// Pebble Beach event, with final results already ingested.
func newSettlementFixture(t *testing.T) settlementFixture {
	t.Helper()

	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-1", UserID: "user-1", LeagueID: memory.LeagueIDClubhouse, Name: "Fairway Finders"},
		{ID: "team-2", UserID: "user-2", LeagueID: memory.LeagueIDClubhouse, Name: "Rough Riders"},
	})
	lineupRepo := memory.NewLineupRepository()
	resultRepo := memory.NewResultRepository()
	tournamentRepo := memory.NewTournamentRepository(memory.SeedTournaments())

	memberships := []league.Membership{
		{ID: "m-1", LeagueID: memory.LeagueIDClubhouse, UserID: "user-1"},
		{ID: "m-2", LeagueID: memory.LeagueIDClubhouse, UserID: "user-2"},
	}
	for _, m := range memberships {
		if err := leagueRepo.CreateMembership(t.Context(), m); err != nil {
			t.Fatalf("create membership %s: %v", m.ID, err)
		}
	}

	lineups := []lineup.Lineup{
		{
			ID:           "lineup-1",
			TeamID:       "team-1",
			TournamentID: memory.TournamentIDPebble,
			Slots: [lineup.SlotCount]lineup.Slot{
				{GolferID: "g-scheffler", Odds: floatPtr(4.5)},
				{GolferID: "g-mcilroy", Odds: floatPtr(8.0)},
				{GolferID: "g-fleetwood", Odds: floatPtr(22.0)},
			},
		},
		{
			ID:           "lineup-2",
			TeamID:       "team-2",
			TournamentID: memory.TournamentIDPebble,
			Slots: [lineup.SlotCount]lineup.Slot{
				{GolferID: "g-hovland", Odds: floatPtr(18.0)},
				{GolferID: "g-thomas", Odds: floatPtr(26.0)},
				{GolferID: "g-burns"},
			},
		},
	}
	for _, item := range lineups {
		if err := lineupRepo.Upsert(t.Context(), item); err != nil {
			t.Fatalf("upsert lineup %s: %v", item.ID, err)
		}
	}

	rows := []result.TournamentResult{
		{TournamentID: memory.TournamentIDPebble, GolferID: "g-scheffler", Position: intPtr(1), Score: -18, PrizeMoney: 3_600_000, MadeCut: true, RoundsPlayed: 4},
		{TournamentID: memory.TournamentIDPebble, GolferID: "g-mcilroy", Position: intPtr(4), Score: -12, PrizeMoney: 880_000, MadeCut: true, RoundsPlayed: 4},
		{TournamentID: memory.TournamentIDPebble, GolferID: "g-fleetwood", Position: intPtr(30), Score: -2, PrizeMoney: 90_000, MadeCut: true, RoundsPlayed: 4},
		{TournamentID: memory.TournamentIDPebble, GolferID: "g-hovland", Position: nil, Score: 6, PrizeMoney: 0, MadeCut: false, RoundsPlayed: 2},
		// g-thomas has no result row at all: withdrawn before the first round.
		{TournamentID: memory.TournamentIDPebble, GolferID: "g-burns", Position: intPtr(12), Score: -6, PrizeMoney: 210_000, MadeCut: true, RoundsPlayed: 4},
	}
	if err := resultRepo.UpsertBatch(t.Context(), rows); err != nil {
		t.Fatalf("upsert results: %v", err)
	}

	standings := NewStandingsService(leagueRepo, teamRepo)
	service := NewSettlementService(tournamentRepo, resultRepo, lineupRepo, teamRepo, leagueRepo, standings)
	service.now = func() time.Time {
		return time.Date(2026, 2, 2, 2, 0, 0, 0, time.UTC)
	}

	return settlementFixture{
		service:    service,
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		lineupRepo: lineupRepo,
		resultRepo: resultRepo,
	}
}

func TestSettlementService_SettleTournament_FullPipeline(t *testing.T) {
	fx := newSettlementFixture(t)

	summary, err := fx.service.SettleTournament(t.Context(), memory.TournamentIDPebble)
	if err != nil {
		t.Fatalf("settle tournament failed: %v", err)
	}

	if summary.LineupsScored != 2 {
		t.Fatalf("expected 2 lineups scored, got %d", summary.LineupsScored)
	}
	if summary.TeamsUpdated != 2 {
		t.Fatalf("expected 2 teams updated, got %d", summary.TeamsUpdated)
	}
	if summary.LeaguesReranked != 1 {
		t.Fatalf("expected 1 league reranked, got %d", summary.LeaguesReranked)
	}

	lineup1, found, err := fx.lineupRepo.GetByTeamAndTournament(t.Context(), "team-1", memory.TournamentIDPebble)
	if err != nil || !found {
		t.Fatalf("lineup 1 missing after settlement: found=%v err=%v", found, err)
	}

	if len(summary.Lineups) != 2 {
		t.Fatalf("expected 2 settled lineups in summary, got %d", len(summary.Lineups))
	}
	settledByID := make(map[string]SettledLineup, len(summary.Lineups))
	for _, settled := range summary.Lineups {
		settledByID[settled.LineupID] = settled
	}
	settled1, ok := settledByID["lineup-1"]
	if !ok {
		t.Fatalf("summary is missing lineup-1: %+v", summary.Lineups)
	}
	if settled1.TeamID != "team-1" || settled1.UserID != "user-1" {
		t.Fatalf("unexpected ownership on settled lineup: team=%s user=%s", settled1.TeamID, settled1.UserID)
	}
	if settled1.TotalPoints != lineup1.TotalPoints {
		t.Fatalf("summary total %f should match persisted total %f", settled1.TotalPoints, lineup1.TotalPoints)
	}
	if lineup1.TotalPoints <= 0 {
		t.Fatalf("expected positive total for made-cut lineup, got %f", lineup1.TotalPoints)
	}
	for idx, slot := range lineup1.Slots {
		if slot.Points <= 0 {
			t.Fatalf("slot %d should have scored, got %f", idx+1, slot.Points)
		}
	}
	if lineup1.Slots[0].Points <= lineup1.Slots[2].Points {
		t.Fatalf("winner at short odds should outscore 30th place: %f vs %f",
			lineup1.Slots[0].Points, lineup1.Slots[2].Points)
	}

	lineup2, _, err := fx.lineupRepo.GetByTeamAndTournament(t.Context(), "team-2", memory.TournamentIDPebble)
	if err != nil {
		t.Fatalf("get lineup 2: %v", err)
	}
	if lineup2.Slots[0].Points != 0 {
		t.Fatalf("missed cut must score zero, got %f", lineup2.Slots[0].Points)
	}
	if lineup2.Slots[1].Points != 0 {
		t.Fatalf("golfer with no result row must score zero, got %f", lineup2.Slots[1].Points)
	}
	if lineup2.Slots[2].Points <= 0 {
		t.Fatalf("12th place should have scored, got %f", lineup2.Slots[2].Points)
	}

	team1, _, err := fx.teamRepo.GetByID(t.Context(), "team-1")
	if err != nil {
		t.Fatalf("get team 1: %v", err)
	}
	if team1.TotalPoints != lineup1.TotalPoints {
		t.Fatalf("team season total %f should equal its only lineup %f", team1.TotalPoints, lineup1.TotalPoints)
	}

	memberships, err := fx.leagueRepo.ListMemberships(t.Context(), memory.LeagueIDClubhouse)
	if err != nil {
		t.Fatalf("list memberships: %v", err)
	}
	byID := make(map[string]league.Membership, len(memberships))
	for _, m := range memberships {
		byID[m.ID] = m
	}
	if byID["m-1"].TotalPoints != team1.TotalPoints {
		t.Fatalf("membership total %f should mirror team total %f", byID["m-1"].TotalPoints, team1.TotalPoints)
	}
	if byID["m-1"].Position != 1 || byID["m-2"].Position != 2 {
		t.Fatalf("unexpected standings: m-1=%d m-2=%d", byID["m-1"].Position, byID["m-2"].Position)
	}
}

func TestSettlementService_SettleTournament_Idempotent(t *testing.T) {
	fx := newSettlementFixture(t)

	first, err := fx.service.SettleTournament(t.Context(), memory.TournamentIDPebble)
	if err != nil {
		t.Fatalf("first settlement failed: %v", err)
	}
	firstLineup, _, _ := fx.lineupRepo.GetByTeamAndTournament(t.Context(), "team-1", memory.TournamentIDPebble)

	second, err := fx.service.SettleTournament(t.Context(), memory.TournamentIDPebble)
	if err != nil {
		t.Fatalf("second settlement failed: %v", err)
	}
	secondLineup, _, _ := fx.lineupRepo.GetByTeamAndTournament(t.Context(), "team-1", memory.TournamentIDPebble)

	if first.LineupsScored != second.LineupsScored {
		t.Fatalf("reruns must score the same lineups: %d vs %d", first.LineupsScored, second.LineupsScored)
	}
	if firstLineup.TotalPoints != secondLineup.TotalPoints {
		t.Fatalf("rerun changed lineup total: %f vs %f", firstLineup.TotalPoints, secondLineup.TotalPoints)
	}

	team1, _, _ := fx.teamRepo.GetByID(t.Context(), "team-1")
	if team1.TotalPoints != secondLineup.TotalPoints {
		t.Fatalf("rerun must not double count season total: %f vs %f", team1.TotalPoints, secondLineup.TotalPoints)
	}
}

func TestSettlementService_SettleTournament_CorrectedResultsShrinkTotals(t *testing.T) {
	fx := newSettlementFixture(t)

	if _, err := fx.service.SettleTournament(t.Context(), memory.TournamentIDPebble); err != nil {
		t.Fatalf("first settlement failed: %v", err)
	}
	before, _, _ := fx.teamRepo.GetByID(t.Context(), "team-1")

	// Official correction: the winner is disqualified after the fact.
	if err := fx.resultRepo.UpsertBatch(t.Context(), []result.TournamentResult{
		{TournamentID: memory.TournamentIDPebble, GolferID: "g-scheffler", Position: nil, Score: 0, MadeCut: false, RoundsPlayed: 4},
	}); err != nil {
		t.Fatalf("upsert corrected result: %v", err)
	}

	if _, err := fx.service.SettleTournament(t.Context(), memory.TournamentIDPebble); err != nil {
		t.Fatalf("resettlement failed: %v", err)
	}
	after, _, _ := fx.teamRepo.GetByID(t.Context(), "team-1")

	if after.TotalPoints >= before.TotalPoints {
		t.Fatalf("disqualification must shrink the season total: before=%f after=%f", before.TotalPoints, after.TotalPoints)
	}
}

func TestSettlementService_SettleTournament_NoResultRowsScoresZero(t *testing.T) {
	fx := newSettlementFixture(t)

	// No results have been ingested for the Players: every pick settles
	// as a missed cut.
	if err := fx.lineupRepo.Upsert(t.Context(), lineup.Lineup{
		ID:           "lineup-3",
		TeamID:       "team-1",
		TournamentID: memory.TournamentIDPlayers,
		Slots: [lineup.SlotCount]lineup.Slot{
			{GolferID: "g-aberg", Odds: floatPtr(14.0)},
			{GolferID: "g-cantlay", Odds: floatPtr(20.0)},
			{GolferID: "g-im"},
		},
	}); err != nil {
		t.Fatalf("upsert lineup: %v", err)
	}

	summary, err := fx.service.SettleTournament(t.Context(), memory.TournamentIDPlayers)
	if err != nil {
		t.Fatalf("settle tournament failed: %v", err)
	}

	settled, found, err := fx.lineupRepo.GetByTeamAndTournament(t.Context(), "team-1", memory.TournamentIDPlayers)
	if err != nil || !found {
		t.Fatalf("lineup missing after settlement: found=%v err=%v", found, err)
	}
	for idx, slot := range settled.Slots {
		if slot.Points != 0 {
			t.Fatalf("slot %d must score exactly zero without a result row, got %f", idx+1, slot.Points)
		}
	}
	if settled.TotalPoints != 0 {
		t.Fatalf("lineup total must be exactly zero, got %f", settled.TotalPoints)
	}

	if len(summary.Lineups) != 1 || summary.Lineups[0].TotalPoints != 0 {
		t.Fatalf("summary must report the zero total: %+v", summary.Lineups)
	}
}

func TestSettlementService_SettleTournament_UnknownTournament(t *testing.T) {
	fx := newSettlementFixture(t)
	if _, err := fx.service.SettleTournament(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSettlementService_SettleTournament_NoLineups(t *testing.T) {
	fx := newSettlementFixture(t)

	summary, err := fx.service.SettleTournament(t.Context(), memory.TournamentIDPlayers)
	if err != nil {
		t.Fatalf("settling an empty tournament failed: %v", err)
	}
	if summary.LineupsScored != 0 || summary.TeamsUpdated != 0 || summary.LeaguesReranked != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}
