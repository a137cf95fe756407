package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Keegs21/Bunkered/internal/domain/league"
	"github.com/Keegs21/Bunkered/internal/domain/lineup"
	"github.com/Keegs21/Bunkered/internal/domain/result"
	"github.com/Keegs21/Bunkered/internal/domain/scoring"
	"github.com/Keegs21/Bunkered/internal/domain/team"
	"github.com/Keegs21/Bunkered/internal/domain/tournament"
	"github.com/Keegs21/Bunkered/internal/platform/resilience"
)

// SettlementService turns final tournament results into persisted lineup
// points, season totals and league standings. Settlement is idempotent:
// rerunning it over unchanged results rewrites the same values.
type SettlementService struct {
	tournamentRepo tournament.Repository
	resultRepo     result.Repository
	lineupRepo     lineup.Repository
	teamRepo       team.Repository
	leagueRepo     league.Repository
	standings      *StandingsService
	settleFlight   resilience.SingleFlight
	now            func() time.Time
}

type SettlementSummary struct {
	TournamentID    string          `json:"tournament_id"`
	Lineups         []SettledLineup `json:"lineups"`
	LineupsScored   int             `json:"lineups_scored"`
	TeamsUpdated    int             `json:"teams_updated"`
	LeaguesReranked int             `json:"leagues_reranked"`
	SettledAt       time.Time       `json:"settled_at"`
}

// SettledLineup reports one lineup's persisted settlement total back to
// the caller, in scoring order.
type SettledLineup struct {
	LineupID    string  `json:"lineup_id"`
	TeamID      string  `json:"team_id"`
	UserID      string  `json:"user_id"`
	TotalPoints float64 `json:"total_points"`
}

// SlotScore is the settled outcome for one lineup slot.
type SlotScore struct {
	GolferID  string
	Breakdown scoring.Breakdown
}

// LineupScore is the settled outcome for one full lineup.
type LineupScore struct {
	LineupID    string
	TeamID      string
	Slots       [lineup.SlotCount]SlotScore
	TotalPoints float64
}

func NewSettlementService(
	tournamentRepo tournament.Repository,
	resultRepo result.Repository,
	lineupRepo lineup.Repository,
	teamRepo team.Repository,
	leagueRepo league.Repository,
	standings *StandingsService,
) *SettlementService {
	return &SettlementService{
		tournamentRepo: tournamentRepo,
		resultRepo:     resultRepo,
		lineupRepo:     lineupRepo,
		teamRepo:       teamRepo,
		leagueRepo:     leagueRepo,
		standings:      standings,
		now:            time.Now,
	}
}

// SettleTournament settles every lineup entered into the tournament, then
// refreshes season totals and standings for every affected team and league.
// Concurrent calls for the same tournament collapse into one run; callers
// all observe that run's summary.
func (s *SettlementService) SettleTournament(ctx context.Context, tournamentID string) (SettlementSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettlementService.SettleTournament")
	defer span.End()

	if strings.TrimSpace(tournamentID) == "" {
		return SettlementSummary{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	key := "settlement:tournament:" + tournamentID
	value, err, _ := s.settleFlight.Do(key, func() (any, error) {
		return s.settleTournamentOnce(ctx, tournamentID)
	})
	if err != nil {
		return SettlementSummary{}, err
	}

	summary, ok := value.(SettlementSummary)
	if !ok {
		return SettlementSummary{}, fmt.Errorf("unexpected settlement result type %T", value)
	}
	return summary, nil
}

func (s *SettlementService) settleTournamentOnce(ctx context.Context, tournamentID string) (SettlementSummary, error) {
	tourn, found, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return SettlementSummary{}, fmt.Errorf("get tournament for settlement: %w", err)
	}
	if !found {
		return SettlementSummary{}, fmt.Errorf("%w: tournament %s", ErrNotFound, tournamentID)
	}

	results, err := s.resultRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return SettlementSummary{}, fmt.Errorf("list results for settlement: %w", err)
	}
	resultByGolfer := make(map[string]result.TournamentResult, len(results))
	for _, row := range results {
		resultByGolfer[row.GolferID] = row
	}

	lineups, err := s.lineupRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return SettlementSummary{}, fmt.Errorf("list lineups for settlement: %w", err)
	}

	fieldSize := tourn.EffectiveFieldSize()
	scoringByLeague := make(map[string]league.ScoringConfig)
	leagueByTeam := make(map[string]string)
	userByTeam := make(map[string]string)
	affectedTeams := make(map[string]struct{}, len(lineups))

	summary := SettlementSummary{TournamentID: tournamentID}
	for _, item := range lineups {
		leagueID, ok := leagueByTeam[item.TeamID]
		if !ok {
			owner, teamFound, terr := s.teamRepo.GetByID(ctx, item.TeamID)
			if terr != nil {
				return SettlementSummary{}, fmt.Errorf("get team %s for settlement: %w", item.TeamID, terr)
			}
			if !teamFound {
				return SettlementSummary{}, fmt.Errorf("%w: team %s for lineup %s", ErrNotFound, item.TeamID, item.ID)
			}
			leagueID = owner.LeagueID
			leagueByTeam[item.TeamID] = leagueID
			userByTeam[item.TeamID] = owner.UserID
		}

		cfg, ok := scoringByLeague[leagueID]
		if !ok {
			cfg, err = s.leagueScoring(ctx, leagueID)
			if err != nil {
				return SettlementSummary{}, err
			}
			scoringByLeague[leagueID] = cfg
		}

		scored := ScoreLineup(item, resultByGolfer, fieldSize, cfg)

		points := lineup.SlotPoints{LineupID: item.ID, Total: scored.TotalPoints}
		for idx := range scored.Slots {
			points.Points[idx] = scored.Slots[idx].Breakdown.TotalScore
		}
		if err := s.lineupRepo.UpdatePoints(ctx, points); err != nil {
			return SettlementSummary{}, fmt.Errorf("update lineup points lineup=%s: %w", item.ID, err)
		}

		affectedTeams[item.TeamID] = struct{}{}
		summary.Lineups = append(summary.Lineups, SettledLineup{
			LineupID:    item.ID,
			TeamID:      item.TeamID,
			UserID:      userByTeam[item.TeamID],
			TotalPoints: scored.TotalPoints,
		})
		summary.LineupsScored++
	}

	affectedLeagues, err := s.refreshSeasonTotals(ctx, affectedTeams, leagueByTeam)
	if err != nil {
		return SettlementSummary{}, err
	}
	summary.TeamsUpdated = len(affectedTeams)

	leagueIDs := make([]string, 0, len(affectedLeagues))
	for leagueID := range affectedLeagues {
		leagueIDs = append(leagueIDs, leagueID)
	}
	sort.Strings(leagueIDs)
	for _, leagueID := range leagueIDs {
		if _, err := s.standings.Rank(ctx, leagueID); err != nil {
			return SettlementSummary{}, fmt.Errorf("rerank league %s after settlement: %w", leagueID, err)
		}
		summary.LeaguesReranked++
	}

	summary.SettledAt = s.now().UTC()
	return summary, nil
}

// refreshSeasonTotals recomputes every affected team's season total from its
// full lineup history and mirrors the number onto the league membership.
// Recomputing from scratch keeps resettlement honest when corrected results
// shrink a previously settled score.
func (s *SettlementService) refreshSeasonTotals(
	ctx context.Context,
	affectedTeams map[string]struct{},
	leagueByTeam map[string]string,
) (map[string]struct{}, error) {
	teamIDs := make([]string, 0, len(affectedTeams))
	for teamID := range affectedTeams {
		teamIDs = append(teamIDs, teamID)
	}
	sort.Strings(teamIDs)

	affectedLeagues := make(map[string]struct{})
	for _, teamID := range teamIDs {
		total, err := s.lineupRepo.SumPointsByTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("sum lineup points team=%s: %w", teamID, err)
		}
		if err := s.teamRepo.UpdateSeasonTotal(ctx, teamID, total); err != nil {
			return nil, fmt.Errorf("update team season total team=%s: %w", teamID, err)
		}

		owner, found, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("get team %s for membership total: %w", teamID, err)
		}
		if !found {
			return nil, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
		}
		if err := s.leagueRepo.UpdateMembershipTotal(ctx, owner.LeagueID, owner.UserID, total); err != nil {
			return nil, fmt.Errorf("update membership total league=%s user=%s: %w", owner.LeagueID, owner.UserID, err)
		}

		affectedLeagues[leagueByTeam[teamID]] = struct{}{}
	}

	return affectedLeagues, nil
}

func (s *SettlementService) leagueScoring(ctx context.Context, leagueID string) (league.ScoringConfig, error) {
	item, found, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.ScoringConfig{}, fmt.Errorf("get league %s for scoring config: %w", leagueID, err)
	}
	if !found {
		return league.ScoringConfig{}, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}
	if item.Scoring.IsZero() {
		return league.DefaultScoringConfig(), nil
	}
	return item.Scoring, nil
}

// ScoreLineup settles one lineup against the tournament's results. A golfer
// with no result row is treated as a missed cut and scores zero.
func ScoreLineup(
	item lineup.Lineup,
	resultByGolfer map[string]result.TournamentResult,
	fieldSize int,
	cfg league.ScoringConfig,
) LineupScore {
	scored := LineupScore{
		LineupID: item.ID,
		TeamID:   item.TeamID,
	}

	for idx, slot := range item.Slots {
		var breakdown scoring.Breakdown
		if row, ok := resultByGolfer[slot.GolferID]; ok {
			breakdown = scoring.Score(row.Position, row.MadeCut, slot.Odds, fieldSize, cfg)
		} else {
			breakdown = scoring.Score(nil, false, slot.Odds, fieldSize, cfg)
		}

		scored.Slots[idx] = SlotScore{
			GolferID:  slot.GolferID,
			Breakdown: breakdown,
		}
		scored.TotalPoints += breakdown.TotalScore
	}
	scored.TotalPoints = scoring.Round2(scored.TotalPoints)

	return scored
}
