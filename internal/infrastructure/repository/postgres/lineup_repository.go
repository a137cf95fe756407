package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Keegs21/Bunkered/internal/domain/lineup"
	qb "github.com/Keegs21/Bunkered/internal/platform/querybuilder"
)

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) GetByTeamAndTournament(ctx context.Context, teamID, tournamentID string) (lineup.Lineup, bool, error) {
	query, args, err := qb.Select("*").From("lineups").
		Where(qb.Eq("team_id", teamID), qb.Eq("tournament_id", tournamentID)).
		ToSQL()
	if err != nil {
		return lineup.Lineup{}, false, fmt.Errorf("build get lineup query: %w", err)
	}

	var row lineupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lineup.Lineup{}, false, nil
		}
		return lineup.Lineup{}, false, fmt.Errorf("get lineup by team and tournament: %w", err)
	}

	return lineupFromRow(row), true, nil
}

func (r *LineupRepository) ListByTeam(ctx context.Context, teamID string) ([]lineup.Lineup, error) {
	return r.list(ctx, qb.Eq("team_id", teamID))
}

func (r *LineupRepository) ListByTournament(ctx context.Context, tournamentID string) ([]lineup.Lineup, error) {
	return r.list(ctx, qb.Eq("tournament_id", tournamentID))
}

func (r *LineupRepository) list(ctx context.Context, condition qb.Condition) ([]lineup.Lineup, error) {
	query, args, err := qb.Select("*").From("lineups").
		Where(condition).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select lineups query: %w", err)
	}

	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select lineups: %w", err)
	}

	out := make([]lineup.Lineup, 0, len(rows))
	for _, row := range rows {
		out = append(out, lineupFromRow(row))
	}
	return out, nil
}

func (r *LineupRepository) Upsert(ctx context.Context, item lineup.Lineup) error {
	model := lineupToRow(item)

	query, args, err := qb.InsertModel("lineups", model, `ON CONFLICT (team_id, tournament_id)
DO UPDATE SET
    slot1_golfer_id = EXCLUDED.slot1_golfer_id,
    slot1_odds = EXCLUDED.slot1_odds,
    slot2_golfer_id = EXCLUDED.slot2_golfer_id,
    slot2_odds = EXCLUDED.slot2_odds,
    slot3_golfer_id = EXCLUDED.slot3_golfer_id,
    slot3_odds = EXCLUDED.slot3_odds,
    updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert lineup query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert lineup: %w", err)
	}
	return nil
}

func (r *LineupRepository) UpdatePoints(ctx context.Context, points lineup.SlotPoints) error {
	query, args, err := qb.Update("lineups").
		Set("slot1_points", points.Points[0]).
		Set("slot2_points", points.Points[1]).
		Set("slot3_points", points.Points[2]).
		Set("total_points", points.Total).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", points.LineupID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update lineup points query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update lineup points: %w", err)
	}
	return nil
}

func (r *LineupRepository) SumPointsByTeam(ctx context.Context, teamID string) (float64, error) {
	query, args, err := qb.Select("COALESCE(SUM(total_points), 0)").From("lineups").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build sum lineup points query: %w", err)
	}

	var total float64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("sum lineup points by team: %w", err)
	}
	return total, nil
}

func (r *LineupRepository) LockByTournament(ctx context.Context, tournamentID string) error {
	query, args, err := qb.Update("lineups").
		Set("is_locked", true).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("tournament_id", tournamentID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build lock lineups query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("lock lineups by tournament: %w", err)
	}
	return nil
}

func lineupFromRow(row lineupTableModel) lineup.Lineup {
	return lineup.Lineup{
		ID:           row.ID,
		TeamID:       row.TeamID,
		TournamentID: row.TournamentID,
		Slots: [lineup.SlotCount]lineup.Slot{
			{GolferID: row.Slot1Golfer, Odds: row.Slot1Odds, Points: row.Slot1Points},
			{GolferID: row.Slot2Golfer, Odds: row.Slot2Odds, Points: row.Slot2Points},
			{GolferID: row.Slot3Golfer, Odds: row.Slot3Odds, Points: row.Slot3Points},
		},
		TotalPoints: row.TotalPoints,
		IsLocked:    row.IsLocked,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func lineupToRow(item lineup.Lineup) lineupTableModel {
	return lineupTableModel{
		ID:           item.ID,
		TeamID:       item.TeamID,
		TournamentID: item.TournamentID,
		Slot1Golfer:  item.Slots[0].GolferID,
		Slot1Odds:    item.Slots[0].Odds,
		Slot1Points:  item.Slots[0].Points,
		Slot2Golfer:  item.Slots[1].GolferID,
		Slot2Odds:    item.Slots[1].Odds,
		Slot2Points:  item.Slots[1].Points,
		Slot3Golfer:  item.Slots[2].GolferID,
		Slot3Odds:    item.Slots[2].Odds,
		Slot3Points:  item.Slots[2].Points,
		TotalPoints:  item.TotalPoints,
		IsLocked:     item.IsLocked,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
