package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Keegs21/Bunkered/internal/domain/result"
	qb "github.com/Keegs21/Bunkered/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) Get(ctx context.Context, tournamentID, golferID string) (result.TournamentResult, bool, error) {
	query, args, err := qb.Select("*").From("tournament_results").
		Where(qb.Eq("tournament_id", tournamentID), qb.Eq("golfer_id", golferID)).
		ToSQL()
	if err != nil {
		return result.TournamentResult{}, false, fmt.Errorf("build get result query: %w", err)
	}

	var row resultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.TournamentResult{}, false, nil
		}
		return result.TournamentResult{}, false, fmt.Errorf("get tournament result: %w", err)
	}

	return resultFromRow(row), true, nil
}

func (r *ResultRepository) ListByTournament(ctx context.Context, tournamentID string) ([]result.TournamentResult, error) {
	query, args, err := qb.Select("*").From("tournament_results").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("position NULLS LAST", "golfer_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select results query: %w", err)
	}

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournament results: %w", err)
	}

	out := make([]result.TournamentResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, resultFromRow(row))
	}
	return out, nil
}

func (r *ResultRepository) UpsertBatch(ctx context.Context, items []result.TournamentResult) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert results tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, item := range items {
		row := resultTableModel{
			TournamentID: item.TournamentID,
			GolferID:     item.GolferID,
			Position:     item.Position,
			Score:        item.Score,
			PrizeMoney:   item.PrizeMoney,
			MadeCut:      item.MadeCut,
			RoundsPlayed: item.RoundsPlayed,
		}

		query, args, err := qb.InsertModel("tournament_results", row, `
			ON CONFLICT (tournament_id, golfer_id) DO UPDATE SET
				position = EXCLUDED.position,
				score = EXCLUDED.score,
				prize_money = EXCLUDED.prize_money,
				made_cut = EXCLUDED.made_cut,
				rounds_played = EXCLUDED.rounds_played
		`)
		if err != nil {
			return fmt.Errorf("build upsert result query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert tournament result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert results tx: %w", err)
	}
	return nil
}

func resultFromRow(row resultTableModel) result.TournamentResult {
	return result.TournamentResult{
		TournamentID: row.TournamentID,
		GolferID:     row.GolferID,
		Position:     row.Position,
		Score:        row.Score,
		PrizeMoney:   row.PrizeMoney,
		MadeCut:      row.MadeCut,
		RoundsPlayed: row.RoundsPlayed,
	}
}
