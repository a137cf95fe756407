package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Keegs21/Bunkered/internal/domain/golfer"
	qb "github.com/Keegs21/Bunkered/internal/platform/querybuilder"
)

type GolferRepository struct {
	db *sqlx.DB
}

func NewGolferRepository(db *sqlx.DB) *GolferRepository {
	return &GolferRepository{db: db}
}

func (r *GolferRepository) List(ctx context.Context) ([]golfer.Golfer, error) {
	query, args, err := qb.Select("*").From("golfers").
		OrderBy("world_ranking", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select golfers query: %w", err)
	}

	var rows []golferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select golfers: %w", err)
	}

	out := make([]golfer.Golfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, golferFromRow(row))
	}
	return out, nil
}

func (r *GolferRepository) GetByIDs(ctx context.Context, golferIDs []string) ([]golfer.Golfer, error) {
	if len(golferIDs) == 0 {
		return nil, nil
	}

	ids := make([]any, 0, len(golferIDs))
	for _, id := range golferIDs {
		ids = append(ids, id)
	}

	query, args, err := qb.Select("*").From("golfers").
		Where(qb.In("id", ids)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select golfers by ids query: %w", err)
	}

	var rows []golferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select golfers by ids: %w", err)
	}

	out := make([]golfer.Golfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, golferFromRow(row))
	}
	return out, nil
}

func golferFromRow(row golferTableModel) golfer.Golfer {
	return golfer.Golfer{
		ID:           row.ID,
		Name:         row.Name,
		Country:      row.Country,
		WorldRanking: row.WorldRanking,
	}
}
