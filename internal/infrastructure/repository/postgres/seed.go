package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Keegs21/Bunkered/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo league, schedule, and golfer pool into an
// empty database. A database with any league rows is left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, l := range memory.SeedLeagues() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO leagues (id, name, season_year, description, max_members, status,
    win_bonus, top5_bonus, top10_bonus, made_cut_bonus, odds_weight, created_at)
VALUES (:id, :name, :season_year, :description, :max_members, :status,
    :win_bonus, :top5_bonus, :top10_bonus, :made_cut_bonus, :odds_weight, :created_at)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":             l.ID,
			"name":           l.Name,
			"season_year":    l.SeasonYear,
			"description":    l.Description,
			"max_members":    l.MaxMembers,
			"status":         string(l.Status),
			"win_bonus":      l.Scoring.WinBonus,
			"top5_bonus":     l.Scoring.Top5Bonus,
			"top10_bonus":    l.Scoring.Top10Bonus,
			"made_cut_bonus": l.Scoring.MadeCutBonus,
			"odds_weight":    l.Scoring.OddsWeight,
			"created_at":     l.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed league %s query: %w", l.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed league %s: %w", l.ID, err)
		}
	}

	for _, tr := range memory.SeedTournaments() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO tournaments (id, name, season, start_at, end_at, course_name,
    purse, field_size, is_completed, created_at)
VALUES (:id, :name, :season, :start_at, :end_at, :course_name,
    :purse, :field_size, :is_completed, :created_at)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":           tr.ID,
			"name":         tr.Name,
			"season":       tr.Season,
			"start_at":     tr.StartAt,
			"end_at":       tr.EndAt,
			"course_name":  tr.CourseName,
			"purse":        tr.Purse,
			"field_size":   tr.FieldSize,
			"is_completed": tr.IsCompleted,
			"created_at":   tr.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed tournament %s query: %w", tr.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed tournament %s: %w", tr.ID, err)
		}
	}

	for _, g := range memory.SeedGolfers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO golfers (id, name, country, world_ranking)
VALUES (:id, :name, :country, :world_ranking)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":            g.ID,
			"name":          g.Name,
			"country":       g.Country,
			"world_ranking": g.WorldRanking,
		})
		if err != nil {
			return fmt.Errorf("bind seed golfer %s query: %w", g.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed golfer %s: %w", g.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
