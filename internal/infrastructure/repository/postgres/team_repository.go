package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Keegs21/Bunkered/internal/domain/team"
	qb "github.com/Keegs21/Bunkered/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	model := teamTableModel{
		ID:          item.ID,
		UserID:      item.UserID,
		LeagueID:    item.LeagueID,
		Name:        item.Name,
		TotalPoints: item.TotalPoints,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}

	query, args, err := qb.InsertModel("teams", model, "")
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) GetByUserAndLeague(ctx context.Context, userID, leagueID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("user_id", userID), qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by user query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by user and league: %w", err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) ListByUser(ctx context.Context, userID string) ([]team.Team, error) {
	return r.list(ctx, qb.Eq("user_id", userID))
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	return r.list(ctx, qb.Eq("league_id", leagueID))
}

func (r *TeamRepository) list(ctx context.Context, condition qb.Condition) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(condition).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) UpdateSeasonTotal(ctx context.Context, teamID string, totalPoints float64) error {
	query, args, err := qb.Update("teams").
		Set("total_points", totalPoints).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team total query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team season total: %w", err)
	}
	return nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:          row.ID,
		UserID:      row.UserID,
		LeagueID:    row.LeagueID,
		Name:        row.Name,
		TotalPoints: row.TotalPoints,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
