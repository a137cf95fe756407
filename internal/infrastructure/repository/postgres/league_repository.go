package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Keegs21/Bunkered/internal/domain/league"
	qb "github.com/Keegs21/Bunkered/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) error {
	model := leagueTableModel{
		ID:           item.ID,
		Name:         item.Name,
		SeasonYear:   item.SeasonYear,
		Description:  item.Description,
		MaxMembers:   item.MaxMembers,
		Status:       string(item.Status),
		WinBonus:     item.Scoring.WinBonus,
		Top5Bonus:    item.Scoring.Top5Bonus,
		Top10Bonus:   item.Scoring.Top10Bonus,
		MadeCutBonus: item.Scoring.MadeCutBonus,
		OddsWeight:   item.Scoring.OddsWeight,
		CreatedAt:    item.CreatedAt,
	}

	query, args, err := qb.InsertModel("leagues", model, "")
	if err != nil {
		return fmt.Errorf("build insert league query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert league: %w", err)
	}
	return nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueFromRow(row))
	}
	return out, nil
}

func (r *LeagueRepository) CreateMembership(ctx context.Context, membership league.Membership) error {
	model := membershipTableModel{
		ID:          membership.ID,
		LeagueID:    membership.LeagueID,
		UserID:      membership.UserID,
		TotalPoints: membership.TotalPoints,
		Position:    membership.Position,
		JoinedAt:    membership.JoinedAt,
	}

	query, args, err := qb.InsertModel("league_memberships", model, "")
	if err != nil {
		return fmt.Errorf("build insert membership query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

func (r *LeagueRepository) GetMembership(ctx context.Context, leagueID, userID string) (league.Membership, bool, error) {
	query, args, err := qb.Select("*").From("league_memberships").
		Where(qb.Eq("league_id", leagueID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return league.Membership{}, false, fmt.Errorf("build get membership query: %w", err)
	}

	var row membershipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.Membership{}, false, nil
		}
		return league.Membership{}, false, fmt.Errorf("get membership: %w", err)
	}

	return membershipFromRow(row), true, nil
}

func (r *LeagueRepository) ListMemberships(ctx context.Context, leagueID string) ([]league.Membership, error) {
	query, args, err := qb.Select("*").From("league_memberships").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("joined_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select memberships query: %w", err)
	}

	var rows []membershipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select memberships: %w", err)
	}

	out := make([]league.Membership, 0, len(rows))
	for _, row := range rows {
		out = append(out, membershipFromRow(row))
	}
	return out, nil
}

func (r *LeagueRepository) CountMemberships(ctx context.Context, leagueID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("league_memberships").
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count memberships query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count memberships: %w", err)
	}
	return count, nil
}

func (r *LeagueRepository) UpdateMembershipTotal(ctx context.Context, leagueID, userID string, totalPoints float64) error {
	query, args, err := qb.Update("league_memberships").
		Set("total_points", totalPoints).
		Where(qb.Eq("league_id", leagueID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update membership total query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update membership total: %w", err)
	}
	return nil
}

func (r *LeagueRepository) UpdateMembershipPositions(ctx context.Context, leagueID string, positionByMembershipID map[string]int) error {
	if len(positionByMembershipID) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin positions transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for membershipID, position := range positionByMembershipID {
		query, args, err := qb.Update("league_memberships").
			Set("position", position).
			Where(qb.Eq("league_id", leagueID), qb.Eq("id", membershipID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update membership position query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update membership position id=%s: %w", membershipID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit positions transaction: %w", err)
	}
	return nil
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:          row.ID,
		Name:        row.Name,
		SeasonYear:  row.SeasonYear,
		Description: row.Description,
		MaxMembers:  row.MaxMembers,
		Status:      league.Status(row.Status),
		Scoring: league.ScoringConfig{
			WinBonus:     row.WinBonus,
			Top5Bonus:    row.Top5Bonus,
			Top10Bonus:   row.Top10Bonus,
			MadeCutBonus: row.MadeCutBonus,
			OddsWeight:   row.OddsWeight,
		},
		CreatedAt: row.CreatedAt,
	}
}

func membershipFromRow(row membershipTableModel) league.Membership {
	return league.Membership{
		ID:          row.ID,
		LeagueID:    row.LeagueID,
		UserID:      row.UserID,
		TotalPoints: row.TotalPoints,
		Position:    row.Position,
		JoinedAt:    row.JoinedAt,
	}
}
