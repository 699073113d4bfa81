package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
)

const (
	goalColumns = `id, user_id, name, description, target_date, current_value, target_value, unit, status`
	selectGoal  = `SELECT ` + goalColumns + ` FROM goals`
)

func scanGoal(row pgx.Row) (domain.Goal, error) {
	var g domain.Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.Description, &g.TargetDate, &g.CurrentValue, &g.TargetValue, &g.Unit, &g.Status)
	g.TargetDate = utc(g.TargetDate)
	return g, err
}

// CreateGoal implements domain.GoalStore.
func (r *Repository) CreateGoal(ctx context.Context, goal domain.Goal) (*domain.Goal, error) {
	const stmt = `INSERT INTO goals (user_id, name, description, target_date, current_value, target_value, unit, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING ` + goalColumns

	return queryOne(ctx, r.pool, scanGoal, stmt,
		goal.UserID,
		goal.Name,
		goal.Description,
		utc(goal.TargetDate),
		goal.CurrentValue,
		goal.TargetValue,
		goal.Unit,
		goal.Status,
	)
}

// GetGoal implements domain.GoalStore.
func (r *Repository) GetGoal(ctx context.Context, id int64) (*domain.Goal, error) {
	return queryOne(ctx, r.pool, scanGoal, selectGoal+" WHERE id=$1", id)
}

// ListGoalsByUser implements domain.GoalStore.
func (r *Repository) ListGoalsByUser(ctx context.Context, userID int64) ([]domain.Goal, error) {
	return queryAll(ctx, r.pool, scanGoal, selectGoal+" WHERE user_id=$1 ORDER BY id", userID)
}

// UpdateGoal implements domain.GoalStore.
func (r *Repository) UpdateGoal(ctx context.Context, id int64, patch domain.GoalPatch) (*domain.Goal, error) {
	return updateRecord(ctx, r.pool, scanGoal, selectGoal, id, func(tx pgx.Tx, current domain.Goal) (domain.Goal, error) {
		g := patch.Apply(current)
		const stmt = `UPDATE goals SET user_id=$2, name=$3, description=$4, target_date=$5, current_value=$6, target_value=$7, unit=$8, status=$9
            WHERE id=$1
            RETURNING ` + goalColumns
		return scanGoal(tx.QueryRow(ctx, stmt, id, g.UserID, g.Name, g.Description, utc(g.TargetDate), g.CurrentValue, g.TargetValue, g.Unit, g.Status))
	})
}

// DeleteGoal implements domain.GoalStore.
func (r *Repository) DeleteGoal(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "goals", id)
}
