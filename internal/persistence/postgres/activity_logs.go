package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
)

const (
	activityColumns = `id, user_id, date, steps, active_minutes, calories_burned`
	selectActivity  = `SELECT ` + activityColumns + ` FROM activity_logs`
)

func scanActivityLog(row pgx.Row) (domain.ActivityLog, error) {
	var l domain.ActivityLog
	err := row.Scan(&l.ID, &l.UserID, &l.Date, &l.Steps, &l.ActiveMinutes, &l.CaloriesBurned)
	l.Date = utc(l.Date)
	return l, err
}

// CreateActivityLog implements domain.ActivityLogStore.
func (r *Repository) CreateActivityLog(ctx context.Context, log domain.ActivityLog) (*domain.ActivityLog, error) {
	const stmt = `INSERT INTO activity_logs (user_id, date, steps, active_minutes, calories_burned)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING ` + activityColumns

	return queryOne(ctx, r.pool, scanActivityLog, stmt,
		log.UserID,
		utc(log.Date),
		log.Steps,
		log.ActiveMinutes,
		log.CaloriesBurned,
	)
}

// GetActivityLog implements domain.ActivityLogStore.
func (r *Repository) GetActivityLog(ctx context.Context, id int64) (*domain.ActivityLog, error) {
	return queryOne(ctx, r.pool, scanActivityLog, selectActivity+" WHERE id=$1", id)
}

// ListActivityLogsByUser implements domain.ActivityLogStore.
func (r *Repository) ListActivityLogsByUser(ctx context.Context, userID int64) ([]domain.ActivityLog, error) {
	return queryAll(ctx, r.pool, scanActivityLog, selectActivity+" WHERE user_id=$1 ORDER BY date DESC, id DESC", userID)
}

// GetActivityLogByUserAndDate implements domain.ActivityLogStore.
func (r *Repository) GetActivityLogByUserAndDate(ctx context.Context, userID int64, day time.Time) (*domain.ActivityLog, error) {
	const query = selectActivity + ` WHERE user_id=$1 AND (date AT TIME ZONE 'UTC')::date = $2::date ORDER BY id LIMIT 1`
	return queryOne(ctx, r.pool, scanActivityLog, query, userID, domain.StartOfDay(day))
}

// UpdateActivityLog implements domain.ActivityLogStore.
func (r *Repository) UpdateActivityLog(ctx context.Context, id int64, patch domain.ActivityLogPatch) (*domain.ActivityLog, error) {
	return updateRecord(ctx, r.pool, scanActivityLog, selectActivity, id, func(tx pgx.Tx, current domain.ActivityLog) (domain.ActivityLog, error) {
		l := patch.Apply(current)
		const stmt = `UPDATE activity_logs SET user_id=$2, date=$3, steps=$4, active_minutes=$5, calories_burned=$6
            WHERE id=$1
            RETURNING ` + activityColumns
		return scanActivityLog(tx.QueryRow(ctx, stmt, id, l.UserID, utc(l.Date), l.Steps, l.ActiveMinutes, l.CaloriesBurned))
	})
}

// DeleteActivityLog implements domain.ActivityLogStore.
func (r *Repository) DeleteActivityLog(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "activity_logs", id)
}
