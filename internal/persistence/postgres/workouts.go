package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
)

const (
	workoutColumns = `id, user_id, name, type, duration, calories_burned, date, notes, status`
	selectWorkout  = `SELECT ` + workoutColumns + ` FROM workouts`
)

func scanWorkout(row pgx.Row) (domain.Workout, error) {
	var w domain.Workout
	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Type, &w.Duration, &w.CaloriesBurned, &w.Date, &w.Notes, &w.Status)
	w.Date = utc(w.Date)
	return w, err
}

// CreateWorkout implements domain.WorkoutStore.
func (r *Repository) CreateWorkout(ctx context.Context, workout domain.Workout) (*domain.Workout, error) {
	const stmt = `INSERT INTO workouts (user_id, name, type, duration, calories_burned, date, notes, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING ` + workoutColumns

	return queryOne(ctx, r.pool, scanWorkout, stmt,
		workout.UserID,
		workout.Name,
		workout.Type,
		workout.Duration,
		workout.CaloriesBurned,
		utc(workout.Date),
		workout.Notes,
		workout.Status,
	)
}

// GetWorkout implements domain.WorkoutStore.
func (r *Repository) GetWorkout(ctx context.Context, id int64) (*domain.Workout, error) {
	return queryOne(ctx, r.pool, scanWorkout, selectWorkout+" WHERE id=$1", id)
}

// ListWorkoutsByUser implements domain.WorkoutStore.
func (r *Repository) ListWorkoutsByUser(ctx context.Context, userID int64) ([]domain.Workout, error) {
	return queryAll(ctx, r.pool, scanWorkout, selectWorkout+" WHERE user_id=$1 ORDER BY date DESC, id DESC", userID)
}

// UpdateWorkout implements domain.WorkoutStore.
func (r *Repository) UpdateWorkout(ctx context.Context, id int64, patch domain.WorkoutPatch) (*domain.Workout, error) {
	return updateRecord(ctx, r.pool, scanWorkout, selectWorkout, id, func(tx pgx.Tx, current domain.Workout) (domain.Workout, error) {
		w := patch.Apply(current)
		const stmt = `UPDATE workouts SET user_id=$2, name=$3, type=$4, duration=$5, calories_burned=$6, date=$7, notes=$8, status=$9
            WHERE id=$1
            RETURNING ` + workoutColumns
		return scanWorkout(tx.QueryRow(ctx, stmt, id, w.UserID, w.Name, w.Type, w.Duration, w.CaloriesBurned, utc(w.Date), w.Notes, w.Status))
	})
}

// DeleteWorkout implements domain.WorkoutStore. Exercises are not cascaded.
func (r *Repository) DeleteWorkout(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "workouts", id)
}
