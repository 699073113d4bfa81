package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
)

const (
	exerciseColumns = `id, workout_id, name, sets, reps, weight, duration, distance`
	selectExercise  = `SELECT ` + exerciseColumns + ` FROM exercises`
)

func scanExercise(row pgx.Row) (domain.Exercise, error) {
	var e domain.Exercise
	err := row.Scan(&e.ID, &e.WorkoutID, &e.Name, &e.Sets, &e.Reps, &e.Weight, &e.Duration, &e.Distance)
	return e, err
}

// CreateExercise implements domain.ExerciseStore.
func (r *Repository) CreateExercise(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error) {
	const stmt = `INSERT INTO exercises (workout_id, name, sets, reps, weight, duration, distance)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING ` + exerciseColumns

	return queryOne(ctx, r.pool, scanExercise, stmt,
		exercise.WorkoutID,
		exercise.Name,
		exercise.Sets,
		exercise.Reps,
		exercise.Weight,
		exercise.Duration,
		exercise.Distance,
	)
}

// GetExercise implements domain.ExerciseStore.
func (r *Repository) GetExercise(ctx context.Context, id int64) (*domain.Exercise, error) {
	return queryOne(ctx, r.pool, scanExercise, selectExercise+" WHERE id=$1", id)
}

// ListExercisesByWorkout implements domain.ExerciseStore.
func (r *Repository) ListExercisesByWorkout(ctx context.Context, workoutID int64) ([]domain.Exercise, error) {
	return queryAll(ctx, r.pool, scanExercise, selectExercise+" WHERE workout_id=$1 ORDER BY id", workoutID)
}

// UpdateExercise implements domain.ExerciseStore.
func (r *Repository) UpdateExercise(ctx context.Context, id int64, patch domain.ExercisePatch) (*domain.Exercise, error) {
	return updateRecord(ctx, r.pool, scanExercise, selectExercise, id, func(tx pgx.Tx, current domain.Exercise) (domain.Exercise, error) {
		e := patch.Apply(current)
		const stmt = `UPDATE exercises SET workout_id=$2, name=$3, sets=$4, reps=$5, weight=$6, duration=$7, distance=$8
            WHERE id=$1
            RETURNING ` + exerciseColumns
		return scanExercise(tx.QueryRow(ctx, stmt, id, e.WorkoutID, e.Name, e.Sets, e.Reps, e.Weight, e.Duration, e.Distance))
	})
}

// DeleteExercise implements domain.ExerciseStore.
func (r *Repository) DeleteExercise(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "exercises", id)
}
