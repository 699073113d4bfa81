package domain

import (
	"context"
	"time"
)

// Store is the persistence port. Get and Update return (nil, nil) when the id is
// unknown; list operations return an empty, non-nil slice when nothing matches;
// Delete reports whether a record was removed.
type Store interface {
	UserStore
	WorkoutStore
	ExerciseStore
	GoalStore
	NutritionEntryStore
	ActivityLogStore
}

// UserStore persists users.
type UserStore interface {
	CreateUser(ctx context.Context, user User) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	UpdateUser(ctx context.Context, id int64, patch UserPatch) (*User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

// WorkoutStore persists workouts. ListWorkoutsByUser returns the newest date first.
type WorkoutStore interface {
	CreateWorkout(ctx context.Context, workout Workout) (*Workout, error)
	GetWorkout(ctx context.Context, id int64) (*Workout, error)
	ListWorkoutsByUser(ctx context.Context, userID int64) ([]Workout, error)
	UpdateWorkout(ctx context.Context, id int64, patch WorkoutPatch) (*Workout, error)
	DeleteWorkout(ctx context.Context, id int64) (bool, error)
}

// ExerciseStore persists exercises in insertion order.
type ExerciseStore interface {
	CreateExercise(ctx context.Context, exercise Exercise) (*Exercise, error)
	GetExercise(ctx context.Context, id int64) (*Exercise, error)
	ListExercisesByWorkout(ctx context.Context, workoutID int64) ([]Exercise, error)
	UpdateExercise(ctx context.Context, id int64, patch ExercisePatch) (*Exercise, error)
	DeleteExercise(ctx context.Context, id int64) (bool, error)
}

// GoalStore persists goals in insertion order.
type GoalStore interface {
	CreateGoal(ctx context.Context, goal Goal) (*Goal, error)
	GetGoal(ctx context.Context, id int64) (*Goal, error)
	ListGoalsByUser(ctx context.Context, userID int64) ([]Goal, error)
	UpdateGoal(ctx context.Context, id int64, patch GoalPatch) (*Goal, error)
	DeleteGoal(ctx context.Context, id int64) (bool, error)
}

// NutritionEntryStore persists nutrition entries, newest date first.
type NutritionEntryStore interface {
	CreateNutritionEntry(ctx context.Context, entry NutritionEntry) (*NutritionEntry, error)
	GetNutritionEntry(ctx context.Context, id int64) (*NutritionEntry, error)
	ListNutritionEntriesByUser(ctx context.Context, userID int64) ([]NutritionEntry, error)
	UpdateNutritionEntry(ctx context.Context, id int64, patch NutritionEntryPatch) (*NutritionEntry, error)
	DeleteNutritionEntry(ctx context.Context, id int64) (bool, error)
}

// ActivityLogStore persists activity logs, newest date first.
type ActivityLogStore interface {
	CreateActivityLog(ctx context.Context, log ActivityLog) (*ActivityLog, error)
	GetActivityLog(ctx context.Context, id int64) (*ActivityLog, error)
	ListActivityLogsByUser(ctx context.Context, userID int64) ([]ActivityLog, error)
	// GetActivityLogByUserAndDate compares only the UTC calendar date of day.
	// When several logs share the day the earliest created wins.
	GetActivityLogByUserAndDate(ctx context.Context, userID int64, day time.Time) (*ActivityLog, error)
	UpdateActivityLog(ctx context.Context, id int64, patch ActivityLogPatch) (*ActivityLog, error)
	DeleteActivityLog(ctx context.Context, id int64) (bool, error)
}

// Seeder is implemented by stores that can populate themselves with demo data.
// SeedDefaults reports whether anything was written.
type Seeder interface {
	SeedDefaults(ctx context.Context) (bool, error)
}
