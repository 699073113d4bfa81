// Package persistence holds behaviour shared by the storage adapters.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
)

// DemoUsername identifies the demo account. Its presence marks a seeded store.
const DemoUsername = "alex"

// Seed writes the demo user with workouts, exercises, goals and today's activity log.
// It is a no-op when the demo user already exists and reports whether anything was written.
func Seed(ctx context.Context, store domain.Store, now time.Time) (bool, error) {
	existing, err := store.GetUserByUsername(ctx, DemoUsername)
	if err != nil {
		return false, fmt.Errorf("check demo user: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	user, err := store.CreateUser(ctx, domain.User{
		Username:    DemoUsername,
		Password:    "password123",
		DisplayName: "Alex Johnson",
		Email:       "alex@example.com",
		Weight:      domain.Ptr(165.0),
		Height:      domain.Ptr(72.0),
		AvatarURL:   domain.Ptr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"),
	})
	if err != nil {
		return false, fmt.Errorf("seed user: %w", err)
	}

	now = domain.NormalizeTime(now)
	day := 24 * time.Hour
	workouts := []domain.Workout{
		{Name: "Cardio Session", Type: domain.WorkoutTypeCardio, Duration: 45, CaloriesBurned: domain.Ptr(320), Date: now, Notes: domain.Ptr("Treadmill, Cycling"), Status: domain.WorkoutStatusCompleted},
		{Name: "Lower Body", Type: domain.WorkoutTypeStrength, Duration: 60, CaloriesBurned: domain.Ptr(420), Date: now.Add(-day), Notes: domain.Ptr("Squats, Lunges, Deadlifts"), Status: domain.WorkoutStatusCompleted},
		{Name: "HIIT Session", Type: domain.WorkoutTypeHIIT, Duration: 30, CaloriesBurned: domain.Ptr(380), Date: now.Add(-2 * day), Notes: domain.Ptr("Circuit training"), Status: domain.WorkoutStatusCompleted},
		{Name: "Upper Body Strength", Type: domain.WorkoutTypeStrength, Duration: 45, CaloriesBurned: domain.Ptr(350), Date: now.Add(day), Notes: domain.Ptr("Chest, shoulders, arms"), Status: domain.WorkoutStatusScheduled},
	}
	var upcoming *domain.Workout
	for _, w := range workouts {
		w.UserID = user.ID
		created, err := store.CreateWorkout(ctx, w)
		if err != nil {
			return false, fmt.Errorf("seed workout %q: %w", w.Name, err)
		}
		if created.Status == domain.WorkoutStatusScheduled {
			upcoming = created
		}
	}

	exercises := []domain.Exercise{
		{Name: "Bench Press", Sets: domain.Ptr(3), Reps: domain.Ptr(10), Weight: domain.Ptr(135.0)},
		{Name: "Shoulder Press", Sets: domain.Ptr(3), Reps: domain.Ptr(12), Weight: domain.Ptr(85.0)},
		{Name: "Bicep Curls", Sets: domain.Ptr(3), Reps: domain.Ptr(15), Weight: domain.Ptr(35.0)},
	}
	for _, e := range exercises {
		e.WorkoutID = upcoming.ID
		if _, err := store.CreateExercise(ctx, e); err != nil {
			return false, fmt.Errorf("seed exercise %q: %w", e.Name, err)
		}
	}

	goals := []domain.Goal{
		{Name: "Lose 5 lbs", Description: "Weight loss goal", TargetDate: time.Date(2023, time.July, 30, 0, 0, 0, 0, time.UTC), CurrentValue: 165, TargetValue: 160, Unit: "lbs", Status: domain.GoalStatusInProgress},
		{Name: "Run 5K", Description: "Running distance goal", TargetDate: time.Date(2023, time.August, 15, 0, 0, 0, 0, time.UTC), CurrentValue: 3.2, TargetValue: 5, Unit: "K", Status: domain.GoalStatusInProgress},
	}
	for _, g := range goals {
		g.UserID = user.ID
		if _, err := store.CreateGoal(ctx, g); err != nil {
			return false, fmt.Errorf("seed goal %q: %w", g.Name, err)
		}
	}

	if _, err := store.CreateActivityLog(ctx, domain.ActivityLog{
		UserID:         user.ID,
		Date:           now,
		Steps:          domain.Ptr(8243),
		ActiveMinutes:  domain.Ptr(68),
		CaloriesBurned: domain.Ptr(1872),
	}); err != nil {
		return false, fmt.Errorf("seed activity log: %w", err)
	}
	return true, nil
}
