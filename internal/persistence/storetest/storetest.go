// Package storetest is a behavioural suite every domain.Store implementation must pass.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
	"github.com/nandanmaalige/fitness-forge/internal/persistence"
)

// Factory returns an empty store for one subtest.
type Factory func(t *testing.T) domain.Store

// Run exercises the store contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("Users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("UserUniqueness", func(t *testing.T) { testUserUniqueness(t, newStore(t)) })
	t.Run("Workouts", func(t *testing.T) { testWorkouts(t, newStore(t)) })
	t.Run("WorkoutOrdering", func(t *testing.T) { testWorkoutOrdering(t, newStore(t)) })
	t.Run("Exercises", func(t *testing.T) { testExercises(t, newStore(t)) })
	t.Run("Goals", func(t *testing.T) { testGoals(t, newStore(t)) })
	t.Run("NutritionEntries", func(t *testing.T) { testNutritionEntries(t, newStore(t)) })
	t.Run("ActivityLogs", func(t *testing.T) { testActivityLogs(t, newStore(t)) })
	t.Run("ActivityLogByDate", func(t *testing.T) { testActivityLogByDate(t, newStore(t)) })
	t.Run("RecordIsolation", func(t *testing.T) { testRecordIsolation(t, newStore(t)) })
	t.Run("EmptyLists", func(t *testing.T) { testEmptyLists(t, newStore(t)) })
	t.Run("Seed", func(t *testing.T) { testSeed(t, newStore(t)) })
}

func day(year int, month time.Month, d, hour, minute int) time.Time {
	return time.Date(year, month, d, hour, minute, 0, 0, time.UTC)
}

func newUser(username string) domain.User {
	return domain.User{
		Username:    username,
		Password:    "secret",
		DisplayName: "Test " + username,
		Email:       username + "@example.com",
		Weight:      domain.Ptr(70.5),
		Height:      domain.Ptr(180.0),
		AvatarURL:   domain.Ptr("https://example.com/" + username + ".png"),
	}
}

func newWorkout(userID int64, name string, date time.Time) domain.Workout {
	return domain.Workout{
		UserID:         userID,
		Name:           name,
		Type:           domain.WorkoutTypeCardio,
		Duration:       30,
		CaloriesBurned: domain.Ptr(250),
		Date:           date,
		Notes:          domain.Ptr("easy pace"),
		Status:         domain.WorkoutStatusCompleted,
	}
}

func testUsers(t *testing.T, store domain.Store) {
	ctx := context.Background()

	input := newUser("jordan")
	created, err := store.CreateUser(ctx, input)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	input.ID = created.ID
	require.Equal(t, input, *created)

	other, err := store.CreateUser(ctx, newUser("sam"))
	require.NoError(t, err)
	require.NotEqual(t, created.ID, other.ID)

	fetched, err := store.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, fetched)

	byName, err := store.GetUserByUsername(ctx, "jordan")
	require.NoError(t, err)
	require.Equal(t, created, byName)

	missing, err := store.GetUserByUsername(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, missing)

	updated, err := store.UpdateUser(ctx, created.ID, domain.UserPatch{DisplayName: domain.Ptr("Jordan Lee")})
	require.NoError(t, err)
	expected := *created
	expected.DisplayName = "Jordan Lee"
	require.Equal(t, expected, *updated)

	absent, err := store.UpdateUser(ctx, 999999, domain.UserPatch{DisplayName: domain.Ptr("x")})
	require.NoError(t, err)
	require.Nil(t, absent)

	removed, err := store.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, removed)

	gone, err := store.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	removed, err = store.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func testUserUniqueness(t *testing.T, store domain.Store) {
	ctx := context.Background()

	first, err := store.CreateUser(ctx, newUser("casey"))
	require.NoError(t, err)

	dupName := newUser("casey")
	dupName.Email = "another@example.com"
	_, err = store.CreateUser(ctx, dupName)
	requireConstraint(t, err, domain.ConstraintUnique, "username")

	dupEmail := newUser("riley")
	dupEmail.Email = first.Email
	_, err = store.CreateUser(ctx, dupEmail)
	requireConstraint(t, err, domain.ConstraintUnique, "email")

	second, err := store.CreateUser(ctx, newUser("morgan"))
	require.NoError(t, err)
	_, err = store.UpdateUser(ctx, second.ID, domain.UserPatch{Username: domain.Ptr("casey")})
	requireConstraint(t, err, domain.ConstraintUnique, "username")

	unchanged, err := store.GetUser(ctx, second.ID)
	require.NoError(t, err)
	require.Equal(t, "morgan", unchanged.Username)
}

func requireConstraint(t *testing.T, err error, kind domain.ConstraintKind, field string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrConstraintViolation)
	var constraint *domain.ConstraintError
	require.True(t, errors.As(err, &constraint))
	require.Equal(t, kind, constraint.Kind)
	require.Equal(t, field, constraint.Field)
}

func testWorkouts(t *testing.T, store domain.Store) {
	ctx := context.Background()

	input := newWorkout(7, "Morning Run", day(2024, time.March, 4, 6, 30))
	created, err := store.CreateWorkout(ctx, input)
	require.NoError(t, err)
	input.ID = created.ID
	require.Equal(t, input, *created)

	fetched, err := store.GetWorkout(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, fetched)

	updated, err := store.UpdateWorkout(ctx, created.ID, domain.WorkoutPatch{Status: domain.Ptr(domain.WorkoutStatusSkipped)})
	require.NoError(t, err)
	expected := *created
	expected.Status = domain.WorkoutStatusSkipped
	require.Equal(t, expected, *updated)

	moved := domain.NewTimestamp(day(2024, time.March, 5, 18, 0))
	updated, err = store.UpdateWorkout(ctx, created.ID, domain.WorkoutPatch{Date: &moved})
	require.NoError(t, err)
	expected.Date = moved.Time
	require.Equal(t, expected, *updated)

	absent, err := store.UpdateWorkout(ctx, 424242, domain.WorkoutPatch{Name: domain.Ptr("x")})
	require.NoError(t, err)
	require.Nil(t, absent)

	removed, err := store.DeleteWorkout(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, removed)

	gone, err := store.GetWorkout(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	removed, err = store.DeleteWorkout(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func testWorkoutOrdering(t *testing.T, store domain.Store) {
	ctx := context.Background()

	for _, d := range []time.Time{
		day(2024, time.January, 1, 0, 0),
		day(2024, time.January, 3, 0, 0),
		day(2024, time.January, 2, 0, 0),
	} {
		_, err := store.CreateWorkout(ctx, newWorkout(3, d.Format(domain.DateLayout), d))
		require.NoError(t, err)
	}
	_, err := store.CreateWorkout(ctx, newWorkout(4, "someone else", day(2024, time.January, 9, 0, 0)))
	require.NoError(t, err)

	workouts, err := store.ListWorkoutsByUser(ctx, 3)
	require.NoError(t, err)
	require.Len(t, workouts, 3)
	require.Equal(t, "2024-01-03", workouts[0].Name)
	require.Equal(t, "2024-01-02", workouts[1].Name)
	require.Equal(t, "2024-01-01", workouts[2].Name)
}

func testExercises(t *testing.T, store domain.Store) {
	ctx := context.Background()

	workout, err := store.CreateWorkout(ctx, newWorkout(1, "Push", day(2024, time.April, 2, 17, 0)))
	require.NoError(t, err)

	names := []string{"Bench Press", "Shoulder Press", "Bicep Curls"}
	var created []domain.Exercise
	for _, name := range names {
		input := domain.Exercise{WorkoutID: workout.ID, Name: name, Sets: domain.Ptr(3), Reps: domain.Ptr(10), Weight: domain.Ptr(135.5)}
		exercise, err := store.CreateExercise(ctx, input)
		require.NoError(t, err)
		input.ID = exercise.ID
		require.Equal(t, input, *exercise)
		created = append(created, *exercise)
	}

	listed, err := store.ListExercisesByWorkout(ctx, workout.ID)
	require.NoError(t, err)
	require.Equal(t, created, listed)

	updated, err := store.UpdateExercise(ctx, created[1].ID, domain.ExercisePatch{Reps: domain.Ptr(12), Distance: domain.Dec(1.5)})
	require.NoError(t, err)
	expected := created[1]
	expected.Reps = domain.Ptr(12)
	expected.Distance = domain.Ptr(1.5)
	require.Equal(t, expected, *updated)

	removed, err := store.DeleteWorkout(ctx, workout.ID)
	require.NoError(t, err)
	require.True(t, removed)

	orphans, err := store.ListExercisesByWorkout(ctx, workout.ID)
	require.NoError(t, err)
	require.Len(t, orphans, 3)

	removed, err = store.DeleteExercise(ctx, created[0].ID)
	require.NoError(t, err)
	require.True(t, removed)
	gone, err := store.GetExercise(ctx, created[0].ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}

func testGoals(t *testing.T, store domain.Store) {
	ctx := context.Background()

	input := domain.Goal{
		UserID:       2,
		Name:         "Run 5K",
		Description:  "Running distance goal",
		TargetDate:   day(2024, time.August, 15, 0, 0),
		CurrentValue: 3.2,
		TargetValue:  5,
		Unit:         "K",
		Status:       domain.GoalStatusInProgress,
	}
	created, err := store.CreateGoal(ctx, input)
	require.NoError(t, err)
	input.ID = created.ID
	require.Equal(t, input, *created)
	require.Equal(t, 64, created.Progress())

	second, err := store.CreateGoal(ctx, domain.Goal{
		UserID:       2,
		Name:         "Lose 5 lbs",
		Description:  "Weight loss goal",
		TargetDate:   day(2024, time.July, 30, 0, 0),
		CurrentValue: 165,
		TargetValue:  160,
		Unit:         "lbs",
		Status:       domain.GoalStatusInProgress,
	})
	require.NoError(t, err)

	goals, err := store.ListGoalsByUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	require.Equal(t, created.ID, goals[0].ID)
	require.Equal(t, second.ID, goals[1].ID)

	updated, err := store.UpdateGoal(ctx, created.ID, domain.GoalPatch{CurrentValue: domain.Dec(5)})
	require.NoError(t, err)
	expected := *created
	expected.CurrentValue = 5
	require.Equal(t, expected, *updated)
	require.Equal(t, 100, updated.Progress())

	removed, err := store.DeleteGoal(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, removed)
	removed, err = store.DeleteGoal(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func testNutritionEntries(t *testing.T, store domain.Store) {
	ctx := context.Background()

	input := domain.NutritionEntry{
		UserID:   5,
		Date:     day(2024, time.June, 1, 12, 15),
		Calories: 640,
		Protein:  domain.Ptr(42.5),
		Carbs:    domain.Ptr(60.0),
		Fat:      domain.Ptr(18.25),
		Notes:    domain.Ptr("lunch"),
	}
	created, err := store.CreateNutritionEntry(ctx, input)
	require.NoError(t, err)
	input.ID = created.ID
	require.Equal(t, input, *created)

	later, err := store.CreateNutritionEntry(ctx, domain.NutritionEntry{UserID: 5, Date: day(2024, time.June, 1, 19, 0), Calories: 800})
	require.NoError(t, err)
	earlier, err := store.CreateNutritionEntry(ctx, domain.NutritionEntry{UserID: 5, Date: day(2024, time.May, 31, 8, 0), Calories: 300})
	require.NoError(t, err)

	entries, err := store.ListNutritionEntriesByUser(ctx, 5)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, []int64{later.ID, created.ID, earlier.ID}, []int64{entries[0].ID, entries[1].ID, entries[2].ID})

	updated, err := store.UpdateNutritionEntry(ctx, created.ID, domain.NutritionEntryPatch{Calories: domain.Ptr(700)})
	require.NoError(t, err)
	expected := *created
	expected.Calories = 700
	require.Equal(t, expected, *updated)

	removed, err := store.DeleteNutritionEntry(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, removed)
	gone, err := store.GetNutritionEntry(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}

func testActivityLogs(t *testing.T, store domain.Store) {
	ctx := context.Background()

	input := domain.ActivityLog{
		UserID:         9,
		Date:           day(2024, time.May, 1, 21, 0),
		Steps:          domain.Ptr(8243),
		ActiveMinutes:  domain.Ptr(68),
		CaloriesBurned: domain.Ptr(1872),
	}
	created, err := store.CreateActivityLog(ctx, input)
	require.NoError(t, err)
	input.ID = created.ID
	require.Equal(t, input, *created)

	newer, err := store.CreateActivityLog(ctx, domain.ActivityLog{UserID: 9, Date: day(2024, time.May, 2, 21, 0), Steps: domain.Ptr(1000)})
	require.NoError(t, err)

	logs, err := store.ListActivityLogsByUser(ctx, 9)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Equal(t, newer.ID, logs[0].ID)
	require.Equal(t, created.ID, logs[1].ID)

	updated, err := store.UpdateActivityLog(ctx, created.ID, domain.ActivityLogPatch{Steps: domain.Ptr(9000)})
	require.NoError(t, err)
	expected := *created
	expected.Steps = domain.Ptr(9000)
	require.Equal(t, expected, *updated)

	removed, err := store.DeleteActivityLog(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, removed)
	removed, err = store.DeleteActivityLog(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func testActivityLogByDate(t *testing.T, store domain.Store) {
	ctx := context.Background()

	lateNight, err := store.CreateActivityLog(ctx, domain.ActivityLog{UserID: 11, Date: day(2024, time.May, 1, 23, 59), Steps: domain.Ptr(1)})
	require.NoError(t, err)
	_, err = store.CreateActivityLog(ctx, domain.ActivityLog{UserID: 11, Date: day(2024, time.May, 2, 0, 1), Steps: domain.Ptr(2)})
	require.NoError(t, err)

	match, err := store.GetActivityLogByUserAndDate(ctx, 11, day(2024, time.May, 1, 0, 0))
	require.NoError(t, err)
	require.NotNil(t, match)
	require.Equal(t, lateNight.ID, match.ID)

	none, err := store.GetActivityLogByUserAndDate(ctx, 11, day(2024, time.April, 30, 12, 0))
	require.NoError(t, err)
	require.Nil(t, none)

	otherUser, err := store.GetActivityLogByUserAndDate(ctx, 12, day(2024, time.May, 1, 0, 0))
	require.NoError(t, err)
	require.Nil(t, otherUser)

	_, err = store.CreateActivityLog(ctx, domain.ActivityLog{UserID: 11, Date: day(2024, time.May, 1, 6, 0), Steps: domain.Ptr(3)})
	require.NoError(t, err)
	match, err = store.GetActivityLogByUserAndDate(ctx, 11, day(2024, time.May, 1, 15, 0))
	require.NoError(t, err)
	require.Equal(t, lateNight.ID, match.ID)
}

// testRecordIsolation writes through every pointer a caller can hold and checks
// the stored record is unchanged.
func testRecordIsolation(t *testing.T, store domain.Store) {
	ctx := context.Background()

	input := newWorkout(1, "Tempo Run", day(2024, time.March, 1, 7, 0))
	created, err := store.CreateWorkout(ctx, input)
	require.NoError(t, err)
	*input.Notes = "changed input"
	*input.CaloriesBurned = 1
	*created.Notes = "changed result"

	fetched, err := store.GetWorkout(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "easy pace", *fetched.Notes)
	require.Equal(t, 250, *fetched.CaloriesBurned)
	*fetched.Notes = "changed fetch"

	listed, err := store.ListWorkoutsByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "easy pace", *listed[0].Notes)
	*listed[0].CaloriesBurned = 2

	notes := "after patch"
	updated, err := store.UpdateWorkout(ctx, created.ID, domain.WorkoutPatch{Notes: &notes})
	require.NoError(t, err)
	notes = "changed patch"
	*updated.CaloriesBurned = 3

	fetched, err = store.GetWorkout(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "after patch", *fetched.Notes)
	require.Equal(t, 250, *fetched.CaloriesBurned)

	user, err := store.CreateUser(ctx, newUser("quinn"))
	require.NoError(t, err)
	byName, err := store.GetUserByUsername(ctx, "quinn")
	require.NoError(t, err)
	*byName.AvatarURL = "changed"
	*byName.Weight = 1
	user, err = store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/quinn.png", *user.AvatarURL)
	require.InDelta(t, 70.5, *user.Weight, 1e-9)

	logDay := day(2024, time.March, 1, 9, 0)
	_, err = store.CreateActivityLog(ctx, domain.ActivityLog{UserID: 1, Date: logDay, Steps: domain.Ptr(8000)})
	require.NoError(t, err)
	byDate, err := store.GetActivityLogByUserAndDate(ctx, 1, logDay)
	require.NoError(t, err)
	*byDate.Steps = 0
	byDate, err = store.GetActivityLogByUserAndDate(ctx, 1, logDay)
	require.NoError(t, err)
	require.Equal(t, 8000, *byDate.Steps)
}

func testEmptyLists(t *testing.T, store domain.Store) {
	ctx := context.Background()

	workouts, err := store.ListWorkoutsByUser(ctx, 12345)
	require.NoError(t, err)
	require.NotNil(t, workouts)
	require.Empty(t, workouts)

	exercises, err := store.ListExercisesByWorkout(ctx, 12345)
	require.NoError(t, err)
	require.NotNil(t, exercises)
	require.Empty(t, exercises)

	goals, err := store.ListGoalsByUser(ctx, 12345)
	require.NoError(t, err)
	require.NotNil(t, goals)
	require.Empty(t, goals)

	entries, err := store.ListNutritionEntriesByUser(ctx, 12345)
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)

	logs, err := store.ListActivityLogsByUser(ctx, 12345)
	require.NoError(t, err)
	require.NotNil(t, logs)
	require.Empty(t, logs)
}

func testSeed(t *testing.T, store domain.Store) {
	ctx := context.Background()
	now := time.Now()

	seeded, err := persistence.Seed(ctx, store, now)
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = persistence.Seed(ctx, store, now)
	require.NoError(t, err)
	require.False(t, seeded)

	user, err := store.GetUserByUsername(ctx, persistence.DemoUsername)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "Alex Johnson", user.DisplayName)

	workouts, err := store.ListWorkoutsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, workouts, 4)
	require.Equal(t, "Upper Body Strength", workouts[0].Name)

	exercises, err := store.ListExercisesByWorkout(ctx, workouts[0].ID)
	require.NoError(t, err)
	require.Len(t, exercises, 3)

	goals, err := store.ListGoalsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, goals, 2)

	today, err := store.GetActivityLogByUserAndDate(ctx, user.ID, now)
	require.NoError(t, err)
	require.NotNil(t, today)
	require.Equal(t, 8243, *today.Steps)
}
