package domain

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGoalProgress(t *testing.T) {
	require.Equal(t, 64, Goal{CurrentValue: 3.2, TargetValue: 5}.Progress())
	require.Equal(t, 0, Goal{CurrentValue: 3, TargetValue: 0}.Progress())
	require.Equal(t, 120, Goal{CurrentValue: 6, TargetValue: 5}.Progress())
	require.Equal(t, math.MaxInt32, Goal{CurrentValue: 1e300, TargetValue: 1e-300}.Progress())
	require.Equal(t, math.MaxInt32, Goal{CurrentValue: math.MaxFloat64, TargetValue: 0.5}.Progress())

	data, err := json.Marshal(Goal{ID: 2, Name: "Run 5K", CurrentValue: 3.2, TargetValue: 5})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.EqualValues(t, 64, decoded["progress"])
	require.EqualValues(t, 2, decoded["id"])
	require.Equal(t, "Run 5K", decoded["name"])
}

func TestUserPasswordIsNeverSerialised(t *testing.T) {
	data, err := json.Marshal(User{ID: 1, Username: "alex", Password: "password"})
	require.NoError(t, err)
	require.NotContains(t, string(data), "password\"")
	require.NotContains(t, string(data), "\"password")
}

func TestFilterWorkouts(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2024, 3, d, 8, 0, 0, 0, time.UTC) }

	// newest first, as the store returns them
	workouts := []Workout{
		{ID: 5, Date: day(14), Status: WorkoutStatusScheduled},
		{ID: 4, Date: day(12), Status: WorkoutStatusScheduled},
		{ID: 3, Date: day(10), Status: WorkoutStatusScheduled},
		{ID: 2, Date: day(9), Status: WorkoutStatusScheduled},
		{ID: 1, Date: day(8), Status: WorkoutStatusCompleted},
		{ID: 6, Date: day(11), Status: WorkoutStatusSkipped},
	}

	ids := func(ws []Workout) []int64 {
		out := make([]int64, 0, len(ws))
		for _, w := range ws {
			out = append(out, w.ID)
		}
		return out
	}

	require.Equal(t, []int64{5, 4, 3, 2, 1, 6}, ids(FilterWorkouts(workouts, WorkoutViewAll, now)))
	require.Equal(t, []int64{3, 4, 5}, ids(FilterWorkouts(workouts, WorkoutViewUpcoming, now)))
	require.Equal(t, []int64{2, 1}, ids(FilterWorkouts(workouts, WorkoutViewPast, now)))
	require.Empty(t, FilterWorkouts(nil, WorkoutViewPast, now))
}

func TestSummarize(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	workouts := []Workout{
		{ID: 1, Status: WorkoutStatusCompleted, Duration: 30, CaloriesBurned: Ptr(300), Date: at(7)},
		{ID: 2, Status: WorkoutStatusCompleted, Duration: 45, Date: at(18)},
		{ID: 3, Status: WorkoutStatusScheduled, Duration: 60, CaloriesBurned: Ptr(500), Date: at(20)},
		{ID: 4, Status: WorkoutStatusCompleted, Duration: 20, CaloriesBurned: Ptr(150), Date: at(-2)},
	}
	entries := []NutritionEntry{
		{ID: 1, Calories: 450, Protein: Ptr(20.5), Carbs: Ptr(60.0), Date: at(8)},
		{ID: 2, Calories: 700, Protein: Ptr(40.0), Fat: Ptr(25.0), Date: at(13)},
		{ID: 3, Calories: 900, Protein: Ptr(10.0), Date: at(26)},
	}
	activity := &ActivityLog{ID: 9, Date: at(0), Steps: Ptr(8243)}

	summary := Summarize(1, at(12), workouts, entries, activity)

	require.Equal(t, "2024-03-01", summary.Date)
	require.Equal(t, NutritionTotals{Entries: 2, Calories: 1150, Protein: 60.5, Carbs: 60, Fat: 25}, summary.Nutrition)
	require.Equal(t, WorkoutTotals{Completed: 2, Minutes: 75, CaloriesBurned: 300}, summary.Workouts)
	require.Equal(t, activity, summary.Activity)

	empty := Summarize(1, at(30), nil, nil, activity)
	require.Equal(t, "2024-03-02", empty.Date)
	require.Zero(t, empty.Nutrition)
	require.Nil(t, empty.Activity)
}
