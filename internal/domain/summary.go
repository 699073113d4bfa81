package domain

import "time"

// DailySummary rolls up one user's records for a UTC calendar day.
type DailySummary struct {
	UserID    int64           `json:"userId"`
	Date      string          `json:"date"`
	Nutrition NutritionTotals `json:"nutrition"`
	Workouts  WorkoutTotals   `json:"workouts"`
	Activity  *ActivityLog    `json:"activity"`
}

// NutritionTotals sums the day's nutrition entries.
type NutritionTotals struct {
	Entries  int     `json:"entries"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// WorkoutTotals sums the day's completed workouts.
type WorkoutTotals struct {
	Completed      int `json:"completed"`
	Minutes        int `json:"minutes"`
	CaloriesBurned int `json:"caloriesBurned"`
}

// Summarize builds the summary for day from a user's records. Records on other days are ignored.
func Summarize(userID int64, day time.Time, workouts []Workout, entries []NutritionEntry, activity *ActivityLog) DailySummary {
	summary := DailySummary{
		UserID: userID,
		Date:   StartOfDay(day).Format(DateLayout),
	}
	for _, e := range entries {
		if !SameDay(e.Date, day) {
			continue
		}
		summary.Nutrition.Entries++
		summary.Nutrition.Calories += e.Calories
		summary.Nutrition.Protein += valueOr(e.Protein)
		summary.Nutrition.Carbs += valueOr(e.Carbs)
		summary.Nutrition.Fat += valueOr(e.Fat)
	}
	for _, w := range workouts {
		if w.Status != WorkoutStatusCompleted || !SameDay(w.Date, day) {
			continue
		}
		summary.Workouts.Completed++
		summary.Workouts.Minutes += w.Duration
		summary.Workouts.CaloriesBurned += valueOr(w.CaloriesBurned)
	}
	if activity != nil && SameDay(activity.Date, day) {
		summary.Activity = activity
	}
	return summary
}

func valueOr[T int | float64](v *T) T {
	if v == nil {
		return 0
	}
	return *v
}
