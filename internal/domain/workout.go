package domain

import "time"

// Workout types offered by the client. The server accepts any non-empty string.
const (
	WorkoutTypeCardio      = "cardio"
	WorkoutTypeStrength    = "strength"
	WorkoutTypeHIIT        = "hiit"
	WorkoutTypeFlexibility = "flexibility"
	WorkoutTypeOther       = "other"
)

// Workout statuses offered by the client.
const (
	WorkoutStatusScheduled = "scheduled"
	WorkoutStatusCompleted = "completed"
	WorkoutStatusSkipped   = "skipped"
)

// Workout is a single training session owned by a user.
type Workout struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Duration       int       `json:"duration"`
	CaloriesBurned *int      `json:"caloriesBurned"`
	Date           time.Time `json:"date"`
	Notes          *string   `json:"notes"`
	Status         string    `json:"status"`
}

// NewWorkout is the creation schema for workouts.
type NewWorkout struct {
	UserID         int64     `json:"userId"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Duration       int       `json:"duration"`
	CaloriesBurned *int      `json:"caloriesBurned"`
	Date           Timestamp `json:"date"`
	Notes          *string   `json:"notes"`
	Status         string    `json:"status"`
}

// Validate checks the creation payload.
func (n NewWorkout) Validate() error {
	var v validator
	v.requireID("userId", n.UserID)
	v.requireString("name", n.Name)
	v.requireString("type", n.Type)
	v.minInt("duration", n.Duration, 1)
	v.nonNegative("caloriesBurned", n.CaloriesBurned)
	v.requireTime("date", n.Date)
	v.requireString("status", n.Status)
	return v.err()
}

// Workout builds the record for the payload.
func (n NewWorkout) Workout() Workout {
	return Workout{
		UserID:         n.UserID,
		Name:           n.Name,
		Type:           n.Type,
		Duration:       n.Duration,
		CaloriesBurned: n.CaloriesBurned,
		Date:           NormalizeTime(n.Date.Time),
		Notes:          n.Notes,
		Status:         n.Status,
	}
}

// WorkoutPatch is a partial update; nil fields are left untouched.
type WorkoutPatch struct {
	UserID         *int64     `json:"userId"`
	Name           *string    `json:"name"`
	Type           *string    `json:"type"`
	Duration       *int       `json:"duration"`
	CaloriesBurned *int       `json:"caloriesBurned"`
	Date           *Timestamp `json:"date"`
	Notes          *string    `json:"notes"`
	Status         *string    `json:"status"`
}

// Validate checks the fields present in the patch.
func (p WorkoutPatch) Validate() error {
	var v validator
	if p.UserID != nil {
		v.requireID("userId", *p.UserID)
	}
	v.optionalString("name", p.Name)
	v.optionalString("type", p.Type)
	if p.Duration != nil {
		v.minInt("duration", *p.Duration, 1)
	}
	v.nonNegative("caloriesBurned", p.CaloriesBurned)
	v.optionalTime("date", p.Date)
	v.optionalString("status", p.Status)
	return v.err()
}

// Apply merges the patch over w.
func (p WorkoutPatch) Apply(w Workout) Workout {
	if p.UserID != nil {
		w.UserID = *p.UserID
	}
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Type != nil {
		w.Type = *p.Type
	}
	if p.Duration != nil {
		w.Duration = *p.Duration
	}
	if p.CaloriesBurned != nil {
		w.CaloriesBurned = p.CaloriesBurned
	}
	if p.Date != nil {
		w.Date = NormalizeTime(p.Date.Time)
	}
	if p.Notes != nil {
		w.Notes = p.Notes
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
	return w
}

// WorkoutView selects a subset of a user's workouts.
type WorkoutView string

const (
	WorkoutViewAll      WorkoutView = ""
	WorkoutViewUpcoming WorkoutView = "upcoming"
	WorkoutViewPast     WorkoutView = "past"
)

// FilterWorkouts applies view relative to now. Input must already be newest first.
// Upcoming workouts are scheduled and not before today, returned soonest first.
// Past workouts are completed or dated before today, returned newest first.
func FilterWorkouts(workouts []Workout, view WorkoutView, now time.Time) []Workout {
	if view == WorkoutViewAll {
		return workouts
	}
	today := StartOfDay(now)
	out := make([]Workout, 0, len(workouts))
	for _, w := range workouts {
		beforeToday := w.Date.Before(today)
		switch view {
		case WorkoutViewUpcoming:
			if w.Status == WorkoutStatusScheduled && !beforeToday {
				out = append(out, w)
			}
		case WorkoutViewPast:
			if w.Status == WorkoutStatusCompleted || beforeToday {
				out = append(out, w)
			}
		}
	}
	if view == WorkoutViewUpcoming {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
