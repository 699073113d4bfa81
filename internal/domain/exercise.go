package domain

// Exercise is one movement within a workout.
type Exercise struct {
	ID        int64    `json:"id"`
	WorkoutID int64    `json:"workoutId"`
	Name      string   `json:"name"`
	Sets      *int     `json:"sets"`
	Reps      *int     `json:"reps"`
	Weight    *float64 `json:"weight"`
	Duration  *int     `json:"duration"`
	Distance  *float64 `json:"distance"`
}

type NewExercise struct {
	WorkoutID int64    `json:"workoutId"`
	Name      string   `json:"name"`
	Sets      *int     `json:"sets"`
	Reps      *int     `json:"reps"`
	Weight    *Decimal `json:"weight"`
	Duration  *int     `json:"duration"`
	Distance  *Decimal `json:"distance"`
}

func (n NewExercise) Validate() error {
	var v validator
	v.requireID("workoutId", n.WorkoutID)
	v.requireString("name", n.Name)
	v.nonNegative("sets", n.Sets)
	v.nonNegative("reps", n.Reps)
	v.nonNegativeDecimal("weight", n.Weight)
	v.nonNegative("duration", n.Duration)
	v.nonNegativeDecimal("distance", n.Distance)
	return v.err()
}

func (n NewExercise) Exercise() Exercise {
	return Exercise{
		WorkoutID: n.WorkoutID,
		Name:      n.Name,
		Sets:      n.Sets,
		Reps:      n.Reps,
		Weight:    decimalPtr(n.Weight),
		Duration:  n.Duration,
		Distance:  decimalPtr(n.Distance),
	}
}

type ExercisePatch struct {
	WorkoutID *int64   `json:"workoutId"`
	Name      *string  `json:"name"`
	Sets      *int     `json:"sets"`
	Reps      *int     `json:"reps"`
	Weight    *Decimal `json:"weight"`
	Duration  *int     `json:"duration"`
	Distance  *Decimal `json:"distance"`
}

func (p ExercisePatch) Validate() error {
	var v validator
	if p.WorkoutID != nil {
		v.requireID("workoutId", *p.WorkoutID)
	}
	v.optionalString("name", p.Name)
	v.nonNegative("sets", p.Sets)
	v.nonNegative("reps", p.Reps)
	v.nonNegativeDecimal("weight", p.Weight)
	v.nonNegative("duration", p.Duration)
	v.nonNegativeDecimal("distance", p.Distance)
	return v.err()
}

func (p ExercisePatch) Apply(e Exercise) Exercise {
	if p.WorkoutID != nil {
		e.WorkoutID = *p.WorkoutID
	}
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Sets != nil {
		e.Sets = p.Sets
	}
	if p.Reps != nil {
		e.Reps = p.Reps
	}
	if p.Weight != nil {
		e.Weight = decimalPtr(p.Weight)
	}
	if p.Duration != nil {
		e.Duration = p.Duration
	}
	if p.Distance != nil {
		e.Distance = decimalPtr(p.Distance)
	}
	return e
}
