package memory

import "github.com/nandanmaalige/fitness-forge/internal/domain"

// Stored records never share optional fields with callers.

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneUser(u domain.User) domain.User {
	u.Weight = clonePtr(u.Weight)
	u.Height = clonePtr(u.Height)
	u.AvatarURL = clonePtr(u.AvatarURL)
	return u
}

func cloneWorkout(w domain.Workout) domain.Workout {
	w.CaloriesBurned = clonePtr(w.CaloriesBurned)
	w.Notes = clonePtr(w.Notes)
	return w
}

func cloneExercise(e domain.Exercise) domain.Exercise {
	e.Sets = clonePtr(e.Sets)
	e.Reps = clonePtr(e.Reps)
	e.Weight = clonePtr(e.Weight)
	e.Duration = clonePtr(e.Duration)
	e.Distance = clonePtr(e.Distance)
	return e
}

func cloneGoal(g domain.Goal) domain.Goal {
	return g
}

func cloneNutritionEntry(e domain.NutritionEntry) domain.NutritionEntry {
	e.Protein = clonePtr(e.Protein)
	e.Carbs = clonePtr(e.Carbs)
	e.Fat = clonePtr(e.Fat)
	e.Notes = clonePtr(e.Notes)
	return e
}

func cloneActivityLog(l domain.ActivityLog) domain.ActivityLog {
	l.Steps = clonePtr(l.Steps)
	l.ActiveMinutes = clonePtr(l.ActiveMinutes)
	l.CaloriesBurned = clonePtr(l.CaloriesBurned)
	return l
}
