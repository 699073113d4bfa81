// Package memory implements the store on process-local maps.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
	"github.com/nandanmaalige/fitness-forge/internal/persistence"
)

// Repository keeps every entity in its own map. Contents are lost on restart.
type Repository struct {
	mu sync.RWMutex

	users     table[domain.User]
	workouts  table[domain.Workout]
	exercises table[domain.Exercise]
	goals     table[domain.Goal]
	nutrition table[domain.NutritionEntry]
	activity  table[domain.ActivityLog]
}

var (
	_ domain.Store  = (*Repository)(nil)
	_ domain.Seeder = (*Repository)(nil)
)

// NewRepository constructs an empty repository.
func NewRepository() *Repository {
	return &Repository{
		users:     newTable(cloneUser),
		workouts:  newTable(cloneWorkout),
		exercises: newTable(cloneExercise),
		goals:     newTable(cloneGoal),
		nutrition: newTable(cloneNutritionEntry),
		activity:  newTable(cloneActivityLog),
	}
}

// NewDemoRepository constructs a repository populated with the demo account.
func NewDemoRepository() *Repository {
	repo := NewRepository()
	if _, err := repo.SeedDefaults(context.Background()); err != nil {
		// Seeding an empty map-backed store cannot conflict.
		panic(err)
	}
	return repo
}

// SeedDefaults implements domain.Seeder.
func (r *Repository) SeedDefaults(ctx context.Context) (bool, error) {
	return persistence.Seed(ctx, r, time.Now())
}

// table is one entity's records plus its id counter. Records are cloned on the
// way in and on the way out.
type table[T any] struct {
	next    int64
	records map[int64]T
	clone   func(T) T
}

func newTable[T any](clone func(T) T) table[T] {
	return table[T]{next: 1, records: make(map[int64]T), clone: clone}
}

func (t *table[T]) insert(record T, setID func(*T, int64)) T {
	id := t.next
	t.next++
	setID(&record, id)
	return t.put(id, record)
}

func (t *table[T]) put(id int64, record T) T {
	t.records[id] = t.clone(record)
	return t.clone(record)
}

func (t *table[T]) get(id int64) *T {
	record, ok := t.records[id]
	if !ok {
		return nil
	}
	out := t.clone(record)
	return &out
}

func (t *table[T]) remove(id int64) bool {
	if _, ok := t.records[id]; !ok {
		return false
	}
	delete(t.records, id)
	return true
}

func (t *table[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0)
	for _, record := range t.records {
		if keep(record) {
			out = append(out, t.clone(record))
		}
	}
	return out
}

// newestFirst orders by date descending, breaking ties by id descending.
func newestFirst(aDate, bDate time.Time, aID, bID int64) int {
	if c := bDate.Compare(aDate); c != 0 {
		return c
	}
	return cmp.Compare(bID, aID)
}

// CreateUser implements domain.UserStore.
func (r *Repository) CreateUser(_ context.Context, user domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUserUnique(0, user.Username, user.Email); err != nil {
		return nil, err
	}
	created := r.users.insert(user, func(u *domain.User, id int64) { u.ID = id })
	return &created, nil
}

func (r *Repository) checkUserUnique(selfID int64, username, email string) error {
	for id, existing := range r.users.records {
		if id == selfID {
			continue
		}
		if existing.Username == username {
			return &domain.ConstraintError{Kind: domain.ConstraintUnique, Field: "username"}
		}
		if existing.Email == email {
			return &domain.ConstraintError{Kind: domain.ConstraintUnique, Field: "email"}
		}
	}
	return nil
}

// GetUser implements domain.UserStore.
func (r *Repository) GetUser(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.users.get(id), nil
}

// GetUserByUsername implements domain.UserStore.
func (r *Repository) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users.records {
		if user.Username == username {
			found := r.users.clone(user)
			return &found, nil
		}
	}
	return nil, nil
}

// UpdateUser implements domain.UserStore.
func (r *Repository) UpdateUser(_ context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users.records[id]
	if !ok {
		return nil, nil
	}
	updated := patch.Apply(current)
	if err := r.checkUserUnique(id, updated.Username, updated.Email); err != nil {
		return nil, err
	}
	updated = r.users.put(id, updated)
	return &updated, nil
}

// DeleteUser implements domain.UserStore.
func (r *Repository) DeleteUser(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users.remove(id), nil
}

// CreateWorkout implements domain.WorkoutStore.
func (r *Repository) CreateWorkout(_ context.Context, workout domain.Workout) (*domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	workout.Date = domain.NormalizeTime(workout.Date)
	created := r.workouts.insert(workout, func(w *domain.Workout, id int64) { w.ID = id })
	return &created, nil
}

// GetWorkout implements domain.WorkoutStore.
func (r *Repository) GetWorkout(_ context.Context, id int64) (*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.workouts.get(id), nil
}

// ListWorkoutsByUser implements domain.WorkoutStore.
func (r *Repository) ListWorkoutsByUser(_ context.Context, userID int64) ([]domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.workouts.filter(func(w domain.Workout) bool { return w.UserID == userID })
	slices.SortFunc(out, func(a, b domain.Workout) int {
		return newestFirst(a.Date, b.Date, a.ID, b.ID)
	})
	return out, nil
}

// UpdateWorkout implements domain.WorkoutStore.
func (r *Repository) UpdateWorkout(_ context.Context, id int64, patch domain.WorkoutPatch) (*domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.workouts.records[id]
	if !ok {
		return nil, nil
	}
	updated := patch.Apply(current)
	updated = r.workouts.put(id, updated)
	return &updated, nil
}

// DeleteWorkout implements domain.WorkoutStore. Exercises are not cascaded.
func (r *Repository) DeleteWorkout(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.workouts.remove(id), nil
}

// CreateExercise implements domain.ExerciseStore.
func (r *Repository) CreateExercise(_ context.Context, exercise domain.Exercise) (*domain.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := r.exercises.insert(exercise, func(e *domain.Exercise, id int64) { e.ID = id })
	return &created, nil
}

// GetExercise implements domain.ExerciseStore.
func (r *Repository) GetExercise(_ context.Context, id int64) (*domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.exercises.get(id), nil
}

// ListExercisesByWorkout implements domain.ExerciseStore.
func (r *Repository) ListExercisesByWorkout(_ context.Context, workoutID int64) ([]domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.exercises.filter(func(e domain.Exercise) bool { return e.WorkoutID == workoutID })
	slices.SortFunc(out, func(a, b domain.Exercise) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// UpdateExercise implements domain.ExerciseStore.
func (r *Repository) UpdateExercise(_ context.Context, id int64, patch domain.ExercisePatch) (*domain.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.exercises.records[id]
	if !ok {
		return nil, nil
	}
	updated := patch.Apply(current)
	updated = r.exercises.put(id, updated)
	return &updated, nil
}

// DeleteExercise implements domain.ExerciseStore.
func (r *Repository) DeleteExercise(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.exercises.remove(id), nil
}

// CreateGoal implements domain.GoalStore.
func (r *Repository) CreateGoal(_ context.Context, goal domain.Goal) (*domain.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	goal.TargetDate = domain.NormalizeTime(goal.TargetDate)
	created := r.goals.insert(goal, func(g *domain.Goal, id int64) { g.ID = id })
	return &created, nil
}

// GetGoal implements domain.GoalStore.
func (r *Repository) GetGoal(_ context.Context, id int64) (*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.goals.get(id), nil
}

// ListGoalsByUser implements domain.GoalStore.
func (r *Repository) ListGoalsByUser(_ context.Context, userID int64) ([]domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.goals.filter(func(g domain.Goal) bool { return g.UserID == userID })
	slices.SortFunc(out, func(a, b domain.Goal) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// UpdateGoal implements domain.GoalStore.
func (r *Repository) UpdateGoal(_ context.Context, id int64, patch domain.GoalPatch) (*domain.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.goals.records[id]
	if !ok {
		return nil, nil
	}
	updated := patch.Apply(current)
	updated = r.goals.put(id, updated)
	return &updated, nil
}

// DeleteGoal implements domain.GoalStore.
func (r *Repository) DeleteGoal(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.goals.remove(id), nil
}

// CreateNutritionEntry implements domain.NutritionEntryStore.
func (r *Repository) CreateNutritionEntry(_ context.Context, entry domain.NutritionEntry) (*domain.NutritionEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.Date = domain.NormalizeTime(entry.Date)
	created := r.nutrition.insert(entry, func(e *domain.NutritionEntry, id int64) { e.ID = id })
	return &created, nil
}

// GetNutritionEntry implements domain.NutritionEntryStore.
func (r *Repository) GetNutritionEntry(_ context.Context, id int64) (*domain.NutritionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nutrition.get(id), nil
}

// ListNutritionEntriesByUser implements domain.NutritionEntryStore.
func (r *Repository) ListNutritionEntriesByUser(_ context.Context, userID int64) ([]domain.NutritionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.nutrition.filter(func(e domain.NutritionEntry) bool { return e.UserID == userID })
	slices.SortFunc(out, func(a, b domain.NutritionEntry) int {
		return newestFirst(a.Date, b.Date, a.ID, b.ID)
	})
	return out, nil
}

// UpdateNutritionEntry implements domain.NutritionEntryStore.
func (r *Repository) UpdateNutritionEntry(_ context.Context, id int64, patch domain.NutritionEntryPatch) (*domain.NutritionEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.nutrition.records[id]
	if !ok {
		return nil, nil
	}
	updated := patch.Apply(current)
	updated = r.nutrition.put(id, updated)
	return &updated, nil
}

// DeleteNutritionEntry implements domain.NutritionEntryStore.
func (r *Repository) DeleteNutritionEntry(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nutrition.remove(id), nil
}

// CreateActivityLog implements domain.ActivityLogStore.
func (r *Repository) CreateActivityLog(_ context.Context, log domain.ActivityLog) (*domain.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.Date = domain.NormalizeTime(log.Date)
	created := r.activity.insert(log, func(l *domain.ActivityLog, id int64) { l.ID = id })
	return &created, nil
}

// GetActivityLog implements domain.ActivityLogStore.
func (r *Repository) GetActivityLog(_ context.Context, id int64) (*domain.ActivityLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activity.get(id), nil
}

// ListActivityLogsByUser implements domain.ActivityLogStore.
func (r *Repository) ListActivityLogsByUser(_ context.Context, userID int64) ([]domain.ActivityLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.activity.filter(func(l domain.ActivityLog) bool { return l.UserID == userID })
	slices.SortFunc(out, func(a, b domain.ActivityLog) int {
		return newestFirst(a.Date, b.Date, a.ID, b.ID)
	})
	return out, nil
}

// GetActivityLogByUserAndDate implements domain.ActivityLogStore.
func (r *Repository) GetActivityLogByUserAndDate(_ context.Context, userID int64, day time.Time) (*domain.ActivityLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var match *domain.ActivityLog
	for _, l := range r.activity.records {
		if l.UserID != userID || !domain.SameDay(l.Date, day) {
			continue
		}
		if match == nil || l.ID < match.ID {
			found := r.activity.clone(l)
			match = &found
		}
	}
	return match, nil
}

// UpdateActivityLog implements domain.ActivityLogStore.
func (r *Repository) UpdateActivityLog(_ context.Context, id int64, patch domain.ActivityLogPatch) (*domain.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.activity.records[id]
	if !ok {
		return nil, nil
	}
	updated := patch.Apply(current)
	updated = r.activity.put(id, updated)
	return &updated, nil
}

// DeleteActivityLog implements domain.ActivityLogStore.
func (r *Repository) DeleteActivityLog(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activity.remove(id), nil
}
