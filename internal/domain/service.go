// Package domain defines the fitness records, their validation rules, the
// persistence port and the service that orchestrates them.
package domain

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/nandanmaalige/fitness-forge/internal/events"
	"github.com/nandanmaalige/fitness-forge/internal/observability"
)

// Entity names used in metrics and change events.
const (
	EntityUser           = "user"
	EntityWorkout        = "workout"
	EntityExercise       = "exercise"
	EntityGoal           = "goal"
	EntityNutritionEntry = "nutrition_entry"
	EntityActivityLog    = "activity_log"
)

// DefaultPublishTimeout bounds how long a write waits on the event publisher.
const DefaultPublishTimeout = 3 * time.Second

// Service validates input, calls the store and publishes changes.
type Service struct {
	store          Store
	publisher      events.Publisher
	publishTimeout time.Duration
	now            func() time.Time
	logger         *log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger overrides the logger used for best-effort failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPublishTimeout overrides DefaultPublishTimeout. Non-positive values are ignored.
func WithPublishTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.publishTimeout = timeout
		}
	}
}

// NewService constructs a Service. A nil publisher drops change events.
func NewService(store Store, publisher events.Publisher, opts ...Option) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	s := &Service{
		store:          store,
		publisher:      publisher,
		publishTimeout: DefaultPublishTimeout,
		now:            time.Now,
		logger:         log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login matches username and password against the stored user.
// Passwords are compared as plain text.
func (s *Service) Login(ctx context.Context, username, password string) (*User, error) {
	started := time.Now()
	user, err := s.store.GetUserByUsername(ctx, username)
	s.observe(EntityUser, "get_by_username", started, err, user != nil)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// CreateUser registers a user. Duplicate usernames or emails yield a *ConstraintError.
func (s *Service) CreateUser(ctx context.Context, input NewUser) (*User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	started := time.Now()
	user, err := s.store.CreateUser(ctx, input.User())
	s.observe(EntityUser, "create", started, err, true)
	if err != nil {
		return nil, err
	}
	s.written(ctx, EntityUser, events.ActionCreated, user.ID, user.ID, user)
	return user, nil
}

// GetUser fetches by ID.
func (s *Service) GetUser(ctx context.Context, id int64) (*User, error) {
	return fetch(s, EntityUser, ErrUserNotFound, func() (*User, error) {
		return s.store.GetUser(ctx, id)
	})
}

// UpdateUser applies a partial update.
func (s *Service) UpdateUser(ctx context.Context, id int64, patch UserPatch) (*User, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	user, err := fetch(s, EntityUser, ErrUserNotFound, func() (*User, error) {
		return s.store.UpdateUser(ctx, id, patch)
	}, "update")
	if err != nil {
		return nil, err
	}
	s.written(ctx, EntityUser, events.ActionUpdated, user.ID, user.ID, user)
	return user, nil
}

// DeleteUser removes a user. Records owned by the user are kept.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return remove(ctx, s, EntityUser, ErrUserNotFound, id, s.store.DeleteUser)
}

// CreateWorkout records a workout.
func (s *Service) CreateWorkout(ctx context.Context, input NewWorkout) (*Workout, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	started := time.Now()
	workout, err := s.store.CreateWorkout(ctx, input.Workout())
	s.observe(EntityWorkout, "create", started, err, true)
	if err != nil {
		return nil, err
	}
	s.written(ctx, EntityWorkout, events.ActionCreated, workout.ID, workout.UserID, workout)
	return workout, nil
}

// GetWorkout fetches by ID.
func (s *Service) GetWorkout(ctx context.Context, id int64) (*Workout, error) {
	return fetch(s, EntityWorkout, ErrWorkoutNotFound, func() (*Workout, error) {
		return s.store.GetWorkout(ctx, id)
	})
}

// ListWorkouts returns a user's workouts, optionally narrowed to a view.
func (s *Service) ListWorkouts(ctx context.Context, userID int64, view WorkoutView) ([]Workout, error) {
	switch view {
	case WorkoutViewAll, WorkoutViewUpcoming, WorkoutViewPast:
	default:
		return nil, ValidationErrors{{Field: "view", Message: "must be one of upcoming, past"}}
	}
	workouts, err := list(s, EntityWorkout, func() ([]Workout, error) {
		return s.store.ListWorkoutsByUser(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return FilterWorkouts(workouts, view, s.now()), nil
}

// UpdateWorkout applies a partial update.
func (s *Service) UpdateWorkout(ctx context.Context, id int64, patch WorkoutPatch) (*Workout, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	workout, err := fetch(s, EntityWorkout, ErrWorkoutNotFound, func() (*Workout, error) {
		return s.store.UpdateWorkout(ctx, id, patch)
	}, "update")
	if err != nil {
		return nil, err
	}
	s.written(ctx, EntityWorkout, events.ActionUpdated, workout.ID, workout.UserID, workout)
	return workout, nil
}

// DeleteWorkout removes a workout. Its exercises are left in place.
func (s *Service) DeleteWorkout(ctx context.Context, id int64) error {
	return remove(ctx, s, EntityWorkout, ErrWorkoutNotFound, id, s.store.DeleteWorkout)
}

// CreateExercise records an exercise against an existing workout.
func (s *Service) CreateExercise(ctx context.Context, input NewExercise) (*Exercise, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireWorkout(ctx, input.WorkoutID); err != nil {
		return nil, err
	}
	started := time.Now()
	exercise, err := s.store.CreateExercise(ctx, input.Exercise())
	s.observe(EntityExercise, "create", started, err, true)
	if err != nil {
		return nil, err
	}
	s.written(ctx, EntityExercise, events.ActionCreated, exercise.ID, exercise.WorkoutID, exercise)
	return exercise, nil
}

// GetExercise fetches by ID.
func (s *Service) GetExercise(ctx context.Context, id int64) (*Exercise, error) {
	return fetch(s, EntityExercise, ErrExerciseNotFound, func() (*Exercise, error) {
		return s.store.GetExercise(ctx, id)
	})
}

// ListExercises returns a workout's exercises in insertion order.
func (s *Service) ListExercises(ctx context.Context, workoutID int64) ([]Exercise, error) {
	return list(s, EntityExercise, func() ([]Exercise, error) {
		return s.store.ListExercisesByWorkout(ctx, workoutID)
	})
}

// UpdateExercise applies a partial update. Moving an exercise requires the target workout to exist.
func (s *Service) UpdateExercise(ctx context.Context, id int64, patch ExercisePatch) (*Exercise, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.WorkoutID != nil {
		if err := s.requireWorkout(ctx, *patch.WorkoutID); err != nil {
			return nil, err
		}
	}
	exercise, err := fetch(s, EntityExercise, ErrExerciseNotFound, func() (*Exercise, error) {
		return s.store.UpdateExercise(ctx, id, patch)
	}, "update")
	if err != nil {
		return nil, err
	}
	s.written(ctx, EntityExercise, events.ActionUpdated, exercise.ID, exercise.WorkoutID, exercise)
	return exercise, nil
}

// DeleteExercise removes an exercise.
func (s *Service) DeleteExercise(ctx context.Context, id int64) error {
	return remove(ctx, s, EntityExercise, ErrExerciseNotFound, id, s.store.DeleteExercise)
}

func (s *Service) requireWorkout(ctx context.Context, workoutID int64) error {
	started := time.Now()
	workout, err := s.store.GetWorkout(ctx, workoutID)
	s.observe(EntityWorkout, "get", started, err, workout != nil)
	if err != nil {
		return err
	}
	if workout == nil {
		return &ConstraintError{Kind: ConstraintReference, Field: "workoutId", Err: ErrWorkoutNotFound}
	}
	return nil
}

// CreateGoal records a goal.
func (s *Service) CreateGoal(ctx context.Context, input NewGoal) (*Goal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	started := time.Now()
	goal, err := s.store.CreateGoal(ctx, input.Goal())
	s.observe(EntityGoal, "create", started, err, true)
	if err != nil {
		return nil, err
	}
	s.written(ctx, EntityGoal, events.ActionCreated, goal.ID, goal.UserID, goal)
	return goal, nil
}

// GetGoal fetches by ID.
func (s *Service) GetGoal(ctx context.Context, id int64) (*Goal, error) {
	return fetch(s, EntityGoal, ErrGoalNotFound, func() (*Goal, error) {
		return s.store.GetGoal(ctx, id)
	})
}

// ListGoals returns a user's goals in insertion order.
func (s *Service) ListGoals(ctx context.Context, userID int64) ([]Goal, error) {
	return list(s, EntityGoal, func() ([]Goal, error) {
		return s.store.ListGoalsByUser(ctx, userID)
	})
}

// UpdateGoal applies a partial update.
func (s *Service) UpdateGoal(ctx context.Context, id int64, patch GoalPatch) (*Goal, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	goal, err := fetch(s, EntityGoal, ErrGoalNotFound, func() (*Goal, error) {
		return s.store.UpdateGoal(ctx, id, patch)
	}, "update")
	if err != nil {
		return nil, err
	}
	s.written(ctx, EntityGoal, events.ActionUpdated, goal.ID, goal.UserID, goal)
	return goal, nil
}

// DeleteGoal removes a goal.
func (s *Service) DeleteGoal(ctx context.Context, id int64) error {
	return remove(ctx, s, EntityGoal, ErrGoalNotFound, id, s.store.DeleteGoal)
}

// CreateNutritionEntry records food intake.
func (s *Service) CreateNutritionEntry(ctx context.Context, input NewNutritionEntry) (*NutritionEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	started := time.Now()
	entry, err := s.store.CreateNutritionEntry(ctx, input.NutritionEntry())
	s.observe(EntityNutritionEntry, "create", started, err, true)
	if err != nil {
		return nil, err
	}
	s.written(ctx, EntityNutritionEntry, events.ActionCreated, entry.ID, entry.UserID, entry)
	return entry, nil
}

// GetNutritionEntry fetches by ID.
func (s *Service) GetNutritionEntry(ctx context.Context, id int64) (*NutritionEntry, error) {
	return fetch(s, EntityNutritionEntry, ErrNutritionEntryNotFound, func() (*NutritionEntry, error) {
		return s.store.GetNutritionEntry(ctx, id)
	})
}

// ListNutritionEntries returns a user's entries, newest first.
func (s *Service) ListNutritionEntries(ctx context.Context, userID int64) ([]NutritionEntry, error) {
	return list(s, EntityNutritionEntry, func() ([]NutritionEntry, error) {
		return s.store.ListNutritionEntriesByUser(ctx, userID)
	})
}

// UpdateNutritionEntry applies a partial update.
func (s *Service) UpdateNutritionEntry(ctx context.Context, id int64, patch NutritionEntryPatch) (*NutritionEntry, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	entry, err := fetch(s, EntityNutritionEntry, ErrNutritionEntryNotFound, func() (*NutritionEntry, error) {
		return s.store.UpdateNutritionEntry(ctx, id, patch)
	}, "update")
	if err != nil {
		return nil, err
	}
	s.written(ctx, EntityNutritionEntry, events.ActionUpdated, entry.ID, entry.UserID, entry)
	return entry, nil
}

// DeleteNutritionEntry removes an entry.
func (s *Service) DeleteNutritionEntry(ctx context.Context, id int64) error {
	return remove(ctx, s, EntityNutritionEntry, ErrNutritionEntryNotFound, id, s.store.DeleteNutritionEntry)
}

// CreateActivityLog records a day's activity.
func (s *Service) CreateActivityLog(ctx context.Context, input NewActivityLog) (*ActivityLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	started := time.Now()
	entry, err := s.store.CreateActivityLog(ctx, input.ActivityLog())
	s.observe(EntityActivityLog, "create", started, err, true)
	if err != nil {
		return nil, err
	}
	s.written(ctx, EntityActivityLog, events.ActionCreated, entry.ID, entry.UserID, entry)
	return entry, nil
}

// GetActivityLog fetches by ID.
func (s *Service) GetActivityLog(ctx context.Context, id int64) (*ActivityLog, error) {
	return fetch(s, EntityActivityLog, ErrActivityLogNotFound, func() (*ActivityLog, error) {
		return s.store.GetActivityLog(ctx, id)
	})
}

// ListActivityLogs returns a user's logs, newest first.
func (s *Service) ListActivityLogs(ctx context.Context, userID int64) ([]ActivityLog, error) {
	return list(s, EntityActivityLog, func() ([]ActivityLog, error) {
		return s.store.ListActivityLogsByUser(ctx, userID)
	})
}

// TodayActivityLog returns the user's log for the current UTC day.
func (s *Service) TodayActivityLog(ctx context.Context, userID int64) (*ActivityLog, error) {
	return fetch(s, EntityActivityLog, ErrNoActivityLogToday, func() (*ActivityLog, error) {
		return s.store.GetActivityLogByUserAndDate(ctx, userID, s.now())
	}, "get_by_date")
}

// UpdateActivityLog applies a partial update.
func (s *Service) UpdateActivityLog(ctx context.Context, id int64, patch ActivityLogPatch) (*ActivityLog, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	entry, err := fetch(s, EntityActivityLog, ErrActivityLogNotFound, func() (*ActivityLog, error) {
		return s.store.UpdateActivityLog(ctx, id, patch)
	}, "update")
	if err != nil {
		return nil, err
	}
	s.written(ctx, EntityActivityLog, events.ActionUpdated, entry.ID, entry.UserID, entry)
	return entry, nil
}

// DeleteActivityLog removes a log.
func (s *Service) DeleteActivityLog(ctx context.Context, id int64) error {
	return remove(ctx, s, EntityActivityLog, ErrActivityLogNotFound, id, s.store.DeleteActivityLog)
}

// DailySummary totals a user's nutrition, completed workouts and activity for day.
// A zero day means today.
func (s *Service) DailySummary(ctx context.Context, userID int64, day time.Time) (*DailySummary, error) {
	if day.IsZero() {
		day = s.now()
	}
	workouts, err := s.ListWorkouts(ctx, userID, WorkoutViewAll)
	if err != nil {
		return nil, err
	}
	entries, err := s.ListNutritionEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	started := time.Now()
	activity, err := s.store.GetActivityLogByUserAndDate(ctx, userID, day)
	s.observe(EntityActivityLog, "get_by_date", started, err, activity != nil)
	if err != nil {
		return nil, err
	}
	summary := Summarize(userID, day, workouts, entries, activity)
	return &summary, nil
}

// fetch runs a single-record store call and converts an absent result into notFound.
// The operation label defaults to "get".
func fetch[T any](s *Service, entity string, notFound error, call func() (*T, error), operation ...string) (*T, error) {
	op := "get"
	if len(operation) > 0 {
		op = operation[0]
	}
	started := time.Now()
	record, err := call()
	s.observe(entity, op, started, err, record != nil)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, notFound
	}
	return record, nil
}

func list[T any](s *Service, entity string, call func() ([]T, error)) ([]T, error) {
	started := time.Now()
	records, err := call()
	s.observe(entity, "list", started, err, true)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func remove(ctx context.Context, s *Service, entity string, notFound error, id int64, call func(context.Context, int64) (bool, error)) error {
	started := time.Now()
	removed, err := call(ctx, id)
	s.observe(entity, "delete", started, err, removed)
	if err != nil {
		return err
	}
	if !removed {
		return notFound
	}
	s.written(ctx, entity, events.ActionDeleted, id, 0, nil)
	return nil
}

func (s *Service) observe(entity, operation string, started time.Time, err error, found bool) {
	outcome := observability.OutcomeOK
	switch {
	case errors.Is(err, ErrConstraintViolation):
		outcome = observability.OutcomeConstraint
	case errors.Is(err, ErrStorageUnavailable):
		outcome = observability.OutcomeUnavailable
	case err != nil:
		outcome = observability.OutcomeError
	case !found:
		outcome = observability.OutcomeAbsent
	}
	observability.ObserveStorage(entity, operation, outcome, started)
}

// written records the write watermark and publishes the change within the publish
// timeout. Publish failures are logged and never fail the request.
func (s *Service) written(ctx context.Context, entity, action string, id, ownerID int64, record any) {
	observability.RecordWrite(entity, s.now())
	change := events.Change{Entity: entity, Action: action, ID: id, OwnerID: ownerID, Record: record}
	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(ctx, change); err != nil {
		s.logger.Printf("publish %s.%s id=%d: %v", entity, action, id, err)
	}
}
