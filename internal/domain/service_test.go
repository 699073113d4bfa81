package domain_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
	"github.com/nandanmaalige/fitness-forge/internal/events"
	"github.com/nandanmaalige/fitness-forge/internal/persistence/memory"
)

type recordingPublisher struct {
	mu      sync.Mutex
	changes []events.Change
	err     error
}

func (p *recordingPublisher) Publish(_ context.Context, change events.Change) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, change)
	return p.err
}

func (p *recordingPublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.changes))
	for _, c := range p.changes {
		out = append(out, events.EventType(c))
	}
	return out
}

var fixedNow = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

func newService(t *testing.T, publisher events.Publisher, opts ...domain.Option) *domain.Service {
	t.Helper()
	opts = append([]domain.Option{domain.WithClock(func() time.Time { return fixedNow })}, opts...)
	return domain.NewService(memory.NewRepository(), publisher, opts...)
}

func createUser(t *testing.T, svc *domain.Service) *domain.User {
	t.Helper()
	user, err := svc.CreateUser(context.Background(), domain.NewUser{
		Username: "sam", Password: "pw", DisplayName: "Sam", Email: "sam@example.com",
	})
	require.NoError(t, err)
	return user
}

func TestServiceLogin(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()
	user := createUser(t, svc)

	got, err := svc.Login(ctx, "sam", "pw")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	_, err = svc.Login(ctx, "sam", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "pw")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestServiceValidatesBeforeStoring(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := newService(t, publisher)

	_, err := svc.CreateWorkout(context.Background(), domain.NewWorkout{UserID: 1})
	require.ErrorIs(t, err, domain.ErrValidationFailed)
	require.Empty(t, publisher.actions())
}

func TestServiceMapsAbsentRecordsToNotFound(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	_, err := svc.GetWorkout(ctx, 99)
	require.ErrorIs(t, err, domain.ErrWorkoutNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.UpdateGoal(ctx, 99, domain.GoalPatch{Name: domain.Ptr("x")})
	require.ErrorIs(t, err, domain.ErrGoalNotFound)

	require.ErrorIs(t, svc.DeleteNutritionEntry(ctx, 99), domain.ErrNutritionEntryNotFound)

	_, err = svc.TodayActivityLog(ctx, 1)
	require.ErrorIs(t, err, domain.ErrNoActivityLogToday)
	require.Equal(t, "No activity log found for today", err.Error())
}

func TestServicePublishesChanges(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := newService(t, publisher)
	ctx := context.Background()
	user := createUser(t, svc)

	workout, err := svc.CreateWorkout(ctx, domain.NewWorkout{
		UserID: user.ID, Name: "Morning Run", Type: domain.WorkoutTypeCardio, Duration: 30,
		Date: domain.NewTimestamp(fixedNow), Status: domain.WorkoutStatusScheduled,
	})
	require.NoError(t, err)

	_, err = svc.UpdateWorkout(ctx, workout.ID, domain.WorkoutPatch{Status: domain.Ptr(domain.WorkoutStatusCompleted)})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteWorkout(ctx, workout.ID))

	require.Equal(t, []string{"user.created", "workout.created", "workout.updated", "workout.deleted"}, publisher.actions())
	require.Equal(t, user.ID, publisher.changes[1].OwnerID)
	require.Nil(t, publisher.changes[3].Record)
}

func TestServicePublishFailureDoesNotFailWrite(t *testing.T) {
	var buf bytes.Buffer
	publisher := &recordingPublisher{err: errors.New("broker down")}
	svc := newService(t, publisher, domain.WithLogger(log.New(&buf, "", 0)))

	user := createUser(t, svc)
	require.NotZero(t, user.ID)
	require.Contains(t, buf.String(), "publish user.created")
}

type stalledPublisher struct{}

func (stalledPublisher) Publish(ctx context.Context, _ events.Change) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestServicePublishIsBoundedByTimeout(t *testing.T) {
	var buf bytes.Buffer
	svc := newService(t, stalledPublisher{},
		domain.WithPublishTimeout(20*time.Millisecond),
		domain.WithLogger(log.New(&buf, "", 0)))

	started := time.Now()
	user := createUser(t, svc)
	require.NotZero(t, user.ID)
	require.Less(t, time.Since(started), 2*time.Second)
	require.Contains(t, buf.String(), context.DeadlineExceeded.Error())
}

func TestServiceExerciseRequiresWorkout(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	_, err := svc.CreateExercise(ctx, domain.NewExercise{WorkoutID: 42, Name: "Squat"})
	var cerr *domain.ConstraintError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, domain.ConstraintReference, cerr.Kind)
	require.Equal(t, "workoutId", cerr.Field)

	workout, err := svc.CreateWorkout(ctx, domain.NewWorkout{
		UserID: 1, Name: "Legs", Type: domain.WorkoutTypeStrength, Duration: 40,
		Date: domain.NewTimestamp(fixedNow), Status: domain.WorkoutStatusScheduled,
	})
	require.NoError(t, err)

	exercise, err := svc.CreateExercise(ctx, domain.NewExercise{WorkoutID: workout.ID, Name: "Squat", Sets: domain.Ptr(3)})
	require.NoError(t, err)

	_, err = svc.UpdateExercise(ctx, exercise.ID, domain.ExercisePatch{WorkoutID: domain.Ptr(int64(77))})
	require.ErrorIs(t, err, domain.ErrConstraintViolation)

	require.NoError(t, svc.DeleteWorkout(ctx, workout.ID))
	remaining, err := svc.ListExercises(ctx, workout.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
}

func TestServiceListWorkoutsRejectsUnknownView(t *testing.T) {
	svc := newService(t, nil)

	_, err := svc.ListWorkouts(context.Background(), 1, domain.WorkoutView("someday"))
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.True(t, verrs.HasField("view"))

	list, err := svc.ListWorkouts(context.Background(), 1, domain.WorkoutViewUpcoming)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestServiceDailySummaryDefaultsToToday(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	_, err := svc.CreateNutritionEntry(ctx, domain.NewNutritionEntry{
		UserID: 1, Calories: 500, Protein: domain.Dec(30), Date: domain.NewTimestamp(fixedNow),
	})
	require.NoError(t, err)
	activity, err := svc.CreateActivityLog(ctx, domain.NewActivityLog{
		UserID: 1, Date: domain.NewTimestamp(fixedNow.Add(-time.Hour)), Steps: domain.Ptr(9000),
	})
	require.NoError(t, err)

	summary, err := svc.DailySummary(ctx, 1, time.Time{})
	require.NoError(t, err)
	require.Equal(t, "2024-03-10", summary.Date)
	require.Equal(t, 500, summary.Nutrition.Calories)
	require.Equal(t, activity.ID, summary.Activity.ID)

	today, err := svc.TodayActivityLog(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, activity.ID, today.ID)
}

func TestServiceRecordsStorageMetrics(t *testing.T) {
	svc := newService(t, nil)

	before := storageCount(t, "goal", "get", "absent")
	_, err := svc.GetGoal(context.Background(), 1234)
	require.ErrorIs(t, err, domain.ErrGoalNotFound)
	require.Equal(t, before+1, storageCount(t, "goal", "get", "absent"))
}

func storageCount(t *testing.T, entity, operation, outcome string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != "fitness_storage_operations_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			if labels["entity"] == entity && labels["operation"] == operation && labels["outcome"] == outcome {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}
