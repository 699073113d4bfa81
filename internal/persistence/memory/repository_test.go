package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
	"github.com/nandanmaalige/fitness-forge/internal/persistence"
	"github.com/nandanmaalige/fitness-forge/internal/persistence/storetest"
)

func TestRepositoryContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) domain.Store {
		return NewRepository()
	})
}

func TestNewDemoRepositorySeedsOnce(t *testing.T) {
	repo := NewDemoRepository()

	user, err := repo.GetUserByUsername(context.Background(), persistence.DemoUsername)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, int64(1), user.ID)

	seeded, err := repo.SeedDefaults(context.Background())
	require.NoError(t, err)
	require.False(t, seeded)
}

func TestIdentifiersStartAtOnePerEntity(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	w, err := repo.CreateWorkout(ctx, domain.Workout{UserID: 1, Name: "a", Type: "other", Duration: 1, Status: "scheduled"})
	require.NoError(t, err)
	g, err := repo.CreateGoal(ctx, domain.Goal{UserID: 1, Name: "g", TargetValue: 1})
	require.NoError(t, err)
	require.Equal(t, int64(1), w.ID)
	require.Equal(t, int64(1), g.ID)

	removed, err := repo.DeleteWorkout(ctx, w.ID)
	require.NoError(t, err)
	require.True(t, removed)

	next, err := repo.CreateWorkout(ctx, domain.Workout{UserID: 1, Name: "b", Type: "other", Duration: 1, Status: "scheduled"})
	require.NoError(t, err)
	require.Equal(t, int64(2), next.ID)
}

func TestConcurrentCreatesAssignUniqueIDs(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	const workers = 16
	ids := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entry, err := repo.CreateNutritionEntry(ctx, domain.NutritionEntry{UserID: 1, Calories: 100})
			if err == nil {
				ids <- entry.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, workers)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	input := domain.Workout{UserID: 1, Name: "original", Type: "other", Duration: 5, Status: "scheduled", Notes: domain.Ptr("original")}
	created, err := repo.CreateWorkout(ctx, input)
	require.NoError(t, err)
	created.Name = "mutated"
	*created.Notes = "mutated"
	*input.Notes = "mutated input"

	fetched, err := repo.GetWorkout(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "original", fetched.Name)
	require.Equal(t, "original", *fetched.Notes)

	sets := 3
	exercise, err := repo.CreateExercise(ctx, domain.Exercise{WorkoutID: created.ID, Name: "Squat"})
	require.NoError(t, err)
	_, err = repo.UpdateExercise(ctx, exercise.ID, domain.ExercisePatch{Sets: &sets})
	require.NoError(t, err)
	sets = 99

	exercises, err := repo.ListExercisesByWorkout(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 3, *exercises[0].Sets)
}
