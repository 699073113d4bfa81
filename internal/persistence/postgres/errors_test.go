package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
)

func TestClassifyUniqueViolation(t *testing.T) {
	err := classify(fmt.Errorf("insert: %w", &pgconn.PgError{
		Code:           codeUniqueViolation,
		TableName:      "users",
		ConstraintName: "users_username_key",
	}))

	require.ErrorIs(t, err, domain.ErrConstraintViolation)
	var constraint *domain.ConstraintError
	require.True(t, errors.As(err, &constraint))
	require.Equal(t, domain.ConstraintUnique, constraint.Kind)
	require.Equal(t, "username", constraint.Field)
	require.Equal(t, "username already exists", constraint.Error())
}

func TestClassifyForeignKeyViolation(t *testing.T) {
	err := classify(&pgconn.PgError{
		Code:           codeForeignKeyViolation,
		TableName:      "exercises",
		ConstraintName: "exercises_workout_id_fkey",
	})

	var constraint *domain.ConstraintError
	require.True(t, errors.As(err, &constraint))
	require.Equal(t, domain.ConstraintReference, constraint.Kind)
	require.Equal(t, "workoutId", constraint.Field)
}

func TestClassifyConnectionFailures(t *testing.T) {
	shutdown := classify(&pgconn.PgError{Code: "57P01"})
	require.ErrorIs(t, shutdown, domain.ErrStorageUnavailable)

	timeout := classify(context.DeadlineExceeded)
	require.ErrorIs(t, timeout, domain.ErrStorageUnavailable)
	require.ErrorIs(t, timeout, context.DeadlineExceeded)
}

func TestClassifyPassesThroughOtherErrors(t *testing.T) {
	other := errors.New("boom")
	require.Same(t, other, classify(other))
	require.NoError(t, classify(nil))

	syntax := &pgconn.PgError{Code: "42601"}
	require.Same(t, error(syntax), classify(syntax))
}

func TestSnakeToCamel(t *testing.T) {
	require.Equal(t, "displayName", snakeToCamel("display_name"))
	require.Equal(t, "email", snakeToCamel("email"))
}
