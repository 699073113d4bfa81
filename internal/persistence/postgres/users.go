package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
)

const selectUser = `SELECT id, username, password, display_name, email, weight, height, avatar_url FROM users`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.DisplayName, &u.Email, &u.Weight, &u.Height, &u.AvatarURL)
	return u, err
}

// CreateUser implements domain.UserStore.
func (r *Repository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	const stmt = `INSERT INTO users (username, password, display_name, email, weight, height, avatar_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, username, password, display_name, email, weight, height, avatar_url`

	return queryOne(ctx, r.pool, scanUser, stmt,
		user.Username,
		user.Password,
		user.DisplayName,
		user.Email,
		user.Weight,
		user.Height,
		user.AvatarURL,
	)
}

// GetUser implements domain.UserStore.
func (r *Repository) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return queryOne(ctx, r.pool, scanUser, selectUser+" WHERE id=$1", id)
}

// GetUserByUsername implements domain.UserStore.
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return queryOne(ctx, r.pool, scanUser, selectUser+" WHERE username=$1", username)
}

// UpdateUser implements domain.UserStore.
func (r *Repository) UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	return updateRecord(ctx, r.pool, scanUser, selectUser, id, func(tx pgx.Tx, current domain.User) (domain.User, error) {
		u := patch.Apply(current)
		const stmt = `UPDATE users SET username=$2, password=$3, display_name=$4, email=$5, weight=$6, height=$7, avatar_url=$8
            WHERE id=$1
            RETURNING id, username, password, display_name, email, weight, height, avatar_url`
		return scanUser(tx.QueryRow(ctx, stmt, id, u.Username, u.Password, u.DisplayName, u.Email, u.Weight, u.Height, u.AvatarURL))
	})
}

// DeleteUser implements domain.UserStore.
func (r *Repository) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "users", id)
}
