package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
)

const (
	nutritionColumns = `id, user_id, date, calories, protein, carbs, fat, notes`
	selectNutrition  = `SELECT ` + nutritionColumns + ` FROM nutrition_entries`
)

func scanNutritionEntry(row pgx.Row) (domain.NutritionEntry, error) {
	var e domain.NutritionEntry
	err := row.Scan(&e.ID, &e.UserID, &e.Date, &e.Calories, &e.Protein, &e.Carbs, &e.Fat, &e.Notes)
	e.Date = utc(e.Date)
	return e, err
}

// CreateNutritionEntry implements domain.NutritionEntryStore.
func (r *Repository) CreateNutritionEntry(ctx context.Context, entry domain.NutritionEntry) (*domain.NutritionEntry, error) {
	const stmt = `INSERT INTO nutrition_entries (user_id, date, calories, protein, carbs, fat, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING ` + nutritionColumns

	return queryOne(ctx, r.pool, scanNutritionEntry, stmt,
		entry.UserID,
		utc(entry.Date),
		entry.Calories,
		entry.Protein,
		entry.Carbs,
		entry.Fat,
		entry.Notes,
	)
}

// GetNutritionEntry implements domain.NutritionEntryStore.
func (r *Repository) GetNutritionEntry(ctx context.Context, id int64) (*domain.NutritionEntry, error) {
	return queryOne(ctx, r.pool, scanNutritionEntry, selectNutrition+" WHERE id=$1", id)
}

// ListNutritionEntriesByUser implements domain.NutritionEntryStore.
func (r *Repository) ListNutritionEntriesByUser(ctx context.Context, userID int64) ([]domain.NutritionEntry, error) {
	return queryAll(ctx, r.pool, scanNutritionEntry, selectNutrition+" WHERE user_id=$1 ORDER BY date DESC, id DESC", userID)
}

// UpdateNutritionEntry implements domain.NutritionEntryStore.
func (r *Repository) UpdateNutritionEntry(ctx context.Context, id int64, patch domain.NutritionEntryPatch) (*domain.NutritionEntry, error) {
	return updateRecord(ctx, r.pool, scanNutritionEntry, selectNutrition, id, func(tx pgx.Tx, current domain.NutritionEntry) (domain.NutritionEntry, error) {
		e := patch.Apply(current)
		const stmt = `UPDATE nutrition_entries SET user_id=$2, date=$3, calories=$4, protein=$5, carbs=$6, fat=$7, notes=$8
            WHERE id=$1
            RETURNING ` + nutritionColumns
		return scanNutritionEntry(tx.QueryRow(ctx, stmt, id, e.UserID, utc(e.Date), e.Calories, e.Protein, e.Carbs, e.Fat, e.Notes))
	})
}

// DeleteNutritionEntry implements domain.NutritionEntryStore.
func (r *Repository) DeleteNutritionEntry(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "nutrition_entries", id)
}
