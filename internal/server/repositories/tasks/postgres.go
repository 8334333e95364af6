// Package tasks provides the PostgreSQL-backed repository for task records.
// All queries are filtered by the owning user id, so "not found" and "not
// yours" are indistinguishable at this layer and above.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/akarpov87/taskkeep/internal/common"
	"github.com/akarpov87/taskkeep/internal/dbx"
	"github.com/akarpov87/taskkeep/internal/server/models"
)

// PostgresRepository implements task storage over *sql.DB. It needs the full
// handle (not just dbx.DBTX) because Update runs inside its own transaction.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository constructs a repository bound to the given database.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const taskColumns = `id, user_id, title, description, status, created_at, updated_at`

func scanTask(row *sql.Row) (*models.Task, error) {
	t := &models.Task{}
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListByUser returns the user's tasks, most recently created first. An empty
// result is a normal state and yields an empty slice, not an error.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	query := `
		SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		t := &models.Task{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Create inserts a new task stamped with the owner already set by the caller.
func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}

	query := `
		INSERT INTO tasks (id, user_id, title, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description, task.Status).
		Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Update applies a partial patch inside a transaction: the row is locked with
// FOR UPDATE, merged with the patch, and written back. Per-record
// read-modify-write is therefore serialized against concurrent mutations.
func (r *PostgresRepository) Update(ctx context.Context, userID, taskID string, patch Patch) (*models.Task, error) {
	var updated *models.Task

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		selectQuery := `
			SELECT ` + taskColumns + ` FROM tasks
			WHERE id = $1 AND user_id = $2
			FOR UPDATE
		`

		current, err := scanTask(tx.QueryRowContext(ctx, selectQuery, taskID, userID))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("db error: %w", err)
		}

		if patch.Title != nil {
			current.Title = *patch.Title
		}
		if patch.Description != nil {
			current.Description = *patch.Description
		}
		if patch.Status != nil {
			current.Status = *patch.Status
		}

		updateQuery := `
			UPDATE tasks
			SET title = $1, description = $2, status = $3, updated_at = now()
			WHERE id = $4 AND user_id = $5
			RETURNING updated_at
		`

		err = tx.QueryRowContext(ctx, updateQuery,
			current.Title, current.Description, current.Status, taskID, userID).
			Scan(&current.UpdatedAt)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Toggle flips the status in a single conditional UPDATE, so two concurrent
// toggles serialize on the row instead of both reading the same old value.
func (r *PostgresRepository) Toggle(ctx context.Context, userID, taskID string) (*models.Task, error) {
	query := `
		UPDATE tasks
		SET status = CASE WHEN status = 'pending' THEN 'completed' ELSE 'pending' END,
		    updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + taskColumns + `
	`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, taskID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Delete removes the task if it belongs to userID. Returns an error for DB
// failures or unexpected rows affected.
func (r *PostgresRepository) Delete(ctx context.Context, userID, taskID string) error {
	query := `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
