package tasks

import (
	"context"

	"github.com/akarpov87/taskkeep/internal/server/models"
)

// Patch describes a partial update. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	Status      *string
}

// Repository is the ownership-scoped task store. Every operation below takes
// the caller's user id; a task belonging to someone else behaves exactly like
// a missing task.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Update(ctx context.Context, userID, taskID string, patch Patch) (*models.Task, error)
	Toggle(ctx context.Context, userID, taskID string) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}
