package services

import (
	"context"
	"errors"
	"strings"

	"github.com/akarpov87/taskkeep/internal/common"
	"github.com/akarpov87/taskkeep/internal/server/models"
	"github.com/akarpov87/taskkeep/internal/server/repositories/tasks"
)

type TaskService struct {
	repo tasks.Repository
}

func NewTaskService(repo tasks.Repository) *TaskService {
	return &TaskService{repo: repo}
}

// List returns the caller's tasks, newest first.
func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}

// Create stamps the owner unconditionally; a caller cannot create a task on
// another account's behalf.
func (s *TaskService) Create(ctx context.Context, userID, title, description string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.ErrorValidation
	}

	task := &models.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      models.TaskStatusPending,
	}

	task, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return task, nil
}

// Update applies a partial patch to an owned task.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, patch tasks.Patch) (*models.Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, common.ErrorValidation
	}
	if patch.Status != nil && !models.ValidTaskStatus(*patch.Status) {
		return nil, common.ErrorValidation
	}

	task, err := s.repo.Update(ctx, userID, taskID, patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return task, nil
}

// Toggle flips the status of an owned task between pending and completed.
func (s *TaskService) Toggle(ctx context.Context, userID, taskID string) (*models.Task, error) {
	task, err := s.repo.Toggle(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return task, nil
}

// Delete removes an owned task. A repeated delete reports not-found, same as
// a task that never existed.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	err := s.repo.Delete(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}
