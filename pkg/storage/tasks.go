package storage

import (
	"context"

	"github.com/chris/points-ledger/pkg/models"
)

// TaskReader defines the interface for reading tasks.
type TaskReader interface {
	// GetTask retrieves a task by its ID. Returns ErrTaskNotFound if absent.
	GetTask(ctx context.Context, taskID string) (*models.Task, error)

	// ListTasks retrieves all tasks, newest first.
	ListTasks(ctx context.Context) ([]models.Task, error)
}

// TaskStore defines the interface for administering tasks.
type TaskStore interface {
	TaskReader

	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)

	// UpdateTask replaces the editable fields of a task. Existing progress records are left untouched.
	UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error)

	DeleteTask(ctx context.Context, taskID string) error
}
