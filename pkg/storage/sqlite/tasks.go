package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
)

const taskCols = `id, title, description, category, required_count, starts_at, ends_at, reward_points, created_at, updated_at`

func scanTask(row scanner) (*models.Task, error) {
	var t models.Task
	var startsAt, endsAt, createdAt, updatedAt int64
	err := row.Scan(&t.Id, &t.Title, &t.Description, &t.Category, &t.RequiredCount,
		&startsAt, &endsAt, &t.RewardPoints, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	t.StartsAt = fromMillis(startsAt)
	t.EndsAt = fromMillis(endsAt)
	t.CreatedAt = fromMillis(createdAt)
	t.UpdatedAt = fromMillis(updatedAt)
	return &t, nil
}

func (s *Store) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.Id, task.Title, task.Description, task.Category, task.RequiredCount,
		toMillis(task.StartsAt), toMillis(task.EndsAt), task.RewardPoints, toMillis(task.CreatedAt), toMillis(task.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("task %s: %w", task.Id, storage.ErrAlreadyExists)
		}
		return nil, queryErr("insert task", err)
	}
	return task, nil
}

func (s *Store) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	t, err := scanTask(s.db.QueryRowContext(ctx, `SELECT `+taskCols+` FROM tasks WHERE id = ?`, taskID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %s: %w", taskID, storage.ErrTaskNotFound)
	}
	if err != nil {
		return nil, queryErr("get task", err)
	}
	return t, nil
}

// UpdateTask rewrites the editable fields. Progress rows are not touched.
func (s *Store) UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, category = ?, required_count = ?,
		        starts_at = ?, ends_at = ?, reward_points = ?, updated_at = ?
		 WHERE id = ?`,
		task.Title, task.Description, task.Category, task.RequiredCount,
		toMillis(task.StartsAt), toMillis(task.EndsAt), task.RewardPoints, toMillis(task.UpdatedAt), task.Id,
	)
	if err != nil {
		return nil, queryErr("update task", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, queryErr("update task", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("task %s: %w", task.Id, storage.ErrTaskNotFound)
	}
	return s.GetTask(ctx, task.Id)
}

func (s *Store) DeleteTask(ctx context.Context, taskID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, taskID)
	if err != nil {
		return queryErr("delete task", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return queryErr("delete task", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", taskID, storage.ErrTaskNotFound)
	}
	return nil
}

// ListTasks returns all tasks, newest first.
func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+taskCols+` FROM tasks ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, queryErr("list tasks", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, queryErr("scan task", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}
