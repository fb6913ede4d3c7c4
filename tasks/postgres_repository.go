package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgForeignKeyViolation is the PostgreSQL error code for foreign key violations.
const pgForeignKeyViolation = "23503"

// PostgresStore is the pgx-backed task store.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore over the given pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts a new task.
func (s *PostgresStore) Create(ctx context.Context, task *Task) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO tasks (title, description, list_id, created_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, done, created_at, updated_at`,
		task.Title, task.Description, task.ListID, task.CreatedBy,
	).Scan(&task.ID, &task.Done, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrListNotFound
		}
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

// GetByID returns the non-deleted task joined with its owning list's creator.
func (s *PostgresStore) GetByID(ctx context.Context, id int) (*Task, error) {
	var task Task
	err := s.db.QueryRow(ctx,
		`SELECT t.id, t.title, t.description, t.done, t.list_id, t.created_by,
		        t.created_at, t.updated_at, l.created_by
		 FROM tasks t
		 JOIN task_lists l ON l.id = t.list_id
		 WHERE t.id = $1 AND t.deleted_at IS NULL`,
		id,
	).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Done,
		&task.ListID,
		&task.CreatedBy,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.ListOwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to scan task: %w", err)
	}
	return &task, nil
}

// ListOwner returns the creator of the non-deleted list.
func (s *PostgresStore) ListOwner(ctx context.Context, listID int) (int, error) {
	var owner int
	err := s.db.QueryRow(ctx,
		`SELECT created_by FROM task_lists WHERE id = $1 AND deleted_at IS NULL`,
		listID,
	).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrListNotFound
		}
		return 0, fmt.Errorf("failed to get list owner: %w", err)
	}
	return owner, nil
}

// Update persists title, description and list changes.
func (s *PostgresStore) Update(ctx context.Context, task *Task) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE tasks SET title = $1, description = $2, list_id = $3, updated_at = now()
		 WHERE id = $4 AND deleted_at IS NULL`,
		task.Title, task.Description, task.ListID, task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// SetDone marks the task done.
func (s *PostgresStore) SetDone(ctx context.Context, id int) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE tasks SET done = TRUE, updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark task done: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// SoftDelete marks the task deleted.
func (s *PostgresStore) SoftDelete(ctx context.Context, id int) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE tasks SET deleted_at = now(), updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}
