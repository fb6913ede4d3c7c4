package tasklists

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

// PostgresStore is the pgx-backed task list store.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore over the given pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

const listColumns = `id, title, description, created_by, created_at, updated_at`

func scanList(row pgx.Row) (*TaskList, error) {
	var list TaskList
	err := row.Scan(
		&list.ID,
		&list.Title,
		&list.Description,
		&list.CreatedBy,
		&list.CreatedAt,
		&list.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("failed to scan tasks list: %w", err)
	}
	return &list, nil
}

// Create inserts a new task list.
func (s *PostgresStore) Create(ctx context.Context, list *TaskList) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO task_lists (title, description, created_by)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		list.Title, list.Description, list.CreatedBy,
	).Scan(&list.ID, &list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrTitleTaken
		}
		return fmt.Errorf("failed to insert tasks list: %w", err)
	}
	return nil
}

// GetByID returns the non-deleted list with the given ID.
func (s *PostgresStore) GetByID(ctx context.Context, id int) (*TaskList, error) {
	query := `SELECT ` + listColumns + ` FROM task_lists WHERE id = $1 AND deleted_at IS NULL`
	return scanList(s.db.QueryRow(ctx, query, id))
}

// List returns all non-deleted lists, newest last.
func (s *PostgresStore) List(ctx context.Context) ([]TaskList, error) {
	query := `SELECT ` + listColumns + ` FROM task_lists WHERE deleted_at IS NULL ORDER BY id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks lists: %w", err)
	}
	defer rows.Close()

	lists := []TaskList{}
	for rows.Next() {
		var list TaskList
		if err := rows.Scan(&list.ID, &list.Title, &list.Description, &list.CreatedBy, &list.CreatedAt, &list.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tasks list: %w", err)
		}
		lists = append(lists, list)
	}
	return lists, rows.Err()
}

// ListTasks returns the non-deleted tasks belonging to the list.
func (s *PostgresStore) ListTasks(ctx context.Context, listID int) ([]TaskItem, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, title, description, done, created_by, created_at, updated_at
		 FROM tasks WHERE list_id = $1 AND deleted_at IS NULL ORDER BY id`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []TaskItem{}
	for rows.Next() {
		var t TaskItem
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Done, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update persists title and description changes.
func (s *PostgresStore) Update(ctx context.Context, list *TaskList) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE task_lists SET title = $1, description = $2, updated_at = now()
		 WHERE id = $3 AND deleted_at IS NULL`,
		list.Title, list.Description, list.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrTitleTaken
		}
		return fmt.Errorf("failed to update tasks list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrListNotFound
	}
	return nil
}

// SoftDelete marks the list and its tasks deleted in one transaction.
func (s *PostgresStore) SoftDelete(ctx context.Context, id int) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	tag, err := tx.Exec(ctx,
		`UPDATE task_lists SET deleted_at = now(), updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete tasks list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrListNotFound
	}

	_, err = tx.Exec(ctx,
		`UPDATE tasks SET deleted_at = now(), updated_at = now()
		 WHERE list_id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete tasks in list: %w", err)
	}

	return tx.Commit(ctx)
}

// CompleteAll marks every non-deleted task in the list done.
func (s *PostgresStore) CompleteAll(ctx context.Context, listID int) (int64, error) {
	tag, err := s.db.Exec(ctx,
		`UPDATE tasks SET done = TRUE, updated_at = now()
		 WHERE list_id = $1 AND deleted_at IS NULL AND done = FALSE`,
		listID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to complete tasks: %w", err)
	}
	return tag.RowsAffected(), nil
}
