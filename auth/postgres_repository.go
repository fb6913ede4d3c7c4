package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// PostgresUserStore is the pgx-backed UserStore.
type PostgresUserStore struct {
	db *pgxpool.Pool
}

// NewPostgresUserStore creates a PostgresUserStore over the given pool.
func NewPostgresUserStore(db *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

// Create inserts the identity and seeds its default task list in a single
// transaction so a failed seed rolls the identity back too.
func (s *PostgresUserStore) Create(ctx context.Context, user *User, defaultListTitle string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, hashed_password, confirmation_token)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		user.Username, user.HashedPassword, user.ConfirmationToken,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO task_lists (title, description, created_by) VALUES ($1, NULL, $2)`,
		defaultListTitle, user.ID,
	)
	if err != nil {
		// The title collides with an existing non-deleted list, which a user
		// can arrange by creating a list named like a seed title.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrListTitleTaken
		}
		return fmt.Errorf("failed to seed default task list: %w", err)
	}

	return tx.Commit(ctx)
}

const userColumns = `id, username, hashed_password, confirmation_token, confirmed, created_at, updated_at`

func (s *PostgresUserStore) scanUser(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.HashedPassword,
		&user.ConfirmationToken,
		&user.Confirmed,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

// GetByUsername returns the non-deleted identity with the given username.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND deleted_at IS NULL`
	return s.scanUser(s.db.QueryRow(ctx, query, username))
}

// GetByConfirmationToken returns the non-deleted identity holding the token.
func (s *PostgresUserStore) GetByConfirmationToken(ctx context.Context, token string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE confirmation_token = $1 AND deleted_at IS NULL`
	return s.scanUser(s.db.QueryRow(ctx, query, token))
}

// MarkConfirmed flips the confirmed flag on the identity.
func (s *PostgresUserStore) MarkConfirmed(ctx context.Context, id int) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET confirmed = TRUE, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to confirm user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
