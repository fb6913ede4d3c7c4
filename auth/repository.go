package auth

import (
	"context"
	"errors"
)

// Sentinel errors returned by UserStore implementations and refined by the
// service layer before they reach handlers.
var (
	// ErrUserNotFound is returned when no matching non-deleted identity exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when a username collides with a non-deleted identity.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrListTitleTaken is returned when the seeded default task list's title
	// collides with a non-deleted list.
	ErrListTitleTaken = errors.New("default task list title already exists")
)

// UserStore is the persistence collaborator for identities. Implementations
// must never return soft-deleted rows.
type UserStore interface {
	// Create persists a new identity together with its seeded default task
	// list in one transaction, filling in the generated ID and timestamps.
	// Returns ErrUsernameTaken on a username collision and ErrListTitleTaken
	// when the seeded list's title collides with an existing list.
	Create(ctx context.Context, user *User, defaultListTitle string) error
	// GetByUsername returns the identity with the given username, or
	// ErrUserNotFound.
	GetByUsername(ctx context.Context, username string) (*User, error)
	// GetByConfirmationToken returns the identity with the given confirmation
	// token, or ErrUserNotFound.
	GetByConfirmationToken(ctx context.Context, token string) (*User, error)
	// MarkConfirmed transitions the identity to confirmed. Idempotence is the
	// caller's concern; the store just flips the flag.
	MarkConfirmed(ctx context.Context, id int) error
}
