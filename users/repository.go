// Package users exposes read-only user endpoints: the directory listing and
// the authenticated caller's profile.
package users

import (
	"context"

	"github.com/user/taskhub-go/auth"
)

// Store is the persistence collaborator for user reads.
type Store interface {
	// List returns all non-deleted users.
	List(ctx context.Context) ([]auth.User, error)
}
