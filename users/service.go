package users

import (
	"context"

	"github.com/user/taskhub-go/apperror"
	"github.com/user/taskhub-go/auth"
)

// Service provides user read operations.
type Service struct {
	store Store
}

// NewService creates a new user Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns every non-deleted user. Password digests and confirmation
// tokens are never loaded, let alone serialized.
func (s *Service) List(ctx context.Context) ([]auth.User, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	return list, nil
}
