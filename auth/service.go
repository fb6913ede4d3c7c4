package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/user/taskhub-go/apperror"
)

// Sentinel errors distinguishing authentication outcomes internally. The
// HTTP surface collapses ErrUserNotFound and ErrBadPassword into one
// "invalid credentials" response so callers cannot probe which usernames
// exist; the sentinels stay distinct underneath for tests and logs.
var (
	// ErrPasswordMismatch is returned when password and its confirmation differ.
	ErrPasswordMismatch = errors.New("passwords must match")
	// ErrBadPassword is returned when the password does not verify.
	ErrBadPassword = errors.New("incorrect password")
	// ErrNotConfirmed is returned when an unconfirmed identity attempts to authenticate.
	ErrNotConfirmed = errors.New("user not confirmed")
)

// ConfirmationStatus is the outcome of presenting a confirmation token.
// Confirmation is a two-state machine: an identity starts Unconfirmed and
// transitions to Confirmed exactly once. Re-presenting the token is not an
// error; it reports a distinct "already confirmed" outcome without mutating
// anything.
type ConfirmationStatus int

const (
	// StatusConfirmed reports the Unconfirmed -> Confirmed transition.
	StatusConfirmed ConfirmationStatus = iota + 1
	// StatusAlreadyConfirmed reports an idempotent repeat confirmation.
	StatusAlreadyConfirmed
)

// AuthService implements registration, confirmation and authentication over
// an injected UserStore and TokenIssuer. It holds no mutable state of its
// own; every operation runs independently per request.
type AuthService struct {
	store         UserStore
	issuer        *TokenIssuer
	tokenValidity time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, issuer *TokenIssuer, tokenValidity time.Duration) *AuthService {
	return &AuthService{
		store:         store,
		issuer:        issuer,
		tokenValidity: tokenValidity,
	}
}

// DefaultListTitle is the title of the task list seeded at registration.
func DefaultListTitle(username string) string {
	return fmt.Sprintf("%s's default task list", username)
}

// Register creates a new unconfirmed identity with a fresh random
// confirmation token and its default task list. No identity is created when
// the password confirmation does not match.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperror.NewBadRequestError("passwords must match", ErrPasswordMismatch)
	}

	digest, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Username:          req.Username,
		HashedPassword:    digest,
		ConfirmationToken: uuid.NewString(),
	}

	if err := s.store.Create(ctx, user, DefaultListTitle(req.Username)); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return nil, apperror.NewConflictError("username already exists", ErrUsernameTaken)
		}
		if errors.Is(err, ErrListTitleTaken) {
			return nil, apperror.NewConflictError("default task list title already exists", err)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return user, nil
}

// Confirm transitions the identity holding the token to Confirmed, or
// reports StatusAlreadyConfirmed when the transition already happened.
func (s *AuthService) Confirm(ctx context.Context, token string) (ConfirmationStatus, *User, error) {
	user, err := s.store.GetByConfirmationToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return 0, nil, apperror.NewNotFoundError("user not found", ErrUserNotFound)
		}
		return 0, nil, apperror.NewDatabaseError("failed to look up confirmation token", err)
	}

	if user.Confirmed {
		return StatusAlreadyConfirmed, user, nil
	}

	if err := s.store.MarkConfirmed(ctx, user.ID); err != nil {
		return 0, nil, apperror.NewDatabaseError("failed to confirm user", err)
	}
	user.Confirmed = true
	return StatusConfirmed, user, nil
}

// Authenticate verifies the credentials and mints a bearer credential for
// the identity. Unknown usernames and wrong passwords surface as the same
// "invalid credentials" failure.
func (s *AuthService) Authenticate(ctx context.Context, req AuthenticateRequest) (*TokenResponse, error) {
	user, err := s.store.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperror.NewAuthError("invalid credentials", ErrUserNotFound)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if !CheckPassword(req.Password, user.HashedPassword) {
		return nil, apperror.NewAuthError("invalid credentials", ErrBadPassword)
	}

	if !user.Confirmed {
		return nil, apperror.NewAuthError("user not confirmed", ErrNotConfirmed)
	}

	token, err := s.issuer.Issue(user.Username, s.tokenValidity)
	if err != nil {
		return nil, apperror.NewInternalError("failed to sign token", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokenValidity.Seconds()),
	}, nil
}
