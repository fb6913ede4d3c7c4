package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/taskhub-go/apperror"
)

func newTestService(store UserStore) *AuthService {
	return NewAuthService(store, NewTokenIssuer("test-secret"), 30*time.Minute)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username:        "alice",
		Password:        "secret1",
		ConfirmPassword: "secret2",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPasswordMismatch))
	assert.Equal(t, 0, store.count(), "no identity may be created on mismatch")
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Username:        "alice",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	assert.False(t, user.Confirmed, "new identities start unconfirmed")
	assert.NotEmpty(t, user.ConfirmationToken)
	assert.NotEqual(t, "secret1", user.HashedPassword)
	require.Len(t, store.seededLists, 1)
	assert.Equal(t, "alice's default task list", store.seededLists[0])
}

func TestRegister_UsernameTaken(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store)

	req := RegisterRequest{Username: "alice", Password: "secret1", ConfirmPassword: "secret1"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	assert.True(t, errors.Is(err, ErrUsernameTaken))
}

// seedCollisionStore simulates the default-list title already being held by
// a non-deleted list.
type seedCollisionStore struct {
	*fakeUserStore
}

func (s *seedCollisionStore) Create(ctx context.Context, user *User, defaultListTitle string) error {
	return ErrListTitleTaken
}

func TestRegister_SeedTitleTaken(t *testing.T) {
	t.Parallel()

	svc := newTestService(&seedCollisionStore{newFakeUserStore()})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username:        "bob",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err), "a title collision is a conflict, not a server fault")
	assert.True(t, errors.Is(err, ErrListTitleTaken))
}

func TestConfirm_TwiceIsIdempotentButReported(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Username:        "alice",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)

	status, confirmed, err := svc.Confirm(context.Background(), user.ConfirmationToken)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)
	assert.True(t, confirmed.Confirmed)

	// The repeat reports a distinct outcome without mutating anything.
	status, _, err = svc.Confirm(context.Background(), user.ConfirmationToken)
	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyConfirmed, status)

	stored, err := store.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, stored.Confirmed)
}

func TestConfirm_UnknownToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeUserStore())

	_, _, err := svc.Confirm(context.Background(), "no-such-token")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

// TestAuthenticate_Lifecycle walks the full account lifecycle: register,
// authenticate too early, confirm, authenticate, then fail with a wrong
// password.
func TestAuthenticate_Lifecycle(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterRequest{
		Username:        "alice",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)

	// Authentication before confirmation is rejected.
	_, err = svc.Authenticate(ctx, AuthenticateRequest{Username: "alice", Password: "secret1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConfirmed))
	assert.True(t, apperror.IsAuthError(err))

	status, _, err := svc.Confirm(ctx, user.ConfirmationToken)
	require.NoError(t, err)
	require.Equal(t, StatusConfirmed, status)

	resp, err := svc.Authenticate(ctx, AuthenticateRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int64(1800), resp.ExpiresIn)

	// The minted credential resolves back to the subject.
	subject, err := NewTokenIssuer("test-secret").Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	_, err = svc.Authenticate(ctx, AuthenticateRequest{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadPassword))
	assert.True(t, apperror.IsAuthError(err))
}

// TestAuthenticate_NoUsernameProbe checks that an unknown username and a
// wrong password are indistinguishable at the response surface.
func TestAuthenticate_NoUsernameProbe(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterRequest{
		Username:        "alice",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	_, _, err = svc.Confirm(ctx, user.ConfirmationToken)
	require.NoError(t, err)

	_, unknownErr := svc.Authenticate(ctx, AuthenticateRequest{Username: "nobody", Password: "secret1"})
	_, badPassErr := svc.Authenticate(ctx, AuthenticateRequest{Username: "alice", Password: "wrong"})
	require.Error(t, unknownErr)
	require.Error(t, badPassErr)

	// Distinct causes underneath, identical category and message on the surface.
	assert.True(t, errors.Is(unknownErr, ErrUserNotFound))
	assert.True(t, errors.Is(badPassErr, ErrBadPassword))

	unknownApp, ok := apperror.FromError(unknownErr)
	require.True(t, ok)
	badPassApp, ok := apperror.FromError(badPassErr)
	require.True(t, ok)
	assert.Equal(t, unknownApp.StatusCode(), badPassApp.StatusCode())
	assert.Equal(t, unknownApp.ToResponse(), badPassApp.ToResponse())
}
