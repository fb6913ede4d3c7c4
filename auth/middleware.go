package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/user/taskhub-go/apperror"
)

// Errors produced by the access gate.
var (
	// ErrMissingCredential is returned when no Authorization header is present.
	ErrMissingCredential = errors.New("authorization header is missing")
	// ErrUnknownSubject is returned when a verified token's subject matches no
	// stored identity. It is an authorization failure, not a server fault.
	ErrUnknownSubject = errors.New("token subject does not match any user")
)

// ExtractToken reads the bearer credential out of an Authorization header
// value. The header may carry either the raw token or a "Scheme token" pair;
// the value is split on the first space and the second part is taken when
// present. The scheme word is deliberately not inspected, for compatibility
// with clients that send nonstandard prefixes.
func ExtractToken(headerValue string) (string, error) {
	if headerValue == "" {
		return "", ErrMissingCredential
	}
	if _, after, found := strings.Cut(headerValue, " "); found {
		return after, nil
	}
	return headerValue, nil
}

// Gate is the single choke point through which every protected operation
// passes. It extracts the bearer credential, verifies it, resolves the
// subject claim to a persisted identity, and exposes that identity to
// downstream handlers via the request context.
type Gate struct {
	issuer *TokenIssuer
	store  UserStore
}

// NewGate creates an access gate over the given issuer and user store.
func NewGate(issuer *TokenIssuer, store UserStore) *Gate {
	return &Gate{issuer: issuer, store: store}
}

// Resolve verifies the token and looks up the identity named by its subject
// claim.
func (g *Gate) Resolve(ctx context.Context, token string) (*User, error) {
	subject, err := g.issuer.Verify(token)
	if err != nil {
		return nil, err
	}
	user, err := g.store.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUnknownSubject
		}
		return nil, err
	}
	return user, nil
}

// Authorize runs the full gate on a raw Authorization header value and
// returns the resolved identity. Failures are categorized coarsely: the
// response reveals expired vs invalid, never which internal check failed.
func (g *Gate) Authorize(ctx context.Context, headerValue string) (*User, error) {
	token, err := ExtractToken(headerValue)
	if err != nil {
		return nil, apperror.NewAuthError("authorization header is missing", err)
	}
	user, err := g.Resolve(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, ErrTokenExpired):
			return nil, apperror.NewAuthError("token has expired", err)
		case errors.Is(err, ErrTokenInvalid):
			return nil, apperror.NewAuthError("invalid token", err)
		case errors.Is(err, ErrUnknownSubject):
			return nil, apperror.NewAuthError("invalid token", err)
		default:
			return nil, apperror.NewDatabaseError("failed to resolve user", err)
		}
	}
	return user, nil
}

// Middleware returns the chi-compatible middleware form of the gate. The
// resolved identity is stored in the request context for handlers.
func (g *Gate) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := g.Authorize(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				WriteError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(NewContextWithUser(r.Context(), user)))
		})
	}
}
