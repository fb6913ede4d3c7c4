package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures are categorized so callers can surface
// expiry distinctly from every other defect.
var (
	// ErrTokenExpired is returned when the credential's expiry instant has passed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid is returned when the signature does not verify or the
	// token is structurally malformed.
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenIssuer mints and verifies bearer credentials. Tokens are compact,
// HS256-signed JWTs carrying a single subject claim (the username) and an
// expiry instant. They are stateless: verification needs only the signature
// and the clock, no server-side session. The signing secret is process-wide
// configuration, read-only after startup, so a single issuer is safe to share
// across request goroutines.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer creates a TokenIssuer signing with the given secret.
func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue mints a signed credential for the subject, expiring validity from
// now. Validity is a required parameter: there is no fallback lifetime.
func (ti *TokenIssuer) Issue(subject string, validity time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify checks the credential's signature and expiry and returns the subject
// claim. It fails with ErrTokenExpired once the current instant is at or past
// the embedded expiry, and with ErrTokenInvalid for every other defect. No
// issuer or audience validation is performed.
func (ti *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return ti.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
