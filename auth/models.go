// Package auth is responsible for authentication and authorization: password
// hashing, bearer credential issuance and verification, resolving credentials
// to stored identities, and the resource ownership policy.
package auth

import "time"

// User represents an identity in the system. The hashed password is never
// serialized; the confirmation token is excluded here and surfaced exactly
// once, in the registration response.
type User struct {
	ID                int        `json:"id"`
	Username          string     `json:"username"`
	HashedPassword    string     `json:"-"`
	ConfirmationToken string     `json:"-"`
	Confirmed         bool       `json:"confirmed"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	DeletedAt         *time.Time `json:"-"`
}
