package auth

import "time"

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Username        string `json:"username" example:"alice"`
	Password        string `json:"password" example:"strongpassword123"`
	ConfirmPassword string `json:"confirm_password" example:"strongpassword123"`
}

// RegisterResponse is returned on successful registration. It carries the
// confirmation token the client must present to activate the account; there
// is no other delivery channel. The password digest stays hidden.
type RegisterResponse struct {
	ID                int       `json:"id" example:"1"`
	Username          string    `json:"username" example:"alice"`
	Confirmed         bool      `json:"confirmed" example:"false"`
	ConfirmationToken string    `json:"confirmation_token" example:"9f2b9a44-7d36-4a28-93a1-8b1f8e2a9f00"`
	CreatedAt         time.Time `json:"created_at"`
}

// AuthenticateRequest represents the login request payload.
type AuthenticateRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"strongpassword123"`
}

// TokenResponse is returned to the client upon successful authentication.
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"1800"`
}

// ConfirmResponse reports the outcome of an account confirmation.
type ConfirmResponse struct {
	Message string `json:"message" example:"user alice confirmed"`
}
