package dto

import "github.com/golang-jwt/jwt/v5"

// AuthClaims defines the JWT payload: {userId, email}. The token kind
// (access vs refresh) is enforced by which signing secret verifies it.
type AuthClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenRequest is the body for POST /auth/refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UserPayload is the user representation returned to clients. It never
// carries the password hash.
type UserPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is returned from register and login.
type AuthResponse struct {
	User         UserPayload `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// RefreshResponse carries the re-issued access token. The refresh token is
// not rotated.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
