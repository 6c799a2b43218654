package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yigit/facultyhub/internal/app/models"
)

// SignUpRequest creates a login without a role. An administrator assigns the role later.
type SignUpRequest struct {
	Email     string `json:"email" binding:"required,email" example:"jane.doe@facultech.com"`
	Password  string `json:"password" binding:"required,min=6" example:"secret123"`
	FirstName string `json:"firstName" binding:"required,min=2,max=100" example:"Jane"`
	LastName  string `json:"lastName" binding:"required,min=2,max=100" example:"Doe"`
}

// SignInRequest represents login credentials. Role is optional: when present the stored role
// must match it, compared case-insensitively.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@facultech.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
	Role     string `json:"role,omitempty" example:"admin"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn" example:"3600"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty" example:"604800"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	LastSignInAt *time.Time `json:"lastSignInAt,omitempty"`
}

// NewUserResponse maps a user without its password hash
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		LastSignInAt: u.LastSignInAt,
	}
}

// AuthResponse represents a successful sign-in or token refresh
type AuthResponse struct {
	Token        TokenResponse   `json:"token"`
	User         UserResponse    `json:"user"`
	Role         models.RoleName `json:"role,omitempty" example:"faculty"`
	DepartmentID *uuid.UUID      `json:"departmentId,omitempty"`
	Redirect     string          `json:"redirect,omitempty" example:"/dashboard"`
}

// SessionResponse describes the session behind the current access token
type SessionResponse struct {
	SessionID    uuid.UUID       `json:"sessionId"`
	ExpiresAt    time.Time       `json:"expiresAt"`
	User         UserResponse    `json:"user"`
	Role         models.RoleName `json:"role,omitempty" example:"hod"`
	RoleLabel    string          `json:"roleLabel" example:"HOD"`
	DepartmentID *uuid.UUID      `json:"departmentId,omitempty"`
}

// SignOutResponse tells the client where to go after signing out
type SignOutResponse struct {
	Redirect string `json:"redirect" example:"/"`
}
