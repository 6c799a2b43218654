package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a persisted sign-in. It is created on sign-in, rotated on refresh and
// revoked on sign-out or when a requested role fails verification.
type Session struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	UserID       uuid.UUID  `json:"userId" db:"user_id"`
	RefreshToken string     `json:"-" db:"refresh_token"`
	UserAgent    string     `json:"userAgent,omitempty" db:"user_agent"`
	IPAddress    string     `json:"ipAddress,omitempty" db:"ip_address"`
	ExpiresAt    time.Time  `json:"expiresAt" db:"expires_at"`
	RevokedAt    *time.Time `json:"revokedAt,omitempty" db:"revoked_at"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}

// IsActive reports whether the session can still authenticate requests
func (s *Session) IsActive(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// Principal is the authenticated caller of a request, derived from the access token
// and carried through gin and request contexts.
type Principal struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
	Email     string
	Role      RoleName
}

// HasRole reports whether the principal holds any of roles
func (p Principal) HasRole(roles ...RoleName) bool {
	for _, r := range roles {
		if p.Role.Matches(r) {
			return true
		}
	}
	return false
}
