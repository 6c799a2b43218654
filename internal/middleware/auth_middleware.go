package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/auth"
)

const principalKey = "principal"

// SessionValidator confirms that the session behind an access token is still usable and
// resolves the role currently stored for its user
type SessionValidator interface {
	ValidateSession(ctx context.Context, sessionID, userID uuid.UUID) (*models.Session, error)
	ResolveRole(ctx context.Context, userID uuid.UUID) (*models.UserRole, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	sessions   SessionValidator
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, sessions SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, details string) {
	errorDetail := dto.NewErrorDetail(code, "Authentication required").WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail).
		WithNotification(models.Failure("Authentication required", details)))
}

// tokenFromRequest reads the bearer token from the Authorization header. Browsers cannot set
// headers on websocket upgrades, so the token query parameter is accepted as well.
func tokenFromRequest(c *gin.Context) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		return auth.ExtractBearerToken(strings.Trim(header, `"'`))
	}
	if token := c.Query("token"); token != "" {
		return token, nil
	}
	return "", apperrors.ErrTokenNotFound
}

// JWTAuth validates the access token and its session, then stores the Principal with the
// stored role in the context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := tokenFromRequest(c)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authorization header missing or malformed")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		if _, err := m.sessions.ValidateSession(c.Request.Context(), claims.SessionID, claims.UserID); err != nil {
			switch {
			case errors.Is(err, apperrors.ErrSessionRevoked), errors.Is(err, apperrors.ErrSessionNotFound):
				abortUnauthorized(c, dto.ErrorCodeSessionRevoked, "Your session has ended. Please sign in again.")
			case errors.Is(err, apperrors.ErrSessionExpired):
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Your session has expired. Please sign in again.")
			default:
				HandleAPIError(c, err)
				c.Abort()
			}
			return
		}

		// The role claim is only a hint for clients; a role changed after sign-in applies immediately
		var role models.RoleName
		ur, err := m.sessions.ResolveRole(c.Request.Context(), claims.UserID)
		switch {
		case err == nil:
			role = ur.RoleName
		case errors.Is(err, apperrors.ErrNoRoleAssigned):
		default:
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(principalKey, models.Principal{
			UserID:    claims.UserID,
			SessionID: claims.SessionID,
			Email:     claims.Email,
			Role:      role,
		})
		c.Next()
	}
}

// GetPrincipal returns the caller stored by JWTAuth
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}

// RoleRequired allows the request through when the caller holds one of roles
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "User information not found")
			return
		}

		if !principal.HasRole(roles...) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
				WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail).
				WithNotification(models.Failure("Access denied", "You don't have sufficient permissions for this operation")))
			return
		}

		c.Next()
	}
}
