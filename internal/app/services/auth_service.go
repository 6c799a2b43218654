package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/repositories"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/auth"
	"github.com/yigit/facultyhub/internal/pkg/email"
	"github.com/yigit/facultyhub/internal/pkg/validation"
)

// DashboardPath is where clients go after signing in
const DashboardPath = "/dashboard"

// ClientMeta identifies the client a session was opened from
type ClientMeta struct {
	UserAgent string
	IPAddress string
}

// AuthService handles authentication and the session lifecycle
type AuthService struct {
	userRepo     repositories.IUserRepository
	sessionRepo  repositories.ISessionRepository
	roleRepo     repositories.IRoleRepository
	jwtService   *auth.JWTService
	emailService email.EmailService
	logger       zerolog.Logger
	now          func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	sessionRepo repositories.ISessionRepository,
	roleRepo repositories.IRoleRepository,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		roleRepo:     roleRepo,
		jwtService:   jwtService,
		emailService: emailService,
		logger:       logger,
		now:          time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateEmail validates an email address
func (s *AuthService) validateEmail(email string) error {
	if email == "" {
		return apperrors.NewValidationError("email cannot be empty")
	}
	if !validation.CompiledPatterns.Email.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}
	return nil
}

// validatePassword checks if password meets requirements
func (s *AuthService) validatePassword(password string) error {
	if len(password) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters long", apperrors.ErrInvalidPassword, validation.PasswordMinLength)
	}
	return nil
}

// SignUp creates a user without a role
func (s *AuthService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*models.User, error) {
	emailAddr := normalizeEmail(req.Email)
	if err := s.validateEmail(emailAddr); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.EmailExists(ctx, emailAddr)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        emailAddr,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("user creation error: %w", err)
	}

	if err := s.emailService.SendWelcomeEmail(user.Email, user.FullName()); err != nil {
		s.logger.Warn().Err(err).Str("userID", user.ID.String()).Msg("Welcome email could not be sent")
	}

	s.logger.Info().Str("userID", user.ID.String()).Msg("User signed up")
	return user, nil
}

// SignIn authenticates a user and opens a session. When requestedRole is non-empty the stored
// role must match it; otherwise the session is revoked and the sign-in rejected.
func (s *AuthService) SignIn(ctx context.Context, emailAddr, password, requestedRole string, meta ClientMeta) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(emailAddr))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	session, err := s.openSession(ctx, user.ID, meta)
	if err != nil {
		return nil, err
	}

	requested := strings.TrimSpace(requestedRole)
	userRole, err := s.roleRepo.GetUserRole(ctx, user.ID)
	if err != nil {
		if requested != "" {
			s.revokeSession(ctx, session.ID, "role lookup failed")
			s.logger.Warn().Err(err).Str("userID", user.ID.String()).Msg("Role lookup failed during sign-in")
			return nil, apperrors.NewCustomError(apperrors.ErrRoleLookupFailed, "Unable to verify user role. Please contact support.")
		}
		if !errors.Is(err, apperrors.ErrNoRoleAssigned) {
			s.logger.Warn().Err(err).Str("userID", user.ID.String()).Msg("Role lookup failed, continuing without role")
		}
		userRole = nil
	}

	var role models.RoleName
	var departmentID *uuid.UUID
	if userRole != nil {
		role = userRole.RoleName
		departmentID = userRole.DepartmentID
	}

	if requested != "" && !role.Matches(models.RoleName(requested)) {
		s.revokeSession(ctx, session.ID, "role mismatch")
		s.logger.Info().
			Str("userID", user.ID.String()).
			Str("requestedRole", requested).
			Str("role", string(role)).
			Msg("Sign-in rejected: role mismatch")
		return nil, apperrors.NewCustomError(apperrors.ErrRoleMismatch,
			fmt.Sprintf("You do not have %s access. Please select the correct role.", requested))
	}

	resp, err := s.issueTokens(user, session, role, departmentID)
	if err != nil {
		s.revokeSession(ctx, session.ID, "token generation failed")
		return nil, err
	}

	now := s.now()
	if err := s.userRepo.UpdateLastSignIn(ctx, user.ID, now); err != nil {
		s.logger.Warn().Err(err).Str("userID", user.ID.String()).Msg("Could not record sign-in time")
	} else {
		resp.User.LastSignInAt = &now
	}

	resp.Redirect = DashboardPath
	s.logger.Info().Str("userID", user.ID.String()).Str("role", string(role)).Msg("User signed in")
	return resp, nil
}

// SignOut revokes the session behind the caller's access token
func (s *AuthService) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessionRepo.Revoke(ctx, sessionID); err != nil {
		return fmt.Errorf("error revoking session: %w", err)
	}
	s.logger.Info().Str("sessionID", sessionID.String()).Msg("Session signed out")
	return nil
}

// RefreshToken rotates the refresh token of an active session and issues a new access token.
// The role is resolved again so role changes take effect on refresh.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	session, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}
	if err := s.checkActive(session); err != nil {
		return nil, err
	}

	token, expiresAt := s.jwtService.NewRefreshToken()
	if err := s.sessionRepo.RotateRefreshToken(ctx, session.ID, token, expiresAt); err != nil {
		return nil, fmt.Errorf("error rotating refresh token: %w", err)
	}
	session.RefreshToken = token
	session.ExpiresAt = expiresAt

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	role, departmentID, err := s.optionalRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user, session, role, departmentID)
}

// CurrentSession describes the session of an authenticated request
func (s *AuthService) CurrentSession(ctx context.Context, principal models.Principal) (*dto.SessionResponse, error) {
	session, err := s.ValidateSession(ctx, principal.SessionID, principal.UserID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	role, departmentID, err := s.optionalRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		SessionID:    session.ID,
		ExpiresAt:    session.ExpiresAt,
		User:         dto.NewUserResponse(user),
		Role:         role,
		RoleLabel:    role.Label(),
		DepartmentID: departmentID,
	}, nil
}

// ValidateSession checks that a session exists, belongs to userID and is still active
func (s *AuthService) ValidateSession(ctx context.Context, sessionID, userID uuid.UUID) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}
	if session.UserID != userID {
		return nil, apperrors.ErrTokenInvalid
	}
	if err := s.checkActive(session); err != nil {
		return nil, err
	}
	return session, nil
}

// ResolveRole returns the stored role of a user. It fails with ErrNoRoleAssigned when there is none.
func (s *AuthService) ResolveRole(ctx context.Context, userID uuid.UUID) (*models.UserRole, error) {
	return s.roleRepo.GetUserRole(ctx, userID)
}

func (s *AuthService) optionalRole(ctx context.Context, userID uuid.UUID) (models.RoleName, *uuid.UUID, error) {
	ur, err := s.roleRepo.GetUserRole(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoRoleAssigned) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("error resolving role: %w", err)
	}
	return ur.RoleName, ur.DepartmentID, nil
}

func (s *AuthService) checkActive(session *models.Session) error {
	if session.RevokedAt != nil {
		return apperrors.ErrSessionRevoked
	}
	if !session.IsActive(s.now()) {
		return apperrors.ErrSessionExpired
	}
	return nil
}

func (s *AuthService) openSession(ctx context.Context, userID uuid.UUID, meta ClientMeta) (*models.Session, error) {
	token, expiresAt := s.jwtService.NewRefreshToken()
	session := &models.Session{
		UserID:       userID,
		RefreshToken: token,
		UserAgent:    meta.UserAgent,
		IPAddress:    meta.IPAddress,
		ExpiresAt:    expiresAt,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}
	return session, nil
}

// revokeSession is best effort: a failure is logged and the original error is returned to the caller
func (s *AuthService) revokeSession(ctx context.Context, sessionID uuid.UUID, reason string) {
	if err := s.sessionRepo.Revoke(context.WithoutCancel(ctx), sessionID); err != nil {
		s.logger.Error().Err(err).Str("sessionID", sessionID.String()).Str("reason", reason).Msg("Failed to revoke session")
		return
	}
	s.logger.Debug().Str("sessionID", sessionID.String()).Str("reason", reason).Msg("Session revoked")
}

func (s *AuthService) issueTokens(user *models.User, session *models.Session, role models.RoleName, departmentID *uuid.UUID) (*dto.AuthResponse, error) {
	accessToken, expiresIn, err := s.jwtService.GenerateAccessToken(auth.TokenSubject{
		UserID:    user.ID,
		SessionID: session.ID,
		Email:     user.Email,
		Role:      string(role),
	})
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             expiresIn,
			RefreshToken:          session.RefreshToken,
			RefreshTokenExpiresIn: s.jwtService.RefreshTokenLifetime(),
		},
		User:         dto.NewUserResponse(user),
		Role:         role,
		DepartmentID: departmentID,
	}, nil
}
