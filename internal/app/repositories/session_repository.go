package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/dberrors"
	"github.com/yigit/facultyhub/internal/pkg/logger"
)

// ISessionRepository persists sign-in sessions and their refresh tokens
type ISessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error)
	GetByRefreshToken(ctx context.Context, token string) (*models.Session, error)
	RotateRefreshToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error
	Revoke(ctx context.Context, id uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

// SessionRepository handles session database operations
type SessionRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db Querier) *SessionRepository {
	return &SessionRepository{db: db, sb: newStatementBuilder()}
}

var sessionColumns = []string{"id", "user_id", "refresh_token", "user_agent", "ip_address", "expires_at", "revoked_at", "created_at"}

// Create stores a new session
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	sql, args, err := r.sb.Insert("sessions").
		Columns("user_id", "refresh_token", "user_agent", "ip_address", "expires_at").
		Values(session.UserID, session.RefreshToken, session.UserAgent, session.IPAddress, session.ExpiresAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create session query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&session.ID, &session.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "sessions_refresh_token_key") {
			logger.Warn().Str("userID", session.UserID.String()).Msg("Attempted to create session with duplicate refresh token")
			return apperrors.ErrTokenInvalid
		}
		logger.Error().Err(err).Str("userID", session.UserID.String()).Msg("Error creating session")
		return fmt.Errorf("error creating session: %w", err)
	}
	return nil
}

func (r *SessionRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Session, error) {
	sql, args, err := r.sb.Select(sessionColumns...).From("sessions").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get session query: %w", err)
	}

	var s models.Session
	err = r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.UserID, &s.RefreshToken, &s.UserAgent, &s.IPAddress, &s.ExpiresAt, &s.RevokedAt, &s.CreatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrSessionNotFound
		}
		logger.Error().Err(err).Msg("Error retrieving session")
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}
	return &s, nil
}

// GetByID retrieves a session, revoked or not
func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByRefreshToken retrieves the session owning a refresh token
func (r *SessionRepository) GetByRefreshToken(ctx context.Context, token string) (*models.Session, error) {
	return r.getOne(ctx, squirrel.Eq{"refresh_token": token})
}

// RotateRefreshToken replaces the refresh token of an active session
func (r *SessionRepository) RotateRefreshToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	sql, args, err := r.sb.Update("sessions").
		Set("refresh_token", token).
		Set("expires_at", expiresAt).
		Where(squirrel.Eq{"id": id, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build rotate refresh token query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("sessionID", id.String()).Msg("Error rotating refresh token")
		return fmt.Errorf("error rotating refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSessionRevoked
	}
	return nil
}

// Revoke ends a session. Revoking an already revoked session is not an error.
func (r *SessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Update("sessions").
		Set("revoked_at", squirrel.Expr("COALESCE(revoked_at, NOW())")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build revoke session query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("sessionID", id.String()).Msg("Error revoking session")
		return fmt.Errorf("error revoking session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

// RevokeAllForUser signs a user out everywhere
func (r *SessionRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	sql, args, err := r.sb.Update("sessions").
		Set("revoked_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build revoke user sessions query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("userID", userID.String()).Msg("Error revoking user sessions")
		return fmt.Errorf("error revoking user sessions: %w", err)
	}
	return nil
}
