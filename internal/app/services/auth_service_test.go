package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	auth.BcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

type authFixture struct {
	users    *mockUserRepo
	sessions *mockSessionRepo
	roles    *mockRoleRepo
	mail     *mockEmailService
	svc      *AuthService
	user     *models.User
	created  *models.Session
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	f := &authFixture{
		users:    &mockUserRepo{},
		sessions: &mockSessionRepo{},
		roles:    &mockRoleRepo{},
		mail:     &mockEmailService{},
		user: &models.User{
			ID:           uuid.New(),
			Email:        "jane.doe@facultech.com",
			PasswordHash: hash,
			FirstName:    "Jane",
			LastName:     "Doe",
		},
	}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "facultyhub",
	})
	f.svc = NewAuthService(f.users, f.sessions, f.roles, jwtService, f.mail, zerolog.Nop())

	f.users.On("GetByEmail", mock.Anything, f.user.Email).Return(f.user, nil).Maybe()
	f.sessions.On("Create", mock.Anything, mock.AnythingOfType("*models.Session")).
		Run(func(args mock.Arguments) { f.created = args.Get(1).(*models.Session) }).
		Return(nil).Maybe()
	return f
}

func (f *authFixture) withRole(role models.RoleName, err error) {
	if err != nil {
		f.roles.On("GetUserRole", mock.Anything, f.user.ID).Return(nil, err)
		return
	}
	f.roles.On("GetUserRole", mock.Anything, f.user.ID).Return(&models.UserRole{UserID: f.user.ID, RoleName: role}, nil)
}

func TestSignInRoleMismatchRevokesSession(t *testing.T) {
	f := newAuthFixture(t)
	f.withRole(models.RoleFaculty, nil)
	f.sessions.On("Revoke", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil)

	resp, err := f.svc.SignIn(context.Background(), "Jane.Doe@facultech.com", "secret123", "admin", ClientMeta{})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrRoleMismatch)
	assert.Equal(t, "You do not have admin access. Please select the correct role.", apperrors.UserMessage(err))

	require.NotNil(t, f.created)
	f.sessions.AssertCalled(t, "Revoke", mock.Anything, f.created.ID)
	f.users.AssertNotCalled(t, "UpdateLastSignIn", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignInRoleLookupFailureRevokesSession(t *testing.T) {
	f := newAuthFixture(t)
	f.withRole("", apperrors.ErrNoRoleAssigned)
	f.sessions.On("Revoke", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil)

	_, err := f.svc.SignIn(context.Background(), f.user.Email, "secret123", "hod", ClientMeta{})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRoleLookupFailed)
	assert.Equal(t, "Unable to verify user role. Please contact support.", apperrors.UserMessage(err))
	f.sessions.AssertCalled(t, "Revoke", mock.Anything, f.created.ID)
}

func TestSignInWithoutRequestedRole(t *testing.T) {
	t.Run("user without role is accepted", func(t *testing.T) {
		f := newAuthFixture(t)
		f.withRole("", apperrors.ErrNoRoleAssigned)
		f.users.On("UpdateLastSignIn", mock.Anything, f.user.ID, mock.Anything).Return(nil)

		resp, err := f.svc.SignIn(context.Background(), f.user.Email, "secret123", "", ClientMeta{UserAgent: "test"})

		require.NoError(t, err)
		assert.Equal(t, models.RoleName(""), resp.Role)
		assert.Equal(t, DashboardPath, resp.Redirect)
		assert.NotEmpty(t, resp.Token.AccessToken)
		assert.Equal(t, f.created.RefreshToken, resp.Token.RefreshToken)
		assert.Equal(t, "test", f.created.UserAgent)
		f.sessions.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
	})

	t.Run("role is reported", func(t *testing.T) {
		f := newAuthFixture(t)
		f.withRole(models.RoleHOD, nil)
		f.users.On("UpdateLastSignIn", mock.Anything, f.user.ID, mock.Anything).Return(nil)

		resp, err := f.svc.SignIn(context.Background(), f.user.Email, "secret123", "   ", ClientMeta{})

		require.NoError(t, err)
		assert.Equal(t, models.RoleHOD, resp.Role)
		require.NotNil(t, resp.User.LastSignInAt)
	})
}

func TestSignInRequestedRoleIsCaseInsensitive(t *testing.T) {
	f := newAuthFixture(t)
	f.withRole(models.RoleAdmin, nil)
	f.users.On("UpdateLastSignIn", mock.Anything, f.user.ID, mock.Anything).Return(nil)

	resp, err := f.svc.SignIn(context.Background(), f.user.Email, "secret123", "ADMIN", ClientMeta{})

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.Role)

	claims, err := f.svc.jwtService.ValidateAndExtractClaims(resp.Token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, f.created.ID, claims.SessionID)
	assert.Equal(t, "admin", claims.Role)
}

func TestSignInInvalidCredentials(t *testing.T) {
	f := newAuthFixture(t)
	f.users.On("GetByEmail", mock.Anything, "nobody@facultech.com").Return(nil, apperrors.ErrUserNotFound)

	_, err := f.svc.SignIn(context.Background(), f.user.Email, "wrong-password", "", ClientMeta{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = f.svc.SignIn(context.Background(), "nobody@facultech.com", "secret123", "", ClientMeta{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	f.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignUp(t *testing.T) {
	t.Run("creates user and sends welcome mail", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.On("EmailExists", mock.Anything, "new@facultech.com").Return(false, nil)
		f.users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)
		f.mail.On("SendWelcomeEmail", "new@facultech.com", "New Person").Return(nil)

		user, err := f.svc.SignUp(context.Background(), &dto.SignUpRequest{
			Email: " New@facultech.com ", Password: "secret123", FirstName: "New", LastName: "Person",
		})

		require.NoError(t, err)
		assert.Equal(t, "new@facultech.com", user.Email)
		assert.True(t, auth.CheckPassword(user.PasswordHash, "secret123"))
		f.mail.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.On("EmailExists", mock.Anything, f.user.Email).Return(true, nil)

		_, err := f.svc.SignUp(context.Background(), &dto.SignUpRequest{
			Email: f.user.Email, Password: "secret123", FirstName: "Jane", LastName: "Doe",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
		f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("short password", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.SignUp(context.Background(), &dto.SignUpRequest{
			Email: "x@facultech.com", Password: "123", FirstName: "X", LastName: "Y",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})
}

func TestRefreshToken(t *testing.T) {
	f := newAuthFixture(t)
	revokedAt := time.Now()
	active := &models.Session{ID: uuid.New(), UserID: f.user.ID, RefreshToken: "old", ExpiresAt: time.Now().Add(time.Hour)}
	revoked := &models.Session{ID: uuid.New(), UserID: f.user.ID, RefreshToken: "gone", ExpiresAt: time.Now().Add(time.Hour), RevokedAt: &revokedAt}

	f.sessions.On("GetByRefreshToken", mock.Anything, "old").Return(active, nil)
	f.sessions.On("GetByRefreshToken", mock.Anything, "gone").Return(revoked, nil)
	f.sessions.On("GetByRefreshToken", mock.Anything, "unknown").Return(nil, apperrors.ErrSessionNotFound)
	f.sessions.On("RotateRefreshToken", mock.Anything, active.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)
	f.users.On("GetByID", mock.Anything, f.user.ID).Return(f.user, nil)
	f.withRole(models.RoleFaculty, nil)

	resp, err := f.svc.RefreshToken(context.Background(), "old")
	require.NoError(t, err)
	assert.NotEqual(t, "old", resp.Token.RefreshToken)
	assert.Equal(t, models.RoleFaculty, resp.Role)

	_, err = f.svc.RefreshToken(context.Background(), "gone")
	assert.ErrorIs(t, err, apperrors.ErrSessionRevoked)

	_, err = f.svc.RefreshToken(context.Background(), "unknown")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestValidateSession(t *testing.T) {
	f := newAuthFixture(t)
	session := &models.Session{ID: uuid.New(), UserID: f.user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	expired := &models.Session{ID: uuid.New(), UserID: f.user.ID, ExpiresAt: time.Now().Add(-time.Minute)}
	f.sessions.On("GetByID", mock.Anything, session.ID).Return(session, nil)
	f.sessions.On("GetByID", mock.Anything, expired.ID).Return(expired, nil)

	got, err := f.svc.ValidateSession(context.Background(), session.ID, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	_, err = f.svc.ValidateSession(context.Background(), session.ID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = f.svc.ValidateSession(context.Background(), expired.ID, f.user.ID)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}

func TestSignOut(t *testing.T) {
	f := newAuthFixture(t)
	id := uuid.New()
	f.sessions.On("Revoke", mock.Anything, id).Return(nil)

	require.NoError(t, f.svc.SignOut(context.Background(), id))
	f.sessions.AssertExpectations(t)
}
