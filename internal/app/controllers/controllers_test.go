package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/navigation"
	"github.com/yigit/facultyhub/internal/app/services"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockAuthService) SignIn(ctx context.Context, email, password, role string, meta services.ClientMeta) (*dto.AuthResponse, error) {
	args := m.Called(ctx, email, password, role, meta)
	r, _ := args.Get(0).(*dto.AuthResponse)
	return r, args.Error(1)
}

func (m *mockAuthService) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *mockAuthService) RefreshToken(ctx context.Context, token string) (*dto.AuthResponse, error) {
	args := m.Called(ctx, token)
	r, _ := args.Get(0).(*dto.AuthResponse)
	return r, args.Error(1)
}

func (m *mockAuthService) CurrentSession(ctx context.Context, p models.Principal) (*dto.SessionResponse, error) {
	args := m.Called(ctx, p)
	r, _ := args.Get(0).(*dto.SessionResponse)
	return r, args.Error(1)
}

// withPrincipal stands in for JWTAuth
func withPrincipal(p models.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("principal", p)
		c.Next()
	}
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSignInRoleMismatchRespondsForbidden(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("SignIn", mock.Anything, "jane@facultech.com", "secret123", "hod", mock.Anything).
		Return(nil, apperrors.NewCustomError(apperrors.ErrRoleMismatch, "You do not have HOD access. Please select the correct role."))

	r := gin.New()
	r.POST("/auth/signin", NewAuthController(svc, zerolog.Nop()).SignIn)

	w := postJSON(r, "/auth/signin", dto.SignInRequest{Email: "jane@facultech.com", Password: "secret123", Role: "hod"})

	require.Equal(t, http.StatusForbidden, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeRoleMismatch, resp.Error.Code)
	require.NotNil(t, resp.Notification)
	assert.Equal(t, "Error signing in", resp.Notification.Title)
	assert.Equal(t, "You do not have HOD access. Please select the correct role.", resp.Notification.Description)
	assert.Equal(t, models.VariantDestructive, resp.Notification.Variant)
}

func TestSignInSuccess(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("SignIn", mock.Anything, "jane@facultech.com", "secret123", "", mock.Anything).Return(&dto.AuthResponse{
		User:     dto.UserResponse{ID: uuid.New(), Email: "jane@facultech.com", FirstName: "Jane"},
		Role:     models.RoleFaculty,
		Redirect: "/dashboard",
	}, nil)

	r := gin.New()
	r.POST("/auth/signin", NewAuthController(svc, zerolog.Nop()).SignIn)

	w := postJSON(r, "/auth/signin", dto.SignInRequest{Email: "jane@facultech.com", Password: "secret123"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success      bool                `json:"success"`
		Data         dto.AuthResponse    `json:"data"`
		Notification models.Notification `json:"notification"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "/dashboard", resp.Data.Redirect)
	assert.Equal(t, "Signed in successfully", resp.Notification.Title)
	assert.Equal(t, models.VariantDefault, resp.Notification.Variant)
}

func TestSignInRejectsMalformedBody(t *testing.T) {
	svc := &mockAuthService{}
	r := gin.New()
	r.POST("/auth/signin", NewAuthController(svc, zerolog.Nop()).SignIn)

	w := postJSON(r, "/auth/signin", map[string]string{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSignOutUsesSessionFromToken(t *testing.T) {
	p := models.Principal{UserID: uuid.New(), SessionID: uuid.New(), Role: models.RoleAdmin}
	svc := &mockAuthService{}
	svc.On("SignOut", mock.Anything, p.SessionID).Return(nil)

	r := gin.New()
	r.POST("/auth/signout", withPrincipal(p), NewAuthController(svc, zerolog.Nop()).SignOut)

	w := postJSON(r, "/auth/signout", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/"`)
	svc.AssertExpectations(t)
}

type stubDashboards struct{}

func (stubDashboards) Build(_ context.Context, p models.Principal) (*dto.DashboardResponse, error) {
	return &dto.DashboardResponse{Role: p.Role, Title: "Dashboard"}, nil
}

func TestNavigationForHOD(t *testing.T) {
	p := models.Principal{UserID: uuid.New(), Role: models.RoleHOD}
	r := gin.New()
	r.GET("/navigation", withPrincipal(p), NewLayoutController(stubDashboards{}).GetNavigation)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/navigation?path=/teaching-loads", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data navigation.Menu `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "HOD", resp.Data.RoleBadge)
	assert.Equal(t, "Teaching Loads", resp.Data.PageTitle)

	keys := make([]string, 0, len(resp.Data.Items))
	for _, item := range resp.Data.Items {
		keys = append(keys, item.Key)
	}
	assert.Contains(t, keys, "teaching-loads")
	assert.NotContains(t, keys, "roles-management")
}

func TestInvalidUUIDParam(t *testing.T) {
	r := gin.New()
	r.GET("/departments/:id", (&DepartmentController{}).GetDepartmentByID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments/42", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
