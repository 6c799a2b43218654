package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/services"
	"github.com/yigit/facultyhub/internal/middleware"
)

// AuthService is the part of services.AuthService the controller uses
type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*models.User, error)
	SignIn(ctx context.Context, email, password, requestedRole string, meta services.ClientMeta) (*dto.AuthResponse, error)
	SignOut(ctx context.Context, sessionID uuid.UUID) error
	RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	CurrentSession(ctx context.Context, principal models.Principal) (*dto.SessionResponse, error)
}

// AuthController handles authentication related operations
type AuthController struct {
	authService AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// SignUp handles user registration
// @Summary Register a new user
// @Description Creates a login without a role. An administrator assigns the role afterwards.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "User registration information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func (c *AuthController) SignUp(ctx *gin.Context) {
	var req dto.SignUpRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.SignUp(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Sign up failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	notifyOK(ctx, http.StatusCreated, dto.NewUserResponse(user), "Account created", "You can sign in once an administrator assigns your role.")
}

// SignIn handles user login
// @Summary Sign in
// @Description Authenticates a user and opens a session. When role is given the stored role must match it, otherwise the session is revoked and 403 is returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Signed in successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Role mismatch or role lookup failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/signin [post]
func (c *AuthController) SignIn(ctx *gin.Context) {
	var req dto.SignInRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	meta := services.ClientMeta{UserAgent: ctx.Request.UserAgent(), IPAddress: ctx.ClientIP()}
	resp, err := c.authService.SignIn(ctx.Request.Context(), req.Email, req.Password, req.Role, meta)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Str("requestedRole", req.Role).Msg("Sign in failed")
		middleware.HandleAPIErrorWithTitle(ctx, err, "Error signing in")
		return
	}

	notifyOK(ctx, http.StatusOK, resp, "Signed in successfully", "Welcome back, "+resp.User.FirstName+".")
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Rotates the refresh token of an active session and issues a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Token refreshed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid, expired or revoked refresh token"
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Token refreshed"))
}

// SignOut ends the current session
// @Summary Sign out
// @Description Revokes the session behind the access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SignOutResponse} "Signed out"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/signout [post]
func (c *AuthController) SignOut(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	if err := c.authService.SignOut(ctx.Request.Context(), p.SessionID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	notifyOK(ctx, http.StatusOK, dto.SignOutResponse{Redirect: "/"}, "Signed out", "You have been signed out.")
}

// Session returns the current session
// @Summary Current session
// @Description Returns the session, user, stored role and department scope of the caller
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Current session"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	resp, err := c.authService.CurrentSession(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}
