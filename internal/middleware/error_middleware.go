package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/logger"
)

type errorMapping struct {
	target error
	status int
	code   dto.ErrorCode
	title  string
}

// errorMappings is checked in order, the first match wins
var errorMappings = []errorMapping{
	{apperrors.ErrRoleMismatch, http.StatusForbidden, dto.ErrorCodeRoleMismatch, "Access denied"},
	{apperrors.ErrRoleLookupFailed, http.StatusForbidden, dto.ErrorCodeRoleLookupFailed, "Role verification failed"},
	{apperrors.ErrNoRoleAssigned, http.StatusForbidden, dto.ErrorCodeForbidden, "No role assigned"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Sign in failed"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Session expired"},
	{apperrors.ErrSessionExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Session expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrTokenNotFound, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeSessionRevoked, "Session ended"},
	{apperrors.ErrSessionRevoked, http.StatusUnauthorized, dto.ErrorCodeSessionRevoked, "Session ended"},
	{apperrors.ErrSessionNotFound, http.StatusUnauthorized, dto.ErrorCodeSessionRevoked, "Session ended"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Access denied"},
	{apperrors.ErrInvalidEmail, http.StatusBadRequest, dto.ErrorCodeInvalidEmail, "Invalid email"},
	{apperrors.ErrInvalidPassword, http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Invalid password"},
	{apperrors.ErrPasswordRequired, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Password required"},
	{apperrors.ErrUnsupportedFileType, http.StatusBadRequest, dto.ErrorCodeInvalidFile, "Invalid file"},
	{apperrors.ErrFileTooLarge, http.StatusRequestEntityTooLarge, dto.ErrorCodeInvalidFile, "File too large"},
	{apperrors.ErrEmptyFile, http.StatusBadRequest, dto.ErrorCodeInvalidFile, "Invalid file"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "Invalid request"},
	{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"},
	{apperrors.ErrDepartmentAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Department already exists"},
	{apperrors.ErrFacultyMemberAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Faculty member already exists"},
	{apperrors.ErrCourseAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Course already exists"},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Already exists"},
	{apperrors.ErrDepartmentHasRelations, http.StatusConflict, dto.ErrorCodeConflict, "Cannot delete department"},
	{apperrors.ErrFacultyMemberHasRelations, http.StatusConflict, dto.ErrorCodeConflict, "Cannot delete faculty member"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict, "Conflict"},
	{apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"},
	{apperrors.ErrDepartmentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Department not found"},
	{apperrors.ErrFacultyMemberNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Faculty member not found"},
	{apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found"},
	{apperrors.ErrCertificateNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Certificate not found"},
	{apperrors.ErrOfficeHourNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Office hour not found"},
	{apperrors.ErrPublicationNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Publication not found"},
	{apperrors.ErrRoleNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Role not found"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Not found"},
}

// HandleAPIError writes the error envelope for err. Known errors keep their user facing
// message; anything else is logged and reported as an internal error.
func HandleAPIError(c *gin.Context, err error) {
	HandleAPIErrorWithTitle(c, err, "")
}

// HandleAPIErrorWithTitle is HandleAPIError with a fixed notification title
func HandleAPIErrorWithTitle(c *gin.Context, err error, title string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			message := apperrors.UserMessage(err)
			if title == "" {
				title = m.title
			}
			c.JSON(m.status, dto.NewErrorResponse(dto.NewErrorDetail(m.code, message)).
				WithNotification(models.Failure(title, message)))
			return
		}
	}

	logger.Error().Err(err).Str("method", c.Request.Method).Str("path", c.FullPath()).Msg("Unhandled error")
	detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").WithSeverity(dto.ErrorSeverityCritical)
	if title == "" {
		title = "Something went wrong"
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail).
		WithNotification(models.Failure(title, "Please try again later.")))
}
