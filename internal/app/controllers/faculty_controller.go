package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/services"
	"github.com/yigit/facultyhub/internal/middleware"
	"github.com/yigit/facultyhub/internal/pkg/helpers"
)

// FacultyController handles faculty member operations
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// CreateFacultyMember adds a faculty member to a department
// @Summary Add a faculty member
// @Description Adds a faculty member to the department. With createAccount a login with the faculty role is created in the same transaction.
// @Tags faculty-members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID" Format(uuid)
// @Param request body dto.CreateFacultyMemberRequest true "Faculty member information"
// @Success 201 {object} dto.APIResponse{data=dto.CreateFacultyMemberResponse} "Faculty member created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or missing password"
// @Failure 403 {object} dto.ErrorResponse "Forbidden or role lookup failed"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{id}/faculty-members [post]
func (c *FacultyController) CreateFacultyMember(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	departmentID, ok := uuidParam(ctx, "id", "Department")
	if !ok {
		return
	}

	var req dto.CreateFacultyMemberRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.facultyService.CreateFacultyMember(ctx.Request.Context(), p, departmentID, &req)
	if err != nil {
		middleware.HandleAPIErrorWithTitle(ctx, err, "Error adding faculty member")
		return
	}

	description := resp.FacultyMember.FullName() + " has been added."
	if resp.AccountCreated {
		description = resp.FacultyMember.FullName() + " has been added and can now sign in."
	}
	notifyOK(ctx, http.StatusCreated, resp, "Faculty member added", description)
}

// ListDepartmentFacultyMembers lists the faculty of one department
// @Summary List department faculty
// @Tags faculty-members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID" Format(uuid)
// @Param search query string false "Name or email search"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Faculty members"
// @Failure 400 {object} dto.ErrorResponse "Invalid department ID"
// @Router /departments/{id}/faculty-members [get]
func (c *FacultyController) ListDepartmentFacultyMembers(ctx *gin.Context) {
	departmentID, ok := uuidParam(ctx, "id", "Department")
	if !ok {
		return
	}
	c.list(ctx, &departmentID)
}

// ListFacultyMembers lists faculty members across departments
// @Summary List faculty members
// @Tags faculty-members
// @Produce json
// @Security BearerAuth
// @Param departmentId query string false "Department filter" Format(uuid)
// @Param search query string false "Name or email search"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Faculty members"
// @Router /faculty-members [get]
func (c *FacultyController) ListFacultyMembers(ctx *gin.Context) {
	departmentID, ok := optionalUUIDQuery(ctx, "departmentId")
	if !ok {
		return
	}
	c.list(ctx, departmentID)
}

func (c *FacultyController) list(ctx *gin.Context, departmentID *uuid.UUID) {
	page, size := helpers.ParsePaginationParams(ctx)
	resp, err := c.facultyService.ListFacultyMembers(ctx.Request.Context(), departmentID, ctx.Query("search"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// GetFacultyMember retrieves a faculty member by ID
// @Summary Get faculty member
// @Tags faculty-members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty member ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.FacultyMember} "Faculty member"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty-members/{id} [get]
func (c *FacultyController) GetFacultyMember(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id", "Faculty member")
	if !ok {
		return
	}

	member, err := c.facultyService.GetFacultyMember(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(member, ""))
}

// GetMyProfile returns the faculty record linked to the caller's login
// @Summary My faculty profile
// @Tags faculty-members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.FacultyMember} "Faculty member"
// @Failure 404 {object} dto.ErrorResponse "No faculty profile is linked to this account"
// @Router /faculty-members/me [get]
func (c *FacultyController) GetMyProfile(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	member, err := c.facultyService.GetProfileForUser(ctx.Request.Context(), p.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(member, ""))
}

// UpdateFacultyMember updates a faculty member
// @Summary Update faculty member
// @Description Replaces the profile fields. Only admins may change the department.
// @Tags faculty-members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty member ID" Format(uuid)
// @Param request body dto.UpdateFacultyMemberRequest true "Faculty member information"
// @Success 200 {object} dto.APIResponse{data=models.FacultyMember} "Faculty member updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty-members/{id} [put]
func (c *FacultyController) UpdateFacultyMember(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := uuidParam(ctx, "id", "Faculty member")
	if !ok {
		return
	}

	var req dto.UpdateFacultyMemberRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	member, err := c.facultyService.UpdateFacultyMember(ctx.Request.Context(), p, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	notifyOK(ctx, http.StatusOK, member, "Faculty member updated", member.FullName()+" has been updated.")
}

// DeleteFacultyMember deletes a faculty member
// @Summary Delete faculty member
// @Tags faculty-members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty member ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Faculty member deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Failure 409 {object} dto.ErrorResponse "Faculty member still teaches courses"
// @Router /faculty-members/{id} [delete]
func (c *FacultyController) DeleteFacultyMember(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := uuidParam(ctx, "id", "Faculty member")
	if !ok {
		return
	}

	if err := c.facultyService.DeleteFacultyMember(ctx.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	notifyOK(ctx, http.StatusOK, nil, "Faculty member deleted", "The faculty member has been removed.")
}
