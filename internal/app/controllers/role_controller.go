package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/services"
	"github.com/yigit/facultyhub/internal/middleware"
)

// RoleController handles role assignments. All routes are admin only.
type RoleController struct {
	roleService *services.RoleService
}

// NewRoleController creates a new RoleController
func NewRoleController(roleService *services.RoleService) *RoleController {
	return &RoleController{roleService: roleService}
}

// ListRoles lists the available roles
// @Summary List roles
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Role} "Roles"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /roles [get]
func (c *RoleController) ListRoles(ctx *gin.Context) {
	roles, err := c.roleService.ListRoles(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(roles, ""))
}

// ListAssignments lists users with their role and department
// @Summary List role assignments
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.UserRoleAssignment} "Assignments"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /user-roles [get]
func (c *RoleController) ListAssignments(ctx *gin.Context) {
	assignments, err := c.roleService.ListAssignments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignments, ""))
}

// AssignRole sets the role of a user
// @Summary Assign role
// @Description Replaces the single role of a user. The hod role requires a department.
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID" Format(uuid)
// @Param request body dto.AssignRoleRequest true "Role"
// @Success 200 {object} dto.APIResponse{data=models.UserRole} "Role assigned"
// @Failure 400 {object} dto.ErrorResponse "Unknown role or missing department"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User or department not found"
// @Router /user-roles/{userId} [put]
func (c *RoleController) AssignRole(ctx *gin.Context) {
	userID, ok := uuidParam(ctx, "userId", "User")
	if !ok {
		return
	}

	var req dto.AssignRoleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	ur, err := c.roleService.AssignRole(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	notifyOK(ctx, http.StatusOK, ur, "Role assigned", "The user now has "+ur.RoleName.Label()+" access.")
}

// RemoveRole removes the role of a user
// @Summary Remove role
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Role removed"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No role assigned"
// @Router /user-roles/{userId} [delete]
func (c *RoleController) RemoveRole(ctx *gin.Context) {
	userID, ok := uuidParam(ctx, "userId", "User")
	if !ok {
		return
	}

	if err := c.roleService.RemoveRole(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	notifyOK(ctx, http.StatusOK, nil, "Role removed", "The user no longer has a role.")
}
