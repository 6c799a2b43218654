package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/navigation"
	"github.com/yigit/facultyhub/internal/middleware"
)

// DashboardBuilder builds the dashboard of a principal
type DashboardBuilder interface {
	Build(ctx context.Context, principal models.Principal) (*dto.DashboardResponse, error)
}

// LayoutController serves the role specific dashboard and navigation
type LayoutController struct {
	dashboards DashboardBuilder
}

// NewLayoutController creates a new LayoutController
func NewLayoutController(dashboards DashboardBuilder) *LayoutController {
	return &LayoutController{dashboards: dashboards}
}

// GetDashboard returns the dashboard of the caller's role
// @Summary Dashboard
// @Description Returns cards and tabbed tables for the caller's stored role. Users without a role get a message and no widgets.
// @Tags layout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /dashboard [get]
func (c *LayoutController) GetDashboard(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	resp, err := c.dashboards.Build(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// GetNavigation returns the side menu for the caller's role
// @Summary Navigation menu
// @Tags layout
// @Produce json
// @Security BearerAuth
// @Param path query string false "Current path, used for the page title" default(/dashboard)
// @Success 200 {object} dto.APIResponse{data=navigation.Menu} "Menu"
// @Router /navigation [get]
func (c *LayoutController) GetNavigation(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(navigation.Build(p.Role, ctx.DefaultQuery("path", "/dashboard")), ""))
}
