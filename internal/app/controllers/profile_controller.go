package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/services"
	"github.com/yigit/facultyhub/internal/middleware"
)

// ProfileController handles office hours and publications of faculty members
type ProfileController struct {
	profileService *services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// ListOfficeHours lists office hours of a faculty member
// @Summary List office hours
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty member ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=[]models.OfficeHour} "Office hours"
// @Router /faculty-members/{id}/office-hours [get]
func (c *ProfileController) ListOfficeHours(ctx *gin.Context) {
	facultyID, ok := uuidParam(ctx, "id", "Faculty member")
	if !ok {
		return
	}

	hours, err := c.profileService.ListOfficeHours(ctx.Request.Context(), facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hours, ""))
}

// AddOfficeHour adds an office hour slot
// @Summary Add office hour
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty member ID" Format(uuid)
// @Param request body dto.CreateOfficeHourRequest true "Office hour"
// @Success 201 {object} dto.APIResponse{data=models.OfficeHour} "Office hour added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /faculty-members/{id}/office-hours [post]
func (c *ProfileController) AddOfficeHour(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	facultyID, ok := uuidParam(ctx, "id", "Faculty member")
	if !ok {
		return
	}

	var req dto.CreateOfficeHourRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	oh, err := c.profileService.AddOfficeHour(ctx.Request.Context(), p, facultyID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	notifyOK(ctx, http.StatusCreated, oh, "Office hour added", oh.DayOfWeek+" "+oh.StartTime+" - "+oh.EndTime)
}

// DeleteOfficeHour removes an office hour slot
// @Summary Delete office hour
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path string true "Office hour ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Office hour deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Office hour not found"
// @Router /office-hours/{id} [delete]
func (c *ProfileController) DeleteOfficeHour(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := uuidParam(ctx, "id", "Office hour")
	if !ok {
		return
	}

	if err := c.profileService.DeleteOfficeHour(ctx.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	notifyOK(ctx, http.StatusOK, nil, "Office hour deleted", "The office hour has been removed.")
}

// ListPublications lists publications of a faculty member
// @Summary List publications
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty member ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=[]models.Publication} "Publications"
// @Router /faculty-members/{id}/publications [get]
func (c *ProfileController) ListPublications(ctx *gin.Context) {
	facultyID, ok := uuidParam(ctx, "id", "Faculty member")
	if !ok {
		return
	}

	pubs, err := c.profileService.ListPublications(ctx.Request.Context(), facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(pubs, ""))
}

// AddPublication adds a publication
// @Summary Add publication
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty member ID" Format(uuid)
// @Param request body dto.CreatePublicationRequest true "Publication"
// @Success 201 {object} dto.APIResponse{data=models.Publication} "Publication added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /faculty-members/{id}/publications [post]
func (c *ProfileController) AddPublication(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	facultyID, ok := uuidParam(ctx, "id", "Faculty member")
	if !ok {
		return
	}

	var req dto.CreatePublicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	pub, err := c.profileService.AddPublication(ctx.Request.Context(), p, facultyID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	notifyOK(ctx, http.StatusCreated, pub, "Publication added", pub.Title)
}

// DeletePublication removes a publication
// @Summary Delete publication
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path string true "Publication ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Publication deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Publication not found"
// @Router /publications/{id} [delete]
func (c *ProfileController) DeletePublication(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := uuidParam(ctx, "id", "Publication")
	if !ok {
		return
	}

	if err := c.profileService.DeletePublication(ctx.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	notifyOK(ctx, http.StatusOK, nil, "Publication deleted", "The publication has been removed.")
}
