package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/services"
	"github.com/emre/uniportal/internal/middleware"
)

// AdminController handles account provisioning and announcement
// management.
type AdminController struct {
	adminService        *services.AdminService
	announcementService *services.AnnouncementService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, announcementService *services.AnnouncementService) *AdminController {
	return &AdminController{
		adminService:        adminService,
		announcementService: announcementService,
	}
}

// ProvisionUser creates an account with its role detail
// @Summary Provision a user
// @Description Creates an account; student/faculty roles also get their detail row
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProvisionUserRequest true "Account"
// @Success 201 {object} dto.APIResponse{data=models.User}
// @Failure 409 {object} dto.ErrorResponse "Username or role number taken"
// @Router /admin/users [post]
func (c *AdminController) ProvisionUser(ctx *gin.Context) {
	var req dto.ProvisionUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.adminService.ProvisionUser(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user))
}

// CreateAnnouncement stores a new announcement
// @Summary Create announcement
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} dto.APIResponse{data=models.Announcement}
// @Router /admin/announcements [post]
func (c *AdminController) CreateAnnouncement(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	announcement, err := c.announcementService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(announcement))
}

// DeleteAnnouncement removes an announcement
// @Summary Delete announcement
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 204 "No Content"
// @Router /admin/announcements/{id} [delete]
func (c *AdminController) DeleteAnnouncement(ctx *gin.Context) {
	announcementID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || announcementID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid announcement ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.announcementService.Delete(ctx.Request.Context(), announcementID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, nil)
}
