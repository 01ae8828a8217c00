package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/uniportal/internal/app/models"
	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/services"
	"github.com/emre/uniportal/internal/middleware"
)

// DashboardController serves the role-specific landing summary.
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Dashboard returns the landing summary for the caller's role
// @Summary Get dashboard
// @Description Students get the card counts, faculty get their department card
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /dashboard [get]
func (c *DashboardController) Dashboard(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}
	role, _ := middleware.CurrentRole(ctx)

	switch role {
	case models.RoleStudent:
		dashboard, err := c.dashboardService.StudentDashboard(ctx.Request.Context(), userID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
	case models.RoleFaculty:
		dashboard, err := c.dashboardService.FacultyDashboard(ctx.Request.Context(), userID, middleware.CurrentFullName(ctx))
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
	default:
		// Admins land on a plain greeting card.
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
			"fullName": middleware.CurrentFullName(ctx),
			"role":     string(role),
		}))
	}
}
