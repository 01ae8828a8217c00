package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/services"
	"github.com/emre/uniportal/internal/middleware"
)

// AcademicsController serves the student academics page.
type AcademicsController struct {
	academicsService *services.AcademicsService
}

// NewAcademicsController creates a new AcademicsController
func NewAcademicsController(academicsService *services.AcademicsService) *AcademicsController {
	return &AcademicsController{academicsService: academicsService}
}

// Academics returns the attendance report and active assignments
// @Summary Get academics page
// @Description Per-subject attendance, highest percentage first, plus active assignments
// @Tags academics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AcademicsResponse}
// @Router /academics [get]
func (c *AcademicsController) Academics(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	academics, err := c.academicsService.Academics(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(academics))
}
