package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/services"
	"github.com/emre/uniportal/internal/middleware"
)

// PlacementController serves the student placement portal.
type PlacementController struct {
	placementService *services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService *services.PlacementService) *PlacementController {
	return &PlacementController{placementService: placementService}
}

// Placements returns the placement portal payload
// @Summary Get placement portal
// @Description Recent company visits, eligible drives, registered drives and all active drives
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PlacementsResponse}
// @Router /placements [get]
func (c *PlacementController) Placements(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	placements, err := c.placementService.Overview(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(placements))
}

// RegisterForDrive signs the caller up for a placement drive
// @Summary Register for a drive
// @Description Re-checks eligibility (open status and CGPA floor) before registering
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 201 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Not eligible"
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Router /placements/drives/{id}/register [post]
func (c *PlacementController) RegisterForDrive(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	driveID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || driveID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid drive ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.placementService.RegisterForDrive(ctx.Request.Context(), userID, driveID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Registered for drive"))
}
