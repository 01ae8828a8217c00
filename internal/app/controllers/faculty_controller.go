package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/services"
	"github.com/emre/uniportal/internal/middleware"
	"github.com/emre/uniportal/internal/pkg/helpers"
)

// FacultyController handles classes, attendance marking, assignment
// management and student reports.
type FacultyController struct {
	attendanceService *services.AttendanceService
	assignmentService *services.AssignmentService
	reportService     *services.ReportService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(
	attendanceService *services.AttendanceService,
	assignmentService *services.AssignmentService,
	reportService *services.ReportService,
) *FacultyController {
	return &FacultyController{
		attendanceService: attendanceService,
		assignmentService: assignmentService,
		reportService:     reportService,
	}
}

// Classes lists subjects with enrolled-student counts
// @Summary List classes
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ClassInfo}
// @Router /faculty/classes [get]
func (c *FacultyController) Classes(ctx *gin.Context) {
	classes, err := c.attendanceService.Classes(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(classes))
}

// Roster returns the marking form for one subject
// @Summary Get class roster
// @Description Every student with their current attendance counters
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.RosterEntry}
// @Router /faculty/classes/{id}/roster [get]
func (c *FacultyController) Roster(ctx *gin.Context) {
	subjectID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || subjectID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid subject ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	roster, err := c.attendanceService.Roster(ctx.Request.Context(), subjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(roster))
}

// MarkAttendance records one held class for a subject
// @Summary Mark attendance
// @Description Every roster student gets total+1, present students also attended+1
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Subject and present students"
// @Success 200 {object} dto.APIResponse
// @Router /faculty/attendance [post]
func (c *FacultyController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	marked, err := c.attendanceService.MarkClass(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"studentsMarked": marked}))
}

// Assignments lists every assignment
// @Summary List assignments
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Assignment}
// @Router /faculty/assignments [get]
func (c *FacultyController) Assignments(ctx *gin.Context) {
	assignments, err := c.assignmentService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignments))
}

// CreateAssignment creates an assignment
// @Summary Create assignment
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAssignmentRequest true "Assignment"
// @Success 201 {object} dto.APIResponse{data=models.Assignment}
// @Router /faculty/assignments [post]
func (c *FacultyController) CreateAssignment(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	assignment, err := c.assignmentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(assignment))
}

// UpdateAssignment edits an assignment
// @Summary Update assignment
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Assignment"
// @Success 200 {object} dto.APIResponse{data=models.Assignment}
// @Router /faculty/assignments/{id} [put]
func (c *FacultyController) UpdateAssignment(ctx *gin.Context) {
	assignmentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || assignmentID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	assignment, err := c.assignmentService.Update(ctx.Request.Context(), assignmentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignment))
}

// DeleteAssignment removes an assignment
// @Summary Delete assignment
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 204 "No Content"
// @Router /faculty/assignments/{id} [delete]
func (c *FacultyController) DeleteAssignment(ctx *gin.Context) {
	assignmentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || assignmentID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.assignmentService.Delete(ctx.Request.Context(), assignmentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, nil)
}

// Reports pages through all students
// @Summary List student reports
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param size query int false "Page size (default: 20)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /faculty/reports [get]
func (c *FacultyController) Reports(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	students, err := c.reportService.ListStudents(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}

// StudentReport returns the drill-down view for one student
// @Summary Get student report
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentReport}
// @Router /faculty/reports/{studentId} [get]
func (c *FacultyController) StudentReport(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil || studentID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.reportService.StudentReport(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(report))
}
