package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/app/models/dto"
	"github.com/philip98/obsidian-server/internal/app/services"
	"github.com/philip98/obsidian-server/internal/middleware"
)

// TeacherController handles teacher-related operations
type TeacherController struct {
	teacherService *services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService *services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// CreateTeacher handles teacher creation
// @Summary Create a new teacher
// @Description Creates a new teacher with the provided information
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=dto.TeacherResponse} "Teacher created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Abbreviation already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacher := models.Teacher{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
	}

	if err := c.teacherService.CreateTeacher(ctx, &teacher); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewTeacherResponse(&teacher),
		Timestamp: time.Now(),
	})
}

// GetTeacherByID retrieves a teacher by ID
// @Summary Get teacher by ID
// @Description Retrieves a specific teacher by their ID
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=dto.TeacherResponse} "Teacher retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewTeacherResponse(teacher),
		Timestamp: time.Now(),
	})
}

// GetAllTeachers retrieves all teachers
// @Summary Get all teachers
// @Description Retrieves a list of all teachers
// @Tags teachers
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.TeacherListResponse} "Teachers retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [get]
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewTeacherListResponse(teachers),
		Timestamp: time.Now(),
	})
}

// UpdateTeacher updates an existing teacher
// @Summary Update a teacher
// @Description Updates an existing teacher's information
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Param request body dto.UpdateTeacherRequest true "Teacher information"
// @Success 200 {object} dto.APIResponse{data=dto.TeacherResponse} "Teacher updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 409 {object} dto.ErrorResponse "Abbreviation already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacher := models.Teacher{
		ID:           id,
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
	}

	if err := c.teacherService.UpdateTeacher(ctx, &teacher); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewTeacherResponse(&teacher),
		Timestamp: time.Now(),
	})
}

// DeleteTeacher deletes a teacher
// @Summary Delete a teacher
// @Description Deletes a teacher; fails while they still hold books
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Teacher deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 409 {object} dto.ErrorResponse "Teacher still has loan records"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Teacher deleted successfully"},
		Timestamp: time.Now(),
	})
}
