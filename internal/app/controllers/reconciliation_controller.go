package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/philip98/obsidian-server/internal/app/models/dto"
	"github.com/philip98/obsidian-server/internal/app/services"
	"github.com/philip98/obsidian-server/internal/middleware"
)

// ReconciliationController serves the end-of-term checking grid
type ReconciliationController struct {
	reconciliationService *services.ReconciliationService
}

// NewReconciliationController creates a new ReconciliationController
func NewReconciliationController(reconciliationService *services.ReconciliationService) *ReconciliationController {
	return &ReconciliationController{
		reconciliationService: reconciliationService,
	}
}

// GetClasses lists the classes available for reconciliation
// @Summary List classes
// @Description Retrieves the class labels that currently have students
// @Tags reconciliation
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ClassListResponse} "Classes retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reconciliation/classes [get]
func (c *ReconciliationController) GetClasses(ctx *gin.Context) {
	classes, err := c.reconciliationService.Classes(ctx, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ClassListResponse{Classes: classes},
		Timestamp: time.Now(),
	})
}

// GetMatrix builds the checking grid for one class
// @Summary Get the reconciliation matrix
// @Description Builds the grid of students versus books for one class. With list=new the columns are the incoming book list, with list=old the outgoing one.
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param class path string true "Class label, e.g. 7a"
// @Param list query string false "Which book list to show" Enums(new, old) default(old)
// @Success 200 {object} dto.APIResponse{data=models.Matrix} "Matrix built successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid class label"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reconciliation/{class} [get]
func (c *ReconciliationController) GetMatrix(ctx *gin.Context) {
	list := ctx.DefaultQuery("list", "old")
	if list != "new" && list != "old" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid list")
		errorDetail = errorDetail.WithDetails("List must be \"new\" or \"old\"").WithField("list")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	matrix, err := c.reconciliationService.BuildMatrix(ctx, ctx.Param("class"), list == "new", time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      matrix,
		Timestamp: time.Now(),
	})
}
