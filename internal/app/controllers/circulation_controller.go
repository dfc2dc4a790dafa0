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

// dateLayout is the wire format for dates coming from the scan form.
const dateLayout = "2006-01-02"

// CirculationController handles scan batch submissions
type CirculationController struct {
	circulationService *services.CirculationService
}

// NewCirculationController creates a new CirculationController
func NewCirculationController(circulationService *services.CirculationService) *CirculationController {
	return &CirculationController{
		circulationService: circulationService,
	}
}

// Submit applies one batch of scanned books to the ledgers
// @Summary Submit a scan batch
// @Description Applies a batch of scanned books to the loan or swap ledger of one borrower. Lines that cannot be resolved are reported and skipped.
// @Tags circulation
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "Scan batch"
// @Success 200 {object} dto.APIResponse{data=dto.SubmitResponse} "Batch applied"
// @Failure 400 {object} dto.ErrorResponse "Invalid batch"
// @Failure 404 {object} dto.ErrorResponse "Borrower not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /circulation/submit [post]
func (c *CirculationController) Submit(ctx *gin.Context) {
	var req dto.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scan batch")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date")
			errorDetail = errorDetail.WithDetails("Date must be formatted as YYYY-MM-DD").WithField("date")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		date = parsed
	}

	results, err := c.circulationService.Submit(ctx, services.SubmitRequest{
		BorrowerID: req.BorrowerID,
		Kind:       models.BorrowerKind(req.Kind),
		Action:     services.Action(req.Action),
		TermEnd:    req.TermEnd,
		Date:       date,
		Items:      req.Items,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewSubmitResponse(results),
		Timestamp: time.Now(),
	})
}
