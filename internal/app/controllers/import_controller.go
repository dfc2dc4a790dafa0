package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/philip98/obsidian-server/internal/app/models/dto"
	"github.com/philip98/obsidian-server/internal/app/services"
	"github.com/philip98/obsidian-server/internal/middleware"
)

// ImportController accepts CSV roster uploads
type ImportController struct {
	importService *services.ImportService
}

// NewImportController creates a new ImportController
func NewImportController(importService *services.ImportService) *ImportController {
	return &ImportController{
		importService: importService,
	}
}

// ImportRoster imports a student roster from a CSV upload
// @Summary Import a student roster
// @Description Imports students from a CSV file. Rows that cannot be parsed are skipped and reported.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV roster file"
// @Param separator formData string false "Field separator" default(,)
// @Param nameColumn formData int false "Zero-based column holding the name" default(0)
// @Param yearColumn formData int false "Zero-based column holding the graduation year" default(1)
// @Param letterColumn formData int false "Zero-based column holding the form letter" default(2)
// @Param skipHeader formData bool false "Skip the first line" default(false)
// @Success 200 {object} dto.APIResponse{data=services.ImportReport} "Import finished"
// @Failure 400 {object} dto.ErrorResponse "Malformed upload or CSV"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/import [post]
func (c *ImportController) ImportRoster(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing roster file")
		errorDetail = errorDetail.WithDetails(err.Error()).WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	opts := services.ImportOptions{
		NameColumn:   formInt(ctx, "nameColumn", 0),
		YearColumn:   formInt(ctx, "yearColumn", 1),
		LetterColumn: formInt(ctx, "letterColumn", 2),
		SkipHeader:   ctx.PostForm("skipHeader") == "true",
	}
	if sep := ctx.PostForm("separator"); sep != "" {
		opts.Comma = rune(sep[0])
	}

	report, err := c.importService.ImportRoster(ctx, file, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

func formInt(ctx *gin.Context, name string, fallback int) int {
	if v := ctx.PostForm(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
