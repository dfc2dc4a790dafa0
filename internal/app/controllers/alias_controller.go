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

// AliasController handles scan code alias operations
type AliasController struct {
	aliasService *services.AliasService
}

// NewAliasController creates a new AliasController
func NewAliasController(aliasService *services.AliasService) *AliasController {
	return &AliasController{
		aliasService: aliasService,
	}
}

// CreateAlias registers a scan code alias for a book
// @Summary Create a new alias
// @Description Registers a scan code alias that resolves to a book's ISBN
// @Tags aliases
// @Accept json
// @Produce json
// @Param request body dto.CreateAliasRequest true "Alias information"
// @Success 201 {object} dto.APIResponse{data=dto.AliasResponse} "Alias created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Failure 409 {object} dto.ErrorResponse "Alias already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /aliases [post]
func (c *AliasController) CreateAlias(ctx *gin.Context) {
	var req dto.CreateAliasRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid alias data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	alias := models.Alias{
		Alias: req.Alias,
		ISBN:  req.ISBN,
	}

	if err := c.aliasService.CreateAlias(ctx, &alias); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.AliasResponse{Alias: alias.Alias, ISBN: alias.ISBN},
		Timestamp: time.Now(),
	})
}

// GetAllAliases retrieves all aliases
// @Summary Get all aliases
// @Description Retrieves a list of all registered scan code aliases
// @Tags aliases
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AliasListResponse} "Aliases retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /aliases [get]
func (c *AliasController) GetAllAliases(ctx *gin.Context) {
	aliases, err := c.aliasService.GetAllAliases(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewAliasListResponse(aliases),
		Timestamp: time.Now(),
	})
}

// DeleteAlias removes an alias
// @Summary Delete an alias
// @Description Removes a registered scan code alias
// @Tags aliases
// @Accept json
// @Produce json
// @Param alias path string true "Alias"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Alias deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Alias not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /aliases/{alias} [delete]
func (c *AliasController) DeleteAlias(ctx *gin.Context) {
	if err := c.aliasService.DeleteAlias(ctx, ctx.Param("alias")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Alias deleted successfully"},
		Timestamp: time.Now(),
	})
}
