package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/philip98/obsidian-server/internal/app/models/dto"
	"github.com/philip98/obsidian-server/internal/app/services"
	"github.com/philip98/obsidian-server/internal/middleware"
)

// SearchController answers filtered queries over the searchable entities
type SearchController struct {
	searchService *services.SearchService
}

// NewSearchController creates a new SearchController
func NewSearchController(searchService *services.SearchService) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// GetEntities lists the searchable entities
// @Summary List searchable entities
// @Description Retrieves the names of all entities that can be searched
// @Tags search
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.EntityListResponse} "Entities retrieved successfully"
// @Router /search [get]
func (c *SearchController) GetEntities(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.EntityListResponse{Entities: c.searchService.Entities()},
		Timestamp: time.Now(),
	})
}

// GetFields lists the searchable fields of one entity
// @Summary List searchable fields
// @Description Retrieves the field names one entity can be searched by
// @Tags search
// @Accept json
// @Produce json
// @Param entity path string true "Entity name"
// @Success 200 {object} dto.APIResponse{data=dto.FieldListResponse} "Fields retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown entity"
// @Router /search/{entity}/fields [get]
func (c *SearchController) GetFields(ctx *gin.Context) {
	entity := ctx.Param("entity")

	fields, err := c.searchService.Fields(entity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FieldListResponse{Entity: entity, Fields: fields},
		Timestamp: time.Now(),
	})
}

// Search runs a filtered query over one entity
// @Summary Search an entity
// @Description Runs a query over one entity. Every query parameter is matched against the entity's searchable field of the same name; blank parameters match everything.
// @Tags search
// @Accept json
// @Produce json
// @Param entity path string true "Entity name"
// @Success 200 {object} dto.APIResponse{data=models.ResultSet} "Search results"
// @Failure 400 {object} dto.ErrorResponse "Unknown entity or malformed value"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /search/{entity} [get]
func (c *SearchController) Search(ctx *gin.Context) {
	values := make(map[string]string)
	for name, vals := range ctx.Request.URL.Query() {
		if len(vals) > 0 {
			values[name] = vals[0]
		}
	}

	result, err := c.searchService.Search(ctx, ctx.Param("entity"), values)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
