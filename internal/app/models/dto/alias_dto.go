package dto

import (
	"github.com/philip98/obsidian-server/internal/app/models"
)

// AliasResponse represents a scan code alias
type AliasResponse struct {
	Alias string `json:"alias" example:"gl3"`
	ISBN  string `json:"isbn" example:"978-3-12-104104-6"`
}

// CreateAliasRequest represents alias creation data
type CreateAliasRequest struct {
	Alias string `json:"alias" binding:"required"`
	ISBN  string `json:"isbn" binding:"required"`
}

// AliasListResponse represents a list of aliases
type AliasListResponse struct {
	Aliases []AliasResponse `json:"aliases"`
}

// NewAliasListResponse converts a list of alias models
func NewAliasListResponse(aliases []*models.Alias) AliasListResponse {
	resp := AliasListResponse{Aliases: make([]AliasResponse, 0, len(aliases))}
	for _, a := range aliases {
		resp.Aliases = append(resp.Aliases, AliasResponse{Alias: a.Alias, ISBN: a.ISBN})
	}
	return resp
}
