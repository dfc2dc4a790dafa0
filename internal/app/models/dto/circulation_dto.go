package dto

import (
	"github.com/philip98/obsidian-server/internal/app/services"
)

// SubmitRequest represents one batch of scanned books for a single borrower
type SubmitRequest struct {
	BorrowerID int64    `json:"borrowerId" binding:"required,gt=0" example:"1"`
	Kind       string   `json:"kind" binding:"required" example:"STUDENT" enums:"STUDENT,TEACHER"`
	Action     string   `json:"action" binding:"required" example:"BORROW" enums:"BORROW,RETURN"`
	TermEnd    bool     `json:"termEnd" example:"false"`
	Date       string   `json:"date,omitempty" example:"2026-08-29"`
	Items      []string `json:"items" binding:"required"`
}

// ItemResultResponse reports what happened to one scanned line
type ItemResultResponse struct {
	Line    int    `json:"line" example:"1"`
	Scanned string `json:"scanned" example:"gl3"`
	ISBN    string `json:"isbn,omitempty" example:"978-3-12-104104-6"`
	Title   string `json:"title,omitempty" example:"Green Line 3"`
	Error   string `json:"error,omitempty" example:"book not found"`
}

// SubmitResponse represents the outcome of a scan batch
type SubmitResponse struct {
	Results []ItemResultResponse `json:"results"`
	Applied int                  `json:"applied" example:"3"`
	Skipped int                  `json:"skipped" example:"1"`
}

// NewSubmitResponse converts the per-line results of a batch
func NewSubmitResponse(results []services.ItemResult) SubmitResponse {
	resp := SubmitResponse{Results: make([]ItemResultResponse, 0, len(results))}
	for _, r := range results {
		item := ItemResultResponse{
			Line:    r.Line,
			Scanned: r.Scanned,
			ISBN:    r.ISBN,
			Title:   r.Title,
		}
		if r.Err != nil {
			item.Error = r.Err.Error()
			resp.Skipped++
		} else {
			resp.Applied++
		}
		resp.Results = append(resp.Results, item)
	}
	return resp
}
