package dto

import (
	"github.com/philip98/obsidian-server/internal/app/models"
)

// BookResponse represents book information
type BookResponse struct {
	ISBN     string `json:"isbn" example:"978-3-12-104104-6"`
	Title    string `json:"title" example:"Green Line 3"`
	GradeTag string `json:"gradeTag,omitempty" example:"7"`
}

// CreateBookRequest represents book creation data
type CreateBookRequest struct {
	ISBN     string `json:"isbn" binding:"required"`
	Title    string `json:"title" binding:"required"`
	GradeTag string `json:"gradeTag"`
}

// UpdateBookRequest represents book update data
type UpdateBookRequest struct {
	Title    string `json:"title" binding:"required"`
	GradeTag string `json:"gradeTag"`
}

// BookListResponse represents a list of books
type BookListResponse struct {
	Books []BookResponse `json:"books"`
}

// NewBookResponse converts a book model
func NewBookResponse(book *models.Book) BookResponse {
	return BookResponse{
		ISBN:     book.ISBN,
		Title:    book.Title,
		GradeTag: book.GradeTag,
	}
}

// NewBookListResponse converts a list of book models
func NewBookListResponse(books []*models.Book) BookListResponse {
	resp := BookListResponse{Books: make([]BookResponse, 0, len(books))}
	for _, book := range books {
		resp.Books = append(resp.Books, NewBookResponse(book))
	}
	return resp
}
