package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/app/models/dto"
	"github.com/philip98/obsidian-server/internal/app/services"
	"github.com/philip98/obsidian-server/internal/middleware"
)

// BookController handles book-related operations
type BookController struct {
	bookService *services.BookService
}

// NewBookController creates a new BookController
func NewBookController(bookService *services.BookService) *BookController {
	return &BookController{
		bookService: bookService,
	}
}

// CreateBook handles book creation
// @Summary Create a new book
// @Description Creates a new book with the provided information
// @Tags books
// @Accept json
// @Produce json
// @Param request body dto.CreateBookRequest true "Book information"
// @Success 201 {object} dto.APIResponse{data=dto.BookResponse} "Book created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Book already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /books [post]
func (c *BookController) CreateBook(ctx *gin.Context) {
	var req dto.CreateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid book data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	book := models.Book{
		ISBN:     req.ISBN,
		Title:    req.Title,
		GradeTag: req.GradeTag,
	}

	if err := c.bookService.CreateBook(ctx, &book); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewBookResponse(&book),
		Timestamp: time.Now(),
	})
}

// GetBookByISBN retrieves a book by ISBN
// @Summary Get book by ISBN
// @Description Retrieves a specific book by its ISBN
// @Tags books
// @Accept json
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} dto.APIResponse{data=dto.BookResponse} "Book retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /books/{isbn} [get]
func (c *BookController) GetBookByISBN(ctx *gin.Context) {
	book, err := c.bookService.GetBookByISBN(ctx, ctx.Param("isbn"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewBookResponse(book),
		Timestamp: time.Now(),
	})
}

// GetAllBooks retrieves all books
// @Summary Get all books
// @Description Retrieves a list of all books, optionally limited to one grade level
// @Tags books
// @Accept json
// @Produce json
// @Param grade query int false "Filter by grade level"
// @Success 200 {object} dto.APIResponse{data=dto.BookListResponse} "Books retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /books [get]
func (c *BookController) GetAllBooks(ctx *gin.Context) {
	var (
		books []*models.Book
		err   error
	)

	if gradeStr := ctx.Query("grade"); gradeStr != "" {
		grade, convErr := strconv.Atoi(gradeStr)
		if convErr != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade")
			errorDetail = errorDetail.WithDetails("Grade must be a number").WithField("grade")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		books, err = c.bookService.ListBooksByGrade(ctx, grade)
	} else {
		books, err = c.bookService.GetAllBooks(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewBookListResponse(books),
		Timestamp: time.Now(),
	})
}

// UpdateBook updates an existing book
// @Summary Update a book
// @Description Updates an existing book's title and grade tag
// @Tags books
// @Accept json
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Param request body dto.UpdateBookRequest true "Book information"
// @Success 200 {object} dto.APIResponse{data=dto.BookResponse} "Book updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /books/{isbn} [put]
func (c *BookController) UpdateBook(ctx *gin.Context) {
	var req dto.UpdateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid book data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	book := models.Book{
		ISBN:     ctx.Param("isbn"),
		Title:    req.Title,
		GradeTag: req.GradeTag,
	}

	if err := c.bookService.UpdateBook(ctx, &book); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewBookResponse(&book),
		Timestamp: time.Now(),
	})
}

// DeleteBook deletes a book
// @Summary Delete a book
// @Description Deletes a book; fails while loan or swap records reference it
// @Tags books
// @Accept json
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Book deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Failure 409 {object} dto.ErrorResponse "Book still referenced by records"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /books/{isbn} [delete]
func (c *BookController) DeleteBook(ctx *gin.Context) {
	if err := c.bookService.DeleteBook(ctx, ctx.Param("isbn")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Book deleted successfully"},
		Timestamp: time.Now(),
	})
}
