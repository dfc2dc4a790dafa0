package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/app/repositories"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
)

// BookService handles book-related operations
type BookService struct {
	bookRepo *repositories.BookRepository
}

// NewBookService creates a new book service instance
func NewBookService(bookRepo *repositories.BookRepository) *BookService {
	return &BookService{
		bookRepo: bookRepo,
	}
}

// validateBook validates book data before database operations
func (s *BookService) validateBook(book *models.Book) error {
	if book == nil {
		return fmt.Errorf("%w: book is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(book.ISBN) == "" {
		return fmt.Errorf("%w: ISBN cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(book.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	book.ISBN = strings.TrimSpace(book.ISBN)
	book.Title = strings.TrimSpace(book.Title)
	book.GradeTag = strings.TrimSpace(book.GradeTag)

	return nil
}

// CreateBook creates a new book
func (s *BookService) CreateBook(ctx context.Context, book *models.Book) error {
	if err := s.validateBook(book); err != nil {
		return err
	}

	return s.bookRepo.Create(ctx, book)
}

// GetBookByISBN retrieves a book by ISBN
func (s *BookService) GetBookByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	if strings.TrimSpace(isbn) == "" {
		return nil, fmt.Errorf("%w: ISBN cannot be empty", apperrors.ErrValidationFailed)
	}

	book, err := s.bookRepo.GetByISBN(ctx, strings.TrimSpace(isbn))
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperrors.ErrBookNotFound
	}

	return book, nil
}

// GetAllBooks retrieves all books
func (s *BookService) GetAllBooks(ctx context.Context) ([]*models.Book, error) {
	return s.bookRepo.GetAll(ctx)
}

// ListBooksByGrade retrieves the books of one grade level
func (s *BookService) ListBooksByGrade(ctx context.Context, grade int) ([]*models.Book, error) {
	if grade <= 0 {
		return nil, fmt.Errorf("%w: grade must be positive", apperrors.ErrValidationFailed)
	}

	return s.bookRepo.ListByGrade(ctx, grade)
}

// UpdateBook updates an existing book
func (s *BookService) UpdateBook(ctx context.Context, book *models.Book) error {
	if err := s.validateBook(book); err != nil {
		return err
	}

	return s.bookRepo.Update(ctx, book)
}

// DeleteBook deletes a book by ISBN
func (s *BookService) DeleteBook(ctx context.Context, isbn string) error {
	if strings.TrimSpace(isbn) == "" {
		return fmt.Errorf("%w: ISBN cannot be empty", apperrors.ErrValidationFailed)
	}

	return s.bookRepo.Delete(ctx, strings.TrimSpace(isbn))
}
