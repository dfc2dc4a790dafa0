package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
	"github.com/philip98/obsidian-server/internal/pkg/dberrors"
)

// BookRepository handles database operations for books
type BookRepository struct {
	db *pgxpool.Pool
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *pgxpool.Pool) *BookRepository {
	return &BookRepository{
		db: db,
	}
}

// Create creates a new book
func (r *BookRepository) Create(ctx context.Context, book *models.Book) error {
	query := `
		INSERT INTO books (isbn, title, grade_tag)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, book.ISBN, book.Title, book.GradeTag)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrBookExists
		}
		return fmt.Errorf("error creating book: %w", err)
	}

	return nil
}

// GetByISBN retrieves a book by ISBN. Returns nil without an error when no
// book carries the ISBN; scan resolution depends on that.
func (r *BookRepository) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	query := `
		SELECT isbn, title, grade_tag
		FROM books
		WHERE isbn = $1
	`

	var book models.Book
	err := r.db.QueryRow(ctx, query, isbn).Scan(
		&book.ISBN,
		&book.Title,
		&book.GradeTag,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving book: %w", err)
	}

	return &book, nil
}

// GetAll retrieves all books ordered by title
func (r *BookRepository) GetAll(ctx context.Context) ([]*models.Book, error) {
	query := `
		SELECT isbn, title, grade_tag
		FROM books
		ORDER BY title
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBooks(rows)
}

// ListByGrade retrieves the books whose grade tag mentions the given grade
// level, ordered by title. The tag is free text ("5-7", "11/12"), so the
// match is a substring match.
func (r *BookRepository) ListByGrade(ctx context.Context, grade int) ([]*models.Book, error) {
	query := `
		SELECT isbn, title, grade_tag
		FROM books
		WHERE grade_tag LIKE '%' || $1::text || '%'
		ORDER BY title
	`

	rows, err := r.db.Query(ctx, query, grade)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBooks(rows)
}

// Update updates an existing book's title and grade tag
func (r *BookRepository) Update(ctx context.Context, book *models.Book) error {
	query := `
		UPDATE books
		SET title = $1, grade_tag = $2
		WHERE isbn = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, book.Title, book.GradeTag, book.ISBN)

	if err != nil {
		return fmt.Errorf("error updating book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookNotFound
	}

	return nil
}

// Delete deletes a book by ISBN. Books with remaining loan or swap records
// are protected by foreign keys.
func (r *BookRepository) Delete(ctx context.Context, isbn string) error {
	query := `DELETE FROM books WHERE isbn = $1`
	cmdTag, err := r.db.Exec(ctx, query, isbn)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBookInUse
		}
		return fmt.Errorf("error deleting book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookNotFound
	}

	return nil
}

func scanBooks(rows pgx.Rows) ([]*models.Book, error) {
	var books []*models.Book
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(
			&book.ISBN,
			&book.Title,
			&book.GradeTag,
		); err != nil {
			return nil, err
		}
		books = append(books, &book)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}
