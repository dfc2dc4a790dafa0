package services

import (
	"context"
	"strings"

	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
)

// AliasLookup resolves scan codes to ISBNs. A nil alias means the code is
// not registered.
type AliasLookup interface {
	GetByAlias(ctx context.Context, alias string) (*models.Alias, error)
}

// BookLookup retrieves books by ISBN. A nil book means the ISBN is unknown.
type BookLookup interface {
	GetByISBN(ctx context.Context, isbn string) (*models.Book, error)
}

// BookResolver turns scanned text into a catalogued book. Scanners emit
// either an ISBN directly or a short code that was registered as an alias;
// unregistered codes are tried as ISBNs.
type BookResolver struct {
	aliases AliasLookup
	books   BookLookup
}

// NewBookResolver creates a new book resolver
func NewBookResolver(aliases AliasLookup, books BookLookup) *BookResolver {
	return &BookResolver{
		aliases: aliases,
		books:   books,
	}
}

// Resolve maps scanned text to a book. The text is trimmed and alias lookup
// is case-insensitive. Returns ErrBookNotFound when neither an alias nor a
// book matches.
func (r *BookResolver) Resolve(ctx context.Context, scanned string) (*models.Book, error) {
	scanned = strings.TrimSpace(scanned)
	if scanned == "" {
		return nil, apperrors.ErrBookNotFound
	}

	isbn := scanned
	alias, err := r.aliases.GetByAlias(ctx, scanned)
	if err != nil {
		return nil, err
	}
	if alias != nil {
		isbn = alias.ISBN
	}

	book, err := r.books.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperrors.ErrBookNotFound
	}

	return book, nil
}
