package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
)

func TestBookResolver(t *testing.T) {
	aliases := fakeAliasLookup{"m5": "9783060600160"}
	books := fakeBookLookup{
		"9783060600160": {ISBN: "9783060600160", Title: "Mathematik heute", GradeTag: "5"},
		"9783123456789": {ISBN: "9783123456789", Title: "Deutschbuch", GradeTag: "7"},
	}
	resolver := NewBookResolver(aliases, books)

	tests := []struct {
		name     string
		scanned  string
		wantISBN string
		wantErr  error
	}{
		{name: "alias resolves to its book", scanned: "m5", wantISBN: "9783060600160"},
		{name: "plain ISBN resolves directly", scanned: "9783123456789", wantISBN: "9783123456789"},
		{name: "scanned text is trimmed", scanned: "  m5 ", wantISBN: "9783060600160"},
		{name: "unknown code", scanned: "nope", wantErr: apperrors.ErrBookNotFound},
		{name: "blank scan", scanned: "   ", wantErr: apperrors.ErrBookNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := resolver.Resolve(context.Background(), tt.scanned)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantISBN, book.ISBN)
		})
	}
}

func TestBookResolverAliasToMissingBook(t *testing.T) {
	// An alias that points at a removed book must not fall through to the
	// scanned text.
	aliases := fakeAliasLookup{"m5": "gone"}
	books := fakeBookLookup{"m5": {ISBN: "m5", Title: "wrong"}}
	resolver := NewBookResolver(aliases, books)

	_, err := resolver.Resolve(context.Background(), "m5")
	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
}

var _ Resolver = (*BookResolver)(nil)
var _ Resolver = (*stubResolver)(nil)

// stubResolver resolves against a fixed catalogue, bypassing alias lookup.
type stubResolver map[string]*models.Book

func (r stubResolver) Resolve(_ context.Context, scanned string) (*models.Book, error) {
	if book, ok := r[scanned]; ok {
		return book, nil
	}
	return nil, apperrors.ErrBookNotFound
}
