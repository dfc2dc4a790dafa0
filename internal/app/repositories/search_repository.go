package repositories

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/filter"
)

// SearchRepository runs filtered queries against the search views
type SearchRepository struct {
	db      *pgxpool.Pool
	dialect goqu.DialectWrapper
}

// NewSearchRepository creates a new search repository
func NewSearchRepository(db *pgxpool.Pool) *SearchRepository {
	return &SearchRepository{
		db:      db,
		dialect: goqu.Dialect("postgres"),
	}
}

// Search builds a predicate from the populated field values and runs it
// against the entity's view. Blank values match everything.
func (r *SearchRepository) Search(ctx context.Context, spec filter.Spec, values map[string]string) (*models.ResultSet, error) {
	expr, err := spec.Build(values)
	if err != nil {
		return nil, err
	}

	ds := r.dialect.From(spec.Table).Prepared(true)
	if expr != nil {
		ds = ds.Where(expr)
	}

	sql, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("error building search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error running search query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = string(f.Name)
	}

	result := &models.ResultSet{Columns: columns, Rows: [][]interface{}{}}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		result.Rows = append(result.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
