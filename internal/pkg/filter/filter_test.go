package filter

import (
	"strings"
	"testing"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderSQL(t *testing.T, spec Spec, values map[string]string) string {
	t.Helper()

	expr, err := spec.Build(values)
	require.NoError(t, err)

	ds := goqu.Dialect("postgres").From(spec.Table)
	if expr != nil {
		ds = ds.Where(expr)
	}

	sql, _, err := ds.ToSQL()
	require.NoError(t, err)

	return sql
}

func TestBuild_AllFieldsBlank_SelectsEverything(t *testing.T) {
	spec, ok := SpecFor(EntityStudents)
	require.True(t, ok)

	expr, err := spec.Build(map[string]string{"name": "", "formLetter": ""})
	require.NoError(t, err)
	assert.Nil(t, expr)

	sql := renderSQL(t, spec, map[string]string{})
	assert.Equal(t, `SELECT * FROM "students"`, sql)
}

func TestBuild_SingleContainsField(t *testing.T) {
	spec, ok := SpecFor(EntityStudents)
	require.True(t, ok)

	sql := renderSQL(t, spec, map[string]string{"name": "Anna"})
	assert.Contains(t, sql, `"name" ILIKE '%Anna%'`)
}

func TestBuild_ExactField(t *testing.T) {
	spec, ok := SpecFor(EntityBooks)
	require.True(t, ok)

	sql := renderSQL(t, spec, map[string]string{"isbn": "978-3-12-104104-6"})
	assert.Contains(t, sql, `"isbn" = '978-3-12-104104-6'`)
}

func TestBuild_JoinsFieldsInDeclarationOrder(t *testing.T) {
	spec, ok := SpecFor(EntityStudentLoans)
	require.True(t, ok)

	// Supplied in reverse declaration order on purpose.
	sql := renderSQL(t, spec, map[string]string{
		"title": "Lambacher",
		"name":  "Meier",
	})

	namePos := strings.Index(sql, `"student_name"`)
	titlePos := strings.Index(sql, `"book_title"`)

	require.GreaterOrEqual(t, namePos, 0)
	require.GreaterOrEqual(t, titlePos, 0)
	assert.Less(t, namePos, titlePos, "name clause must precede title clause: %s", sql)
	assert.Contains(t, sql, " AND ")
}

func TestBuild_YearField(t *testing.T) {
	spec, ok := SpecFor(EntitySwaps)
	require.True(t, ok)

	sql := renderSQL(t, spec, map[string]string{"year": "2024"})
	assert.Contains(t, sql, `EXTRACT(YEAR FROM "swapped_at") = 2024`)
}

func TestBuild_InvalidYear(t *testing.T) {
	spec, ok := SpecFor(EntitySwaps)
	require.True(t, ok)

	_, err := spec.Build(map[string]string{"year": "twenty"})
	assert.Error(t, err)
}

func TestBuild_UnknownFieldRejected(t *testing.T) {
	spec, ok := SpecFor(EntityTeachers)
	require.True(t, ok)

	_, err := spec.Build(map[string]string{"isbn": "123"})
	assert.Error(t, err)
}

func TestBuild_EscapesQuotesInValues(t *testing.T) {
	spec, ok := SpecFor(EntityStudents)
	require.True(t, ok)

	sql := renderSQL(t, spec, map[string]string{"name": "O'Brien"})
	assert.Contains(t, sql, `'%O''Brien%'`)
}

func TestSpecFor_UnknownEntity(t *testing.T) {
	_, ok := SpecFor("invoices")
	assert.False(t, ok)
}

func TestEntities_ListsAllSpecs(t *testing.T) {
	assert.Equal(t, []string{
		EntityStudentLoans,
		EntityTeacherLoans,
		EntitySwaps,
		EntityStudents,
		EntityTeachers,
		EntityBooks,
	}, Entities())
}
