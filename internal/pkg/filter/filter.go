// Package filter turns the populated fields of a search form into a SQL
// predicate. Each searchable entity declares its fields once; building a
// predicate skips blank inputs and joins the rest with AND, in the order
// the fields were declared.
package filter

import (
	"fmt"
	"strconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// Comparison selects how a populated field is matched against its column.
type Comparison int

const (
	// Contains matches substrings, case-insensitively.
	Contains Comparison = iota
	// Exact matches the column value as-is.
	Exact
	// Year matches the calendar year of a date column.
	Year
)

// Field describes one searchable input of an entity.
type Field struct {
	Name   string
	Column string
	Cmp    Comparison
}

// Spec lists the searchable fields of one entity in the order the search
// form presents them.
type Spec struct {
	Entity string
	Table  string
	Fields []Field
}

// Searchable entity names as they appear in search requests.
const (
	EntityStudentLoans = "studentLoans"
	EntityTeacherLoans = "teacherLoans"
	EntitySwaps        = "swaps"
	EntityStudents     = "students"
	EntityTeachers     = "teachers"
	EntityBooks        = "books"
)

var specs = []Spec{
	{
		Entity: EntityStudentLoans,
		Table:  "student_loan_records",
		Fields: []Field{
			{Name: "name", Column: "student_name", Cmp: Contains},
			{Name: "class", Column: "class", Cmp: Exact},
			{Name: "title", Column: "book_title", Cmp: Contains},
			{Name: "date", Column: "lent_at", Cmp: Exact},
		},
	},
	{
		Entity: EntityTeacherLoans,
		Table:  "teacher_loan_records",
		Fields: []Field{
			{Name: "name", Column: "teacher_name", Cmp: Contains},
			{Name: "abbreviation", Column: "abbreviation", Cmp: Exact},
			{Name: "title", Column: "book_title", Cmp: Contains},
			{Name: "date", Column: "lent_at", Cmp: Exact},
		},
	},
	{
		Entity: EntitySwaps,
		Table:  "swap_records",
		Fields: []Field{
			{Name: "name", Column: "student_name", Cmp: Contains},
			{Name: "class", Column: "class", Cmp: Exact},
			{Name: "title", Column: "book_title", Cmp: Contains},
			{Name: "year", Column: "swapped_at", Cmp: Year},
		},
	},
	{
		Entity: EntityStudents,
		Table:  "students",
		Fields: []Field{
			{Name: "name", Column: "name", Cmp: Contains},
			{Name: "graduationYear", Column: "graduation_year", Cmp: Exact},
			{Name: "formLetter", Column: "form_letter", Cmp: Exact},
		},
	},
	{
		Entity: EntityTeachers,
		Table:  "teachers",
		Fields: []Field{
			{Name: "name", Column: "name", Cmp: Contains},
			{Name: "abbreviation", Column: "abbreviation", Cmp: Exact},
		},
	},
	{
		Entity: EntityBooks,
		Table:  "books",
		Fields: []Field{
			{Name: "isbn", Column: "isbn", Cmp: Exact},
			{Name: "title", Column: "title", Cmp: Contains},
			{Name: "grade", Column: "grade_tag", Cmp: Contains},
		},
	},
}

// SpecFor returns the spec of a searchable entity.
func SpecFor(entity string) (Spec, bool) {
	for _, s := range specs {
		if s.Entity == entity {
			return s, true
		}
	}
	return Spec{}, false
}

// Entities returns the names of all searchable entities, in registration order.
func Entities() []string {
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Entity)
	}
	return names
}

// Build turns the populated values into a conjunction over the spec's
// fields. Blank values contribute nothing; when every value is blank the
// expression is nil and the caller selects all rows. Values under names the
// spec does not declare are rejected.
func (s Spec) Build(values map[string]string) (exp.Expression, error) {
	for name := range values {
		if !s.hasField(name) {
			return nil, fmt.Errorf("entity %s has no searchable field %q", s.Entity, name)
		}
	}

	var exprs []exp.Expression
	for _, f := range s.Fields {
		v := values[f.Name]
		if v == "" {
			continue
		}

		switch f.Cmp {
		case Contains:
			exprs = append(exprs, goqu.C(f.Column).ILike("%"+v+"%"))
		case Exact:
			exprs = append(exprs, goqu.C(f.Column).Eq(v))
		case Year:
			year, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("field %s: invalid year %q", f.Name, v)
			}
			exprs = append(exprs, goqu.L("EXTRACT(YEAR FROM ?)", goqu.C(f.Column)).Eq(year))
		default:
			return nil, fmt.Errorf("field %s: unknown comparison %d", f.Name, f.Cmp)
		}
	}

	if len(exprs) == 0 {
		return nil, nil
	}
	return goqu.And(exprs...), nil
}

func (s Spec) hasField(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}
