package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestSchoolYearEnd(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{name: "spring belongs to the running year", at: date(2026, time.May, 10), want: 2026},
		{name: "august still belongs to the old year", at: date(2026, time.August, 31), want: 2026},
		{name: "september starts the next year", at: date(2026, time.September, 1), want: 2027},
		{name: "december belongs to the next year", at: date(2026, time.December, 24), want: 2027},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SchoolYearEnd(tt.at))
		})
	}
}

func TestGrade(t *testing.T) {
	// A student graduating in 2031 is in grade 7 during the 2025/26 school
	// year and moves to grade 8 after the September rollover.
	assert.Equal(t, 7, Grade(2031, date(2026, time.May, 10)))
	assert.Equal(t, 8, Grade(2031, date(2026, time.September, 15)))
	assert.Equal(t, FinalGrade, Grade(2026, date(2026, time.May, 10)))
}

func TestClassLabel(t *testing.T) {
	tests := []struct {
		name           string
		graduationYear int
		formLetter     string
		at             time.Time
		want           string
	}{
		{name: "lower grade keeps the letter", graduationYear: 2031, formLetter: "a", at: date(2026, time.May, 10), want: "7a"},
		{name: "grade ten keeps the letter", graduationYear: 2028, formLetter: "c", at: date(2026, time.May, 10), want: "10c"},
		{name: "grade eleven drops the letter", graduationYear: 2027, formLetter: "b", at: date(2026, time.May, 10), want: "11"},
		{name: "final grade drops the letter", graduationYear: 2026, formLetter: "a", at: date(2026, time.May, 10), want: "12"},
		{name: "rollover shifts the label", graduationYear: 2031, formLetter: "a", at: date(2026, time.September, 15), want: "8a"},
		{name: "missing letter", graduationYear: 2031, formLetter: "", at: date(2026, time.May, 10), want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassLabel(tt.graduationYear, tt.formLetter, tt.at))
		})
	}
}

func TestStudentClassLabel(t *testing.T) {
	student := &Student{Name: "Anna Schmidt", GraduationYear: 2031, FormLetter: "a"}
	assert.Equal(t, "7a", student.ClassLabel(date(2026, time.May, 10)))
}

func TestGradeFromLabel(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{label: "5a", want: 5},
		{label: "10c", want: 10},
		{label: "12", want: 12},
		{label: "a", want: 0},
		{label: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, GradeFromLabel(tt.label))
		})
	}
}

func TestListGrades(t *testing.T) {
	// Before the rollover the label names the old grade, after it the new one.
	newList, oldList := ListGrades("7a", date(2026, time.July, 1))
	assert.Equal(t, 8, newList)
	assert.Equal(t, 7, oldList)

	newList, oldList = ListGrades("7a", date(2026, time.October, 1))
	assert.Equal(t, 7, newList)
	assert.Equal(t, 6, oldList)
}

func TestBorrowerKindValid(t *testing.T) {
	assert.True(t, BorrowerStudent.Valid())
	assert.True(t, BorrowerTeacher.Valid())
	assert.False(t, BorrowerKind("ALIEN").Valid())
	assert.False(t, BorrowerKind("").Valid())
}

func TestBookLabel(t *testing.T) {
	book := &Book{ISBN: "9783060600160", Title: "Mathematik heute", GradeTag: "5 6"}
	assert.Equal(t, "Mathematik heute 5 6", book.Label())

	book = &Book{ISBN: "9783060600160", Title: "  Mathematik   heute ", GradeTag: ""}
	assert.Equal(t, "Mathematik heute", book.Label())
}

func TestMatrix(t *testing.T) {
	rows := []MatrixRow{{StudentID: 1, Label: "Anna"}, {StudentID: 2, Label: "Ben"}}
	columns := []MatrixColumn{{ISBN: "111", Label: "Math"}, {Label: "Other loans"}}

	matrix := NewMatrix(rows, columns)
	assert.Equal(t, 1, matrix.OtherColumn())
	assert.False(t, matrix.Cell(0, 0))

	matrix.Set(0, 0)
	matrix.Set(1, 1)
	assert.True(t, matrix.Cell(0, 0))
	assert.True(t, matrix.Cell(1, 1))
	assert.False(t, matrix.Cell(0, 1))

	// Out-of-range access is ignored rather than panicking.
	matrix.Set(5, 0)
	assert.False(t, matrix.Cell(5, 0))
	assert.False(t, matrix.Cell(-1, 0))

	empty := NewMatrix(nil, []MatrixColumn{{ISBN: "111", Label: "Math"}})
	assert.Equal(t, -1, empty.OtherColumn())
}
