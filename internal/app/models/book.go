package models

import "strings"

// Book defines the book model based on the 'books' table. The ISBN is the
// canonical identifier every scanned code resolves to; GradeTag lists the
// grade levels the book is used in (e.g. "5 6 7").
type Book struct {
	ISBN     string `json:"isbn" db:"isbn" example:"9783060600160"`
	Title    string `json:"title" db:"title" example:"Mathematik heute"`
	GradeTag string `json:"gradeTag" db:"grade_tag" example:"5 6"`
}

// Label returns the display label used for reconciliation columns,
// title and grade tag joined with collapsed whitespace.
func (b *Book) Label() string {
	return strings.Join(strings.Fields(b.Title+" "+b.GradeTag), " ")
}
