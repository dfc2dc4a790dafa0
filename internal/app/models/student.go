package models

import "time"

// Student defines the student model based on the 'students' table.
// The class label is not stored; it is derived from the graduation year and
// form letter relative to the current school year (see class.go).
type Student struct {
	ID             int64  `json:"id" db:"id" example:"1"`
	Name           string `json:"name" db:"name" example:"Anna Berger"`
	GraduationYear int    `json:"graduationYear" db:"graduation_year" example:"2029"`
	FormLetter     string `json:"formLetter" db:"form_letter" example:"a"`
}

// ClassLabel returns the class the student belongs to at the given date,
// e.g. "5a" or "12".
func (s *Student) ClassLabel(at time.Time) string {
	return ClassLabel(s.GraduationYear, s.FormLetter, at)
}
