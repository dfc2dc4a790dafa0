package models

import (
	"strconv"
	"time"
)

// The school runs grades 5 through 12; the final grade graduates in the
// calendar year its school year ends in. A new school year starts on
// September 1st.
const (
	FinalGrade          = 12
	lastGradeWithLetter = 10
	schoolYearStartMon  = 9 // September
)

// SchoolYearEnd returns the calendar year in which the school year running
// at the given date ends.
func SchoolYearEnd(at time.Time) int {
	if int(at.Month()) >= schoolYearStartMon {
		return at.Year() + 1
	}
	return at.Year()
}

// Grade returns the grade level a student with the given graduation year is
// in during the school year running at the given date. The result can fall
// outside the 5..12 range for students who already left or have not yet
// arrived; callers decide whether that matters.
func Grade(graduationYear int, at time.Time) int {
	return FinalGrade - (graduationYear - SchoolYearEnd(at))
}

// ClassLabel builds the class designation for a student, e.g. "5a" for the
// lower grades and a bare "11"/"12" for the upper ones (which have no form
// letters).
func ClassLabel(graduationYear int, formLetter string, at time.Time) string {
	grade := Grade(graduationYear, at)
	if grade > lastGradeWithLetter {
		return strconv.Itoa(grade)
	}
	return strconv.Itoa(grade) + formLetter
}

// GradeFromLabel extracts the grade level from a class label ("5a" -> 5,
// "10c" -> 10, "12" -> 12). Returns 0 if the label carries no grade.
func GradeFromLabel(label string) int {
	digits := 0
	for digits < len(label) && label[digits] >= '0' && label[digits] <= '9' {
		digits++
	}
	grade, err := strconv.Atoi(label[:digits])
	if err != nil {
		return 0
	}
	return grade
}

// ListGrades returns the grade levels whose book lists are relevant for a
// class at the given date: the "new" list (books being handed out) and the
// "old" list (books being returned). After the September rollover the class
// label already names the new grade, so the old list sits one grade below;
// before it the label still names the old grade and the new list sits one
// above.
func ListGrades(label string, at time.Time) (newList, oldList int) {
	grade := GradeFromLabel(label)
	if int(at.Month()) >= schoolYearStartMon {
		return grade, grade - 1
	}
	return grade + 1, grade
}
