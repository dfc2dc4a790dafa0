package models

// BorrowerKind selects which loan ledger a borrower's records live in.
type BorrowerKind string

const (
	BorrowerStudent BorrowerKind = "STUDENT"
	BorrowerTeacher BorrowerKind = "TEACHER"
)

// Valid reports whether k is one of the known borrower kinds.
func (k BorrowerKind) Valid() bool {
	return k == BorrowerStudent || k == BorrowerTeacher
}
