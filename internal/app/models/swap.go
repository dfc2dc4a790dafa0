package models

import "time"

// Swap is a discrete end-of-term exchange record. Existence is the only
// state; at most one per (student, book) pair.
type Swap struct {
	StudentID int64     `json:"studentId" db:"student_id"`
	ISBN      string    `json:"isbn" db:"isbn"`
	SwappedAt time.Time `json:"swappedAt" db:"swapped_at"`
}
