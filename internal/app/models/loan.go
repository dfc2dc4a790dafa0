package models

import "time"

// Loan is a quantity-accumulating ledger row, unique per (borrower, book)
// within its ledger table. Quantity never survives at zero or below; a
// decrement that reaches zero is swept away by the prune pass.
type Loan struct {
	BorrowerID int64     `json:"borrowerId" db:"borrower_id"`
	ISBN       string    `json:"isbn" db:"isbn"`
	Quantity   int       `json:"quantity" db:"quantity"`
	LentAt     time.Time `json:"lentAt" db:"lent_at"`
}
