package models

// Alias maps a scanned code to a canonical book ISBN. Aliases are stored
// lower-case; many aliases may point at the same book.
type Alias struct {
	Alias string `json:"alias" db:"alias" example:"mathe5"`
	ISBN  string `json:"isbn" db:"isbn" example:"9783060600160"`
}
