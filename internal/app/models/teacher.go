package models

// Teacher defines the teacher model based on the 'teachers' table.
type Teacher struct {
	ID           int64  `json:"id" db:"id" example:"3"`
	Name         string `json:"name" db:"name" example:"M. Schneider"`
	Abbreviation string `json:"abbreviation" db:"abbreviation" example:"SCH"`
}
