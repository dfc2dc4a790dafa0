package dto

// ClassListResponse represents the class labels currently in use
type ClassListResponse struct {
	Classes []string `json:"classes"`
}

// EntityListResponse represents the searchable entity names
type EntityListResponse struct {
	Entities []string `json:"entities"`
}

// FieldListResponse represents the searchable fields of one entity
type FieldListResponse struct {
	Entity string   `json:"entity" example:"students"`
	Fields []string `json:"fields"`
}
