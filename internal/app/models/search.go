package models

// ResultSet is a generic query result for the search endpoints: column names
// as returned by the database plus the raw row values. The search views
// decide the shape; the server just relays it.
type ResultSet struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}
