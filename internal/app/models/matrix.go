package models

// MatrixRow identifies one borrower row of the reconciliation grid.
type MatrixRow struct {
	StudentID int64  `json:"studentId"`
	Label     string `json:"label"`
}

// MatrixColumn identifies one book column of the reconciliation grid. The
// synthetic "other loans" column carries an empty ISBN.
type MatrixColumn struct {
	ISBN  string `json:"isbn,omitempty"`
	Label string `json:"label"`
}

// Matrix is the read-side reconciliation grid: rows are the students of one
// class, columns the books of one grade level plus the synthetic aggregate
// column. It is rebuilt in full on every refresh and holds no references
// back into the ledgers.
type Matrix struct {
	Rows    []MatrixRow    `json:"rows"`
	Columns []MatrixColumn `json:"columns"`
	Cells   [][]bool       `json:"cells"`
}

// NewMatrix allocates a dense all-false grid for the given axes.
func NewMatrix(rows []MatrixRow, columns []MatrixColumn) *Matrix {
	cells := make([][]bool, len(rows))
	for i := range cells {
		cells[i] = make([]bool, len(columns))
	}
	return &Matrix{Rows: rows, Columns: columns, Cells: cells}
}

// Cell reports whether the book in column j is recorded for the student in
// row i. Out-of-range indices are false.
func (m *Matrix) Cell(i, j int) bool {
	if i < 0 || i >= len(m.Cells) || j < 0 || j >= len(m.Cells[i]) {
		return false
	}
	return m.Cells[i][j]
}

// Set marks the cell at (i, j).
func (m *Matrix) Set(i, j int) {
	if i < 0 || i >= len(m.Cells) || j < 0 || j >= len(m.Cells[i]) {
		return
	}
	m.Cells[i][j] = true
}

// OtherColumn returns the index of the synthetic aggregate column, or -1 if
// the grid has none.
func (m *Matrix) OtherColumn() int {
	for j, col := range m.Columns {
		if col.ISBN == "" {
			return j
		}
	}
	return -1
}
