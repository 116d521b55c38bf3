package domain

// Board is the fixed-size grid of cells. Row 0 is the bottom row,
// pieces fall toward lower row indices.
type Board struct {
	rows    int
	columns int
	cells   [][]Cell // cells[row][column]
}

func NewBoard(rows, columns int) (*Board, error) {
	if rows < 1 || columns < 1 {
		return nil, ErrInvalidDimensions
	}
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, columns)
	}
	return &Board{rows: rows, columns: columns, cells: cells}, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Columns() int { return b.columns }

func (b *Board) inBounds(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.columns
}

func (b *Board) boundsError(row, column int) error {
	return &BoundsError{Row: row, Column: column, Rows: b.rows, Columns: b.columns}
}

func (b *Board) Get(row, column int) (Cell, error) {
	if !b.inBounds(row, column) {
		return Empty, b.boundsError(row, column)
	}
	return b.cells[row][column], nil
}

// Set overwrites the cell unconditionally, callers decide whether that is legal
func (b *Board) Set(row, column int, cell Cell) error {
	if !b.inBounds(row, column) {
		return b.boundsError(row, column)
	}
	b.cells[row][column] = cell
	return nil
}

// at is the unchecked accessor used by the rule code once indices are known good
func (b *Board) at(row, column int) Cell {
	return b.cells[row][column]
}

func (b *Board) IsFull() bool {
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}
	return true
}

// ColumnHeight counts the occupied cells in column
func (b *Board) ColumnHeight(column int) (int, error) {
	if column < 0 || column >= b.columns {
		return 0, b.boundsError(0, column)
	}
	height := 0
	for row := 0; row < b.rows; row++ {
		if b.cells[row][column] != Empty {
			height++
		}
	}
	return height, nil
}

// Clear empties every cell in place
func (b *Board) Clear() {
	for _, row := range b.cells {
		for c := range row {
			row[c] = Empty
		}
	}
}

// this creates a deep copy of the board
func (b *Board) Copy() *Board {
	cells := make([][]Cell, len(b.cells))
	for i := range b.cells {
		cells[i] = make([]Cell, len(b.cells[i]))
		copy(cells[i], b.cells[i])
	}
	return &Board{rows: b.rows, columns: b.columns, cells: cells}
}

// Equal reports whether both boards have the same size and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.columns != other.columns {
		return false
	}
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}
