package domain

// ResolveDrop returns the row a piece dropped into column would land on.
// Columns are filled contiguously from row 0, so the landing row is the
// column height.
func ResolveDrop(board *Board, column int) (int, error) {
	height, err := board.ColumnHeight(column)
	if err != nil {
		return -1, err
	}
	if height == board.Rows() {
		return -1, ErrColumnFull
	}
	return height, nil
}

// ValidColumns lists the columns that still accept a piece
func ValidColumns(board *Board) []int {
	columns := []int{}
	for col := 0; col < board.Columns(); col++ {
		if _, err := ResolveDrop(board, col); err == nil {
			columns = append(columns, col)
		}
	}
	return columns
}
