package domain

// direction of a line as (row step, column step)
type direction struct {
	dRow, dCol int
}

// scan order matters only for which line is reported first
var (
	horizontal    = direction{0, 1}
	vertical      = direction{1, 0}
	diagDownRight = direction{1, 1}
	diagDownLeft  = direction{1, -1}

	directions = []direction{horizontal, vertical, diagDownRight, diagDownLeft}
)

// FindWinner scans the whole board and returns the owner of the first
// four-in-a-row found
func FindWinner(board *Board) (PlayerID, bool) {
	line, ok := FindLine(board)
	if !ok {
		return 0, false
	}
	return line.Player, true
}

// FindLine scans horizontal, vertical, then both diagonals and returns the
// first run of ToWin cells owned by one player
func FindLine(board *Board) (Line, bool) {
	rows, cols := board.Rows(), board.Columns()

	for row := 0; row < rows; row++ {
		for col := 0; col+ToWin <= cols; col++ {
			if line, ok := matchAt(board, row, col, horizontal); ok {
				return line, true
			}
		}
	}

	for col := 0; col < cols; col++ {
		for row := 0; row+ToWin <= rows; row++ {
			if line, ok := matchAt(board, row, col, vertical); ok {
				return line, true
			}
		}
	}

	for row := 0; row+ToWin <= rows; row++ {
		for col := 0; col+ToWin <= cols; col++ {
			if line, ok := matchAt(board, row, col, diagDownRight); ok {
				return line, true
			}
		}
	}

	for row := 0; row+ToWin <= rows; row++ {
		for col := ToWin - 1; col < cols; col++ {
			if line, ok := matchAt(board, row, col, diagDownLeft); ok {
				return line, true
			}
		}
	}

	return Line{}, false
}

// matchAt checks the ToWin cells starting at (row, col) along d.
// The caller guarantees every cell of the run is on the board.
func matchAt(board *Board, row, col int, d direction) (Line, bool) {
	first := board.at(row, col)
	player, ok := first.Owner()
	if !ok {
		return Line{}, false
	}

	line := Line{Player: player}
	for i := 0; i < ToWin; i++ {
		r, c := row+i*d.dRow, col+i*d.dCol
		if board.at(r, c) != first {
			return Line{}, false
		}
		line.Cells[i] = Position{Row: r, Column: c}
	}
	return line, true
}

// WinsThrough only checks the lines passing through (row, col), which is
// all that can change after a piece lands there
func WinsThrough(board *Board, row, col int, player PlayerID) bool {
	_, ok := LineThrough(board, row, col, player)
	return ok
}

// LineThrough returns a winning line for player that contains (row, col)
func LineThrough(board *Board, row, col int, player PlayerID) (Line, bool) {
	if !board.inBounds(row, col) || board.at(row, col) != Occupied(player) {
		return Line{}, false
	}

	for _, d := range directions {
		// walk back to the start of the run, at most ToWin-1 cells
		startRow, startCol := row, col
		for i := 1; i < ToWin; i++ {
			r, c := row-i*d.dRow, col-i*d.dCol
			if !board.inBounds(r, c) || board.at(r, c) != Occupied(player) {
				break
			}
			startRow, startCol = r, c
		}

		line := Line{Player: player}
		count := 0
		for r, c := startRow, startCol; count < ToWin; r, c = r+d.dRow, c+d.dCol {
			if !board.inBounds(r, c) || board.at(r, c) != Occupied(player) {
				break
			}
			line.Cells[count] = Position{Row: r, Column: c}
			count++
		}
		if count == ToWin {
			return line, true
		}
	}
	return Line{}, false
}
