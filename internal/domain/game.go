package domain

import "fmt"

// Game owns the board, the turn and the status. It is not safe for
// concurrent use; callers serialize AttemptMove and Reset.
type Game struct {
	board       *Board
	currentTurn PlayerID
	status      GameStatus
	moveCount   int
	lastMove    *Move
	winningLine *Line
}

func NewGame(rows, columns int) (*Game, error) {
	board, err := NewBoard(rows, columns)
	if err != nil {
		return nil, err
	}
	return &Game{
		board:       board,
		currentTurn: Player1,
		status:      Playing(),
	}, nil
}

// NewDefaultGame returns a game on the standard 6x7 board
func NewDefaultGame() *Game {
	g, err := NewGame(DefaultRows, DefaultColumns)
	if err != nil {
		panic(err)
	}
	return g
}

// AttemptMove drops a piece for player into column. A rejected move leaves
// the game exactly as it was.
func (g *Game) AttemptMove(player PlayerID, column int) (Move, error) {
	if g.status.IsOver() {
		return Move{}, ErrGameAlreadyOver
	}
	if player != g.currentTurn {
		return Move{}, ErrNotPlayersTurn
	}

	row, err := ResolveDrop(g.board, column)
	if err != nil {
		return Move{}, err
	}

	if cell := g.board.at(row, column); cell != Empty {
		panic(fmt.Sprintf("domain: drop resolved to occupied cell (%d, %d)", row, column))
	}
	if err := g.board.Set(row, column, Occupied(player)); err != nil {
		panic(fmt.Sprintf("domain: resolved drop outside board: %v", err))
	}
	g.moveCount++

	move := Move{Player: player, Row: row, Column: column, Outcome: OutcomeContinue}

	if line, ok := LineThrough(g.board, row, column, player); ok {
		g.status = Won(player)
		g.winningLine = &line
		move.Outcome = OutcomeWin
	} else if g.board.IsFull() {
		g.status = Draw()
		move.Outcome = OutcomeDraw
	} else {
		g.currentTurn = player.Other()
	}

	g.lastMove = &move
	return move, nil
}

// Reset puts the game back to its initial state
func (g *Game) Reset() {
	g.board.Clear()
	g.currentTurn = Player1
	g.status = Playing()
	g.moveCount = 0
	g.lastMove = nil
	g.winningLine = nil
}

func (g *Game) CurrentTurn() PlayerID { return g.currentTurn }

func (g *Game) Status() GameStatus { return g.status }

func (g *Game) IsFinished() bool { return g.status.IsOver() }

func (g *Game) CellAt(row, column int) (Cell, error) {
	return g.board.Get(row, column)
}

// Dimensions returns (rows, columns)
func (g *Game) Dimensions() (int, int) {
	return g.board.Rows(), g.board.Columns()
}

func (g *Game) MoveCount() int { return g.moveCount }

// LastMove returns the most recent successful move, if any
func (g *Game) LastMove() (Move, bool) {
	if g.lastMove == nil {
		return Move{}, false
	}
	return *g.lastMove, true
}

// WinningLine is set once the game is won
func (g *Game) WinningLine() (Line, bool) {
	if g.winningLine == nil {
		return Line{}, false
	}
	return *g.winningLine, true
}

// Board returns a copy of the board, safe to hand to renderers
func (g *Game) Board() *Board {
	return g.board.Copy()
}
