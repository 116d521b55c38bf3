package domain

import "fmt"

type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

const (
	DefaultRows    = 6
	DefaultColumns = 7
	ToWin          = 4
)

// Valid reports whether p is one of the two players
func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

// Other returns the opponent of p
func (p PlayerID) Other() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return fmt.Sprintf("player(%d)", int(p))
}

// Cell is either empty or occupied by exactly one player.
// The zero value is an empty cell.
type Cell uint8

const Empty Cell = 0

// Occupied returns the cell owned by p
func Occupied(p PlayerID) Cell {
	return Cell(p)
}

func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Owner returns the player occupying the cell, ok is false for an empty cell
func (c Cell) Owner() (PlayerID, bool) {
	if c == Empty {
		return 0, false
	}
	return PlayerID(c), true
}

func (c Cell) String() string {
	if p, ok := c.Owner(); ok {
		return "occupied(" + p.String() + ")"
	}
	return "empty"
}

// to represent the game status
type GameState string

const (
	StatePlaying GameState = "playing"
	StateWon     GameState = "won"
	StateDraw    GameState = "draw"
)

// GameStatus is Playing, Won(Winner) or Draw. Winner is only set when State is StateWon.
type GameStatus struct {
	State  GameState
	Winner PlayerID
}

func Playing() GameStatus { return GameStatus{State: StatePlaying} }

func Won(p PlayerID) GameStatus { return GameStatus{State: StateWon, Winner: p} }

func Draw() GameStatus { return GameStatus{State: StateDraw} }

func (s GameStatus) IsOver() bool {
	return s.State != StatePlaying
}

func (s GameStatus) String() string {
	if s.State == StateWon {
		return fmt.Sprintf("won(%s)", s.Winner)
	}
	return string(s.State)
}

// MoveOutcome tells the caller what a successful move did to the game
type MoveOutcome int

const (
	OutcomeContinue MoveOutcome = iota
	OutcomeWin
	OutcomeDraw
)

func (o MoveOutcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	}
	return "continue"
}

// Move describes an applied drop. Row is where gravity put the piece.
type Move struct {
	Player  PlayerID
	Row     int
	Column  int
	Outcome MoveOutcome
}

type Position struct {
	Row    int
	Column int
}

// Line is a winning run of ToWin cells, ordered from its starting cell
type Line struct {
	Player PlayerID
	Cells  [ToWin]Position
}

// Contains reports whether (row, col) is part of the line
func (l Line) Contains(row, col int) bool {
	for _, p := range l.Cells {
		if p.Row == row && p.Column == col {
			return true
		}
	}
	return false
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfBounds       Error = "position out of bounds"
	ErrColumnFull        Error = "column is full"
	ErrNotPlayersTurn    Error = "not this player's turn"
	ErrGameAlreadyOver   Error = "game is already over"
	ErrInvalidDimensions Error = "invalid board dimensions"
)

// BoundsError is returned when a row or column index falls outside the board.
// It matches ErrOutOfBounds with errors.Is.
type BoundsError struct {
	Row     int
	Column  int
	Rows    int
	Columns int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("position (%d, %d) out of bounds for %dx%d board", e.Row, e.Column, e.Rows, e.Columns)
}

func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
