package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawSequence fills a 6x7 board, alternating from Player1, leaving
// the pattern XXOOXXO / OOXXOOX stacked three times with no four-in-a-row.
var drawSequence = []int{
	0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 4, 2, 2, 2, 2, 2, 2, 3, 3,
	3, 3, 3, 3, 4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 6, 6, 6, 6, 6, 6, 5,
}

// play runs the columns in order, alternating players, and fails on any error
func play(t *testing.T, g *Game, columns ...int) Move {
	t.Helper()
	var last Move
	for i, col := range columns {
		move, err := g.AttemptMove(g.CurrentTurn(), col)
		require.NoError(t, err, "move %d in column %d", i, col)
		last = move
	}
	return last
}

func TestNewGame_InitialState(t *testing.T) {
	g := NewDefaultGame()

	rows, cols := g.Dimensions()
	assert.Equal(t, DefaultRows, rows)
	assert.Equal(t, DefaultColumns, cols)
	assert.Equal(t, Player1, g.CurrentTurn())
	assert.Equal(t, Playing(), g.Status())
	assert.Equal(t, 0, g.MoveCount())

	_, ok := g.LastMove()
	assert.False(t, ok)
	_, ok = g.WinningLine()
	assert.False(t, ok)

	_, err := NewGame(0, 7)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestAttemptMove_PlacesWithGravity(t *testing.T) {
	g := NewDefaultGame()

	move, err := g.AttemptMove(Player1, 3)
	require.NoError(t, err)
	assert.Equal(t, Move{Player: Player1, Row: 0, Column: 3, Outcome: OutcomeContinue}, move)

	move, err = g.AttemptMove(Player2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, move.Row)

	cell, err := g.CellAt(1, 3)
	require.NoError(t, err)
	assert.Equal(t, Occupied(Player2), cell)

	last, ok := g.LastMove()
	require.True(t, ok)
	assert.Equal(t, move, last)
	assert.Equal(t, 2, g.MoveCount())
}

func TestAttemptMove_ChangesExactlyOneCell(t *testing.T) {
	g := NewDefaultGame()
	columns := []int{3, 3, 2, 4, 6, 0, 1, 1, 5}

	for _, col := range columns {
		before := g.Board()
		mover := g.CurrentTurn()

		move, err := g.AttemptMove(mover, col)
		require.NoError(t, err)
		after := g.Board()

		changed := 0
		for r := 0; r < after.Rows(); r++ {
			for c := 0; c < after.Columns(); c++ {
				was, _ := before.Get(r, c)
				now, _ := after.Get(r, c)
				if was != now {
					changed++
					assert.Equal(t, Occupied(mover), now)
					assert.Equal(t, Position{Row: move.Row, Column: move.Column}, Position{Row: r, Column: c})
				}
			}
		}
		assert.Equal(t, 1, changed)
	}
}

func TestAttemptMove_TurnsAlternate(t *testing.T) {
	g := NewDefaultGame()

	var previous PlayerID
	for i, col := range []int{0, 1, 2, 3, 4, 5, 6, 0, 1, 2} {
		mover := g.CurrentTurn()
		if i > 0 {
			assert.NotEqual(t, previous, mover)
		}
		move, err := g.AttemptMove(mover, col)
		require.NoError(t, err)
		require.Equal(t, OutcomeContinue, move.Outcome)
		previous = mover
	}
}

func TestAttemptMove_NotPlayersTurn(t *testing.T) {
	g := NewDefaultGame()
	play(t, g, 3)
	before := g.Board()

	_, err := g.AttemptMove(Player1, 4)
	assert.ErrorIs(t, err, ErrNotPlayersTurn)
	assert.True(t, before.Equal(g.Board()))
	assert.Equal(t, Player2, g.CurrentTurn())
	assert.Equal(t, 1, g.MoveCount())

	_, err = g.AttemptMove(PlayerID(7), 4)
	assert.ErrorIs(t, err, ErrNotPlayersTurn)
}

func TestAttemptMove_InvalidColumnIsNoop(t *testing.T) {
	g := NewDefaultGame()
	play(t, g, 0, 0, 0, 0, 0, 0)
	before := g.Board()

	_, err := g.AttemptMove(Player1, 0)
	assert.ErrorIs(t, err, ErrColumnFull)

	_, err = g.AttemptMove(Player1, 7)
	var be *BoundsError
	assert.ErrorAs(t, err, &be)

	_, err = g.AttemptMove(Player1, -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	assert.True(t, before.Equal(g.Board()))
	assert.Equal(t, Player1, g.CurrentTurn())
	assert.Equal(t, 6, g.MoveCount())
	assert.Equal(t, Playing(), g.Status())
}

func TestAttemptMove_HorizontalWin(t *testing.T) {
	g := NewDefaultGame()

	move := play(t, g, 0, 0, 1, 1, 2, 2, 3)
	assert.Equal(t, OutcomeWin, move.Outcome)
	assert.Equal(t, Won(Player1), g.Status())
	assert.True(t, g.IsFinished())
	assert.Equal(t, Player1, g.CurrentTurn(), "turn does not advance after a win")

	line, ok := g.WinningLine()
	require.True(t, ok)
	assert.Equal(t, Player1, line.Player)
	for col := 0; col < 4; col++ {
		assert.True(t, line.Contains(0, col))
	}

	winner, found := FindWinner(g.Board())
	require.True(t, found)
	assert.Equal(t, Player1, winner)
}

func TestAttemptMove_VerticalWinForPlayer2(t *testing.T) {
	g := NewDefaultGame()

	move := play(t, g, 0, 6, 1, 6, 2, 6, 4, 6)
	assert.Equal(t, OutcomeWin, move.Outcome)
	assert.Equal(t, Player2, move.Player)
	assert.Equal(t, Won(Player2), g.Status())
}

func TestAttemptMove_DiagonalWin(t *testing.T) {
	g := NewDefaultGame()

	// X climbs the staircase 0,1,2,3 on rows 0..3
	move := play(t, g, 0, 1, 1, 2, 2, 3, 2, 3, 3, 6, 3)
	assert.Equal(t, OutcomeWin, move.Outcome)
	assert.Equal(t, Won(Player1), g.Status())

	line, ok := g.WinningLine()
	require.True(t, ok)
	assert.Equal(t, [ToWin]Position{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, line.Cells)
}

func TestAttemptMove_AfterGameOver(t *testing.T) {
	g := NewDefaultGame()
	play(t, g, 0, 0, 1, 1, 2, 2, 3)
	before := g.Board()

	for _, p := range []PlayerID{Player1, Player2} {
		_, err := g.AttemptMove(p, 5)
		assert.ErrorIs(t, err, ErrGameAlreadyOver)
	}
	assert.True(t, before.Equal(g.Board()))
}

func TestAttemptMove_Draw(t *testing.T) {
	g := NewDefaultGame()

	require.Len(t, drawSequence, DefaultRows*DefaultColumns)
	last := play(t, g, drawSequence[:len(drawSequence)-1]...)
	assert.Equal(t, OutcomeContinue, last.Outcome)
	assert.Equal(t, Playing(), g.Status())

	move := play(t, g, drawSequence[len(drawSequence)-1])
	assert.Equal(t, OutcomeDraw, move.Outcome)
	assert.Equal(t, Player2, move.Player)
	assert.Equal(t, Draw(), g.Status())
	assert.True(t, g.Board().IsFull())

	_, found := FindWinner(g.Board())
	assert.False(t, found)

	_, err := g.AttemptMove(g.CurrentTurn(), 0)
	assert.ErrorIs(t, err, ErrGameAlreadyOver)
}

func TestReset(t *testing.T) {
	tests := []struct {
		name    string
		columns []int
		status  GameStatus
	}{
		{"after win", []int{0, 0, 1, 1, 2, 2, 3}, Won(Player1)},
		{"after draw", drawSequence, Draw()},
		{"mid game", []int{3, 4}, Playing()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewDefaultGame()
			play(t, g, tt.columns...)
			require.Equal(t, tt.status, g.Status())

			g.Reset()

			assert.Equal(t, Playing(), g.Status())
			assert.Equal(t, Player1, g.CurrentTurn())
			assert.Equal(t, 0, g.MoveCount())
			_, ok := g.WinningLine()
			assert.False(t, ok)
			_, ok = g.LastMove()
			assert.False(t, ok)

			rows, cols := g.Dimensions()
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					cell, err := g.CellAt(r, c)
					require.NoError(t, err)
					assert.True(t, cell.IsEmpty())
				}
			}

			_, err := g.AttemptMove(Player1, 3)
			assert.NoError(t, err)
		})
	}
}

func TestGame_SmallBoardEndsInDraw(t *testing.T) {
	g, err := NewGame(2, 2)
	require.NoError(t, err)

	move := play(t, g, 0, 0, 1, 1)
	assert.Equal(t, OutcomeDraw, move.Outcome)
	assert.Equal(t, Draw(), g.Status())
}

func TestGame_BoardIsACopy(t *testing.T) {
	g := NewDefaultGame()
	b := g.Board()
	require.NoError(t, b.Set(0, 0, Occupied(Player2)))

	cell, err := g.CellAt(0, 0)
	require.NoError(t, err)
	assert.True(t, cell.IsEmpty())
}
