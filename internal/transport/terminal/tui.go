package terminal

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/connect4/internal/domain"
	"github.com/iamasit07/4-in-a-row/connect4/internal/service/game"
)

// board placement on screen
const (
	boardX    = 2
	boardY    = 3
	cellWidth = 3
)

var (
	boardStyle   = tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorBlack)
	hoverStyle   = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorBlack)
	textStyle    = tcell.StyleDefault
	cursorStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	messageStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	fullStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// TUIRunner is the full-screen game. The column under the mouse pointer
// or the keyboard cursor is highlighted and a click drops a piece there.
type TUIRunner struct {
	session *game.GameSession
	screen  tcell.Screen
	cursor  int
	pressed bool
	message string
}

func NewTUIRunner(session *game.GameSession, screen tcell.Screen) *TUIRunner {
	_, cols := session.Dimensions()
	return &TUIRunner{session: session, screen: screen, cursor: cols / 2}
}

// Run owns the screen until the player quits or ctx is cancelled
func (t *TUIRunner) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer t.screen.Fini()
	t.screen.EnableMouse()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	t.draw()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !t.handleEvent(ev) {
			return nil
		}
		t.draw()
	}
}

// handleEvent applies one input event, false means quit
func (t *TUIRunner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		return false
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	}
	return true
}

func (t *TUIRunner) handleKey(ev *tcell.EventKey) bool {
	_, cols := t.session.Dimensions()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		if t.cursor > 0 {
			t.cursor--
		}
	case tcell.KeyRight:
		if t.cursor < cols-1 {
			t.cursor++
		}
	case tcell.KeyEnter:
		t.drop(t.cursor)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			t.drop(t.cursor)
		case 'r', 'R':
			t.session.Reset()
			t.message = ""
		}
	}
	return true
}

func (t *TUIRunner) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	col, ok := t.columnAt(x, y)
	if ok {
		t.cursor = col
	}

	down := ev.Buttons()&tcell.Button1 != 0
	if down && !t.pressed && ok {
		t.drop(col)
	}
	t.pressed = down
}

// columnAt maps a screen position to a board column, the whole column
// strip including the indicator row above the board is clickable
func (t *TUIRunner) columnAt(x, y int) (int, bool) {
	rows, cols := t.session.Dimensions()
	if x < boardX || y < boardY-1 || y >= boardY+rows {
		return 0, false
	}
	col := (x - boardX) / cellWidth
	if col >= cols {
		return 0, false
	}
	return col, true
}

func (t *TUIRunner) drop(column int) {
	move, err := t.session.AttemptMove(t.session.CurrentTurn(), column)
	switch {
	case err == nil:
		t.message = ""
		log.Debug().Str("component", "terminal").Int("row", move.Row).Int("column", move.Column).Msg("piece dropped")
	case errors.Is(err, domain.ErrColumnFull):
		t.message = fmt.Sprintf("Column %d is full", column)
	case errors.Is(err, domain.ErrGameAlreadyOver):
		t.message = "Game over, press r to play again"
	default:
		t.message = err.Error()
	}
}

func (t *TUIRunner) draw() {
	snap := t.session.Snapshot()
	rows, cols := snap.Board.Rows(), snap.Board.Columns()

	t.screen.Clear()
	t.drawText(0, 0, textStyle, "Connect Four")

	open := make([]bool, cols)
	for _, col := range domain.ValidColumns(snap.Board) {
		open[col] = true
	}
	for col := 0; col < cols; col++ {
		style := textStyle
		if !open[col] {
			style = fullStyle
		}
		t.drawText(boardX+col*cellWidth+1, boardY-2, style, fmt.Sprintf("%d", col%10))
	}
	if !snap.Status.IsOver() {
		marker, style := 'v', cursorStyle
		if !open[t.cursor] {
			marker, style = 'x', messageStyle
		}
		t.screen.SetContent(boardX+t.cursor*cellWidth+1, boardY-1, marker, nil, style)
	}

	for row := rows - 1; row >= 0; row-- {
		y := boardY + (rows - 1 - row)
		for col := 0; col < cols; col++ {
			cell, err := snap.Board.Get(row, col)
			if err != nil {
				panic(err)
			}
			bg := boardStyle
			if col == t.cursor && !snap.Status.IsOver() {
				bg = hoverStyle
			}
			style, glyph := pieceStyle(bg, cell)
			if snap.WinningLine != nil && snap.WinningLine.Contains(row, col) {
				style = style.Reverse(true)
			}
			x := boardX + col*cellWidth
			t.screen.SetContent(x, y, ' ', nil, bg)
			t.screen.SetContent(x+1, y, glyph, nil, style)
			t.screen.SetContent(x+2, y, ' ', nil, bg)
		}
	}

	statusY := boardY + rows + 1
	t.drawText(0, statusY, textStyle, StatusLine(snap, t.session.GetUsername))
	if t.message != "" {
		t.drawText(0, statusY+1, messageStyle, t.message)
	}
	t.drawText(0, statusY+2, textStyle, "←/→ or mouse: pick column  enter/space/click: drop  r: reset  q: quit")
	t.screen.Show()
}

func pieceStyle(bg tcell.Style, cell domain.Cell) (tcell.Style, rune) {
	p, ok := cell.Owner()
	if !ok {
		return bg.Foreground(tcell.ColorBlack), '·'
	}
	if p == domain.Player1 {
		return bg.Foreground(tcell.ColorRed).Bold(true), '●'
	}
	return bg.Foreground(tcell.ColorYellow).Bold(true), '●'
}

func (t *TUIRunner) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
