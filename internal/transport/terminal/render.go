package terminal

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-isatty"

	"github.com/iamasit07/4-in-a-row/connect4/internal/domain"
	"github.com/iamasit07/4-in-a-row/connect4/internal/service/game"
)

const drawMessage = "No one won. No one lost. It is a draw."

var (
	player1Style = color.New(color.FgRed, color.OpBold)
	player2Style = color.New(color.FgYellow, color.OpBold)
	winStyle     = color.New(color.FgGreen, color.OpBold, color.OpReverse)
)

// ColorEnabled decides whether out should get ANSI colors
func ColorEnabled(out io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Glyph is the plain character used for a cell
func Glyph(cell domain.Cell) string {
	p, ok := cell.Owner()
	if !ok {
		return " "
	}
	if p == domain.Player1 {
		return "X"
	}
	return "O"
}

// NameFunc resolves a player id to the name shown on screen
type NameFunc func(domain.PlayerID) string

// StatusLine is the one-line summary shown under the board
func StatusLine(snap game.Snapshot, name NameFunc) string {
	switch snap.Status.State {
	case domain.StateWon:
		return fmt.Sprintf("%s has won!", name(snap.Status.Winner))
	case domain.StateDraw:
		return drawMessage
	}
	return fmt.Sprintf("%s's turn (%s)", name(snap.CurrentTurn), Glyph(domain.Occupied(snap.CurrentTurn)))
}

// Renderer prints the board as a labeled ASCII table, top row first
type Renderer struct {
	out   io.Writer
	color bool
}

func NewRenderer(out io.Writer, useColor bool) *Renderer {
	return &Renderer{out: out, color: useColor}
}

func (r *Renderer) Render(snap game.Snapshot, name NameFunc) error {
	_, err := io.WriteString(r.out, r.Table(snap)+"\n"+StatusLine(snap, name)+"\n")
	return err
}

// Table builds the grid with column indices above and below and row
// indices on the left
func (r *Renderer) Table(snap game.Snapshot) string {
	rows, cols := snap.Board.Rows(), snap.Board.Columns()
	labelWidth := len(strconv.Itoa(rows - 1))

	var sb strings.Builder
	header := r.columnLabels(cols, labelWidth)
	separator := strings.Repeat(" ", labelWidth+1) + "+" + strings.Repeat("---+", cols) + "\n"

	sb.WriteString(header)
	sb.WriteString(separator)
	for row := rows - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%*d |", labelWidth, row)
		for col := 0; col < cols; col++ {
			cell, err := snap.Board.Get(row, col)
			if err != nil {
				// rows and cols come from the board itself
				panic(err)
			}
			winning := snap.WinningLine != nil && snap.WinningLine.Contains(row, col)
			sb.WriteString(r.cell(cell, winning))
			sb.WriteString("|")
		}
		sb.WriteString("\n")
		sb.WriteString(separator)
	}
	sb.WriteString(header)
	return strings.TrimRight(sb.String(), "\n")
}

func (r *Renderer) columnLabels(cols, labelWidth int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", labelWidth+2))
	for col := 0; col < cols; col++ {
		fmt.Fprintf(&sb, " %-3d", col)
	}
	return strings.TrimRight(sb.String(), " ") + "\n"
}

// cell is always three visible characters wide
func (r *Renderer) cell(cell domain.Cell, winning bool) string {
	glyph := Glyph(cell)
	if !r.color {
		if winning {
			return "[" + glyph + "]"
		}
		return " " + glyph + " "
	}

	text := " " + glyph + " "
	if winning {
		return winStyle.Sprint(text)
	}
	switch p, _ := cell.Owner(); p {
	case domain.Player1:
		return player1Style.Sprint(text)
	case domain.Player2:
		return player2Style.Sprint(text)
	}
	return text
}
