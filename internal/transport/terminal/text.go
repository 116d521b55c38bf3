package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/connect4/internal/domain"
	"github.com/iamasit07/4-in-a-row/connect4/internal/service/game"
)

// TextRunner is the line-based hot-seat game: both players share one
// keyboard and type column numbers
type TextRunner struct {
	session  *game.GameSession
	prompter *Prompter
	renderer *Renderer
	out      io.Writer
}

func NewTextRunner(session *game.GameSession, in io.Reader, out io.Writer, useColor bool) *TextRunner {
	return &TextRunner{
		session:  session,
		prompter: NewPrompter(in, out),
		renderer: NewRenderer(out, useColor),
		out:      out,
	}
}

// Run plays until the input ends, a player quits, they decline a rematch
// or ctx is cancelled
func (r *TextRunner) Run(ctx context.Context) error {
	redraw := true
	for {
		if ctx.Err() != nil {
			return nil
		}

		snap := r.session.Snapshot()
		if redraw {
			if err := r.renderer.Render(snap, r.session.GetUsername); err != nil {
				return err
			}
			redraw = false
		}

		if snap.Status.IsOver() {
			again, err := r.prompter.YesNoInput("Play again? (y/n): ")
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if !again {
				fmt.Fprintln(r.out, "Thanks for playing!")
				return nil
			}
			r.session.Reset()
			redraw = true
			continue
		}

		cols := snap.Board.Columns()
		prompt := fmt.Sprintf("%s, choose a column (%s, q to quit): ",
			r.session.GetUsername(snap.CurrentTurn), columnChoices(snap.Board))
		column, err := r.prompter.IntInput(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		_, err = r.session.AttemptMove(snap.CurrentTurn, column)
		switch {
		case err == nil:
			redraw = true
		case errors.Is(err, domain.ErrColumnFull):
			fmt.Fprintf(r.out, "Column %d is full, pick another one.\n", column)
		case errors.Is(err, domain.ErrOutOfBounds):
			fmt.Fprintf(r.out, "There is no column %d, pick one from 0 to %d.\n", column, cols-1)
		default:
			log.Error().Str("component", "terminal").Err(err).Msg("unexpected move error")
			return err
		}
	}
}

// columnChoices is "0-6" while every column is open, otherwise the open
// columns are listed one by one
func columnChoices(board *domain.Board) string {
	open := domain.ValidColumns(board)
	if len(open) == board.Columns() {
		return fmt.Sprintf("0-%d", board.Columns()-1)
	}
	labels := make([]string, len(open))
	for i, col := range open {
		labels[i] = strconv.Itoa(col)
	}
	return strings.Join(labels, ",")
}
