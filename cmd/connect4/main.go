package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/connect4/internal/config"
	"github.com/iamasit07/4-in-a-row/connect4/internal/service/cleanup"
	"github.com/iamasit07/4-in-a-row/connect4/internal/service/game"
	"github.com/iamasit07/4-in-a-row/connect4/internal/transport/terminal"
)

// runner is what a UI mode provides
type runner interface {
	Run(ctx context.Context) error
}

// screenFactory is swapped out in tests
var screenFactory = tcell.NewScreen

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires config, sessions and the chosen UI, and plays one hot-seat game session
func run(ctx context.Context, in io.Reader, out io.Writer, args []string) error {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Debug().Msg("no .env file found")
		}
	}

	cfg := config.LoadConfig()
	shouldExit, err := parseFlags(cfg, args, out)
	if err != nil || shouldExit {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	configureLogging(cfg)

	sessionManager := game.NewSessionManager(cfg.Rows, cfg.Columns)
	worker := cleanup.NewWorker(sessionManager, cfg.SessionIdleTimeout, cfg.FinishedSessionRetention, cfg.CleanupInterval)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go worker.Start(ctx)

	session, err := sessionManager.CreateSession(cfg.Player1Name, cfg.Player2Name)
	if err != nil {
		return err
	}
	defer func() {
		if err := sessionManager.RemoveSession(session.GameID); err != nil {
			log.Debug().Err(err).Str("game_id", session.GameID).Msg("session already gone")
		}
	}()
	detach := session.Attach()
	defer detach()

	var ui runner
	// the text runner blocks on stdin, which cannot be interrupted
	var abandonOnCancel bool
	switch cfg.Mode {
	case config.ModeTUI:
		screen, err := screenFactory()
		if err != nil {
			return fmt.Errorf("open terminal screen: %w", err)
		}
		ui = terminal.NewTUIRunner(session, screen)
	default:
		ui = terminal.NewTextRunner(session, in, out, terminal.ColorEnabled(out, cfg.NoColor))
		abandonOnCancel = true
	}

	log.Info().Str("mode", cfg.Mode).Str("game_id", session.GameID).Msg("starting game")

	done := make(chan error, 1)
	go func() { done <- ui.Run(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		if abandonOnCancel {
			return nil
		}
		// the screen has to be restored before the process exits
		return <-done
	}
}

// parseFlags lets command line flags override the environment
func parseFlags(cfg *config.Config, args []string, out io.Writer) (bool, error) {
	fs := flag.NewFlagSet("connect4", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "number of rows")
	fs.IntVar(&cfg.Columns, "cols", cfg.Columns, "number of columns")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "ui mode. Values: [text, tui]")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output in text mode")
	fs.StringVar(&cfg.Player1Name, "p1", cfg.Player1Name, "name of player 1")
	fs.StringVar(&cfg.Player2Name, "p2", cfg.Player2Name, "name of player 2")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return true, nil
		}
		return false, err
	}
	cfg.Mode = strings.ToLower(cfg.Mode)
	return false, nil
}

func configureLogging(cfg *config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping info")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if cfg.LogFormat == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}
