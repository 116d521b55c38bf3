package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/connect4/internal/service/game"
)

type Worker struct {
	SessionManager    *game.SessionManager
	IdleTimeout       time.Duration
	FinishedRetention time.Duration
	Interval          time.Duration
}

func NewWorker(sm *game.SessionManager, idleTimeout, finishedRetention, interval time.Duration) *Worker {
	return &Worker{
		SessionManager:    sm,
		IdleTimeout:       idleTimeout,
		FinishedRetention: finishedRetention,
		Interval:          interval,
	}
}

// Start sweeps once right away, then every Interval until ctx is done.
// It blocks, run it in its own goroutine.
func (w *Worker) Start(ctx context.Context) {
	log.Info().Str("component", "cleanup").Dur("interval", w.Interval).Msg("background worker started")
	w.RunOnce()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("component", "cleanup").Msg("background worker stopped")
			return
		case <-ticker.C:
			w.RunOnce()
		}
	}
}

// RunOnce executes the actual cleanup logic and returns how many sessions went away
func (w *Worker) RunOnce() int {
	removed := w.SessionManager.CleanupOldSessions(w.IdleTimeout, w.FinishedRetention)
	active := w.SessionManager.GameIDs()
	log.Debug().
		Str("component", "cleanup").
		Int("removed", removed).
		Int("remaining", len(active)).
		Strs("active", active).
		Msg("scheduled cleanup finished")
	return removed
}
