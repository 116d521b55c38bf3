package game

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/connect4/internal/domain"
	"github.com/iamasit07/4-in-a-row/connect4/pkg/uid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidGameID   = errors.New("invalid game id")
)

// GameSession wraps one engine behind a single-writer lock so a move is
// never observed half applied
type GameSession struct {
	GameID      string
	Player1Name string
	Player2Name string
	CreatedAt   time.Time

	game         *domain.Game
	finishedAt   time.Time
	lastActivity time.Time
	attached     int
	mu           sync.Mutex
	now          func() time.Time
}

// Snapshot is a read-only view of a session taken under its lock
type Snapshot struct {
	GameID      string
	Board       *domain.Board
	Status      domain.GameStatus
	CurrentTurn domain.PlayerID
	MoveCount   int
	LastMove    *domain.Move
	WinningLine *domain.Line
}

// SessionManager manages active game sessions
type SessionManager struct {
	Session map[string]*GameSession // gameID → GameSession
	rows    int
	columns int
	mu      sync.RWMutex
	now     func() time.Time
}

func NewSessionManager(rows, columns int) *SessionManager {
	return &SessionManager{
		Session: make(map[string]*GameSession),
		rows:    rows,
		columns: columns,
		now:     time.Now,
	}
}

func (sm *SessionManager) CreateSession(player1Name, player2Name string) (*GameSession, error) {
	g, err := domain.NewGame(sm.rows, sm.columns)
	if err != nil {
		return nil, errors.Wrapf(err, "create %dx%d game", sm.rows, sm.columns)
	}

	now := sm.now()
	session := &GameSession{
		GameID:       uid.GenerateGameID(),
		Player1Name:  player1Name,
		Player2Name:  player2Name,
		CreatedAt:    now,
		game:         g,
		lastActivity: now,
		now:          sm.now,
	}

	sm.mu.Lock()
	sm.Session[session.GameID] = session
	sm.mu.Unlock()

	log.Info().
		Str("component", "session").
		Str("game_id", session.GameID).
		Str("player1", player1Name).
		Str("player2", player2Name).
		Int("rows", sm.rows).
		Int("columns", sm.columns).
		Msg("created session")
	return session, nil
}

func (sm *SessionManager) GetSession(gameID string) (*GameSession, error) {
	if !uid.IsGameID(gameID) {
		return nil, errors.Wrapf(ErrInvalidGameID, "%q", gameID)
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	if !exists {
		return nil, errors.Wrapf(ErrSessionNotFound, "game %s", gameID)
	}
	return session, nil
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	if !uid.IsGameID(gameID) {
		return errors.Wrapf(ErrInvalidGameID, "%q", gameID)
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.Session[gameID]; !exists {
		return errors.Wrapf(ErrSessionNotFound, "game %s", gameID)
	}
	delete(sm.Session, gameID)

	log.Info().Str("component", "session").Str("game_id", gameID).Msg("removed session")
	return nil
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Session)
}

// GameIDs returns the ids of all live sessions, sorted
func (sm *SessionManager) GameIDs() []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	ids := make([]string, 0, len(sm.Session))
	for id := range sm.Session {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CleanupOldSessions drops finished sessions older than finishedRetention
// and unfinished ones idle for longer than idleTimeout. Attached sessions
// are never dropped.
func (sm *SessionManager) CleanupOldSessions(idleTimeout, finishedRetention time.Duration) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	now := sm.now()

	for gameID, session := range sm.Session {
		session.mu.Lock()
		var stale bool
		switch {
		case session.attached > 0:
			// held by a running UI
		case session.game.IsFinished():
			stale = now.Sub(session.finishedAt) > finishedRetention
		default:
			stale = now.Sub(session.lastActivity) > idleTimeout
		}
		session.mu.Unlock()

		if stale {
			delete(sm.Session, gameID)
			count++
		}
	}

	if count > 0 {
		log.Info().Str("component", "session").Int("removed", count).Msg("memory cleanup removed stale sessions")
	}
	return count
}

// AttemptMove plays column for player. Domain errors come back wrapped
// with the game id and still match via errors.Is.
func (gs *GameSession) AttemptMove(player domain.PlayerID, column int) (domain.Move, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	move, err := gs.game.AttemptMove(player, column)
	if err != nil {
		log.Debug().
			Str("component", "session").
			Str("game_id", gs.GameID).
			Stringer("player", player).
			Int("column", column).
			Err(err).
			Msg("move rejected")
		return domain.Move{}, errors.Wrapf(err, "game %s: %s column %d", gs.GameID, player, column)
	}

	gs.lastActivity = gs.now()
	log.Debug().
		Str("component", "session").
		Str("game_id", gs.GameID).
		Stringer("player", player).
		Int("row", move.Row).
		Int("column", move.Column).
		Stringer("outcome", move.Outcome).
		Msg("move made")

	if move.Outcome != domain.OutcomeContinue {
		gs.finishedAt = gs.lastActivity
		log.Info().
			Str("component", "session").
			Str("game_id", gs.GameID).
			Stringer("status", gs.game.Status()).
			Int("moves", gs.game.MoveCount()).
			Dur("duration", gs.finishedAt.Sub(gs.CreatedAt)).
			Msg("game over")
	}
	return move, nil
}

// Reset starts a fresh game in the same session
func (gs *GameSession) Reset() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.game.Reset()
	gs.finishedAt = time.Time{}
	gs.lastActivity = gs.now()
	log.Debug().Str("component", "session").Str("game_id", gs.GameID).Msg("game reset")
}

func (gs *GameSession) Snapshot() Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	snap := Snapshot{
		GameID:      gs.GameID,
		Board:       gs.game.Board(),
		Status:      gs.game.Status(),
		CurrentTurn: gs.game.CurrentTurn(),
		MoveCount:   gs.game.MoveCount(),
	}
	if move, ok := gs.game.LastMove(); ok {
		snap.LastMove = &move
	}
	if line, ok := gs.game.WinningLine(); ok {
		snap.WinningLine = &line
	}
	return snap
}

func (gs *GameSession) CurrentTurn() domain.PlayerID {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.game.CurrentTurn()
}

func (gs *GameSession) Status() domain.GameStatus {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.game.Status()
}

func (gs *GameSession) Dimensions() (int, int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.game.Dimensions()
}

func (gs *GameSession) GetUsername(playerID domain.PlayerID) string {
	if playerID == domain.Player1 {
		return gs.Player1Name
	}
	return gs.Player2Name
}

// Attach marks the session as held by a running UI so cleanup leaves it
// alone. Calling the returned func releases it and counts as activity.
func (gs *GameSession) Attach() (detach func()) {
	gs.mu.Lock()
	gs.attached++
	gs.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			gs.mu.Lock()
			gs.attached--
			gs.lastActivity = gs.now()
			gs.mu.Unlock()
		})
	}
}
