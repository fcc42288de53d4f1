package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"krojanty/internal/engine"
	"krojanty/internal/krojanty"
)

var ErrGameNotFound = errors.New("game not found")

// Manager keeps every game in memory. Engines are shared between games, one
// per search depth, so their tables stay warm across requests.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState

	turnLimit int
	ttPow     int

	enginesMu sync.Mutex
	engines   map[int]*engine.Engine

	// OnChange, if set, is called with the new snapshot after every move.
	OnChange func(Snapshot)
}

func NewManager(turnLimit, ttPow int) *Manager {
	return &Manager{
		games:     make(map[string]*GameState),
		turnLimit: turnLimit,
		ttPow:     ttPow,
		engines:   make(map[int]*engine.Engine),
	}
}

func (m *Manager) NewGame() *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		CreatedAt: now,
		game:      krojanty.NewGame(m.turnLimit),
		updatedAt: now,
	}
	m.games[g.ID] = g
	log.Debug().Str("game", g.ID).Msg("game-created")
	return g
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, errors.Wrap(ErrGameNotFound, id)
	}
	return g, nil
}

// Play plays mv on game id for whichever side is to move.
func (m *Manager) Play(id string, mv krojanty.Move) (Snapshot, krojanty.Captures, error) {
	g, err := m.Get(id)
	if err != nil {
		return Snapshot{}, nil, err
	}

	g.mu.Lock()
	caps, err := g.game.Play(mv)
	if err != nil {
		g.mu.Unlock()
		return Snapshot{}, nil, err
	}
	g.updatedAt = time.Now()
	snap := g.snapshotLocked()
	g.mu.Unlock()

	m.changed(snap)
	return snap, caps, nil
}

// EngineMove searches the game's position at depth and plays the result.
// The game stays locked for the search so a concurrent human move cannot
// land in between.
func (m *Manager) EngineMove(id string, depth int) (Snapshot, engine.SearchResult, error) {
	g, err := m.Get(id)
	if err != nil {
		return Snapshot{}, engine.SearchResult{}, err
	}

	g.mu.Lock()
	if g.game.Over() {
		g.mu.Unlock()
		return Snapshot{}, engine.SearchResult{}, errors.Wrapf(krojanty.ErrGameOver, "game %s", id)
	}
	res := m.Engine(depth).Search(&g.game.Board, g.game.SideToMove())
	if res.BestMove.IsNone() {
		g.mu.Unlock()
		return Snapshot{}, res, errors.Errorf("no move for %s in game %s", g.game.SideToMove(), id)
	}
	if _, err := g.game.Play(res.BestMove); err != nil {
		g.mu.Unlock()
		return Snapshot{}, res, errors.Wrap(err, "engine move")
	}
	g.updatedAt = time.Now()
	snap := g.snapshotLocked()
	g.mu.Unlock()

	log.Info().
		Str("game", id).
		Str("move", res.BestMove.String()).
		Int("score", res.Score).
		Int("depth", res.Depth).
		Int64("nodes", res.Nodes).
		Dur("took", res.TimeUsed).
		Msg("engine-moved")
	m.changed(snap)
	return snap, res, nil
}

// Engine returns the shared engine for depth, creating it on first use.
func (m *Manager) Engine(depth int) *engine.Engine {
	if depth <= 0 {
		depth = engine.DefaultMaxDepth
	}
	m.enginesMu.Lock()
	defer m.enginesMu.Unlock()
	e, ok := m.engines[depth]
	if !ok {
		e = engine.NewEngine(engine.WithMaxDepth(depth), engine.WithTTSizePow(m.ttPow))
		m.engines[depth] = e
	}
	return e
}

func (m *Manager) changed(s Snapshot) {
	if m.OnChange != nil {
		m.OnChange(s)
	}
}
