package engine

import (
	"sync"

	"krojanty/internal/krojanty"
)

const DefaultMaxDepth = 4

// Init prepares process-wide tables shared by every Engine. Idempotent.
func Init() {
	krojanty.InitZobrist()
}

type Option func(*Engine)

// WithMaxDepth sets the deepest iteration. Values < 1 keep the default.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// WithTTSizePow sizes the transposition table to 2^pow slots.
func WithTTSizePow(pow int) Option {
	return func(e *Engine) {
		if pow > 0 {
			e.ttPow = pow
		}
	}
}

// Engine owns one transposition table and the last best move per side. One
// search runs at a time per Engine; separate Engines may search in parallel.
type Engine struct {
	mu sync.Mutex

	tt       *TT
	ttPow    int
	maxDepth int

	// hint for the next search of the same side, indexed by Side
	lastBest [2]krojanty.Move
	nodes    int64
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		ttPow:    DefaultTTSizePow,
		maxDepth: DefaultMaxDepth,
		lastBest: [2]krojanty.Move{krojanty.NoMove, krojanty.NoMove},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Init allocates the transposition table on first use. Idempotent.
func (e *Engine) Init() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.init()
}

func (e *Engine) init() {
	Init()
	if e.tt == nil {
		e.tt = NewTT(e.ttPow)
	}
}

func (e *Engine) MaxDepth() int { return e.maxDepth }

// LastBest returns the move remembered for side, or NoMove.
func (e *Engine) LastBest(side krojanty.Side) krojanty.Move {
	e.mu.Lock()
	defer e.mu.Unlock()
	if side != krojanty.Red && side != krojanty.Blue {
		return krojanty.NoMove
	}
	return e.lastBest[side]
}

// Reset forgets the table contents and the remembered moves.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.tt != nil {
		e.tt.Clear()
	}
	e.lastBest = [2]krojanty.Move{krojanty.NoMove, krojanty.NoMove}
}

// TTStats reports occupied and total slots.
func (e *Engine) TTStats() (used, size int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.tt == nil {
		return 0, 0
	}
	return e.tt.Len(), e.tt.Size()
}
