package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"krojanty/internal/krojanty"
)

const (
	// WinScore is returned for a decided position, positive when blue won.
	WinScore = 100000
	scoreInf = 1_000_000
)

type SearchResult struct {
	BestMove krojanty.Move
	Score    int // blue positive, from the deepest iteration
	Depth    int
	Nodes    int64
	TimeUsed time.Duration
}

// BestMove returns the move the engine plays for side on b, or NoMove.
func (e *Engine) BestMove(b *krojanty.Board, side krojanty.Side) krojanty.Move {
	return e.Search(b, side).BestMove
}

// Search runs iterative deepening from depth 1 to MaxDepth. b is copied and
// never modified. The result is deterministic for a given board, side,
// depth and table state.
func (e *Engine) Search(b *krojanty.Board, side krojanty.Side) SearchResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.init()

	if side != krojanty.Red && side != krojanty.Blue {
		return SearchResult{BestMove: krojanty.NoMove}
	}

	start := time.Now()
	e.nodes = 0

	board := *b
	key := krojanty.Hash(&board, side)
	best := krojanty.NoMove
	bestScore, bestDepth := 0, 0

	if hint := e.lastBest[side]; !hint.IsNone() {
		e.tt.Store(key, 0, 0, BoundExact, hint)
	}

	for depth := 1; depth <= e.maxDepth; depth++ {
		val, iterBest := e.minimax(&board, depth, -scoreInf, scoreInf, side, key)
		if !iterBest.IsNone() {
			best = iterBest
			bestScore = val
			bestDepth = depth
		}
		log.Debug().
			Int("depth", depth).
			Int("score", val).
			Str("best", best.String()).
			Int64("nodes", e.nodes).
			Msg("deepening-iteratively")
	}

	e.lastBest[side] = best

	return SearchResult{
		BestMove: best,
		Score:    bestScore,
		Depth:    bestDepth,
		Nodes:    e.nodes,
		TimeUsed: time.Since(start),
	}
}

// minimax is alpha-beta with blue maximizing. b is restored before return.
// A table cutoff returns the stored best move; the move is NoMove when the
// node is terminal, a leaf, or has nothing to play.
func (e *Engine) minimax(b *krojanty.Board, depth, alpha, beta int, side krojanty.Side, key uint64) (int, krojanty.Move) {
	e.nodes++

	switch krojanty.Winner(b) {
	case krojanty.Blue:
		return WinScore, krojanty.NoMove
	case krojanty.Red:
		return -WinScore, krojanty.NoMove
	}
	if depth == 0 {
		return Evaluate(b), krojanty.NoMove
	}

	origAlpha, origBeta := alpha, beta
	ttMove := krojanty.NoMove
	if entry := e.tt.Probe(key); entry.Bound != BoundEmpty && entry.Key == key {
		if int(entry.Depth) >= depth {
			v := int(entry.Value)
			switch entry.Bound {
			case BoundExact:
				return v, entry.Best
			case BoundLower:
				if v > alpha {
					alpha = v
				}
			case BoundUpper:
				if v < beta {
					beta = v
				}
			}
			if alpha >= beta {
				return v, entry.Best
			}
		}
		ttMove = entry.Best
	}

	moves := b.AppendMoves(make([]krojanty.Move, 0, 64), side)
	if len(moves) == 0 {
		return Evaluate(b), krojanty.NoMove
	}
	orderMoves(b, moves, ttMove)

	maximizing := side == krojanty.Blue
	bestVal := scoreInf
	if maximizing {
		bestVal = -scoreInf
	}
	bestMove := moves[0]

	for _, m := range moves {
		saved := *b
		b.Apply(m)
		childKey := krojanty.Hash(b, side.Opposite())
		val, _ := e.minimax(b, depth-1, alpha, beta, side.Opposite(), childKey)
		*b = saved

		if maximizing {
			if val > bestVal {
				bestVal, bestMove = val, m
			}
			if bestVal > alpha {
				alpha = bestVal
			}
		} else {
			if val < bestVal {
				bestVal, bestMove = val, m
			}
			if bestVal < beta {
				beta = bestVal
			}
		}
		if alpha >= beta {
			break
		}
	}

	bound := BoundExact
	switch {
	case bestVal <= origAlpha:
		bound = BoundUpper
	case bestVal >= origBeta:
		bound = BoundLower
	}
	e.tt.Store(key, depth, bestVal, bound, bestMove)
	return bestVal, bestMove
}
