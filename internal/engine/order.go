package engine

import (
	"sort"

	"krojanty/internal/krojanty"
)

const (
	ttMoveBonus   = 100000
	pushBonus     = 5000
	kingStepBonus = 50
)

// scoreMove ranks m for ordering: the TT move first, then push attempts, then
// king moves that close in on the goal, shorter slides breaking ties.
func scoreMove(b *krojanty.Board, m, ttMove krojanty.Move) int {
	score := 0
	if m == ttMove {
		score += ttMoveBonus
	}
	if b.ThreatensPush(m) {
		score += pushBonus
	}

	if p := b.Squares[m.R1][m.C1]; p.IsKing() {
		side := p.Side()
		before := krojanty.GoalDistance(side, m.R1, m.C1)
		after := krojanty.GoalDistance(side, m.R2, m.C2)
		score += (before - after) * kingStepBonus
	}

	score -= abs(m.R2-m.R1) + abs(m.C2-m.C1)
	return score
}

// orderMoves sorts moves best first. The sort is stable so equal scores keep
// generation order, which keeps search deterministic.
func orderMoves(b *krojanty.Board, moves []krojanty.Move, ttMove krojanty.Move) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = scoreMove(b, m, ttMove)
	}
	sort.Stable(byScore{moves: moves, scores: scores})
}

type byScore struct {
	moves  []krojanty.Move
	scores []int
}

func (s byScore) Len() int           { return len(s.moves) }
func (s byScore) Less(i, j int) bool { return s.scores[i] > s.scores[j] }
func (s byScore) Swap(i, j int) {
	s.moves[i], s.moves[j] = s.moves[j], s.moves[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}
