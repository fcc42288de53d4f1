package engine

import (
	"krojanty/internal/krojanty"
)

const (
	soldierValue = 12
	kingValue    = 300

	// king progress is progressBase minus the distance to the goal corner
	progressBase = 30
)

// Evaluate scores b from blue's point of view: positive favours blue. It sums
// material, king progress towards the goal corner, mobility and king
// centrality. Pure and deterministic.
func Evaluate(b *krojanty.Board) int {
	score := 0

	for r := 0; r < krojanty.Size; r++ {
		for c := 0; c < krojanty.Size; c++ {
			switch b.Squares[r][c] {
			case krojanty.BlueSoldier:
				score += soldierValue
			case krojanty.BlueKing:
				score += kingValue + kingBonus(krojanty.Blue, r, c)
			case krojanty.RedSoldier:
				score -= soldierValue
			case krojanty.RedKing:
				score -= kingValue + kingBonus(krojanty.Red, r, c)
			}
		}
	}

	score += b.CountMoves(krojanty.Blue) - b.CountMoves(krojanty.Red)
	return score
}

// kingBonus is the progress plus centrality term for side's king on (r,c),
// from that side's point of view.
func kingBonus(side krojanty.Side, r, c int) int {
	progress := progressBase - krojanty.GoalDistance(side, r, c)
	centre := krojanty.Size / 2
	centrality := (centre - abs(r-centre)) + (centre - abs(c-centre))
	return progress + centrality
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
