package main

import (
	"github.com/pkg/errors"

	"krojanty/internal/engine"
	"krojanty/internal/krojanty"
)

type PlayerConfig struct {
	Name     string
	MaxDepth int
}

// result of one game from the point of view of the two players, not colours
type outcome struct {
	index  int
	winner string // player name, "" for a draw
	status krojanty.Status
	reason string
	turns  int
}

// playGame plays one full game with fresh engines. red and blue are the
// players assigned to each colour.
func playGame(index int, red, blue PlayerConfig, turnLimit, ttPow int) (outcome, error) {
	engines := [2]*engine.Engine{
		krojanty.Red:  engine.NewEngine(engine.WithMaxDepth(red.MaxDepth), engine.WithTTSizePow(ttPow)),
		krojanty.Blue: engine.NewEngine(engine.WithMaxDepth(blue.MaxDepth), engine.WithTTSizePow(ttPow)),
	}

	g := krojanty.NewGame(turnLimit)
	for !g.Over() {
		side := g.SideToMove()
		mv := engines[side].BestMove(&g.Board, side)
		if mv.IsNone() {
			return outcome{}, errors.Errorf("game %d: %s has no move on turn %d", index, side, g.Turn)
		}
		if _, err := g.Play(mv); err != nil {
			return outcome{}, errors.Wrapf(err, "game %d", index)
		}
	}

	out := outcome{index: index, status: g.Status, reason: g.Reason, turns: len(g.History)}
	switch g.Status.Winner() {
	case krojanty.Red:
		out.winner = red.Name
	case krojanty.Blue:
		out.winner = blue.Name
	}
	return out, nil
}

type tally struct {
	wins  map[string]int
	draws int
}

func (t *tally) add(o outcome) {
	if t.wins == nil {
		t.wins = make(map[string]int)
	}
	if o.winner == "" {
		t.draws++
		return
	}
	t.wins[o.winner]++
}
