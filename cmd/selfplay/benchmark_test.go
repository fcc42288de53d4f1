package main

import (
	"testing"

	"krojanty/internal/krojanty"
)

func TestPlayGameFinishes(t *testing.T) {
	red := PlayerConfig{Name: "red", MaxDepth: 1}
	blue := PlayerConfig{Name: "blue", MaxDepth: 1}

	o, err := playGame(0, red, blue, 8, 12)
	if err != nil {
		t.Fatal(err)
	}
	if o.status == krojanty.Ongoing {
		t.Fatal("game did not finish")
	}
	if o.turns < 1 || o.turns > 8 {
		t.Fatalf("turns = %d", o.turns)
	}
	switch o.status.Winner() {
	case krojanty.Red:
		if o.winner != "red" {
			t.Fatalf("winner %q", o.winner)
		}
	case krojanty.Blue:
		if o.winner != "blue" {
			t.Fatalf("winner %q", o.winner)
		}
	default:
		if o.winner != "" {
			t.Fatalf("draw credited to %q", o.winner)
		}
	}
}

func TestTally(t *testing.T) {
	var tl tally
	for _, w := range []string{"a", "b", "", "a"} {
		tl.add(outcome{winner: w})
	}
	if tl.wins["a"] != 2 || tl.wins["b"] != 1 || tl.draws != 1 {
		t.Fatalf("tally %+v", tl)
	}
}
