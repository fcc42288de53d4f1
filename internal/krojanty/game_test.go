package krojanty

import (
	"errors"
	"testing"
)

func mustMove(t *testing.T, s string) Move {
	t.Helper()
	m, err := ParseMove(s)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestNewGame(t *testing.T) {
	g := NewGame(0)
	if g.Turn != 1 || g.SideToMove() != Blue {
		t.Fatalf("turn %d side %v, want 1 blue", g.Turn, g.SideToMove())
	}
	if g.TurnLimit != DefaultTurnLimit {
		t.Fatalf("turn limit %d", g.TurnLimit)
	}
	if g.Board.At(1, 1) != BlueKing || g.Board.At(7, 7) != RedKing {
		t.Fatal("kings misplaced")
	}
	if g.Control[0][0] != Blue || g.Control[8][8] != Red {
		t.Fatal("cities must start in their owner's colour")
	}
	if g.Control[4][4] != NoSide {
		t.Fatal("empty square should be neutral")
	}
	red, blue := g.Scores()
	if red != blue {
		t.Fatalf("opening scores %d/%d should be equal", red, blue)
	}
}

func TestPlayRejects(t *testing.T) {
	g := NewGame(0)
	if _, err := g.Play(mustMove(t, "H4H5")); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("red moving on blue's turn: err = %v", err)
	}
	if _, err := g.Play(mustMove(t, "C9C8")); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("landing on own piece: err = %v", err)
	}
	if g.Turn != 1 {
		t.Fatal("rejected move advanced the turn")
	}

	g.Status = RedWins
	if _, err := g.Play(mustMove(t, "C9B9")); !errors.Is(err, ErrGameOver) {
		t.Fatalf("after game over: err = %v", err)
	}
	if g.LegalMoves() != nil {
		t.Fatal("finished game still lists moves")
	}
}

func TestPlayPaintsTerritory(t *testing.T) {
	g := NewGame(0)
	// blue soldier C9 (0,2) slides to A9, its own city
	if _, err := g.Play(mustMove(t, "C9A9")); err != nil {
		t.Fatal(err)
	}
	if g.Control[0][0] != Blue || g.Control[0][2] != Blue {
		t.Fatal("blue squares lost colour")
	}
	if g.SideToMove() != Red {
		t.Fatal("turn did not pass to red")
	}
	// red soldier F1 (8,5) to A1 (8,0) paints it red
	if _, err := g.Play(mustMove(t, "F1A1")); err != nil {
		t.Fatal(err)
	}
	if g.Control[8][0] != Red {
		t.Fatal("destination not painted")
	}
	if g.Control[8][5] != Red {
		t.Fatal("vacated square should keep its colour")
	}
	// blue leaves its own city
	if _, err := g.Play(mustMove(t, "A9A8")); err != nil {
		t.Fatal(err)
	}
	if g.Control[0][0] != Blue {
		t.Fatal("city lost its colour")
	}
}

func TestCityRevertsToOwner(t *testing.T) {
	pos := &Position{
		Board: boardWith(
			placement{1, 1, BlueKing},
			placement{2, 2, BlueSoldier},
			placement{7, 7, RedKing},
			placement{0, 0, RedSoldier},
			placement{6, 6, RedSoldier},
		),
		SideToMove: Red,
	}
	g := NewGameFromPosition(pos, 0)
	g.Control[0][0] = Red
	if _, err := g.Play(Move{0, 0, 0, 1}); err != nil {
		t.Fatal(err)
	}
	if g.Control[0][0] != Blue {
		t.Fatal("A9 should revert to blue once vacated")
	}
	if g.Control[0][1] != Red {
		t.Fatal("destination not painted red")
	}
}

func TestPlayEndConditions(t *testing.T) {
	tests := []struct {
		name   string
		board  Board
		side   Side
		move   Move
		status Status
		reason string
	}{
		{
			name: "king captured",
			board: boardWith(
				placement{1, 1, BlueKing},
				placement{5, 0, BlueSoldier},
				placement{5, 3, RedKing},
				placement{8, 0, RedSoldier},
			),
			side:   Blue,
			move:   Move{5, 0, 5, 2},
			status: BlueWins,
			reason: ReasonKingCaptured,
		},
		{
			name: "red conquest",
			board: boardWith(
				placement{1, 1, BlueKing},
				placement{4, 4, BlueSoldier},
				placement{0, 5, RedKing},
				placement{8, 0, RedSoldier},
			),
			side:   Red,
			move:   Move{0, 5, 0, 0},
			status: RedWins,
			reason: ReasonConquest,
		},
		{
			name: "blue conquest",
			board: boardWith(
				placement{8, 3, BlueKing},
				placement{4, 4, BlueSoldier},
				placement{0, 5, RedKing},
				placement{0, 8, RedSoldier},
			),
			side:   Blue,
			move:   Move{8, 3, 8, 8},
			status: BlueWins,
			reason: ReasonConquest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGameFromPosition(&Position{Board: tt.board, SideToMove: tt.side}, 0)
			if _, err := g.Play(tt.move); err != nil {
				t.Fatal(err)
			}
			if g.Status != tt.status || g.Reason != tt.reason {
				t.Fatalf("status %v/%s, want %v/%s", g.Status, g.Reason, tt.status, tt.reason)
			}
		})
	}
}

func TestPlayExtermination(t *testing.T) {
	g := NewGameFromPosition(&Position{
		Board: boardWith(
			placement{1, 1, BlueKing},
			placement{5, 0, BlueSoldier},
			placement{5, 3, RedSoldier},
			placement{7, 7, RedKing},
			placement{8, 0, RedSoldier},
		),
		SideToMove: Blue,
	}, 0)
	g.Dead[Red] = ExterminationCount - 1
	caps, err := g.Play(Move{5, 0, 5, 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(caps) != 1 || g.Dead[Red] != ExterminationCount {
		t.Fatalf("captures %v dead %v", caps, g.Dead)
	}
	if g.Status != BlueWins || g.Reason != ReasonExtermination {
		t.Fatalf("status %v/%s", g.Status, g.Reason)
	}
}

func TestPlayTurnLimit(t *testing.T) {
	g := NewGame(2)
	if _, err := g.Play(mustMove(t, "C9C8")); err == nil {
		t.Fatal("C9C8 is blocked")
	}
	if _, err := g.Play(mustMove(t, "A6A5")); err != nil {
		t.Fatal(err)
	}
	if g.Over() {
		t.Fatal("game ended early")
	}
	if _, err := g.Play(mustMove(t, "H4H5")); err != nil {
		t.Fatal(err)
	}
	if !g.Over() || g.Reason != ReasonScore {
		t.Fatalf("status %v/%s, want a score decision", g.Status, g.Reason)
	}
	red, blue := g.Scores()
	switch {
	case red > blue && g.Status != RedWins,
		blue > red && g.Status != BlueWins,
		red == blue && g.Status != Draw:
		t.Fatalf("scores %d/%d but status %v", red, blue, g.Status)
	}
}

func TestClone(t *testing.T) {
	g := NewGame(0)
	if _, err := g.Play(mustMove(t, "A6A5")); err != nil {
		t.Fatal(err)
	}
	cp := g.Clone()
	if _, err := cp.Play(mustMove(t, "H4H5")); err != nil {
		t.Fatal(err)
	}
	if len(g.History) != 1 || g.Turn != 2 {
		t.Fatal("clone shares state with the original")
	}
}
