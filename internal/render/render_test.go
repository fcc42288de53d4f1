package render

import (
	"strings"
	"testing"

	"krojanty/internal/krojanty"
)

func TestBoardShowsEveryPiece(t *testing.T) {
	b := krojanty.NewInitialBoard()
	out := Board(&b, krojanty.NoMove)

	tests := []struct {
		glyph string
		want  int
	}{
		{"S", 9},
		{"s", 9},
		{"K", 1},
		{"k", 1},
		{"#", 2},
	}
	for _, tt := range tests {
		if got := strings.Count(out, tt.glyph); got != tt.want {
			t.Errorf("%q appears %d times, want %d\n%s", tt.glyph, got, tt.want, out)
		}
	}
	if lines := strings.Count(out, "\n") + 1; lines != krojanty.Size+1 {
		t.Errorf("%d lines, want %d", lines, krojanty.Size+1)
	}
}

func TestGameReportsStatus(t *testing.T) {
	g := krojanty.NewGame(1)
	if out := Game(g); !strings.Contains(out, "blue to move") {
		t.Fatalf("missing side to move:\n%s", out)
	}

	mv, _ := krojanty.ParseMove("A6A5")
	if _, err := g.Play(mv); err != nil {
		t.Fatal(err)
	}
	if out := Game(g); !strings.Contains(out, "(score)") {
		t.Fatalf("missing result:\n%s", out)
	}
}
