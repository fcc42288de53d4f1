// Package render draws boards for terminals.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"krojanty/internal/krojanty"
)

var (
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	blueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
	lastStyle  = lipgloss.NewStyle().Underline(true)
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// Board draws b with file letters and rank digits. Squares touched by last
// are underlined; pass NoMove for none.
func Board(b *krojanty.Board, last krojanty.Move) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for c := 0; c < krojanty.Size; c++ {
		sb.WriteString(dimStyle.Render(string(rune('A'+c))) + " ")
	}
	sb.WriteByte('\n')

	for r := 0; r < krojanty.Size; r++ {
		sb.WriteString(dimStyle.Render(string(rune('0'+krojanty.Size-r))) + " ")
		for c := 0; c < krojanty.Size; c++ {
			cell := square(b.Squares[r][c], r, c)
			if !last.IsNone() && ((r == last.R1 && c == last.C1) || (r == last.R2 && c == last.C2)) {
				cell = lastStyle.Render(cell)
			}
			sb.WriteString(cell + " ")
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

func square(p krojanty.Piece, r, c int) string {
	switch p {
	case krojanty.RedSoldier:
		return redStyle.Render("s")
	case krojanty.RedKing:
		return redStyle.Render("k")
	case krojanty.BlueSoldier:
		return blueStyle.Render("S")
	case krojanty.BlueKing:
		return blueStyle.Render("K")
	}
	for _, side := range []krojanty.Side{krojanty.Red, krojanty.Blue} {
		if gr, gc := krojanty.City(side); gr == r && gc == c {
			return dimStyle.Render("#")
		}
	}
	return dimStyle.Render(".")
}

// Game boxes the board with turn, casualties and scores.
func Game(g *krojanty.Game) string {
	last := krojanty.NoMove
	if n := len(g.History); n > 0 {
		last = g.History[n-1]
	}
	red, blue := g.Scores()

	var head string
	if g.Over() {
		head = titleStyle.Render(g.Status.String()) + " (" + g.Reason + ")"
	} else {
		head = titleStyle.Render("turn "+strconv.Itoa(g.Turn)+"/"+strconv.Itoa(g.TurnLimit)) + ", " + g.SideToMove().String() + " to move"
	}
	foot := redStyle.Render("red "+strconv.Itoa(red)) + " lost " + strconv.Itoa(g.Dead[krojanty.Red]) +
		"   " + blueStyle.Render("blue "+strconv.Itoa(blue)) + " lost " + strconv.Itoa(g.Dead[krojanty.Blue])

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, head, "", Board(&g.Board, last), "", foot))
}
