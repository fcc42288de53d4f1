package netplay

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"krojanty/internal/krojanty"
)

// LinePlayer reads one move per line from In and prompts on Out. Lines that
// do not name a legal move are rejected and the prompt repeats.
type LinePlayer struct {
	In  *bufio.Scanner
	Out io.Writer
}

func NewLinePlayer(in io.Reader, out io.Writer) *LinePlayer {
	return &LinePlayer{In: bufio.NewScanner(in), Out: out}
}

// NextMove blocks on In; ctx is only checked between lines.
func (p *LinePlayer) NextMove(ctx context.Context, g *krojanty.Game) (krojanty.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return krojanty.NoMove, err
		}
		fmt.Fprintf(p.Out, "%s to move> ", g.SideToMove())
		if !p.In.Scan() {
			if err := p.In.Err(); err != nil {
				return krojanty.NoMove, errors.Wrap(err, "read move")
			}
			return krojanty.NoMove, io.EOF
		}

		mv, err := krojanty.ParseMove(p.In.Text())
		if err != nil {
			fmt.Fprintln(p.Out, err)
			continue
		}
		if !g.Board.IsLegal(g.SideToMove(), mv) {
			fmt.Fprintln(p.Out, "illegal move", mv)
			continue
		}
		return mv, nil
	}
}
