package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"krojanty/internal/engine"
	"krojanty/internal/krojanty"
	"krojanty/internal/render"
)

func main() {
	fen := flag.String("fen", "", "position to inspect; the starting position when empty")
	depth := flag.Int("depth", engine.DefaultMaxDepth, "search depth")
	verbose := flag.Bool("v", false, "log every iteration")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	pos := krojanty.NewInitialPosition()
	if *fen != "" {
		var err error
		if pos, err = krojanty.DecodePosition(*fen); err != nil {
			log.Fatal().Err(err).Msg("fen")
		}
	}

	fmt.Println(render.Board(&pos.Board, krojanty.NoMove))
	fmt.Println("FEN:    ", pos.Encode())
	fmt.Printf("Hash:    %016x\n", pos.Hash)
	fmt.Println("To move:", pos.SideToMove)
	fmt.Println("Moves:  ", pos.Board.CountMoves(krojanty.Blue), "blue,", pos.Board.CountMoves(krojanty.Red), "red")
	fmt.Println("Eval:   ", engine.Evaluate(&pos.Board))

	if w := krojanty.Winner(&pos.Board); w != krojanty.NoSide {
		fmt.Println("Winner: ", w)
		return
	}

	e := engine.NewEngine(engine.WithMaxDepth(*depth))
	res := e.Search(&pos.Board, pos.SideToMove)
	fmt.Printf("Best:    %s score %d depth %d nodes %d in %v\n",
		res.BestMove, res.Score, res.Depth, res.Nodes, res.TimeUsed)
	if !res.BestMove.IsNone() {
		after := pos.Board
		caps := after.Apply(res.BestMove)
		fmt.Println()
		fmt.Println(render.Board(&after, res.BestMove))
		for _, c := range caps {
			fmt.Println("captures", krojanty.SquareID(c.Row, c.Col))
		}
	}
}
