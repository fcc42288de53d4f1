package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"krojanty/internal/engine"
	"krojanty/internal/krojanty"
)

func main() {
	totalGames := flag.Int("games", 10, "number of games to play")
	depthA := flag.Int("a-depth", 2, "search depth of player A")
	depthB := flag.Int("b-depth", 3, "search depth of player B")
	turnLimit := flag.Int("turns", krojanty.DefaultTurnLimit, "turn limit per game")
	ttPow := flag.Int("tt", 16, "transposition table size as a power of two")
	workers := flag.Int("workers", runtime.NumCPU(), "games played in parallel")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	engine.Init()

	a := PlayerConfig{Name: fmt.Sprintf("depth-%d (A)", *depthA), MaxDepth: *depthA}
	b := PlayerConfig{Name: fmt.Sprintf("depth-%d (B)", *depthB), MaxDepth: *depthB}

	var (
		mu       sync.Mutex
		outcomes []outcome
	)
	var g errgroup.Group
	g.SetLimit(*workers)
	for i := 0; i < *totalGames; i++ {
		i := i
		red, blue := a, b
		if i%2 == 1 {
			red, blue = b, a
		}
		g.Go(func() error {
			o, err := playGame(i, red, blue, *turnLimit, *ttPow)
			if err != nil {
				return err
			}
			log.Info().
				Int("game", i+1).
				Str("red", red.Name).
				Str("blue", blue.Name).
				Str("status", o.status.String()).
				Str("reason", o.reason).
				Int("turns", o.turns).
				Msg("game-finished")
			mu.Lock()
			outcomes = append(outcomes, o)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("selfplay")
	}

	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].index < outcomes[j].index })
	var t tally
	for _, o := range outcomes {
		t.add(o)
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", a.Name, t.wins[a.Name])
	fmt.Printf("%s: %d\n", b.Name, t.wins[b.Name])
	fmt.Printf("Draws: %d\n", t.draws)
}
