package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"krojanty/internal/config"
	"krojanty/internal/engine"
	"krojanty/internal/krojanty"
	"krojanty/internal/netplay"
	"krojanty/internal/render"
)

func main() {
	listen := flag.String("s", "", "listen on this port and play red")
	dial := flag.String("c", "", "connect to host:port and play blue")
	ai := flag.Bool("ia", false, "let the engine play the local side")
	cfgPath := flag.String("config", "", "JSON config file")
	quiet := flag.Bool("q", false, "do not draw the board after each move")
	flag.Parse()

	if (*listen == "") == (*dial == "") {
		fmt.Fprintln(os.Stderr, "usage: krojanty-net -s <port> | -c <host:port> [-ia]")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	cfg.SetupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		conn  *netplay.Conn
		local krojanty.Side
	)
	if *listen != "" {
		local = krojanty.Red
		log.Info().Str("port", *listen).Msg("waiting-for-peer")
		conn, err = netplay.Listen(ctx, ":"+*listen)
	} else {
		local = krojanty.Blue
		conn, err = netplay.Dial(ctx, *dial)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("connect")
	}
	log.Info().Str("peer", conn.RemoteAddr().String()).Str("side", local.String()).Msg("connected")

	var player netplay.Player
	if *ai {
		player = &netplay.EnginePlayer{
			Engine: engine.NewEngine(engine.WithMaxDepth(cfg.MaxDepth), engine.WithTTSizePow(cfg.TTSizePow)),
			Delay:  time.Duration(cfg.AIDelayMs) * time.Millisecond,
		}
	} else {
		player = netplay.NewLinePlayer(os.Stdin, os.Stdout)
	}

	m := &netplay.Match{
		Conn:   conn,
		Local:  local,
		Player: player,
		Game:   krojanty.NewGame(cfg.TurnLimit),
	}
	if !*quiet {
		fmt.Println(render.Game(m.Game))
		m.OnMove = func(krojanty.Side, krojanty.Move, krojanty.Captures) {
			fmt.Println(render.Game(m.Game))
		}
	}

	if err := m.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("match")
	}
	fmt.Printf("%s (%s)\n", m.Game.Status, m.Game.Reason)
}
