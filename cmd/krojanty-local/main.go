package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"krojanty/internal/config"
	"krojanty/internal/engine"
	"krojanty/internal/server/game"
	httpserver "krojanty/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	// headless machines have nothing to open
	_ = cmd.Start()
}

func main() {
	cfgPath := flag.String("config", "", "JSON config file; defaults apply when empty")
	addr := flag.String("addr", "", "listen address, overrides the config")
	webDir := flag.String("web", "", "directory with the board UI, overrides the config")
	depth := flag.Int("depth", 0, "engine depth, overrides the config")
	open := flag.Bool("open", false, "open the UI in the default browser")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *webDir != "" {
		cfg.WebDir = *webDir
	}
	if *depth != 0 {
		cfg.MaxDepth = *depth
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	cfg.SetupLogging()
	engine.Init()

	if err := run(cfg, *open); err != nil {
		log.Fatal().Err(err).Msg("server")
	}
}

func run(cfg config.Config, open bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := httpserver.NewHub()
	h := httpserver.NewHandler(config.NewStore(cfg), game.NewManager(cfg.TurnLimit, cfg.TTSizePow), hub)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hub.Run(gctx.Done())
		return nil
	})
	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr).Str("web", cfg.WebDir).Int("depth", cfg.MaxDepth).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if open {
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + cfg.Addr)
		}()
	}

	return g.Wait()
}
