// Package mobile starts the local server from an embedding app, which cannot
// run a main package.
package mobile

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"krojanty/internal/config"
	"krojanty/internal/server/game"
	httpserver "krojanty/internal/server/http"
)

var (
	mu      sync.Mutex
	server  *http.Server
	stopHub context.CancelFunc
)

// StartServer serves webDir and the API on 127.0.0.1:port in the
// background and returns the bound address. Port "0" picks a free one.
func StartServer(webDir, port string) (string, error) {
	mu.Lock()
	defer mu.Unlock()
	if server != nil {
		return "", errors.New("server already running")
	}

	cfg := config.Default()
	cfg.WebDir = webDir
	cfg.Addr = "127.0.0.1:" + port
	cfg.LogConsole = false
	cfg.SetupLogging()

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return "", errors.Wrapf(err, "listen %s", cfg.Addr)
	}

	hub := httpserver.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx.Done())

	h := httpserver.NewHandler(config.NewStore(cfg), game.NewManager(cfg.TurnLimit, cfg.TTSizePow), hub)
	srv := &http.Server{Handler: h.Router(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("mobile-server")
		}
	}()

	server, stopHub = srv, cancel
	return ln.Addr().String(), nil
}

// StopServer shuts the server down. Safe to call when nothing runs.
func StopServer() error {
	mu.Lock()
	defer mu.Unlock()
	if server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := server.Shutdown(ctx)
	stopHub()
	server, stopHub = nil, nil
	return err
}
