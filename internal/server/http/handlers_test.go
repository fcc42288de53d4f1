package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"krojanty/internal/config"
	"krojanty/internal/server/game"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) (*httptest.Server, *Handler) {
	t.Helper()
	cfg := config.Default()
	cfg.MaxDepth = 2
	cfg.TTSizePow = 12
	if mutate != nil {
		mutate(&cfg)
	}
	store := config.NewStore(cfg)
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx.Done())

	h := NewHandler(store, game.NewManager(cfg.TurnLimit, cfg.TTSizePow), hub)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return srv, h
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s: %v", method, url, err)
		}
	}
	return resp.StatusCode
}

func newGame(t *testing.T, srv *httptest.Server) GameResponse {
	t.Helper()
	var g GameResponse
	if code := doJSON(t, http.MethodPost, srv.URL+"/api/games", nil, &g); code != http.StatusCreated {
		t.Fatalf("new game: status %d", code)
	}
	return g
}

func TestPing(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	var out map[string]bool
	if code := doJSON(t, http.MethodGet, srv.URL+"/api/ping", nil, &out); code != http.StatusOK || !out["ok"] {
		t.Fatalf("ping: %d %v", code, out)
	}
}

func TestNewGameAndState(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	g := newGame(t, srv)
	if g.GameID == "" || g.ToMove != "blue" || g.Status != "ongoing" || len(g.LegalMoves) != 52 {
		t.Fatalf("unexpected new game %+v", g)
	}

	var state GameResponse
	if code := doJSON(t, http.MethodGet, srv.URL+"/api/games/"+g.GameID, nil, &state); code != http.StatusOK {
		t.Fatalf("state: %d", code)
	}
	if state.Position != g.Position || state.Turn != 1 {
		t.Fatalf("state %+v", state)
	}

	var e errorResponse
	if code := doJSON(t, http.MethodGet, srv.URL+"/api/games/missing", nil, &e); code != http.StatusNotFound {
		t.Fatalf("missing game: %d", code)
	}
}

func TestPlayMove(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	g := newGame(t, srv)
	url := srv.URL + "/api/games/" + g.GameID + "/moves"

	tests := []struct {
		name string
		move string
		code int
	}{
		{"legal", "A6A5", http.StatusOK},
		{"empty origin", "A6A4", http.StatusUnprocessableEntity},
		{"bad notation", "Z0", http.StatusBadRequest},
		{"lower case", "h4h5", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out PlayResponse
			code := doJSON(t, http.MethodPost, url, PlayRequest{Move: tt.move}, &out)
			if code != tt.code {
				t.Fatalf("status %d, want %d", code, tt.code)
			}
			if code == http.StatusOK && out.Move != strings.ToUpper(tt.move) {
				t.Fatalf("move echoed as %q", out.Move)
			}
		})
	}

	var state GameResponse
	doJSON(t, http.MethodGet, srv.URL+"/api/games/"+g.GameID, nil, &state)
	if state.Turn != 3 || len(state.History) != 2 {
		t.Fatalf("state after moves %+v", state)
	}
}

func TestAiMove(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	g := newGame(t, srv)
	url := srv.URL + "/api/games/" + g.GameID + "/ai"

	var out AiMoveResponse
	if code := doJSON(t, http.MethodPost, url, AiMoveRequest{MaxDepth: 1}, &out); code != http.StatusOK {
		t.Fatalf("ai: %d", code)
	}
	if out.BestMove == "----" || out.Depth != 1 || out.Game.ToMove != "red" {
		t.Fatalf("ai response %+v", out)
	}
	if out.Game.History[0].String() != out.BestMove {
		t.Fatalf("history %v does not start with %s", out.Game.History, out.BestMove)
	}

	var e errorResponse
	if code := doJSON(t, http.MethodPost, url, AiMoveRequest{MaxDepth: 99}, &e); code != http.StatusBadRequest {
		t.Fatalf("depth 99: %d", code)
	}
}

func TestAiMoveAfterGameOver(t *testing.T) {
	srv, _ := newTestServer(t, func(c *config.Config) { c.TurnLimit = 1 })
	g := newGame(t, srv)
	url := srv.URL + "/api/games/" + g.GameID + "/ai"

	var out AiMoveResponse
	if code := doJSON(t, http.MethodPost, url, nil, &out); code != http.StatusOK {
		t.Fatalf("first ai move: %d", code)
	}
	if out.Game.Status == "ongoing" || out.Game.Reason != "score" {
		t.Fatalf("game should be decided on score: %+v", out.Game)
	}
	var e errorResponse
	if code := doJSON(t, http.MethodPost, url, nil, &e); code != http.StatusConflict {
		t.Fatalf("second ai move: %d", code)
	}
}

func TestAnalyze(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	tests := []struct {
		name     string
		position string
		code     int
		best     string
		winner   string
	}{
		// blue king one step from its goal
		{"forced win", "Sk7/s8/9/9/9/9/9/9/7K1 b", http.StatusOK, "H1I1", ""},
		{"already won", "Sk7/s8/9/9/9/9/9/9/8K b", http.StatusOK, "----", "blue"},
		{"garbage", "hello", http.StatusBadRequest, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out AnalyzeResponse
			code := doJSON(t, http.MethodPost, srv.URL+"/api/analyze", AnalyzeRequest{Position: tt.position, MaxDepth: 2}, &out)
			if code != tt.code {
				t.Fatalf("status %d, want %d", code, tt.code)
			}
			if code != http.StatusOK {
				return
			}
			if out.BestMove != tt.best || out.Winner != tt.winner {
				t.Fatalf("got best %s winner %q", out.BestMove, out.Winner)
			}
		})
	}
}

func TestConfigRoundTrip(t *testing.T) {
	srv, h := newTestServer(t, nil)

	var cfg config.Config
	if code := doJSON(t, http.MethodGet, srv.URL+"/api/config", nil, &cfg); code != http.StatusOK || cfg.MaxDepth != 2 {
		t.Fatalf("get config: %d %+v", code, cfg)
	}

	var e errorResponse
	if code := doJSON(t, http.MethodPut, srv.URL+"/api/config", map[string]int{"max_depth": 0}, &e); code != http.StatusBadRequest {
		t.Fatalf("invalid config accepted: %d", code)
	}
	if code := doJSON(t, http.MethodPut, srv.URL+"/api/config", map[string]int{"max_depth": 3}, &cfg); code != http.StatusOK {
		t.Fatalf("put config: %d", code)
	}
	if got := h.cfg.Get().MaxDepth; got != 3 {
		t.Fatalf("stored max_depth = %d", got)
	}
}

func TestWebSocketPushesState(t *testing.T) {
	srv, h := newTestServer(t, nil)
	g := newGame(t, srv)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/games/" + g.GameID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	read := func() GameResponse {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatal(err)
		}
		if msg.Type != "state" {
			t.Fatalf("message type %q", msg.Type)
		}
		var s GameResponse
		if err := json.Unmarshal(msg.Payload, &s); err != nil {
			t.Fatal(err)
		}
		return s
	}

	if s := read(); s.Turn != 1 {
		t.Fatalf("initial state turn %d", s.Turn)
	}
	if n := h.hub.Clients(g.GameID); n != 1 {
		t.Fatalf("clients = %d", n)
	}

	doJSON(t, http.MethodPost, srv.URL+"/api/games/"+g.GameID+"/moves", PlayRequest{Move: "A6A5"}, nil)
	s := read()
	if s.Turn != 2 || len(s.History) != 1 || s.History[0].String() != "A6A5" {
		t.Fatalf("pushed state %+v", s)
	}
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>krojanty</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv, _ := newTestServer(t, func(c *config.Config) { c.WebDir = dir })

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(buf.String(), "krojanty") {
		t.Fatalf("static: %d %q", resp.StatusCode, buf.String())
	}
}
