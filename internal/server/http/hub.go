package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"krojanty/internal/server/game"
)

const wsIdlePingInterval = 30 * time.Second

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type wsClient struct {
	gameID string
	conn   *websocket.Conn
	send   chan []byte
}

// Hub fans game snapshots out to the websocket clients watching that game.
type Hub struct {
	mu        sync.Mutex
	clients   map[*wsClient]struct{}
	broadcast chan game.Snapshot
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*wsClient]struct{}),
		broadcast: make(chan game.Snapshot, 32),
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case snap := <-h.broadcast:
			msg := mustMarshal(wsMessage{Type: "state", Payload: mustMarshal(snapshotToDTO(snap))})
			h.mu.Lock()
			for c := range h.clients {
				if c.gameID == snap.ID {
					c.trySend(msg)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues snap for delivery and never blocks; a full queue drops it.
func (h *Hub) Publish(snap game.Snapshot) {
	select {
	case h.broadcast <- snap:
	default:
		log.Warn().Str("game", snap.ID).Msg("hub-queue-full")
	}
}

func (h *Hub) register(c *wsClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *wsClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Clients counts the connections watching gameID.
func (h *Hub) Clients(gameID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for c := range h.clients {
		if c.gameID == gameID {
			n++
		}
	}
	return n
}

func (c *wsClient) trySend(msg []byte) {
	select {
	case c.send <- msg:
	default:
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// serveWS upgrades the request and sends the current snapshot first, then
// every later one until the peer goes away.
func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request, snap game.Snapshot) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Msg("ws-upgrade")
		return
	}
	client := &wsClient{gameID: snap.ID, conn: conn, send: make(chan []byte, 16)}
	h.register(client)
	client.trySend(mustMarshal(wsMessage{Type: "state", Payload: mustMarshal(snapshotToDTO(snap))}))

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			log.Debug().Err(err).Str("game", snap.ID).Msg("ws-write")
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.unregister(client)
			return
		}
	}
}

func writeWSWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(wsIdlePingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()
	ping := mustMarshal(wsMessage{Type: "ping"})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < wsIdlePingInterval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, ping); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}
