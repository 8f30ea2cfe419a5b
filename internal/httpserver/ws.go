// internal/httpserver/ws.go
//
// Live play over a WebSocket at GET /game/ws.
// Each connection owns at most one round; frames are JSON (wsMessage in,
// wsReply out) and the connection is kept alive with ping/pong deadlines.

package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings at this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

// newUpgrader accepts same-process clients (no Origin header) and the one
// browser origin the REST routes allow through CORS.
func newUpgrader(origin string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			o := r.Header.Get("Origin")
			return o == "" || o == origin
		},
	}
}

// wsMessage is the client → server frame.
//
//	{"type":"new"} | {"type":"daily"} | {"type":"guess","guess":"crane"}
type wsMessage struct {
	Type  string `json:"type"`
	Guess string `json:"guess,omitempty"`
}

// wsReply is the server → client frame.
type wsReply struct {
	Type   string    `json:"type"` // started | result | error
	GameID string    `json:"gameId,omitempty"`
	Date   string    `json:"date,omitempty"`
	Result *guessRes `json:"result,omitempty"`
	Error  string    `json:"error,omitempty"`
}

// wsClient plays rounds over one connection. The connection owns at most one
// round at a time; starting a new one abandons the previous.
type wsClient struct {
	srv    *Server
	conn   *websocket.Conn
	send   chan wsReply
	done   chan struct{} // closed when writeLoop exits
	gameID string
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	c := &wsClient{srv: s, conn: conn, send: make(chan wsReply, 16), done: make(chan struct{})}
	go c.writeLoop()
	c.readLoop()
}

// readLoop handles one frame at a time until the peer goes away.
func (c *wsClient) readLoop() {
	defer func() {
		close(c.send)
		if c.gameID != "" {
			log.Debug().Str("gameId", c.gameID).Msg("websocket closed")
		}
	}()

	c.conn.SetReadLimit(4096)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg wsMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Msg("websocket read")
			}
			return
		}
		select {
		case c.send <- c.handle(context.Background(), msg):
		case <-c.done:
			return
		}
	}
}

func (c *wsClient) handle(ctx context.Context, msg wsMessage) wsReply {
	switch msg.Type {
	case "new", "daily":
		var (
			g    *game.Session
			date string
			err  error
		)
		if msg.Type == "daily" {
			g, date, err = c.srv.startDaily()
		} else {
			g, err = c.srv.dealer.Start()
		}
		if err != nil {
			return wsReply{Type: "error", Error: "start_failed"}
		}
		if err := c.srv.store.Save(ctx, g.Snapshot()); err != nil {
			return wsReply{Type: "error", Error: "save_failed"}
		}
		c.srv.metrics.RoundStarted(g.Mode())
		c.gameID = g.ID()
		return wsReply{Type: "started", GameID: g.ID(), Date: date}

	case "guess":
		if c.gameID == "" {
			return wsReply{Type: "error", Error: "no_game"}
		}
		res, _, err := c.srv.submit(ctx, c.gameID, msg.Guess)
		if err != nil {
			return wsReply{Type: "error", GameID: c.gameID, Error: errorCode(err)}
		}
		return wsReply{Type: "result", GameID: c.gameID, Result: &res}
	}
	return wsReply{Type: "error", Error: "unknown_type"}
}

// writeLoop pumps replies to the connection and keeps it alive with pings.
func (c *wsClient) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		close(c.done)
	}()

	for {
		select {
		case reply, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(reply); err != nil {
				log.Warn().Err(err).Msg("websocket write")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
