package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"krishaBack/internal/models"
)

/********** тайминги **********/
const (
	readLimit     = 4 << 10
	readDeadline  = 120 * time.Second // продлевается pong'ом
	writeDeadline = 5 * time.Second
	pingInterval  = 15 * time.Second
	sendBuffer    = 16
)

var errManagerStopped = errors.New("websocket manager stopped")

type wsClient struct {
	userID int
	conn   *websocket.Conn
	send   chan []byte
}

// WebSocketManager keeps one live socket per user and pushes stored messages
// to recipients. All access to clients happens on the Run goroutine.
type WebSocketManager struct {
	clients    map[int]*wsClient
	register   chan *wsClient
	unregister chan *wsClient
	direct     chan models.Message
	done       chan struct{}
	logger     zerolog.Logger
}

func NewWebSocketManager(logger zerolog.Logger) *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[int]*wsClient),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		direct:     make(chan models.Message),
		done:       make(chan struct{}),
		logger:     logger.With().Str("component", "ws").Logger(),
	}
}

func (ws *WebSocketManager) Run(ctx context.Context) {
	defer func() {
		for id, c := range ws.clients {
			close(c.send)
			delete(ws.clients, id)
		}
		close(ws.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case c := <-ws.register:
			// новый сокет пользователя вытесняет старый
			if old, ok := ws.clients[c.userID]; ok {
				close(old.send)
			}
			ws.clients[c.userID] = c
			ws.logger.Debug().Int("user_id", c.userID).Msg("ws register")

		case c := <-ws.unregister:
			if cur, ok := ws.clients[c.userID]; ok && cur == c {
				close(cur.send)
				delete(ws.clients, c.userID)
				ws.logger.Debug().Int("user_id", c.userID).Msg("ws unregister")
			}

		case msg := <-ws.direct:
			c, ok := ws.clients[msg.ToUserID]
			if !ok {
				continue
			}
			payload, err := json.Marshal(msg)
			if err != nil {
				ws.logger.Error().Err(err).Msg("encode message")
				continue
			}
			select {
			case c.send <- payload:
			default:
				ws.logger.Warn().Int("user_id", c.userID).Msg("ws send buffer full, dropping client")
				close(c.send)
				delete(ws.clients, c.userID)
			}
		}
	}
}

// NotifyMessage hands the message to the recipient's socket if one is open on
// this instance.
func (ws *WebSocketManager) NotifyMessage(ctx context.Context, msg models.Message) error {
	select {
	case ws.direct <- msg:
		return nil
	case <-ws.done:
		return errManagerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WebSocketHandler upgrades GET /ws/:user_id. The socket only receives pushes;
// anything the client sends is discarded.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(r.URL.Query().Get(":user_id"))
	if err != nil || userID <= 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid user_id"}`))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &wsClient{userID: userID, conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case app.wsManager.register <- c:
	case <-app.wsManager.done:
		_ = writeClose(conn, websocket.CloseGoingAway, "server shutting down")
		_ = conn.Close()
		return
	}

	go app.wsManager.writePump(c)
	go app.wsManager.readPump(c)
}

func (ws *WebSocketManager) readPump(c *wsClient) {
	defer func() {
		select {
		case ws.unregister <- c:
		case <-ws.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(readDeadline))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(readDeadline))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (ws *WebSocketManager) writePump(c *wsClient) {
	t := time.NewTicker(pingInterval)
	defer func() {
		t.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			if !ok {
				_ = writeClose(c.conn, websocket.CloseNormalClosure, "")
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				ws.logger.Debug().Err(err).Int("user_id", c.userID).Msg("ws write failed")
				return
			}
		case <-t.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeDeadline)); err != nil {
				return
			}
		}
	}
}

// аккуратная отправка close-фрейма
func writeClose(conn *websocket.Conn, code int, reason string) error {
	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeDeadline),
	)
}
