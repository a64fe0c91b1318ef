package main

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bmizerany/pat"
	"github.com/gorilla/websocket"
	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishaBack/internal/metrics"
	"krishaBack/internal/models"
)

func newWSTestApp(t *testing.T) (*application, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	m := NewWebSocketManager(zerolog.Nop())
	go m.Run(ctx)
	t.Cleanup(cancel)
	return &application{logger: zerolog.Nop(), wsManager: m, metrics: metrics.NewHTTPMetrics(nil)}, cancel
}

func TestWebSocketReceivesPushedMessage(t *testing.T) {
	app, _ := newWSTestApp(t)

	mux := pat.New()
	mux.Get("/ws/:user_id", alice.New(app.requestID, app.logRequest, app.recoverPanic).ThenFunc(app.WebSocketHandler))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/2", nil)
	require.NoError(t, err)
	defer conn.Close()

	msg := models.Message{ID: 10, FromUserID: 1, ToUserID: 2, Message: "привет", Timestamp: time.Now().UTC()}
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		tk := time.NewTicker(10 * time.Millisecond)
		defer tk.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tk.C:
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				_ = app.wsManager.NotifyMessage(ctx, msg)
				cancel()
			}
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var got models.Message
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, 10, got.ID)
	assert.Equal(t, "привет", got.Message)
}

func TestWebSocketRejectsBadUserID(t *testing.T) {
	app, _ := newWSTestApp(t)
	mux := pat.New()
	mux.Get("/ws/:user_id", alice.New(app.requestID).ThenFunc(app.WebSocketHandler))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/ws/abc", nil))
	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"invalid user_id"}`, rec.Body.String())
}

func TestNotifyAfterStopFails(t *testing.T) {
	app, cancel := newWSTestApp(t)
	cancel()
	<-app.wsManager.done

	err := app.wsManager.NotifyMessage(context.Background(), models.Message{ToUserID: 1})
	assert.ErrorIs(t, err, errManagerStopped)
}
