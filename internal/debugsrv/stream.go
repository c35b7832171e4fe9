// internal/debugsrv/stream.go
package debugsrv

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 2 * time.Second

// handleStream отдаёт снимки сессии по WebSocket, пока клиент не отключится.
// Снимок отправляется только если с прошлой отправки прошёл хотя бы один кадр.
func (h *handlers) handleStream(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return h.allowedOrigin(r.Header.Get("Origin"))
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debugw("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	// Входящие сообщения не нужны; чтение нужно только чтобы заметить закрытие
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	sent := false
	var lastTick uint64
	for {
		if snap := h.source.Snapshot(); snap != nil && (!sent || snap.Tick != lastTick) {
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(snap); err != nil {
				h.log.Debugw("websocket write failed", "err", err)
				return
			}
			sent = true
			lastTick = snap.Tick
		}

		select {
		case <-ticker.C:
		case <-closed:
			return
		case <-h.done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeTimeout))
			return
		}
	}
}
