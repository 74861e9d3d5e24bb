package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/siszum/pos-server/realtime"
	"github.com/siszum/pos-server/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origin sudah dibatasi di CORS middleware
	},
}

// HandleWebSocket meng-upgrade koneksi lalu mendaftarkannya ke hub.
// Room ditentukan dari query (?room=admin / ?room=pos).
func HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	room := c.DefaultQuery("room", "admin")
	realtime.RegisterClient(conn, room)
	utils.InfoLogger.Printf("WebSocket client connected (room=%s)", room)

	// reader loop cuma untuk deteksi disconnect; pesan masuk diabaikan
	go func() {
		defer realtime.UnregisterClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
