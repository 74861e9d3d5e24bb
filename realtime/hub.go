package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Event types yang disiarkan ke terminal admin/POS.
const (
	EventTimerUpdate       = "timer_update"
	EventTableUpdate       = "table_update"
	EventOrderUpdate       = "order_update"
	EventRefillUpdate      = "refill_update"
	EventReservationUpdate = "reservation_update"
	EventDashboardUpdate   = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung seluruh terminal yang terhubung (admin console, kasir POS).
// Broadcast bersifat fire-and-forget: tidak ada jaminan urutan maupun delivery.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> room (admin / pos)
	mutex   sync.Mutex
	logf    func(format string, args ...interface{})
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
	logf:    func(string, ...interface{}) {},
}

// SetLogger memasang logger untuk error broadcast.
func SetLogger(logf func(format string, args ...interface{})) {
	hub.logf = logf
}

// RegisterClient menambahkan connection ke hub dengan room-nya.
func RegisterClient(conn *websocket.Conn, room string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = room
}

// UnregisterClient melepaskan connection dan menutupnya.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// Broadcast mengirim pesan ke semua terminal yang terhubung.
func Broadcast(event string, data interface{}) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		hub.logf("realtime: marshal error: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			hub.logf("realtime: write error: %v", err)
		}
	}
}
