package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Envelope is the frame every mesa broadcast goes out in. SentAt lets
// clients order frames after a reconnect.
type Envelope struct {
	Type   string      `json:"type"`
	MesaID uint        `json:"mesa_id"`
	Data   interface{} `json:"data,omitempty"`
	SentAt int64       `json:"sent_at"`
}

// Hub tracks which websocket connections are listening on each mesa.
type Hub struct {
	mu    sync.Mutex
	mesas map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{mesas: make(map[uint]map[*websocket.Conn]bool)}
}

func (h *Hub) AddConnection(mesaID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.mesas[mesaID] == nil {
		h.mesas[mesaID] = make(map[*websocket.Conn]bool)
	}
	h.mesas[mesaID][conn] = true
	log.Printf("ws: client connected to mesa %d (total: %d)", mesaID, len(h.mesas[mesaID]))
}

func (h *Hub) RemoveConnection(mesaID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.mesas[mesaID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.mesas, mesaID)
		}
		log.Printf("ws: client disconnected from mesa %d", mesaID)
	}
}

// Broadcast sends one event to every client on the mesa. The envelope is
// marshalled once; connections that fail the write are dropped.
func (h *Hub) Broadcast(mesaID uint, eventType string, data interface{}) {
	payload, err := json.Marshal(Envelope{
		Type:   eventType,
		MesaID: mesaID,
		Data:   data,
		SentAt: time.Now().UnixMilli(),
	})
	if err != nil {
		log.Printf("ws: marshal %s for mesa %d: %v", eventType, mesaID, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.mesas[mesaID] {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("ws: dropping client on mesa %d: %v", mesaID, err)
			conn.Close()
			delete(h.mesas[mesaID], conn)
		}
	}
	if len(h.mesas[mesaID]) == 0 {
		delete(h.mesas, mesaID)
	}
}

// CloseMesa disconnects every client still listening on a mesa. Called
// when the host shuts the mesa down.
func (h *Hub) CloseMesa(mesaID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.mesas[mesaID] {
		conn.Close()
	}
	delete(h.mesas, mesaID)
}
