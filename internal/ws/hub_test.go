package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// dialHub spins up a server that registers the upgraded connection on the
// hub and returns the client side.
func dialHub(t *testing.T, h *Hub, mesaID uint) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		h.AddConnection(mesaID, conn)
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	waitForClients(t, h, mesaID, 1)
	return conn
}

func waitForClients(t *testing.T, h *Hub, mesaID uint, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for {
		h.mu.Lock()
		n := len(h.mesas[mesaID])
		h.mu.Unlock()
		if n >= want {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("mesa %d never reached %d clients", mesaID, want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return env
}

func TestHubBroadcastEnvelope(t *testing.T) {
	h := NewHub()
	conn := dialHub(t, h, 7)

	h.Broadcast(7, "vote_cast", map[string]interface{}{"voter_id": 3})

	env := readEnvelope(t, conn)
	if env.Type != "vote_cast" {
		t.Fatalf("expected vote_cast, got %q", env.Type)
	}
	if env.MesaID != 7 {
		t.Fatalf("expected mesa 7, got %d", env.MesaID)
	}
	if env.SentAt == 0 {
		t.Fatal("expected sent_at to be stamped")
	}
	data, ok := env.Data.(map[string]interface{})
	if !ok || data["voter_id"] != float64(3) {
		t.Fatalf("unexpected payload %v", env.Data)
	}
}

func TestHubBroadcastIsMesaScoped(t *testing.T) {
	h := NewHub()
	listener := dialHub(t, h, 1)
	bystander := dialHub(t, h, 2)

	h.Broadcast(1, "round_started", nil)
	h.Broadcast(2, "member_joined", nil)

	if env := readEnvelope(t, listener); env.Type != "round_started" {
		t.Fatalf("mesa 1 got %q", env.Type)
	}
	if env := readEnvelope(t, bystander); env.Type != "member_joined" {
		t.Fatalf("mesa 2 got %q", env.Type)
	}
}

func TestHubBroadcastNoListeners(t *testing.T) {
	h := NewHub()
	h.Broadcast(99, "round_started", nil)
}

func TestHubCloseMesaDisconnectsClients(t *testing.T) {
	h := NewHub()
	conn := dialHub(t, h, 5)

	h.CloseMesa(5)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("expected read to fail after mesa close")
	}

	h.mu.Lock()
	_, ok := h.mesas[5]
	h.mu.Unlock()
	if ok {
		t.Fatal("expected mesa 5 to be dropped from the hub")
	}
}
