package bustracker

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) map[string]json.RawMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(msg, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func envType(t *testing.T, env map[string]json.RawMessage) string {
	t.Helper()
	var typ string
	if err := json.Unmarshal(env["type"], &typ); err != nil {
		t.Fatalf("decode type: %v", err)
	}
	return typ
}

func TestWSGreetingPrecedesBroadcasts(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dialWS(t, ts)

	env := readEnvelope(t, conn)
	if envType(t, env) != "status" {
		t.Fatalf("first message type %q, want status", envType(t, env))
	}
	var msg string
	_ = json.Unmarshal(env["message"], &msg)
	if msg != "Connected to Bus Tracking Server" {
		t.Errorf("greeting %q", msg)
	}
}

func TestWSBroadcastReachesAllClients(t *testing.T) {
	// Scenario: two connected subscribers each receive one publish;
	// dropping one does not affect the other.
	s, ts := newTestServer(t)
	a := dialWS(t, ts)
	b := dialWS(t, ts)
	readEnvelope(t, a) // greetings
	readEnvelope(t, b)

	waitForSubscribers(t, s, 2)
	postUpdate(t, ts, `{"busId":"R1-Bus1 (Route 1)","lat":26.1885,"lng":91.7535}`)

	for name, conn := range map[string]*websocket.Conn{"a": a, "b": b} {
		env := readEnvelope(t, conn)
		if envType(t, env) != "location_update" {
			t.Fatalf("client %s got type %q", name, envType(t, env))
		}
		var payload struct {
			BusID         string `json:"busId"`
			NextStop      string `json:"nextStop"`
			NextStopIndex int    `json:"nextStopIndex"`
			Distance      string `json:"distance"`
			ETA           int    `json:"eta"`
		}
		if err := json.Unmarshal(env["payload"], &payload); err != nil {
			t.Fatalf("client %s payload: %v", name, err)
		}
		if payload.BusID != "R1-Bus1 (Route 1)" {
			t.Errorf("client %s busId %q", name, payload.BusID)
		}
		if payload.NextStop == "" || payload.Distance == "" {
			t.Errorf("client %s missing enrichment: %+v", name, payload)
		}
	}

	// Disconnect one; the other still receives subsequent publishes.
	a.Close()
	waitForSubscribers(t, s, 1)

	postUpdate(t, ts, `{"busId":"R1-Bus1 (Route 1)","lat":26.1834,"lng":91.7475}`)
	env := readEnvelope(t, b)
	if envType(t, env) != "location_update" {
		t.Errorf("surviving client got type %q", envType(t, env))
	}
}

func TestWSSameBusOrderPreserved(t *testing.T) {
	s, ts := newTestServer(t)
	conn := dialWS(t, ts)
	readEnvelope(t, conn)
	waitForSubscribers(t, s, 1)

	// Walk the bus south along route 1; each broadcast must arrive in
	// publish order.
	positions := []string{
		`{"busId":"R1-Bus1","lat":26.1885,"lng":91.7535,"seq":0}`,
		`{"busId":"R1-Bus1","lat":26.1834,"lng":91.7475,"seq":1}`,
		`{"busId":"R1-Bus1","lat":26.1805,"lng":91.7405,"seq":2}`,
	}
	for _, p := range positions {
		postUpdate(t, ts, p)
	}

	for want := 0; want < len(positions); want++ {
		env := readEnvelope(t, conn)
		var payload struct {
			Seq int `json:"seq"`
		}
		if err := json.Unmarshal(env["payload"], &payload); err != nil {
			t.Fatalf("payload: %v", err)
		}
		if payload.Seq != want {
			t.Fatalf("out of order: got seq %d, want %d", payload.Seq, want)
		}
	}
}

// waitForSubscribers polls until the hub sees n subscribers; subscription
// happens asynchronously to the dial.
func waitForSubscribers(t *testing.T, s *Server, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.hub.Subscribers() == n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("hub never reached %d subscribers (have %d)", n, s.hub.Subscribers())
}
