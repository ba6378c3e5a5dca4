package server

import (
	"encoding/json"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/entities"
	"github.com/decker502/conga/pkg/sim"
	"github.com/decker502/conga/pkg/utils"
)

func quietConfig() *config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Seed = 11
	cfg.Player.Lives = 1
	cfg.Camera.ScrollSpeed = 0
	cfg.Capture.SpawnInterval = 1e9
	cfg.Hazard.SpawnInterval = 1e9
	return cfg
}

func dial(t *testing.T, srv *httptest.Server, room string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?room=" + room
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

type envelope struct {
	Type  string          `json:"type"`
	Name  string          `json:"name"`
	State json.RawMessage `json:"state"`
}

// readUntil 读取消息直到 match 返回 true
func readUntil(t *testing.T, conn *websocket.Conn, match func(envelope) bool) envelope {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	conn.SetReadDeadline(deadline)
	for {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			t.Fatalf("ReadJSON: %v", err)
		}
		if match(env) {
			return env
		}
	}
}

func decodeState(t *testing.T, env envelope) sim.Snapshot {
	t.Helper()
	var snap sim.Snapshot
	if err := json.Unmarshal(env.State, &snap); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	return snap
}

func playerX(snap sim.Snapshot) float64 {
	for _, a := range snap.Actors {
		if a.KindName == components.KindPlayer.String() {
			return a.X
		}
	}
	return 0
}

func TestWebSocketInitialState(t *testing.T) {
	hub := NewHub(quietConfig())
	srv := httptest.NewServer(NewHandler(hub))
	defer srv.Close()

	conn := dial(t, srv, "alpha")
	env := readUntil(t, conn, func(e envelope) bool { return e.Type == "state" })
	snap := decodeState(t, env)

	if snap.Lives != 1 || snap.Phase != "playing" {
		t.Errorf("initial state lives=%d phase=%q", snap.Lives, snap.Phase)
	}
	if hub.RoomCount() != 1 {
		t.Errorf("RoomCount = %d, want 1", hub.RoomCount())
	}
}

func TestWebSocketTargetMovesPlayer(t *testing.T) {
	hub := NewHub(quietConfig())
	srv := httptest.NewServer(NewHandler(hub))
	defer srv.Close()

	conn := dial(t, srv, "beta")
	first := decodeState(t, readUntil(t, conn, func(e envelope) bool { return e.Type == "state" }))
	startX := playerX(first)

	if err := conn.WriteJSON(inboundMessage{Type: "target", X: startX + 1000, Y: 400}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		hub.Tick(0.05)
		snap := decodeState(t, readUntil(t, conn, func(e envelope) bool { return e.Type == "state" }))
		if playerX(snap) > startX {
			return
		}
	}
	t.Fatal("player never moved toward the target")
}

func TestWebSocketGameLostEvent(t *testing.T) {
	hub := NewHub(quietConfig())
	srv := httptest.NewServer(NewHandler(hub))
	defer srv.Close()

	conn := dial(t, srv, "gamma")
	readUntil(t, conn, func(e envelope) bool { return e.Type == "state" })

	room, err := hub.GetRoom("gamma")
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	room.Update(func(s *sim.Simulation) {
		pos := playerPosition(s)
		if _, err := entities.NewHazardEntity(s.EntityManager(), s.Config(), pos, utils.Vector2{}); err != nil {
			t.Fatalf("NewHazardEntity: %v", err)
		}
	})
	hub.Tick(0.016)

	readUntil(t, conn, func(e envelope) bool { return e.Type == "event" && e.Name == EventHazardStruck })
	readUntil(t, conn, func(e envelope) bool { return e.Type == "event" && e.Name == EventGameLost })
}

func TestRoomJoinLeaveAndCleanup(t *testing.T) {
	hub := NewHub(quietConfig())
	room, err := hub.GetRoom("delta")
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}

	_, leave := room.Join()
	if room.Clients() != 1 {
		t.Fatalf("Clients = %d, want 1", room.Clients())
	}
	if removed := hub.CleanupEmptyRooms(0); removed != 0 {
		t.Errorf("occupied room was removed")
	}

	leave()
	leave()
	if room.Clients() != 0 {
		t.Fatalf("Clients after double leave = %d, want 0", room.Clients())
	}
	if removed := hub.CleanupEmptyRooms(0); removed != 1 {
		t.Errorf("CleanupEmptyRooms removed %d rooms, want 1", removed)
	}
}

func TestJoinRoomSurvivesCleanup(t *testing.T) {
	hub := NewHub(quietConfig())
	stale, err := hub.GetRoom("zeta")
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if removed := hub.CleanupEmptyRooms(0); removed != 1 {
		t.Fatalf("CleanupEmptyRooms removed %d rooms, want 1", removed)
	}

	room, _, leave, err := hub.JoinRoom("zeta")
	if err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}
	defer leave()

	if room == stale {
		t.Error("JoinRoom returned a room that was already removed from the hub")
	}
	if removed := hub.CleanupEmptyRooms(0); removed != 0 {
		t.Errorf("joined room was removed")
	}
	again, err := hub.GetRoom("zeta")
	if err != nil || again != room {
		t.Errorf("hub should keep the joined room registered")
	}
	if room.Clients() != 1 {
		t.Errorf("Clients = %d, want 1", room.Clients())
	}
}

func TestRoomAdvanceStartsFromZero(t *testing.T) {
	hub := NewHub(quietConfig())
	room, err := hub.GetRoom("eta")
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	start := time.Unix(1000, 0)

	hub.Advance(start)
	if got := room.Snapshot().Elapsed; got != 0 {
		t.Fatalf("elapsed after first advance: got %v, want 0", got)
	}
	hub.Advance(start.Add(50 * time.Millisecond))
	if got := room.Snapshot().Elapsed; math.Abs(got-0.05) > 1e-9 {
		t.Errorf("elapsed after second advance: got %v, want 0.05", got)
	}
	hub.Advance(start.Add(10 * time.Second))
	if got := room.Snapshot().Elapsed; math.Abs(got-0.05-MaxStepDelta) > 1e-9 {
		t.Errorf("long gap should be clamped: elapsed %v", got)
	}

	// 新建的房间同样从 0 开始
	late, _ := hub.GetRoom("theta")
	hub.Advance(start.Add(20 * time.Second))
	if got := late.Snapshot().Elapsed; got != 0 {
		t.Errorf("late room elapsed: got %v, want 0", got)
	}
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub(quietConfig())
	room, _ := hub.GetRoom("epsilon")
	events, leave := room.Join()
	defer leave()

	done := make(chan struct{})
	go func() {
		room.Update(func(*sim.Simulation) {
			for i := 0; i < eventBuffer*2; i++ {
				room.publishLocked(EventMsg{Name: EventCaptureAcquired})
			}
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publishing blocked on a full subscriber")
	}
	if len(events) != eventBuffer {
		t.Errorf("buffered %d events, want %d", len(events), eventBuffer)
	}
}

func playerPosition(s *sim.Simulation) utils.Vector2 {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.EntityManager(), s.PlayerID())
	if !ok {
		return utils.Vector2{}
	}
	return pos.Vector2
}
