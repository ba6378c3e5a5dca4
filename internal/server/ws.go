package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/decker502/conga/pkg/sim"
	"github.com/decker502/conga/pkg/utils"
)

// StateInterval 快照推送间隔
const StateInterval = 50 * time.Millisecond

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// inboundMessage 客户端消息
//
//	{"type":"target","x":1200,"y":640}
//	{"type":"reset"}
type inboundMessage struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// stateMsg 推送给客户端的世界快照
type stateMsg struct {
	Type  string        `json:"type"` // 固定为 "state"
	Room  string        `json:"room"`
	State *sim.Snapshot `json:"state"`
}

func serveWS(h *Hub, w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room")
	if roomID == "" {
		roomID = "default"
	}

	room, events, leave, err := h.JoinRoom(roomID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer leave()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[WS] Client joined room %q (%d connected)", roomID, room.Clients())

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go func() {
		defer cancel()
		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if msgType != websocket.TextMessage {
				log.Printf("[WS] Unsupported message type %d", msgType)
				continue
			}
			handleInbound(room, data)
		}
	}()

	writeLoop(ctx, conn, room, events)
	log.Printf("[WS] Client left room %q", roomID)
}

func handleInbound(room *Room, data []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Printf("[WS] Bad message: %v", err)
		return
	}

	switch msg.Type {
	case "target":
		room.SetTarget(utils.Vec2(msg.X, msg.Y))
	case "reset":
		room.Reset()
	default:
		log.Printf("[WS] Unknown message type %q", msg.Type)
	}
}

// writeLoop 是唯一的写入者：先推送一次快照，之后按 StateInterval 推送，通知立即推送
func writeLoop(ctx context.Context, conn *websocket.Conn, room *Room, events <-chan EventMsg) {
	ticker := time.NewTicker(StateInterval)
	defer ticker.Stop()

	send := func(v interface{}) bool {
		if err := conn.WriteJSON(v); err != nil {
			log.Printf("[WS] Write failed: %v", err)
			return false
		}
		return true
	}

	if !send(stateMsg{Type: "state", Room: room.ID, State: room.Snapshot()}) {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !send(ev) {
				return
			}
		case <-ticker.C:
			if !send(stateMsg{Type: "state", Room: room.ID, State: room.Snapshot()}) {
				return
			}
		}
	}
}
