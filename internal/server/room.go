// Package server 通过 WebSocket 提供多房间的对局服务
//
// 每个房间持有一个独立的 Simulation，服务器按固定频率推进所有房间，
// 客户端发送转向目标并接收世界快照和通知。
package server

import (
	"log"
	"sync"
	"time"

	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/game"
	"github.com/decker502/conga/pkg/sim"
	"github.com/decker502/conga/pkg/utils"
)

// MaxStepDelta 房间单帧最大时间间隔（秒）
const MaxStepDelta = 0.25

// eventBuffer 每个订阅者的通知缓冲，满了之后新通知被丢弃
const eventBuffer = 64

// EventMsg 推送给客户端的通知
type EventMsg struct {
	Type              string         `json:"type"` // 固定为 "event"
	Name              string         `json:"name"`
	Entity            ecs.EntityID   `json:"entity,omitempty"`
	Entities          []ecs.EntityID `json:"entities,omitempty"`
	InvincibleSeconds float64        `json:"invincibleSeconds,omitempty"`
}

// 通知名称
const (
	EventCaptureAcquired = "captureAcquired"
	EventHazardStruck    = "hazardStruck"
	EventConvoyScattered = "convoyScattered"
	EventGameWon         = "gameWon"
	EventGameLost        = "gameLost"
)

// Room 一局对局，房间内的所有连接共享同一个玩家
type Room struct {
	ID string

	mu          sync.Mutex
	sim         *sim.Simulation
	subscribers map[chan EventMsg]struct{}
	clients     int
	lastActive  time.Time
	clock       utils.FrameClock
}

func newRoom(id string, cfg *config.GameConfig) (*Room, error) {
	s, err := sim.NewSimulation(cfg)
	if err != nil {
		return nil, err
	}
	r := &Room{
		ID:          id,
		sim:         s,
		subscribers: make(map[chan EventMsg]struct{}),
		lastActive:  time.Now(),
	}
	s.AddListener(r.listener())
	return r, nil
}

// listener 把模拟通知转发给订阅者（在 Step 内调用，此时已持有 r.mu）
func (r *Room) listener() game.EventListener {
	return game.ListenerFuncs{
		CaptureAcquired: func(id ecs.EntityID) {
			r.publishLocked(EventMsg{Name: EventCaptureAcquired, Entity: id})
		},
		HazardStruck: func(seconds float64) {
			r.publishLocked(EventMsg{Name: EventHazardStruck, InvincibleSeconds: seconds})
		},
		ConvoyScattered: func(ids []ecs.EntityID) {
			r.publishLocked(EventMsg{Name: EventConvoyScattered, Entities: append([]ecs.EntityID(nil), ids...)})
		},
		GameWon: func() {
			r.publishLocked(EventMsg{Name: EventGameWon})
		},
		GameLost: func() {
			r.publishLocked(EventMsg{Name: EventGameLost})
		},
	}
}

func (r *Room) publishLocked(ev EventMsg) {
	ev.Type = "event"
	for ch := range r.subscribers {
		select {
		case ch <- ev:
		default:
			log.Printf("[Room %s] Dropped %s event for a slow client", r.ID, ev.Name)
		}
	}
}

// Join 加入房间，返回通知通道和离开函数
func (r *Room) Join() (<-chan EventMsg, func()) {
	ch := make(chan EventMsg, eventBuffer)

	r.mu.Lock()
	r.subscribers[ch] = struct{}{}
	r.clients++
	r.lastActive = time.Now()
	r.mu.Unlock()

	var once sync.Once
	leave := func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subscribers, ch)
			r.clients--
			r.lastActive = time.Now()
			r.mu.Unlock()
		})
	}
	return ch, leave
}

// Clients 当前连接数
func (r *Room) Clients() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clients
}

// SetTarget 设置玩家的转向目标
func (r *Room) SetTarget(target utils.Vector2) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sim.SetSteeringTarget(target)
}

// Reset 重新开始一局
func (r *Room) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sim.Reset()
	r.clock.Reset()
	log.Printf("[Room %s] Reset", r.ID)
}

// Step 推进一帧
func (r *Room) Step(dt float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sim.Step(dt)
}

// Advance 按墙钟时间推进一帧
//
// 房间创建或重置后的第一帧间隔为 0，之后的间隔不超过 MaxStepDelta。
func (r *Room) Advance(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dt := r.clock.Delta(now)
	if dt > MaxStepDelta {
		dt = MaxStepDelta
	}
	r.sim.Step(dt)
}

// Snapshot 当前世界快照（与模拟不共享可变数据）
func (r *Room) Snapshot() *sim.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sim.Snapshot()
}

// Update 在持有房间锁的情况下访问模拟
func (r *Room) Update(fn func(s *sim.Simulation)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.sim)
}

// Hub 管理所有房间
type Hub struct {
	mu     sync.Mutex
	rooms  map[string]*Room
	config *config.GameConfig
}

// NewHub 创建房间管理器，cfg 为 nil 时使用默认配置
func NewHub(cfg *config.GameConfig) *Hub {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	return &Hub{rooms: make(map[string]*Room), config: cfg}
}

// GetRoom 获取房间，不存在时创建
func (h *Hub) GetRoom(id string) (*Room, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.getRoomLocked(id)
}

// JoinRoom 获取（或创建）房间并加入
//
// 查找和加入在 h.mu 内完成，CleanupEmptyRooms 不会在两者之间删除房间。
func (h *Hub) JoinRoom(id string) (*Room, <-chan EventMsg, func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, err := h.getRoomLocked(id)
	if err != nil {
		return nil, nil, nil, err
	}
	events, leave := r.Join()
	return r, events, leave, nil
}

func (h *Hub) getRoomLocked(id string) (*Room, error) {
	if r, ok := h.rooms[id]; ok {
		return r, nil
	}
	r, err := newRoom(id, h.config)
	if err != nil {
		return nil, err
	}
	h.rooms[id] = r
	log.Printf("[Hub] Created room %q", id)
	return r, nil
}

// RoomCount 房间数量
func (h *Hub) RoomCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms)
}

func (h *Hub) snapshotRooms() []*Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	rooms := make([]*Room, 0, len(h.rooms))
	for _, r := range h.rooms {
		rooms = append(rooms, r)
	}
	return rooms
}

// Tick 以固定间隔推进所有房间
func (h *Hub) Tick(dt float64) {
	for _, r := range h.snapshotRooms() {
		r.Step(dt)
	}
}

// Advance 按墙钟时间推进所有房间（每个房间各自计时）
func (h *Hub) Advance(now time.Time) {
	for _, r := range h.snapshotRooms() {
		r.Advance(now)
	}
}

// CleanupEmptyRooms 删除空闲超过 idle 的无人房间，返回删除数量
func (h *Hub) CleanupEmptyRooms(idle time.Duration) int {
	now := time.Now()
	h.mu.Lock()
	defer h.mu.Unlock()

	removed := 0
	for id, r := range h.rooms {
		r.mu.Lock()
		empty := r.clients == 0 && now.Sub(r.lastActive) >= idle
		r.mu.Unlock()
		if empty {
			delete(h.rooms, id)
			removed++
			log.Printf("[Hub] Removed empty room %q", id)
		}
	}
	return removed
}
