package sim

import (
	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/utils"
)

// ActorSnapshot 单个实体的只读快照（用于渲染和网络同步）
type ActorSnapshot struct {
	ID         ecs.EntityID         `json:"id"`
	Kind       components.ActorKind `json:"-"`
	KindName   string               `json:"kind"`
	X          float64              `json:"x"`
	Y          float64              `json:"y"`
	Width      float64              `json:"w"`
	Height     float64              `json:"h"`
	Facing     float64              `json:"facing"`
	Scale      float64              `json:"scale"`
	Visible    bool                 `json:"visible"`
	Invincible bool                 `json:"invincible,omitempty"`
	Tag        string               `json:"tag,omitempty"`
}

// Snapshot 世界的只读快照
//
// 快照与模拟内部状态不共享可变数据，可以安全地交给其他 goroutine。
type Snapshot struct {
	Actors        []ActorSnapshot `json:"actors"`
	Camera        utils.Vector2   `json:"camera"`
	VisibleRect   utils.Rect      `json:"visibleRect"`
	PlayableRect  utils.Rect      `json:"playableRect"`
	SceneWidth    float64         `json:"sceneWidth"`
	SceneHeight   float64         `json:"sceneHeight"`
	Lives         int             `json:"lives"`
	Chain         []ecs.EntityID  `json:"chain"`
	Phase         string          `json:"phase"`
	GameOver      bool            `json:"gameOver"`
	Elapsed       float64         `json:"elapsed"`
	CapturedTotal int             `json:"captured"`
	BestConvoy    int             `json:"bestConvoy"`
	WinThreshold  int             `json:"winThreshold"`
}

// ChainLength 车队长度
func (s *Snapshot) ChainLength() int {
	return len(s.Chain)
}

// ActorsOfKind 过滤某一种类的实体
func (s *Snapshot) ActorsOfKind(kind components.ActorKind) []ActorSnapshot {
	var out []ActorSnapshot
	for _, a := range s.Actors {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// Actor 按ID查找实体快照
func (s *Snapshot) Actor(id ecs.EntityID) (ActorSnapshot, bool) {
	for _, a := range s.Actors {
		if a.ID == id {
			return a, true
		}
	}
	return ActorSnapshot{}, false
}

// Snapshot 生成当前世界快照（实体按ID升序）
func (s *Simulation) Snapshot() *Snapshot {
	em := s.entityManager
	snap := &Snapshot{
		Camera:        s.camera.Position(),
		VisibleRect:   s.camera.VisibleRect(),
		PlayableRect:  s.camera.PlayableRect(),
		SceneWidth:    s.config.Scene.Width,
		SceneHeight:   s.config.Scene.Height,
		Lives:         s.gameState.Lives,
		Chain:         s.convoy.Chain(),
		Phase:         s.gameState.Phase.String(),
		GameOver:      s.gameState.IsOver(),
		Elapsed:       s.gameState.ElapsedTime,
		CapturedTotal: s.gameState.CapturedTotal,
		BestConvoy:    s.gameState.BestConvoy,
		WinThreshold:  s.gameState.WinThreshold,
	}

	ids := ecs.GetEntitiesWith2[*components.ActorComponent, *components.PositionComponent](em)
	snap.Actors = make([]ActorSnapshot, 0, len(ids))
	for _, id := range ids {
		actor, _ := ecs.GetComponent[*components.ActorComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		a := ActorSnapshot{
			ID:         id,
			Kind:       actor.Kind,
			KindName:   actor.Kind.String(),
			X:          pos.X,
			Y:          pos.Y,
			Scale:      1,
			Visible:    actor.Visible,
			Invincible: actor.Invincible,
			Tag:        actor.Tag,
		}
		if facing, ok := ecs.GetComponent[*components.FacingComponent](em, id); ok {
			a.Facing = facing.Radians
		}
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id); ok {
			a.Scale = scale.ScaleX
		}
		if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
			a.Width, a.Height = col.Width, col.Height
		} else if tile, ok := ecs.GetComponent[*components.BackgroundTileComponent](em, id); ok {
			a.Width, a.Height = tile.Width, s.config.Scene.Height
		}
		snap.Actors = append(snap.Actors, a)
	}
	return snap
}
