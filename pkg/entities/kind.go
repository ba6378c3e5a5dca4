package entities

import (
	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/ecs"
)

// SetKind 修改实体种类，并同步种类标记组件（按种类的二级索引）
//
// 返回 false 表示实体不存在或缺少 ActorComponent
func SetKind(em *ecs.EntityManager, id ecs.EntityID, kind components.ActorKind) bool {
	actor, ok := ecs.GetComponent[*components.ActorComponent](em, id)
	if !ok {
		return false
	}

	removeKindTag(em, id, actor.Kind)
	actor.Kind = kind
	addKindTag(em, id, kind)
	return true
}

// KindOf 返回实体种类
func KindOf(em *ecs.EntityManager, id ecs.EntityID) (components.ActorKind, bool) {
	actor, ok := ecs.GetComponent[*components.ActorComponent](em, id)
	if !ok {
		return 0, false
	}
	return actor.Kind, true
}

// EntitiesOfKind 查询某一种类的全部实体（升序）
// 只遍历该种类的标记桶
func EntitiesOfKind(em *ecs.EntityManager, kind components.ActorKind) []ecs.EntityID {
	switch kind {
	case components.KindPlayer:
		return ecs.GetEntitiesWith1[*components.PlayerTag](em)
	case components.KindCapture:
		return ecs.GetEntitiesWith1[*components.CaptureTag](em)
	case components.KindHazard:
		return ecs.GetEntitiesWith1[*components.HazardTag](em)
	case components.KindConvoyLink:
		return ecs.GetEntitiesWith1[*components.ConvoyLinkTag](em)
	case components.KindBackgroundTile:
		return ecs.GetEntitiesWith1[*components.BackgroundTileTag](em)
	}
	return nil
}

func addKindTag(em *ecs.EntityManager, id ecs.EntityID, kind components.ActorKind) {
	switch kind {
	case components.KindPlayer:
		ecs.AddComponent(em, id, &components.PlayerTag{})
	case components.KindCapture:
		ecs.AddComponent(em, id, &components.CaptureTag{})
	case components.KindHazard:
		ecs.AddComponent(em, id, &components.HazardTag{})
	case components.KindConvoyLink:
		ecs.AddComponent(em, id, &components.ConvoyLinkTag{})
	case components.KindBackgroundTile:
		ecs.AddComponent(em, id, &components.BackgroundTileTag{})
	}
}

func removeKindTag(em *ecs.EntityManager, id ecs.EntityID, kind components.ActorKind) {
	switch kind {
	case components.KindPlayer:
		ecs.RemoveComponent[*components.PlayerTag](em, id)
	case components.KindCapture:
		ecs.RemoveComponent[*components.CaptureTag](em, id)
	case components.KindHazard:
		ecs.RemoveComponent[*components.HazardTag](em, id)
	case components.KindConvoyLink:
		ecs.RemoveComponent[*components.ConvoyLinkTag](em, id)
	case components.KindBackgroundTile:
		ecs.RemoveComponent[*components.BackgroundTileTag](em, id)
	}
}

// newActor 创建带 ActorComponent / 种类标记 / 位置 / 朝向的基础实体
func newActor(em *ecs.EntityManager, kind components.ActorKind, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ActorComponent{
		Kind:    kind,
		Visible: true,
	})
	addKindTag(em, id, kind)
	pos := &components.PositionComponent{}
	pos.X, pos.Y = x, y
	ecs.AddComponent(em, id, pos)
	ecs.AddComponent(em, id, &components.FacingComponent{})
	return id
}
