package systems

import (
	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/utils"
)

// AdvanceCamera 水平匀速滚动镜头: camera + (scrollSpeed, 0) * dt
func AdvanceCamera(camera utils.Vector2, scrollSpeed, dt float64) utils.Vector2 {
	return camera.Add(utils.Vec2(scrollSpeed*dt, 0))
}

// VisibleRect 计算镜头相对的可见矩形
//
// 镜头位置是场景中心；可玩区域在场景内水平、垂直居中，
// 宽度为场景宽度，高度按最大宽高比推算（超出部分为上下边距）。
// 水平最小边称为前沿，水平最大边称为尾边。
func VisibleRect(camera utils.Vector2, sceneWidth, sceneHeight, playableWidth, playableHeight float64) utils.Rect {
	return utils.NewRect(
		camera.X-sceneWidth/2+(sceneWidth-playableWidth)/2,
		camera.Y-sceneHeight/2+(sceneHeight-playableHeight)/2,
		playableWidth,
		playableHeight,
	)
}

// CameraSystem 管理镜头滚动和背景图块循环
type CameraSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	cameraEntity  ecs.EntityID // 镜头实体ID
}

// NewCameraSystem 创建镜头系统
// 镜头实体在构造时创建，初始位置为场景中心
func NewCameraSystem(em *ecs.EntityManager, cfg *config.GameConfig) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		config:        cfg,
	}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		Position:    utils.Vec2(cfg.Scene.Width/2, cfg.Scene.Height/2),
		ScrollSpeed: cfg.Camera.ScrollSpeed,
	})
	return cs
}

// Entity 镜头实体ID
func (cs *CameraSystem) Entity() ecs.EntityID {
	return cs.cameraEntity
}

// Position 当前镜头位置
func (cs *CameraSystem) Position() utils.Vector2 {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return utils.Vector2{}
	}
	return cam.Position
}

// VisibleRect 当前可见矩形
func (cs *CameraSystem) VisibleRect() utils.Rect {
	return VisibleRect(
		cs.Position(),
		cs.config.Scene.Width,
		cs.config.Scene.Height,
		cs.config.Scene.Width,
		cs.config.PlayableHeight(),
	)
}

// PlayableRect 静态可玩区域（镜头未滚动时的可见矩形）
func (cs *CameraSystem) PlayableRect() utils.Rect {
	return utils.NewRect(0, cs.config.PlayableMargin(), cs.config.Scene.Width, cs.config.PlayableHeight())
}

// Update 推进镜头并回收已滚出可见区域的背景图块
func (cs *CameraSystem) Update(dt float64) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	cam.Position = AdvanceCamera(cam.Position, cam.ScrollSpeed, dt)

	cs.recycleTiles(cs.VisibleRect())
}

// recycleTiles 右边越过可见区域前沿的图块向右移动 tileCount 个图块宽度
func (cs *CameraSystem) recycleTiles(visible utils.Rect) {
	tiles := ecs.GetEntitiesWith2[*components.BackgroundTileComponent, *components.PositionComponent](cs.entityManager)
	span := float64(len(tiles))
	for _, id := range tiles {
		tile, _ := ecs.GetComponent[*components.BackgroundTileComponent](cs.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](cs.entityManager, id)
		// 一帧滚动超过一个图块宽度时连续回收
		for pos.X+tile.Width/2 < visible.MinX() {
			pos.X += tile.Width * span
		}
	}
}
