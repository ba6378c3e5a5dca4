package entities

import (
	"fmt"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
)

// NewBackgroundTiles 创建首尾相接的背景图块
//
// 图块 i 的左边缘位于 i * TileWidth，垂直居中于场景。
func NewBackgroundTiles(em *ecs.EntityManager, cfg *config.GameConfig) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}

	ids := make([]ecs.EntityID, 0, cfg.Camera.TileCount)
	for i := 0; i < cfg.Camera.TileCount; i++ {
		x := float64(i)*cfg.Camera.TileWidth + cfg.Camera.TileWidth/2
		id := newActor(em, components.KindBackgroundTile, x, cfg.Scene.Height/2)
		ecs.AddComponent(em, id, &components.BackgroundTileComponent{
			Index: i,
			Width: cfg.Camera.TileWidth,
		})
		ids = append(ids, id)
	}
	return ids, nil
}
