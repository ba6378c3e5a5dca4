package components

import "github.com/decker502/conga/pkg/utils"

// CameraComponent 镜头状态
// 镜头以恒定速度水平滚动，可见矩形每帧由镜头位置重新计算
type CameraComponent struct {
	// Position 镜头中心（世界坐标）
	Position utils.Vector2

	// ScrollSpeed 水平滚动速度（像素/秒）
	ScrollSpeed float64
}

// BackgroundTileComponent 背景图块
// 图块右边越过可见区域前沿后被向右平移 TileCount 个图块宽度
type BackgroundTileComponent struct {
	Index int     // 图块序号（仅用于调试和渲染着色）
	Width float64 // 图块宽度（像素）
}
