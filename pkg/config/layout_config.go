package config

import "github.com/decker502/conga/pkg/utils"

// 窗口与画面布局常量
//
// 逻辑屏幕固定为 16:9，显示的是镜头的可见区域，
// Ebitengine 负责把逻辑屏幕缩放到实际窗口。
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 1024
	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 576

	// HUDMarginX HUD 文本左边距
	HUDMarginX = 8
	// HUDMarginY HUD 文本上边距
	HUDMarginY = 8
	// HUDLineHeight 调试字体行高
	HUDLineHeight = 16
)

// ScreenToWorld 把逻辑屏幕坐标转换成世界坐标
//
// 屏幕左上角对应可见区域的 (MinX, MinY)，整块屏幕覆盖整个可见区域。
func ScreenToWorld(sx, sy float64, screenW, screenH int, visible utils.Rect) utils.Vector2 {
	if screenW <= 0 || screenH <= 0 {
		return visible.Center()
	}
	return utils.Vector2{
		X: visible.MinX() + sx*visible.Width/float64(screenW),
		Y: visible.MinY() + sy*visible.Height/float64(screenH),
	}
}

// WorldToScreen ScreenToWorld 的逆变换
func WorldToScreen(p utils.Vector2, screenW, screenH int, visible utils.Rect) (float64, float64) {
	if visible.Width <= 0 || visible.Height <= 0 {
		return 0, 0
	}
	sx := (p.X - visible.MinX()) * float64(screenW) / visible.Width
	sy := (p.Y - visible.MinY()) * float64(screenH) / visible.Height
	return sx, sy
}

// WorldScale 世界长度到屏幕长度的缩放系数（按宽度计算）
func WorldScale(screenW int, visible utils.Rect) float64 {
	if visible.Width <= 0 {
		return 1
	}
	return float64(screenW) / visible.Width
}
