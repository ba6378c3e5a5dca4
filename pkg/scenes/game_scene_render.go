package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/sim"
	"github.com/decker502/conga/pkg/utils"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 28, B: 40, A: 255}
	tileColors      = [2]color.RGBA{
		{R: 38, G: 70, B: 83, A: 255},
		{R: 42, G: 84, B: 96, A: 255},
	}
	playerColor  = color.RGBA{R: 233, G: 196, B: 106, A: 255}
	captureColor = color.RGBA{R: 138, G: 201, B: 38, A: 255}
	convoyColor  = color.RGBA{R: 82, G: 183, B: 136, A: 255}
	hazardColor  = color.RGBA{R: 230, G: 57, B: 70, A: 255}
	facingColor  = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	marginColor  = color.RGBA{R: 0, G: 0, B: 0, A: 120}
)

// actorColor 按种类选择填充色
func actorColor(kind components.ActorKind) color.RGBA {
	switch kind {
	case components.KindPlayer:
		return playerColor
	case components.KindCapture:
		return captureColor
	case components.KindConvoyLink:
		return convoyColor
	case components.KindHazard:
		return hazardColor
	default:
		return tileColors[0]
	}
}

// drawOrder 背景 → 可捕获 → 车队 → 危险 → 玩家
func drawOrder(kind components.ActorKind) int {
	switch kind {
	case components.KindBackgroundTile:
		return 0
	case components.KindCapture:
		return 1
	case components.KindConvoyLink:
		return 2
	case components.KindHazard:
		return 3
	default:
		return 4
	}
}

// screenBox 计算实体在屏幕上的包围盒（已乘以实体缩放）
func screenBox(a sim.ActorSnapshot, visible utils.Rect, screenW, screenH int) (x, y, w, h float64) {
	scale := config.WorldScale(screenW, visible)
	cx, cy := config.WorldToScreen(utils.Vec2(a.X, a.Y), screenW, screenH, visible)
	w = a.Width * a.Scale * scale
	h = a.Height * a.Scale * scale
	return cx - w/2, cy - h/2, w, h
}

func drawWorld(screen *ebiten.Image, snap *sim.Snapshot) {
	screen.Fill(backgroundColor)

	w, h := config.GameWindowWidth, config.GameWindowHeight
	for layer := 0; layer <= 4; layer++ {
		for _, a := range snap.Actors {
			if drawOrder(a.Kind) != layer || !a.Visible {
				continue
			}
			drawActor(screen, a, snap.VisibleRect, w, h)
		}
	}

	// 可玩区域之外（上下边距）加暗
	if snap.PlayableRect.Height < snap.SceneHeight {
		_, top := config.WorldToScreen(utils.Vec2(0, snap.PlayableRect.MinY()), w, h, snap.VisibleRect)
		_, bottom := config.WorldToScreen(utils.Vec2(0, snap.PlayableRect.MaxY()), w, h, snap.VisibleRect)
		if top > 0 {
			vector.DrawFilledRect(screen, 0, 0, float32(w), float32(top), marginColor, false)
		}
		if bottom < float64(h) {
			vector.DrawFilledRect(screen, 0, float32(bottom), float32(w), float32(float64(h)-bottom), marginColor, false)
		}
	}
}

func drawActor(screen *ebiten.Image, a sim.ActorSnapshot, visible utils.Rect, screenW, screenH int) {
	x, y, w, h := screenBox(a, visible, screenW, screenH)
	if w <= 0 || h <= 0 {
		return
	}

	if a.Kind == components.KindBackgroundTile {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), tileColors[a.ID%2], false)
		vector.StrokeLine(screen, float32(x), float32(y), float32(x), float32(y+h), 2, tileColors[(a.ID+1)%2], false)
		return
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), actorColor(a.Kind), true)

	// 朝向指示线
	cx, cy := x+w/2, y+h/2
	length := math.Max(w, h) / 2
	ex := cx + math.Cos(a.Facing)*length
	ey := cy + math.Sin(a.Facing)*length
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(ex), float32(ey), 2, facingColor, true)

	if a.Invincible {
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, facingColor, true)
	}
}
