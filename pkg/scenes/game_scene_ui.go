package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/sim"
)

// hudLines HUD 文本（每行一项）
func hudLines(snap *sim.Snapshot) []string {
	return []string{
		fmt.Sprintf("Lives: %d", snap.Lives),
		fmt.Sprintf("Convoy: %d / %d", snap.ChainLength(), snap.WinThreshold),
		fmt.Sprintf("Captured: %d  Best: %d", snap.CapturedTotal, snap.BestConvoy),
		fmt.Sprintf("Time: %.1fs", snap.Elapsed),
		"[H] HUD  [R] Restart  [F11] Fullscreen",
	}
}

func drawHUD(screen *ebiten.Image, snap *sim.Snapshot) {
	for i, line := range hudLines(snap) {
		ebitenutil.DebugPrintAt(screen, line, config.HUDMarginX, config.HUDMarginY+i*config.HUDLineHeight)
	}
}
