package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/game"
	"github.com/decker502/conga/pkg/utils"
)

const (
	// resultFadeSeconds 结算面板淡入时间
	resultFadeSeconds = 0.6
	// resultInputDelay 结算场景出现后忽略输入的时间，防止连点直接跳过
	resultInputDelay = 0.5
)

// ResultScene 结算场景：显示胜负和战绩，点击或回车开始新的一局
type ResultScene struct {
	services     Services
	sceneManager *SceneManager
	result       game.GameState
	elapsed      float64
}

// NewResultScene 创建结算场景
func NewResultScene(services Services, sceneManager *SceneManager, result game.GameState) *ResultScene {
	log.Printf("[ResultScene] Showing result: %s", result.Phase)
	return &ResultScene{
		services:     services,
		sceneManager: sceneManager,
		result:       result,
	}
}

// Update 等待输入
func (rs *ResultScene) Update(deltaTime float64) {
	rs.elapsed += deltaTime
	if rs.elapsed < resultInputDelay {
		return
	}

	clicked, _, _ := justTouchedOrClicked()
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		rs.restart()
	}
}

func (rs *ResultScene) restart() {
	if rs.sceneManager == nil {
		return
	}
	if !rs.sceneManager.Load(SceneGame) {
		log.Printf("[ResultScene] Failed to start a new game")
	}
}

// Title 结算标题
func (rs *ResultScene) Title() string {
	if rs.result.Phase == game.PhaseWon {
		return "CONGA COMPLETE!"
	}
	return "GAME OVER"
}

// Lines 结算详情（包含累计战绩）
func (rs *ResultScene) Lines() []string {
	lines := []string{
		rs.Title(),
		"",
		fmt.Sprintf("Time: %.1fs", rs.result.ElapsedTime),
		fmt.Sprintf("Captured: %d", rs.result.CapturedTotal),
		fmt.Sprintf("Best convoy: %d", rs.result.BestConvoy),
		fmt.Sprintf("Hits taken: %d", rs.result.HazardHits),
	}
	if rs.services.Stats != nil {
		st := rs.services.Stats.Stats()
		lines = append(lines,
			"",
			fmt.Sprintf("Games: %d  Wins: %d  Losses: %d", st.GamesPlayed, st.Wins, st.Losses),
			fmt.Sprintf("Record convoy: %d", st.BestConvoy),
		)
		if st.FastestWin > 0 {
			lines = append(lines, fmt.Sprintf("Fastest win: %.1fs", st.FastestWin))
		}
	}
	lines = append(lines, "", "Click or press Enter to play again")
	return lines
}

// Draw 绘制结算面板
func (rs *ResultScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	alpha := utils.EaseOutCubic(rs.elapsed / resultFadeSeconds)
	panel := color.RGBA{R: 0, G: 0, B: 0, A: uint8(180 * alpha)}
	if rs.result.Phase == game.PhaseWon {
		panel = color.RGBA{R: 20, G: 60, B: 40, A: uint8(200 * alpha)}
	}

	const panelW, panelH = 420, 240
	px := float32(config.GameWindowWidth-panelW) / 2
	py := float32(config.GameWindowHeight-panelH) / 2
	vector.DrawFilledRect(screen, px, py, panelW, panelH, panel, false)

	if alpha < 0.5 {
		return
	}
	for i, line := range rs.Lines() {
		ebitenutil.DebugPrintAt(screen, line, int(px)+24, int(py)+20+i*config.HUDLineHeight)
	}
}

// SaveOnExit 窗口关闭时保存设置和战绩
func (rs *ResultScene) SaveOnExit() bool {
	return saveServices(rs.services)
}
