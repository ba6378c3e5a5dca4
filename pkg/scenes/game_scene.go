package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/game"
	"github.com/decker502/conga/pkg/sim"
	"github.com/decker502/conga/pkg/utils"
)

// ResultDelay 进入终态后停留在对局画面的时间（秒），之后切到结算场景
const ResultDelay = 1.5

// GameScene 对局场景
//
// 把指针输入转换成转向目标交给 Simulation，按快照绘制世界和 HUD。
// 终态后记录战绩，延迟 ResultDelay 秒切换到结算场景。
type GameScene struct {
	sim          *sim.Simulation
	sceneManager *SceneManager
	services     Services

	pointer   utils.PointerTracker
	recorded  bool    // 本局战绩是否已写入
	overTimer float64 // 进入终态后经过的时间
}

// NewGameScene 创建对局场景
func NewGameScene(services Services, sceneManager *SceneManager) (*GameScene, error) {
	s, err := sim.NewSimulation(services.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}
	if services.Audio != nil {
		s.AddListener(services.Audio.Listener())
	}

	log.Printf("[GameScene] Created (win at %d, %d lives)", s.Config().Convoy.WinThreshold, s.Config().Player.Lives)
	return &GameScene{
		sim:          s,
		sceneManager: sceneManager,
		services:     services,
	}, nil
}

// Simulation 返回场景持有的模拟
func (gs *GameScene) Simulation() *sim.Simulation {
	return gs.sim
}

// Update 处理输入并推进模拟
func (gs *GameScene) Update(deltaTime float64) {
	gs.handleKeys()

	pressed, x, y := pointerState()
	gs.handlePointer(pressed, x, y)

	gs.step(deltaTime)
}

func (gs *GameScene) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) && gs.services.Settings != nil {
		shown := gs.services.Settings.ToggleHUD()
		log.Printf("[GameScene] HUD visible: %v", shown)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		gs.restart()
	}
}

// handlePointer 按下或拖动时把屏幕坐标换算成世界坐标作为新的目标
func (gs *GameScene) handlePointer(pressed bool, x, y int) {
	ok, sx, sy := gs.pointer.Update(pressed, x, y)
	if !ok {
		return
	}
	target := config.ScreenToWorld(float64(sx), float64(sy), config.GameWindowWidth, config.GameWindowHeight, gs.sim.VisibleRect())
	gs.sim.SetSteeringTarget(target)
}

func (gs *GameScene) step(deltaTime float64) {
	gs.sim.Step(deltaTime)

	if gs.sim.Phase() == game.PhasePlaying {
		return
	}

	if !gs.recorded {
		gs.recordResult()
	}

	gs.overTimer += sim.SanitizeDelta(deltaTime)
	if gs.overTimer >= ResultDelay && gs.sceneManager != nil {
		result := gs.sim.Result()
		gs.sceneManager.SwitchTo(NewResultScene(gs.services, gs.sceneManager, result))
	}
}

func (gs *GameScene) recordResult() {
	gs.recorded = true
	if gs.services.Stats == nil {
		return
	}
	result := gs.sim.Result()
	if err := gs.services.Stats.RecordResult(&result); err != nil {
		log.Printf("[GameScene] Warning: failed to record result: %v", err)
	}
}

func (gs *GameScene) restart() {
	gs.sim.Reset()
	gs.pointer.Reset()
	gs.recorded = false
	gs.overTimer = 0
	log.Printf("[GameScene] Restarted")
}

// Draw 绘制世界和 HUD
func (gs *GameScene) Draw(screen *ebiten.Image) {
	snap := gs.sim.Snapshot()
	drawWorld(screen, snap)
	if gs.services.showHUD() {
		drawHUD(screen, snap)
	}
}

// SaveOnExit 窗口关闭时保存设置和战绩
func (gs *GameScene) SaveOnExit() bool {
	return saveServices(gs.services)
}

func saveServices(services Services) bool {
	ok := true
	if services.Settings != nil {
		if err := services.Settings.Save(); err != nil {
			log.Printf("[Scenes] Failed to save settings: %v", err)
			ok = false
		}
	}
	if services.Stats != nil {
		if err := services.Stats.Save(); err != nil {
			log.Printf("[Scenes] Failed to save stats: %v", err)
			ok = false
		}
	}
	return ok
}
