// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/game"
	"github.com/decker502/conga/pkg/scenes"
	"github.com/decker502/conga/pkg/utils"
)

// MaxFrameDelta 单帧最大时间间隔（秒）
// 窗口拖动或切到后台回来时的大间隔会被截断，避免实体一次跳过碰撞
const MaxFrameDelta = 0.25

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 调参配置文件路径，为空则使用默认配置
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	clock                    utils.FrameClock
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig := config.LoadGameConfigOrDefault(cfg.ConfigPath)

	// 持久化存储，打开失败时降级为仅内存
	storage := game.OpenStorage(game.AppName)
	settingsManager := game.NewSettingsManager(storage)
	statsManager := game.NewStatsManager(storage)

	// 初始化音频上下文
	audioContext := audio.NewContext(game.SampleRate)
	audioManager := scenes.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	services := scenes.Services{
		Config:   gameConfig,
		Audio:    audioManager,
		Settings: settingsManager,
		Stats:    statsManager,
	}

	// 创建场景管理器
	sceneManager := scenes.NewSceneManager()
	sceneManager.SetSceneFactory(func(sceneID string) scenes.Scene {
		switch sceneID {
		case scenes.SceneGame:
			scene, err := scenes.NewGameScene(services, sceneManager)
			if err != nil {
				log.Printf("[App] Failed to create game scene: %v", err)
				return nil
			}
			return scene
		default:
			return nil
		}
	})

	if !sceneManager.Load(scenes.SceneGame) {
		return nil, fmt.Errorf("failed to start game scene")
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// frameDelta 返回距上次调用经过的时间（秒），第一次调用返回 0
func (a *App) frameDelta(now time.Time) float64 {
	dt := a.clock.Delta(now)
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(a.frameDelta(time.Now()))
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	if a.settingsManager != nil {
		a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存设置和战绩
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
