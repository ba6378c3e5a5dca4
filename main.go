package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/conga/pkg/app"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/scenes"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试日志")
	configPath = flag.String("config", "data/conga.yaml", "调参配置文件路径（不存在时使用默认配置）")
)

func main() {
	flag.Parse()

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Conga")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)

	// 窗口关闭后保存设置和战绩
	if saveable, ok := gameApp.GetSceneManager().GetCurrentScene().(scenes.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[Main] Warning: failed to save on exit")
		}
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}
