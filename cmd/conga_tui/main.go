// conga_tui 在终端中运行对局（鼠标点击控制，需要支持鼠标的终端）
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/conga/internal/terminal"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/game"
	"github.com/decker502/conga/pkg/sim"
)

var (
	configPath = flag.String("config", "data/conga.yaml", "调参配置文件路径（不存在时使用默认配置）")
	logPath    = flag.String("log", "", "日志文件路径（为空则丢弃日志，终端被画面占用）")
	mute       = flag.Bool("mute", false, "关闭音效")
)

func main() {
	flag.Parse()

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "conga_tui: %v\n", err)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "conga_tui: %v\n", err)
		os.Exit(1)
	}
}

func setupLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return nil
}

func run() error {
	cfg := config.LoadGameConfigOrDefault(*configPath)
	s, err := sim.NewSimulation(cfg)
	if err != nil {
		return fmt.Errorf("failed to create simulation: %w", err)
	}

	storage := game.OpenStorage(game.AppName)
	settings := game.NewSettingsManager(storage)
	stats := game.NewStatsManager(storage)

	if !*mute {
		beeper := terminal.NewBeeper(settings)
		if err := beeper.Init(); err != nil {
			// 没有音频设备时继续运行
			log.Printf("[Main] Audio disabled: %v", err)
		} else {
			defer beeper.Close()
			s.AddListener(beeper.Listener())
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	terminal.NewClient(screen, s, stats).Run()
	screen.Fini()

	if err := stats.Save(); err != nil {
		log.Printf("[Main] Failed to save stats: %v", err)
	}
	st := stats.Stats()
	fmt.Printf("Games %d | Wins %d | Losses %d | Best convoy %d\n", st.GamesPlayed, st.Wins, st.Losses, st.BestConvoy)
	return nil
}
