package scenes

import (
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/game"
)

// Services 场景共享的服务（任一项可为 nil，对应功能被跳过）
type Services struct {
	Config   *config.GameConfig
	Audio    *AudioManager
	Settings *game.SettingsManager
	Stats    *game.StatsManager
}

func (s Services) showHUD() bool {
	if s.Settings == nil {
		return true
	}
	return s.Settings.GetSettings().ShowHUD
}
