package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PlayerStats 跨局累计统计
type PlayerStats struct {
	GamesPlayed   int     `yaml:"gamesPlayed"`
	Wins          int     `yaml:"wins"`
	Losses        int     `yaml:"losses"`
	BestConvoy    int     `yaml:"bestConvoy"`    // 历史最长车队
	TotalCaptures int     `yaml:"totalCaptures"` // 累计捕获数
	FastestWin    float64 `yaml:"fastestWin"`    // 最快胜利用时（秒），0 表示尚未胜利
}

// 存储路径常量
const (
	statsObject   = "stats"
	statsProperty = "records"
)

// StatsManager 统计管理器
//
// 每局进入终态时调用 RecordResult，结果立即写入 gdata。
// gdataManager 为 nil 时只在内存中累计。
type StatsManager struct {
	gdataManager *gdata.Manager
	stats        PlayerStats
}

// NewStatsManager 创建统计管理器并加载已保存的记录
func NewStatsManager(gdataManager *gdata.Manager) *StatsManager {
	m := &StatsManager{gdataManager: gdataManager}
	if err := m.Load(); err != nil {
		log.Printf("[StatsManager] Warning: Failed to load stats: %v (starting fresh)", err)
	}
	return m
}

// Load 从 gdata 加载统计
func (m *StatsManager) Load() error {
	m.stats = PlayerStats{}
	if m.gdataManager == nil || !m.gdataManager.ObjectPropExists(statsObject, statsProperty) {
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}
	var loaded PlayerStats
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	m.stats = loaded
	return nil
}

// Save 写入 gdata（降级模式下不做任何事）
func (m *StatsManager) Save() error {
	if m.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(&m.stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// Stats 返回当前统计的副本
func (m *StatsManager) Stats() PlayerStats {
	return m.stats
}

// RecordResult 记录一局的结果并保存
//
// 只接受终态的 GameState，进行中的对局返回错误。
func (m *StatsManager) RecordResult(gs *GameState) error {
	if gs == nil {
		return fmt.Errorf("game state cannot be nil")
	}
	if !gs.IsOver() {
		return fmt.Errorf("cannot record a game in phase %s", gs.Phase)
	}

	m.stats.GamesPlayed++
	m.stats.TotalCaptures += gs.CapturedTotal
	if gs.BestConvoy > m.stats.BestConvoy {
		m.stats.BestConvoy = gs.BestConvoy
	}
	switch gs.Phase {
	case PhaseWon:
		m.stats.Wins++
		if m.stats.FastestWin == 0 || gs.ElapsedTime < m.stats.FastestWin {
			m.stats.FastestWin = gs.ElapsedTime
		}
	case PhaseLost:
		m.stats.Losses++
	}

	log.Printf("[StatsManager] Recorded %s: played=%d wins=%d best=%d",
		gs.Phase, m.stats.GamesPlayed, m.stats.Wins, m.stats.BestConvoy)
	return m.Save()
}
