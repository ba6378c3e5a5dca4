package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/game"
)

// AudioManager 音频管理器
// 职责：
//   - 把模拟通知映射为音效
//   - 实现音量控制（从 SettingsManager 读取设置）
//
// audioContext 为 nil 时所有播放请求被忽略（测试和无音频环境）。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *game.SettingsManager
	pcm             map[game.SoundID][]byte
	players         []*audio.Player // 正在播放的音效，播放结束后回收
}

// NewAudioManager 创建新的音频管理器并预先合成所有音效
//
// 参数：
//   - ctx: ebiten 音频上下文（可为 nil）
//   - sm: SettingsManager 实例（可为 nil，使用默认音量）
func NewAudioManager(ctx *audio.Context, sm *game.SettingsManager) *AudioManager {
	am := &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		pcm:             make(map[game.SoundID][]byte),
	}
	for _, id := range game.AllSounds() {
		notes, _ := game.SoundNotes(id)
		am.pcm[id] = game.SynthesizeNotes(game.SampleRate, notes)
	}
	log.Printf("[AudioManager] Synthesized %d sounds", len(am.pcm))
	return am
}

// PlaySound 播放音效，返回是否真正开始播放
func (am *AudioManager) PlaySound(id game.SoundID) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}
	data, ok := am.pcm[id]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", id)
		return false
	}
	if am.audioContext == nil {
		return false
	}

	am.reap()
	player := am.audioContext.NewPlayerFromBytes(data)
	player.SetVolume(am.getSoundVolume())
	player.Play()
	am.players = append(am.players, player)
	return true
}

// reap 关闭已播放结束的播放器
func (am *AudioManager) reap() {
	alive := am.players[:0]
	for _, p := range am.players {
		if p.IsPlaying() {
			alive = append(alive, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close player: %v", err)
		}
	}
	am.players = alive
}

// SetSoundVolume 设置音效音量，立即应用到正在播放的音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, p := range am.players {
		p.SetVolume(am.getSoundVolume())
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}

// Listener 把模拟通知映射为音效的监听器
func (am *AudioManager) Listener() game.EventListener {
	return game.ListenerFuncs{
		CaptureAcquired: func(ecs.EntityID) { am.PlaySound(game.SoundCapture) },
		HazardStruck:    func(float64) { am.PlaySound(game.SoundHazard) },
		ConvoyScattered: func([]ecs.EntityID) { am.PlaySound(game.SoundScatter) },
		GameWon:         func() { am.PlaySound(game.SoundWin) },
		GameLost:        func() { am.PlaySound(game.SoundLose) },
	}
}
