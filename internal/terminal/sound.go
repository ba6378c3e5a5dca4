package terminal

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/game"
)

const sampleRate = beep.SampleRate(44100)

// Beeper 用正弦音符序列播放音效
//
// 未初始化（或初始化失败）时所有播放请求被忽略。
type Beeper struct {
	settings    *game.SettingsManager
	initialized bool
}

// NewBeeper 创建音效播放器，settings 可为 nil
func NewBeeper(settings *game.SettingsManager) *Beeper {
	return &Beeper{settings: settings}
}

// Init 初始化扬声器（缓冲 100ms）
func (b *Beeper) Init() error {
	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	b.initialized = true
	return nil
}

// Close 关闭扬声器
func (b *Beeper) Close() {
	if b.initialized {
		speaker.Close()
		b.initialized = false
	}
}

// Streamer 构造音效的音频流（不依赖扬声器）
func (b *Beeper) Streamer(id game.SoundID) (beep.Streamer, error) {
	notes, ok := game.SoundNotes(id)
	if !ok {
		return nil, fmt.Errorf("unknown sound %q", id)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		count := sampleRate.N(time.Duration(n.Seconds * float64(time.Second)))
		if n.Frequency <= 0 {
			parts = append(parts, beep.Silence(count))
			continue
		}
		tone, err := generators.SineTone(sampleRate, n.Frequency)
		if err != nil {
			return nil, fmt.Errorf("sound %q: %w", id, err)
		}
		parts = append(parts, beep.Take(count, tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volumeExponent(b.volume()),
		Silent:   b.volume() <= 0,
	}, nil
}

// Play 播放音效，返回是否真正开始播放
func (b *Beeper) Play(id game.SoundID) bool {
	if !b.initialized {
		return false
	}
	if b.settings != nil && !b.settings.GetSettings().SoundEnabled {
		return false
	}
	s, err := b.Streamer(id)
	if err != nil {
		log.Printf("[Beeper] Warning: %v", err)
		return false
	}
	speaker.Play(s)
	return true
}

func (b *Beeper) volume() float64 {
	if b.settings == nil {
		return 0.8
	}
	return b.settings.GetSettings().SoundVolume
}

// volumeExponent 线性音量 (0, 1] 换算成以 2 为底的指数（正弦音量乘 0.3 留余量）
func volumeExponent(linear float64) float64 {
	if linear <= 0 {
		return 0
	}
	return math.Log2(linear * 0.3)
}

// Listener 把模拟通知映射为音效
func (b *Beeper) Listener() game.EventListener {
	return game.ListenerFuncs{
		CaptureAcquired: func(ecs.EntityID) { b.Play(game.SoundCapture) },
		HazardStruck:    func(float64) { b.Play(game.SoundHazard) },
		ConvoyScattered: func([]ecs.EntityID) { b.Play(game.SoundScatter) },
		GameWon:         func() { b.Play(game.SoundWin) },
		GameLost:        func() { b.Play(game.SoundLose) },
	}
}
