package config

import (
	"fmt"
	"log"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// MinSpawnInterval 生成间隔下限（秒）
// 配置和运行时设置都会被限制到不低于该值
const MinSpawnInterval = 0.05

// GameConfig 游戏调参配置
//
// 配置文件位置: data/conga.yaml
// 所有距离单位为像素，时间单位为秒，角度单位为弧度。
type GameConfig struct {
	Scene   SceneConfig   `yaml:"scene"`
	Player  PlayerConfig  `yaml:"player"`
	Camera  CameraConfig  `yaml:"camera"`
	Capture CaptureConfig `yaml:"capture"`
	Hazard  HazardConfig  `yaml:"hazard"`
	Convoy  ConvoyConfig  `yaml:"convoy"`

	// Seed 随机数种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`
}

// SceneConfig 场景尺寸配置
type SceneConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// MaxAspectRatio 可玩区域的最大宽高比，超出部分作为上下边距
	MaxAspectRatio float64 `yaml:"maxAspectRatio"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	StartX            float64 `yaml:"startX"`
	StartY            float64 `yaml:"startY"`
	MoveSpeed         float64 `yaml:"moveSpeed"`
	RotateSpeed       float64 `yaml:"rotateSpeed"`
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Lives             int     `yaml:"lives"`
	InvincibleSeconds float64 `yaml:"invincibleSeconds"`
	BlinkCount        int     `yaml:"blinkCount"`
}

// CameraConfig 镜头与背景配置
type CameraConfig struct {
	ScrollSpeed float64 `yaml:"scrollSpeed"`
	TileWidth   float64 `yaml:"tileWidth"`
	TileCount   int     `yaml:"tileCount"`
}

// CaptureConfig 可捕获实体配置
type CaptureConfig struct {
	SpawnInterval float64 `yaml:"spawnInterval"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	// Lifetime 未被捕获时的存活时间，0 表示一直等待
	Lifetime      float64 `yaml:"lifetime"`
	AppearSeconds float64 `yaml:"appearSeconds"`
}

// HazardConfig 危险实体配置
type HazardConfig struct {
	SpawnInterval   float64 `yaml:"spawnInterval"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	TraverseSeconds float64 `yaml:"traverseSeconds"`
	HitInset        float64 `yaml:"hitInset"`
	// RemoveOnHit 撞到玩家后是否立即移除
	// 默认 false：危险实体在横穿期间持续存在，无敌结束后可以再次造成伤害
	RemoveOnHit bool `yaml:"removeOnHit"`
}

// ConvoyConfig 车队配置
type ConvoyConfig struct {
	Speed          float64 `yaml:"speed"`
	HopSeconds     float64 `yaml:"hopSeconds"`
	WinThreshold   int     `yaml:"winThreshold"`
	ScatterCount   int     `yaml:"scatterCount"`
	ScatterRadius  float64 `yaml:"scatterRadius"`
	ScatterSeconds float64 `yaml:"scatterSeconds"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Scene: SceneConfig{
			Width:          2048,
			Height:         1536,
			MaxAspectRatio: 16.0 / 9.0,
		},
		Player: PlayerConfig{
			StartX:            400,
			StartY:            400,
			MoveSpeed:         480,
			RotateSpeed:       4 * math.Pi,
			Width:             150,
			Height:            100,
			Lives:             5,
			InvincibleSeconds: 3.0,
			BlinkCount:        10,
		},
		Camera: CameraConfig{
			ScrollSpeed: 200,
			TileWidth:   2048,
			TileCount:   2,
		},
		Capture: CaptureConfig{
			SpawnInterval: 1.0,
			Width:         80,
			Height:        80,
			Lifetime:      10.5,
			AppearSeconds: 0.5,
		},
		Hazard: HazardConfig{
			SpawnInterval:   2.0,
			Width:           180,
			Height:          100,
			TraverseSeconds: 2.0,
			HitInset:        20,
			RemoveOnHit:     false,
		},
		Convoy: ConvoyConfig{
			Speed:          480,
			HopSeconds:     0.3,
			WinThreshold:   8,
			ScatterCount:   2,
			ScatterRadius:  100,
			ScatterSeconds: 1.0,
		},
	}
}

// LoadGameConfig 加载游戏配置
//
// 未在 YAML 中出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/conga.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 从 YAML 字节解析并验证配置
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// LoadGameConfigOrDefault 加载配置，失败时记录日志并返回默认配置
// path 为空时直接返回默认配置
func LoadGameConfigOrDefault(path string) *GameConfig {
	if path == "" {
		return DefaultGameConfig()
	}
	cfg, err := LoadGameConfig(path)
	if err != nil {
		log.Printf("[Config] Warning: %v (using defaults)", err)
		return DefaultGameConfig()
	}
	log.Printf("[Config] Loaded game config from %s", path)
	return cfg
}

// Normalize 把可以修正的值限制到合法范围
//
// 生成间隔过小（或非有限值）时提升到 MinSpawnInterval，而不是让整份配置失效。
func (c *GameConfig) Normalize() {
	c.Capture.SpawnInterval = ClampSpawnInterval(c.Capture.SpawnInterval)
	c.Hazard.SpawnInterval = ClampSpawnInterval(c.Hazard.SpawnInterval)
}

// Validate 验证配置有效性
//
// 返回第一个不满足的规则
func (c *GameConfig) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"scene.width", c.Scene.Width},
		{"scene.height", c.Scene.Height},
		{"scene.maxAspectRatio", c.Scene.MaxAspectRatio},
		{"player.moveSpeed", c.Player.MoveSpeed},
		{"player.rotateSpeed", c.Player.RotateSpeed},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"camera.tileWidth", c.Camera.TileWidth},
		{"capture.width", c.Capture.Width},
		{"capture.height", c.Capture.Height},
		{"hazard.width", c.Hazard.Width},
		{"hazard.height", c.Hazard.Height},
		{"hazard.traverseSeconds", c.Hazard.TraverseSeconds},
		{"convoy.speed", c.Convoy.Speed},
		{"convoy.hopSeconds", c.Convoy.HopSeconds},
		{"convoy.scatterSeconds", c.Convoy.ScatterSeconds},
	}
	for _, p := range positives {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%s must be a positive number, got %v", p.name, p.value)
		}
	}

	nonNegatives := []struct {
		name  string
		value float64
	}{
		{"camera.scrollSpeed", c.Camera.ScrollSpeed},
		{"player.invincibleSeconds", c.Player.InvincibleSeconds},
		{"capture.lifetime", c.Capture.Lifetime},
		{"capture.appearSeconds", c.Capture.AppearSeconds},
		{"hazard.hitInset", c.Hazard.HitInset},
		{"convoy.scatterRadius", c.Convoy.ScatterRadius},
	}
	for _, n := range nonNegatives {
		if !(n.value >= 0) || math.IsInf(n.value, 0) {
			return fmt.Errorf("%s must be >= 0, got %v", n.name, n.value)
		}
	}

	if c.Player.Lives < 1 {
		return fmt.Errorf("player.lives must be >= 1, got %d", c.Player.Lives)
	}
	if c.Player.BlinkCount < 0 {
		return fmt.Errorf("player.blinkCount must be >= 0, got %d", c.Player.BlinkCount)
	}
	if c.Camera.TileCount < 2 {
		return fmt.Errorf("camera.tileCount must be >= 2 for seamless wrap, got %d", c.Camera.TileCount)
	}
	if c.Convoy.WinThreshold < 1 {
		return fmt.Errorf("convoy.winThreshold must be >= 1, got %d", c.Convoy.WinThreshold)
	}
	if c.Convoy.ScatterCount < 0 {
		return fmt.Errorf("convoy.scatterCount must be >= 0, got %d", c.Convoy.ScatterCount)
	}
	return nil
}

// PlayableHeight 可玩区域高度（按最大宽高比从场景宽度推算）
func (c *GameConfig) PlayableHeight() float64 {
	h := c.Scene.Width / c.Scene.MaxAspectRatio
	if h > c.Scene.Height {
		return c.Scene.Height
	}
	return h
}

// PlayableMargin 可玩区域上下边距
func (c *GameConfig) PlayableMargin() float64 {
	return (c.Scene.Height - c.PlayableHeight()) / 2
}

// ClampSpawnInterval 将生成间隔限制到合法范围
// 非有限值或过小的值返回 MinSpawnInterval
func ClampSpawnInterval(interval float64) float64 {
	if math.IsNaN(interval) || math.IsInf(interval, 0) || interval < MinSpawnInterval {
		return MinSpawnInterval
	}
	return interval
}
