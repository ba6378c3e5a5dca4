package game

import "log"

// Phase 游戏阶段
// Playing → Won | Lost，终态不可再转换
type Phase int

const (
	// PhasePlaying 游戏进行中
	PhasePlaying Phase = iota
	// PhaseWon 车队长度达到胜利阈值
	PhaseWon
	// PhaseLost 生命耗尽
	PhaseLost
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// GameState 存储一局游戏的状态
//
// 每个 Simulation 拥有独立实例（不再是全局单例），
// 因此服务器可以同时运行多个房间。
type GameState struct {
	Lives        int     // 剩余生命，始终 >= 0
	StartLives   int     // 开局生命
	WinThreshold int     // 胜利所需的车队长度
	Phase        Phase   // 当前阶段
	ElapsedTime  float64 // 已模拟时间（秒）

	// 统计
	CapturedTotal int // 本局累计捕获数（散落不回退）
	HazardHits    int // 本局被撞次数（无敌期间的碰撞不计）
	BestConvoy    int // 本局车队最大长度
}

// NewGameState 创建新的一局
func NewGameState(lives, winThreshold int) *GameState {
	if lives < 0 {
		lives = 0
	}
	return &GameState{
		Lives:        lives,
		StartLives:   lives,
		WinThreshold: winThreshold,
		Phase:        PhasePlaying,
	}
}

// IsOver 是否已进入终态
func (gs *GameState) IsOver() bool {
	return gs.Phase != PhasePlaying
}

// LoseLife 扣除一条生命（不会低于 0）
// 终态下调用无效
func (gs *GameState) LoseLife() {
	if gs.IsOver() {
		return
	}
	gs.HazardHits++
	if gs.Lives > 0 {
		gs.Lives--
	}
}

// RecordConvoyLength 记录车队长度（用于统计最大值）
func (gs *GameState) RecordConvoyLength(length int) {
	if length > gs.BestConvoy {
		gs.BestConvoy = length
	}
}

// Evaluate 根据当前生命和车队长度计算阶段转换
//
// 最多触发一次转换：先判负（生命 <= 0），再判胜（车队长度 >= 阈值）。
// 已处于终态时不再评估。
//
// 返回:
//   - Phase: 转换后的阶段
//   - bool: 本次调用是否发生了转换
func (gs *GameState) Evaluate(convoyLength int) (Phase, bool) {
	if gs.IsOver() {
		return gs.Phase, false
	}

	gs.RecordConvoyLength(convoyLength)

	if gs.Lives <= 0 {
		gs.Phase = PhaseLost
		log.Printf("[GameState] Lost at %.2fs (captured %d, best convoy %d)", gs.ElapsedTime, gs.CapturedTotal, gs.BestConvoy)
		return gs.Phase, true
	}
	if gs.WinThreshold > 0 && convoyLength >= gs.WinThreshold {
		gs.Phase = PhaseWon
		log.Printf("[GameState] Won at %.2fs with convoy %d (lives left %d)", gs.ElapsedTime, convoyLength, gs.Lives)
		return gs.Phase, true
	}
	return gs.Phase, false
}
