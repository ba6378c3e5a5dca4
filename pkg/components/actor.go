package components

// ActorKind 定义实体的种类（带标签的变体，而非子类型）
// 种类会在运行时发生转换：被捕获的 Capture 变为 ConvoyLink
type ActorKind int

const (
	// KindPlayer 玩家角色：被点击/触摸目标牵引移动
	KindPlayer ActorKind = iota
	// KindCapture 可捕获实体：原地待机，等待被玩家碰到
	KindCapture
	// KindHazard 危险实体：横穿屏幕，碰到玩家扣命
	KindHazard
	// KindConvoyLink 车队成员：被捕获后跟随玩家的队列节点
	KindConvoyLink
	// KindBackgroundTile 背景图块：随镜头循环复用
	KindBackgroundTile
)

// String 返回种类名称（用于日志和快照序列化）
func (k ActorKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindCapture:
		return "capture"
	case KindHazard:
		return "hazard"
	case KindConvoyLink:
		return "convoy_link"
	case KindBackgroundTile:
		return "background_tile"
	default:
		return "unknown"
	}
}

// ConvoyTag 车队成员的标签值
const ConvoyTag = "convoy"

// ActorComponent 所有模拟实体共有的状态
// 纯数据，行为由各个系统根据 Kind 决定
type ActorComponent struct {
	Kind       ActorKind
	Visible    bool   // 是否可见（无敌闪烁期间会切换）
	Invincible bool   // 是否处于无敌状态（仅玩家使用）
	Tag        string // 可选标签，车队成员为 "convoy"
}

// 种类标记组件
//
// 作为按种类的二级索引：查询某一种类只遍历该种类的实体，
// 与 ActorComponent.Kind 由 entities.SetKind 保持同步。
type (
	PlayerTag         struct{}
	CaptureTag        struct{}
	HazardTag         struct{}
	ConvoyLinkTag     struct{}
	BackgroundTileTag struct{}
)
