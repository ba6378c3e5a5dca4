package game

import "github.com/decker502/conga/pkg/ecs"

// EventListener 接收模拟核心发出的通知
//
// 回调在 Step 内同步调用，实现方不得阻塞（音频、渲染、网络层应只做入队或触发）。
type EventListener interface {
	OnCaptureAcquired(id ecs.EntityID)
	OnHazardStruck(invincibleSeconds float64)
	OnConvoyScattered(ids []ecs.EntityID)
	OnGameWon()
	OnGameLost()
}

// ListenerFuncs 用函数字段实现 EventListener，未设置的回调忽略
type ListenerFuncs struct {
	CaptureAcquired func(id ecs.EntityID)
	HazardStruck    func(invincibleSeconds float64)
	ConvoyScattered func(ids []ecs.EntityID)
	GameWon         func()
	GameLost        func()
}

func (l ListenerFuncs) OnCaptureAcquired(id ecs.EntityID) {
	if l.CaptureAcquired != nil {
		l.CaptureAcquired(id)
	}
}

func (l ListenerFuncs) OnHazardStruck(invincibleSeconds float64) {
	if l.HazardStruck != nil {
		l.HazardStruck(invincibleSeconds)
	}
}

func (l ListenerFuncs) OnConvoyScattered(ids []ecs.EntityID) {
	if l.ConvoyScattered != nil {
		l.ConvoyScattered(ids)
	}
}

func (l ListenerFuncs) OnGameWon() {
	if l.GameWon != nil {
		l.GameWon()
	}
}

func (l ListenerFuncs) OnGameLost() {
	if l.GameLost != nil {
		l.GameLost()
	}
}

// Dispatcher 把通知按注册顺序广播给多个监听器
type Dispatcher struct {
	listeners []EventListener
}

// Add 注册监听器（nil 忽略）
func (d *Dispatcher) Add(l EventListener) {
	if l == nil {
		return
	}
	d.listeners = append(d.listeners, l)
}

// Len 已注册监听器数量
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

func (d *Dispatcher) OnCaptureAcquired(id ecs.EntityID) {
	for _, l := range d.listeners {
		l.OnCaptureAcquired(id)
	}
}

func (d *Dispatcher) OnHazardStruck(invincibleSeconds float64) {
	for _, l := range d.listeners {
		l.OnHazardStruck(invincibleSeconds)
	}
}

func (d *Dispatcher) OnConvoyScattered(ids []ecs.EntityID) {
	for _, l := range d.listeners {
		// 每个监听器拿到独立副本，避免互相修改
		cp := make([]ecs.EntityID, len(ids))
		copy(cp, ids)
		l.OnConvoyScattered(cp)
	}
}

func (d *Dispatcher) OnGameWon() {
	for _, l := range d.listeners {
		l.OnGameWon()
	}
}

func (d *Dispatcher) OnGameLost() {
	for _, l := range d.listeners {
		l.OnGameLost()
	}
}
