package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// 场景ID
const (
	SceneGame   = "game"
	SceneResult = "result"
)

// Scene 一个可独立更新和绘制的界面（对局、结算）
type Scene interface {
	// Update 按帧间隔（秒）更新场景逻辑
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在程序退出时保存状态
//
// 实现此接口的场景会在窗口关闭时被调用 SaveOnExit()，
// 返回 false 表示保存失败（程序仍会正常退出）。
type Saveable interface {
	SaveOnExit() bool
}

// SceneFactory 场景工厂函数类型
// 按场景ID创建场景，由 app 包注册
type SceneFactory func(sceneID string) Scene

// SceneManager 控制当前活动场景，同一时间只有一个场景被更新和绘制
type SceneManager struct {
	currentScene Scene
	currentID    string
	sceneFactory SceneFactory
}

// NewSceneManager 创建场景管理器（初始没有活动场景）
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 直接切换到给定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentID 当前场景ID（通过 Load 切换时记录）
func (sm *SceneManager) CurrentID() string {
	return sm.currentID
}

// Load 通过工厂创建并切换到指定场景
func (sm *SceneManager) Load(sceneID string) bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: scene factory not set")
		return false
	}

	next := sm.sceneFactory(sceneID)
	if next == nil {
		log.Printf("[SceneManager] Error: cannot create scene %q", sceneID)
		return false
	}
	sm.SwitchTo(next)
	sm.currentID = sceneID
	log.Printf("[SceneManager] Switched to scene %q", sceneID)
	return true
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
