package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 按名称创建场景，未知名称返回 nil
// game 包不依赖 scenes 包，具体场景由 app 注入
type SceneFactory func(name string) Scene

// SceneManager 持有当前场景，每帧只驱动这一个场景
type SceneManager struct {
	current Scene
	name    string
	factory SceneFactory
}

// NewSceneManager 创建没有活动场景的管理器
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置 Load 使用的工厂
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.factory = factory
}

// SwitchTo 直接替换当前场景（加载场景完成后切到竞技场时使用），名称保持不变
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.current = scene
}

// GetCurrentScene 返回当前场景，没有时为 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.current
}

// CurrentName 返回最近一次 Load 的场景名
func (sm *SceneManager) CurrentName() string {
	return sm.name
}

// Load 通过工厂创建并切换到 name 场景
// 返回 false 时当前场景保持不变
func (sm *SceneManager) Load(name string) bool {
	if sm.factory == nil {
		log.Printf("[SceneManager] Error: no scene factory, cannot load %s", name)
		return false
	}
	next := sm.factory(name)
	if next == nil {
		log.Printf("[SceneManager] Error: unknown scene %s", name)
		return false
	}
	sm.current = next
	sm.name = name
	log.Printf("[SceneManager] Scene %s active", name)
	return true
}

// SaveOnExit 让当前场景保存档案；场景不需要保存时视为成功
func (sm *SceneManager) SaveOnExit() bool {
	if s, ok := sm.current.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}

// Update 推进当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.current == nil {
		return
	}
	sm.current.Update(deltaTime)
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current == nil {
		return
	}
	sm.current.Draw(screen)
}
