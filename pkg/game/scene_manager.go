package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 管理当前活动的场景
// 任一时刻只有一个场景的 Update 和 Draw 被调用
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建没有活动场景的管理器，用 SwitchTo 设置初始场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前场景，没有时为 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 更新当前场景，没有场景时什么也不做
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}
	return sm.currentScene.Update(deltaTime)
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
