package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PlayerSettings 玩家偏好设置（与剧情进度无关，剧情本身不存档）
type PlayerSettings struct {
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
	Fullscreen   bool    `yaml:"fullscreen"`   // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *PlayerSettings {
	return &PlayerSettings{
		SoundVolume:  0.8,
		SoundEnabled: true,
	}
}

// SettingsManager 设置管理器
// 通过 gdata 持久化，gdataManager 为 nil 时只保存在内存中
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *PlayerSettings
}

const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// NewSettingsManager 创建设置管理器并加载已保存的设置
// 加载失败时记录日志并使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded: volume=%.2f sound=%v fullscreen=%v",
		loaded.SoundVolume, loaded.SoundEnabled, loaded.Fullscreen)
	return nil
}

// Save 保存设置到 gdata，内存模式下不做任何事
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings 返回当前设置
func (sm *SettingsManager) GetSettings() *PlayerSettings {
	return sm.settings
}

// SetSoundVolume 设置音效音量（限制在 0.0 ~ 1.0），需调用 Save 持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetSoundEnabled 设置音效开关，需调用 Save 持久化
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetFullscreen 设置全屏，需调用 Save 持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ToggleSound 切换音效开关并保存，返回新的状态
func (sm *SettingsManager) ToggleSound() (bool, error) {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	return sm.settings.SoundEnabled, sm.Save()
}

// ToggleFullscreen 切换全屏并保存，返回新的状态
func (sm *SettingsManager) ToggleFullscreen() (bool, error) {
	sm.settings.Fullscreen = !sm.settings.Fullscreen
	return sm.settings.Fullscreen, sm.Save()
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
