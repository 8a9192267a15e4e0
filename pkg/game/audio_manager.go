package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// soundLoader 加载音效播放器
type soundLoader interface {
	LoadSoundEffect(name string) (*audio.Player, error)
}

// AudioManager 音效播放
// 每次播放前从 SettingsManager 读取开关和音量
type AudioManager struct {
	loader   soundLoader
	settings *SettingsManager // 可为 nil，使用默认设置
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - rm: 资源管理器
//   - sm: 设置管理器，可为 nil
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{loader: rm, settings: sm}
}

// PlaySound 从头播放一次音效
//
// 音效被关闭时直接返回 nil（不加载文件）。
// 文件缺失或无法解码时返回 *AssetError。
func (am *AudioManager) PlaySound(name string) error {
	settings := am.currentSettings()
	if !settings.SoundEnabled {
		return nil
	}

	player, err := am.loader.LoadSoundEffect(name)
	if err != nil {
		return err
	}

	player.SetVolume(settings.SoundVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", name, err)
	}
	player.Play()
	return nil
}

func (am *AudioManager) currentSettings() *PlayerSettings {
	if am.settings == nil {
		return DefaultSettings()
	}
	return am.settings.GetSettings()
}
