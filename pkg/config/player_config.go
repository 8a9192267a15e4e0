package config

import (
	"fmt"
	"os"

	"github.com/decker502/vnplayer/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// PlayerConfig 播放器配置
// 对应 data/config/player.yaml
//
// 示例：
//
//	window:
//	  width: 1280
//	  height: 720
//	  title: BestVN
//	ticks_per_second: 160
//	tween_rate: 150
//	reveal_speed: 2
//	resource_dir: res
//	script: story/sb.csv
type PlayerConfig struct {
	Window         WindowConfig `yaml:"window"`
	TicksPerSecond int          `yaml:"ticks_per_second"` // 逻辑帧率
	TweenRate      float64      `yaml:"tween_rate"`       // 补间速率（单位/秒）
	Easing         string       `yaml:"easing"`           // 显示缓动：linear / out-cubic / in-out-cubic / out-quad
	RevealSpeed    int          `yaml:"reveal_speed"`     // 打字机默认速度（每字符 tick 数）
	CharacterY     float64      `yaml:"character_y"`      // 角色立绘固定 y 坐标

	// ResourceDir 资源根目录，图片/音效/字体/剧本都相对于此目录
	ResourceDir string `yaml:"resource_dir"`
	// Script 剧本路径（相对于 ResourceDir）
	Script string `yaml:"script"`
	// InitialBackground 开场背景（相对于 bg/ 目录），为空则使用黑屏
	InitialBackground string `yaml:"initial_background"`

	Font FontConfig `yaml:"font"`
	Keys KeyConfig  `yaml:"keys"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// FontConfig 字体配置
// Path 为空时使用 Ebitengine 内置调试字体
type FontConfig struct {
	Path        string  `yaml:"path"`         // 相对于 ResourceDir
	Size        float64 `yaml:"size"`         // 正文字号
	SpeakerSize float64 `yaml:"speaker_size"` // 说话人字号
	ChoiceSize  float64 `yaml:"choice_size"`  // 选项字号
}

// KeyConfig 按键绑定（按键名称与 ebiten.Key 文本形式一致）
type KeyConfig struct {
	Advance    []string `yaml:"advance"`
	Choice1    []string `yaml:"choice1"`
	Choice2    []string `yaml:"choice2"`
	Quit       []string `yaml:"quit"`
	Fullscreen []string `yaml:"fullscreen"`
	Mute       []string `yaml:"mute"`
}

// KeyBindings 解析后的按键绑定
type KeyBindings struct {
	Advance    []ebiten.Key
	Choice1    []ebiten.Key
	Choice2    []ebiten.Key
	Quit       []ebiten.Key
	Fullscreen []ebiten.Key
	Mute       []ebiten.Key
}

// DefaultPlayerConfig 返回默认配置
func DefaultPlayerConfig() *PlayerConfig {
	cfg := &PlayerConfig{}
	applyDefaults(cfg)
	return cfg
}

// LoadPlayerConfig 从文件加载播放器配置
//
// 参数：
//   - filepath: YAML 配置文件路径
//
// 返回：
//   - *PlayerConfig: 应用默认值并通过验证的配置
//   - error: 读取、解析或验证失败
func LoadPlayerConfig(filepath string) (*PlayerConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read player config file %s: %w", filepath, err)
	}

	cfg, err := ParsePlayerConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid player config %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParsePlayerConfig 从 YAML 数据解析播放器配置
func ParsePlayerConfig(data []byte) (*PlayerConfig, error) {
	var cfg PlayerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse player config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validatePlayerConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 为缺失的可选字段设置默认值
func applyDefaults(cfg *PlayerConfig) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = DefaultWindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = DefaultWindowHeight
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = DefaultWindowTitle
	}
	if cfg.TicksPerSecond == 0 {
		cfg.TicksPerSecond = DefaultTicksPerSecond
	}
	if cfg.TweenRate == 0 {
		cfg.TweenRate = DefaultTweenRate
	}
	if cfg.Easing == "" {
		cfg.Easing = "linear"
	}
	if cfg.RevealSpeed == 0 {
		cfg.RevealSpeed = DefaultRevealSpeed
	}
	if cfg.CharacterY == 0 {
		cfg.CharacterY = DefaultCharacterY
	}
	if cfg.ResourceDir == "" {
		cfg.ResourceDir = "res"
	}
	if cfg.Font.Size == 0 {
		cfg.Font.Size = 18
	}
	if cfg.Font.SpeakerSize == 0 {
		cfg.Font.SpeakerSize = cfg.Font.Size
	}
	if cfg.Font.ChoiceSize == 0 {
		cfg.Font.ChoiceSize = 34
	}

	// 按键默认值：空格推进，1/2 选择，Esc 退出
	if len(cfg.Keys.Advance) == 0 {
		cfg.Keys.Advance = []string{"Space"}
	}
	if len(cfg.Keys.Choice1) == 0 {
		cfg.Keys.Choice1 = []string{"Digit1", "Numpad1"}
	}
	if len(cfg.Keys.Choice2) == 0 {
		cfg.Keys.Choice2 = []string{"Digit2", "Numpad2"}
	}
	if len(cfg.Keys.Quit) == 0 {
		cfg.Keys.Quit = []string{"Escape"}
	}
	if len(cfg.Keys.Fullscreen) == 0 {
		cfg.Keys.Fullscreen = []string{"F11"}
	}
	if len(cfg.Keys.Mute) == 0 {
		cfg.Keys.Mute = []string{"M"}
	}
}

// validatePlayerConfig 验证配置取值
func validatePlayerConfig(cfg *PlayerConfig) error {
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.TicksPerSecond < 0 {
		return fmt.Errorf("ticks_per_second must be positive, got %d", cfg.TicksPerSecond)
	}
	if cfg.TweenRate < 0 {
		return fmt.Errorf("tween_rate must be positive, got %v", cfg.TweenRate)
	}
	if cfg.RevealSpeed < 0 {
		return fmt.Errorf("reveal_speed must be positive, got %d", cfg.RevealSpeed)
	}
	if _, err := utils.EasingByName(cfg.Easing); err != nil {
		return err
	}
	if _, err := cfg.Keys.Bindings(); err != nil {
		return err
	}
	return nil
}

// Bindings 将按键名称解析为 ebiten.Key
func (k KeyConfig) Bindings() (KeyBindings, error) {
	var b KeyBindings
	groups := []struct {
		name  string
		names []string
		dst   *[]ebiten.Key
	}{
		{"advance", k.Advance, &b.Advance},
		{"choice1", k.Choice1, &b.Choice1},
		{"choice2", k.Choice2, &b.Choice2},
		{"quit", k.Quit, &b.Quit},
		{"fullscreen", k.Fullscreen, &b.Fullscreen},
		{"mute", k.Mute, &b.Mute},
	}

	for _, g := range groups {
		keys, err := utils.ParseKeys(g.names)
		if err != nil {
			return KeyBindings{}, fmt.Errorf("invalid %s key binding: %w", g.name, err)
		}
		*g.dst = keys
	}
	return b, nil
}

// TickDuration 返回一个 tick 的时长（秒）
func (c *PlayerConfig) TickDuration() float64 {
	return 1.0 / float64(c.TicksPerSecond)
}
