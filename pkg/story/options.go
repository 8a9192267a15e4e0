package story

import (
	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/utils"
)

// Options 引擎参数
type Options struct {
	Width             float64 // 场景宽度
	Height            float64 // 场景高度
	TweenRate         float64 // 补间速率（单位/秒）
	Easing            utils.EasingFunc
	RevealSpeed       int     // 默认打字速度
	CharacterY        float64 // 角色立绘 y 坐标
	InitialBackground string  // 开场背景（bg/ 下的文件名），为空则无背景
}

// DefaultOptions 返回默认参数
func DefaultOptions() Options {
	return Options{
		Width:       config.DefaultWindowWidth,
		Height:      config.DefaultWindowHeight,
		TweenRate:   config.DefaultTweenRate,
		RevealSpeed: config.DefaultRevealSpeed,
		CharacterY:  config.DefaultCharacterY,
	}
}

// OptionsFromConfig 由播放器配置生成引擎参数
func OptionsFromConfig(cfg *config.PlayerConfig) (Options, error) {
	easing, err := utils.EasingByName(cfg.Easing)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Width:             float64(cfg.Window.Width),
		Height:            float64(cfg.Window.Height),
		TweenRate:         cfg.TweenRate,
		Easing:            easing,
		RevealSpeed:       cfg.RevealSpeed,
		CharacterY:        cfg.CharacterY,
		InitialBackground: cfg.InitialBackground,
	}, nil
}
