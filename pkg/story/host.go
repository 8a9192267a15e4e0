package story

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Host 引擎依赖的外部能力（图像加载、纯色图像、音效播放）
//
// 路径相对于资源根目录，例如 "char/alice.png"、"bg/mm.jpg"、"sfx/door.wav"。
// 测试中可以用返回 nil 图像的假实现代替。
type Host interface {
	LoadImage(path string) (*ebiten.Image, error)
	NewSolidImage(width, height int, c color.RGBA) *ebiten.Image
	PlaySound(path string) error
}

// 资源子目录
const (
	CharacterDir  = "char"
	BackgroundDir = "bg"
	SoundDir      = "sfx"
)
