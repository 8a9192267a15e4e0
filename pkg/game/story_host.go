package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// StoryHost 把资源管理器和音频管理器组合成剧情引擎需要的 story.Host
type StoryHost struct {
	resources *ResourceManager
	audio     *AudioManager
}

// NewStoryHost 创建 StoryHost
func NewStoryHost(rm *ResourceManager, am *AudioManager) *StoryHost {
	return &StoryHost{resources: rm, audio: am}
}

// LoadImage 加载资源图像
func (h *StoryHost) LoadImage(path string) (*ebiten.Image, error) {
	return h.resources.LoadImage(path)
}

// NewSolidImage 创建纯色图像，宽高至少为 1
func (h *StoryHost) NewSolidImage(width, height int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(max(width, 1), max(height, 1))
	img.Fill(c)
	return img
}

// PlaySound 播放音效
func (h *StoryHost) PlaySound(path string) error {
	return h.audio.PlaySound(path)
}
