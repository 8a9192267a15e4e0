package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个画面（目前只有剧情场景）
type Scene interface {
	// Update 推进一帧，deltaTime 为秒
	// 返回的错误会结束游戏循环
	Update(deltaTime float64) error

	// Draw 绘制到屏幕
	Draw(screen *ebiten.Image)
}
