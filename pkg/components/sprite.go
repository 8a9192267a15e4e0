package components

import "github.com/hajimehoshi/ebiten/v2"

// Sprite 可绘制对象的图像及变换
// 坐标使用左下角为原点的场景坐标，绘制时由场景转换为屏幕坐标
type Sprite struct {
	Image   *ebiten.Image
	X       float64
	Y       float64
	Opacity float64 // 0-255
}

// Alpha 返回归一化的不透明度 [0, 1]
func (s *Sprite) Alpha() float32 {
	a := s.Opacity / 255
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return float32(a)
}

// Size 返回图像尺寸，无图像时为 0
func (s *Sprite) Size() (int, int) {
	if s.Image == nil {
		return 0, 0
	}
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}
