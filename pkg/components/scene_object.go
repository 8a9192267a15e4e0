package components

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/vnplayer/pkg/utils"
)

// SceneObject 场景中可动画的对象（角色、背景、遮罩、对话框面板）
//
// 持有 x 坐标和不透明度两个补间值，y 坐标固定。
// 每次 Tick 都会把补间结果直接写回 Sprite，不存在延迟提交。
type SceneObject struct {
	sprite        *Sprite
	x             AnimatedValue
	opacity       AnimatedValue
	justCompleted bool
}

// NewSceneObject 创建场景对象
//
// 参数：
//   - image: 图像，可为 nil（由绘制方自行填充）
//   - x, y: 初始位置（场景坐标，左下角为原点）
//   - opacity: 初始不透明度 0-255
//   - rate: 补间速率（单位/秒）
func NewSceneObject(image *ebiten.Image, x, y, opacity, rate float64) *SceneObject {
	o := &SceneObject{
		sprite:  &Sprite{Image: image, X: x, Y: y, Opacity: opacity},
		x:       NewAnimatedValue(x, rate),
		opacity: NewAnimatedValue(opacity, rate),
	}
	return o
}

// SetEasing 设置位置和不透明度的显示缓动
func (o *SceneObject) SetEasing(easing utils.EasingFunc) {
	o.x.SetEasing(easing)
	o.opacity.SetEasing(easing)
}

// SetOpacity 立即设置不透明度，同时重置不透明度目标
func (o *SceneObject) SetOpacity(value float64) {
	o.opacity.Set(value)
	o.sprite.Opacity = value
}

// AnimateOpacity 开始不透明度动画
func (o *SceneObject) AnimateOpacity(target float64) {
	o.opacity.Retarget(target)
	o.justCompleted = false
}

// AnimateX 开始水平移动动画
func (o *SceneObject) AnimateX(target float64) {
	o.x.Retarget(target)
	o.justCompleted = false
}

// Tick 推进两个补间值并同步到 Sprite
// 任一补间值在本帧到达目标时 JustCompleted 为 true
func (o *SceneObject) Tick(dt float64) {
	o.justCompleted = false
	if o.x.Tick(dt) {
		o.justCompleted = true
	}
	if o.opacity.Tick(dt) {
		o.justCompleted = true
	}
	o.sprite.X = o.x.Value()
	o.sprite.Opacity = o.opacity.Value()
}

// JustCompleted 本帧是否有补间值到达目标
func (o *SceneObject) JustCompleted() bool {
	return o.justCompleted
}

// IsAnimating 是否仍有补间未完成
func (o *SceneObject) IsAnimating() bool {
	return !o.x.Done() || !o.opacity.Done()
}

// ReplaceImage 替换图像，保留位置和不透明度
func (o *SceneObject) ReplaceImage(image *ebiten.Image) {
	o.sprite.Image = image
}

// Sprite 返回绘制用的 Sprite
func (o *SceneObject) Sprite() *Sprite {
	return o.sprite
}

// X 返回当前 x 坐标
func (o *SceneObject) X() float64 {
	return o.x.Current()
}

// Opacity 返回当前不透明度
func (o *SceneObject) Opacity() float64 {
	return o.opacity.Current()
}

// TargetOpacity 返回不透明度目标
func (o *SceneObject) TargetOpacity() float64 {
	return o.opacity.Target()
}
