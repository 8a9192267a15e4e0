package components

import (
	"math"

	"github.com/decker502/vnplayer/pkg/utils"
)

// AnimatedValue 以固定速率趋向目标值的补间数值
//
// 每次 Tick 按 rate*dt 线性推进 current，到达（或越过）目标的那一帧
// 精确吸附到 target 并返回 true。之后的 Tick 不再改变数值。
//
// 缓动函数只影响 Value() 返回的显示值，不影响推进速度和完成时刻。
type AnimatedValue struct {
	begin   float64
	current float64
	target  float64
	rate    float64 // 单位/秒
	easing  utils.EasingFunc
}

// NewAnimatedValue 创建处于静止状态的补间值
func NewAnimatedValue(value, rate float64) AnimatedValue {
	return AnimatedValue{
		begin:   value,
		current: value,
		target:  value,
		rate:    rate,
	}
}

// SetEasing 设置显示值的缓动函数，nil 表示线性
func (a *AnimatedValue) SetEasing(easing utils.EasingFunc) {
	a.easing = easing
}

// Set 立即设置数值（无动画）
func (a *AnimatedValue) Set(value float64) {
	a.begin = value
	a.current = value
	a.target = value
}

// Retarget 设置新的目标值，current 不变
func (a *AnimatedValue) Retarget(target float64) {
	a.begin = a.current
	a.target = target
}

// Tick 推进一帧
//
// 返回 true 表示本帧到达目标（完成信号只在吸附发生的那一帧出现一次）。
// rate <= 0 时视为瞬时完成。
func (a *AnimatedValue) Tick(dt float64) bool {
	if a.current == a.target || dt <= 0 {
		return false
	}

	step := a.rate * dt
	if a.rate <= 0 {
		a.current = a.target
		return true
	}

	var candidate float64
	var reached bool
	if a.current < a.target {
		candidate = a.current + step
		reached = candidate >= a.target
	} else {
		candidate = a.current - step
		reached = candidate <= a.target
	}
	if reached || math.Floor(candidate) == a.target || math.Ceil(candidate) == a.target {
		a.current = a.target
		return true
	}

	a.current = candidate
	return false
}

// Current 返回线性推进的当前值
func (a *AnimatedValue) Current() float64 {
	return a.current
}

// Target 返回目标值
func (a *AnimatedValue) Target() float64 {
	return a.target
}

// Done 是否已到达目标
func (a *AnimatedValue) Done() bool {
	return a.current == a.target
}

// Value 返回经缓动后的显示值
func (a *AnimatedValue) Value() float64 {
	if a.easing == nil || a.target == a.begin {
		return a.current
	}
	progress := utils.Clamp01((a.current - a.begin) / (a.target - a.begin))
	return utils.Lerp(a.begin, a.target, a.easing(progress))
}
