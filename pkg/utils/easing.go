package utils

import (
	"fmt"
	"math"
	"strings"
)

// Easing Functions (缓动函数)
//
// 缓动函数把线性进度 t ∈ [0, 1] 映射为显示进度 ∈ [0, 1]。
// 补间值（AnimatedValue）本身始终按固定速率线性推进，
// 缓动只影响绘制时读取的显示值。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（适合角色滑入）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// easingByName 配置文件中可用的缓动名称
var easingByName = map[string]EasingFunc{
	"":             EaseLinear,
	"linear":       EaseLinear,
	"out-cubic":    EaseOutCubic,
	"in-out-cubic": EaseInOutCubic,
	"out-quad":     EaseOutQuad,
}

// EasingByName 根据配置名称返回缓动函数
// 空字符串视为 linear
func EasingByName(name string) (EasingFunc, error) {
	fn, ok := easingByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (supported: linear, out-cubic, in-out-cubic, out-quad)", name)
	}
	return fn, nil
}
