package components

import (
	"math"
	"testing"

	"github.com/decker502/vnplayer/pkg/utils"
)

const testDt = 1.0 / 160.0

// TestAnimatedValue_Converges 测试补间值在有限帧内精确到达目标且不越界
func TestAnimatedValue_Converges(t *testing.T) {
	tests := []struct {
		name string
		from float64
		to   float64
		rate float64
		dt   float64
	}{
		{"向右移动", 0, 400, 150, testDt},
		{"向左移动", 400, 35, 150, testDt},
		{"淡入", 0, 255, 150, testDt},
		{"淡出", 255, 0, 150, testDt},
		{"小数目标", 0, 10.5, 150, testDt},
		{"大步长", 0, 10, 150, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewAnimatedValue(tt.from, tt.rate)
			v.Retarget(tt.to)

			maxTicks := int(math.Ceil(math.Abs(tt.to-tt.from)/(tt.rate*tt.dt))) + 1
			completions := 0
			for i := 0; i < maxTicks && !v.Done(); i++ {
				if v.Tick(tt.dt) {
					completions++
				}
				if tt.to > tt.from && v.Current() > tt.to {
					t.Fatalf("overshoot: current %f > target %f", v.Current(), tt.to)
				}
				if tt.to < tt.from && v.Current() < tt.to {
					t.Fatalf("overshoot: current %f < target %f", v.Current(), tt.to)
				}
			}

			if v.Current() != tt.to {
				t.Fatalf("Expected current = %f after %d ticks, got %f", tt.to, maxTicks, v.Current())
			}
			if completions != 1 {
				t.Errorf("Expected exactly 1 completion signal, got %d", completions)
			}

			// 到达目标后继续 Tick 不再变化
			for i := 0; i < 10; i++ {
				if v.Tick(tt.dt) {
					t.Error("Tick at fixed point should not report completion")
				}
			}
			if v.Current() != tt.to {
				t.Errorf("Expected current to stay %f, got %f", tt.to, v.Current())
			}
		})
	}
}

// TestAnimatedValue_SnapsOnFloorCeil 测试候选值取整后等于目标时直接吸附
func TestAnimatedValue_SnapsOnFloorCeil(t *testing.T) {
	v := NewAnimatedValue(0, 1)
	v.Retarget(10)

	if !v.Tick(9.5) {
		t.Fatal("Expected snap when ceil(candidate) == target")
	}
	if v.Current() != 10 {
		t.Errorf("Expected current = 10, got %f", v.Current())
	}

	v = NewAnimatedValue(20, 1)
	v.Retarget(10)
	if !v.Tick(9.5) {
		t.Fatal("Expected snap when floor(candidate) == target")
	}
	if v.Current() != 10 {
		t.Errorf("Expected current = 10, got %f", v.Current())
	}
}

// TestAnimatedValue_NoOp 测试 dt <= 0 或已在目标时不变
func TestAnimatedValue_NoOp(t *testing.T) {
	v := NewAnimatedValue(5, 150)
	if v.Tick(testDt) {
		t.Error("Tick on settled value should return false")
	}

	v.Retarget(100)
	if v.Tick(0) || v.Tick(-1) {
		t.Error("Tick with non-positive dt should return false")
	}
	if v.Current() != 5 {
		t.Errorf("Expected current = 5, got %f", v.Current())
	}
}

// TestAnimatedValue_RetargetKeepsCurrent 测试中途改变目标时当前值不变
func TestAnimatedValue_RetargetKeepsCurrent(t *testing.T) {
	v := NewAnimatedValue(0, 150)
	v.Retarget(100)
	for i := 0; i < 20; i++ {
		v.Tick(testDt)
	}
	mid := v.Current()

	v.Retarget(0)
	if v.Current() != mid {
		t.Errorf("Retarget changed current: %f -> %f", mid, v.Current())
	}
	if v.Target() != 0 {
		t.Errorf("Expected target = 0, got %f", v.Target())
	}
}

// TestAnimatedValue_Set 测试立即设置
func TestAnimatedValue_Set(t *testing.T) {
	v := NewAnimatedValue(0, 150)
	v.Retarget(255)
	v.Set(42)

	if v.Current() != 42 || v.Target() != 42 || !v.Done() {
		t.Errorf("Set(42): current=%f target=%f", v.Current(), v.Target())
	}
}

// TestAnimatedValue_Easing 测试缓动只影响显示值
func TestAnimatedValue_Easing(t *testing.T) {
	v := NewAnimatedValue(0, 50)
	v.Retarget(100)
	v.Tick(1)

	if v.Current() != 50 {
		t.Fatalf("Expected current = 50, got %f", v.Current())
	}
	if v.Value() != 50 {
		t.Errorf("Linear Value() = %f, want 50", v.Value())
	}

	v.SetEasing(utils.EaseOutCubic)
	if math.Abs(v.Value()-87.5) > 1e-9 {
		t.Errorf("EaseOutCubic Value() = %f, want 87.5", v.Value())
	}

	v.Tick(1)
	if v.Value() != 100 {
		t.Errorf("Eased value at target = %f, want 100", v.Value())
	}
}
