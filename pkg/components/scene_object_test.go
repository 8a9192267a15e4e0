package components

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// TestSceneObject_AnimateX 测试水平移动的完成信号和 Sprite 同步
func TestSceneObject_AnimateX(t *testing.T) {
	obj := NewSceneObject(nil, 0, 210, 255, 150)
	obj.AnimateX(100)

	if !obj.IsAnimating() {
		t.Fatal("Expected object to be animating after AnimateX")
	}

	completions := 0
	for i := 0; i < 200; i++ {
		obj.Tick(testDt)
		if obj.JustCompleted() {
			completions++
		}
		if obj.Sprite().X != obj.X() {
			t.Fatalf("Sprite X %f not synced with %f", obj.Sprite().X, obj.X())
		}
	}

	if completions != 1 {
		t.Errorf("Expected 1 completion, got %d", completions)
	}
	if obj.X() != 100 || obj.IsAnimating() {
		t.Errorf("Expected settled at x=100, got %f (animating=%v)", obj.X(), obj.IsAnimating())
	}
	if obj.Sprite().Y != 210 {
		t.Errorf("Y should stay fixed at 210, got %f", obj.Sprite().Y)
	}
}

// TestSceneObject_JustCompletedResets 测试完成标志只持续一帧
func TestSceneObject_JustCompletedResets(t *testing.T) {
	obj := NewSceneObject(nil, 0, 0, 0, 150)
	obj.AnimateOpacity(255)

	for !obj.JustCompleted() {
		obj.Tick(testDt)
	}
	obj.Tick(testDt)
	if obj.JustCompleted() {
		t.Error("JustCompleted should reset on the next tick")
	}
}

// TestSceneObject_SetOpacity 测试立即设置不透明度会覆盖动画目标
func TestSceneObject_SetOpacity(t *testing.T) {
	obj := NewSceneObject(nil, 0, 0, 0, 150)
	obj.AnimateOpacity(255)
	obj.SetOpacity(128)

	if obj.Opacity() != 128 || obj.TargetOpacity() != 128 {
		t.Errorf("Expected opacity and target 128, got %f / %f", obj.Opacity(), obj.TargetOpacity())
	}
	if obj.Sprite().Opacity != 128 {
		t.Errorf("Sprite opacity not updated: %f", obj.Sprite().Opacity)
	}
	if obj.IsAnimating() {
		t.Error("SetOpacity should stop the opacity animation")
	}
}

// TestSceneObject_ReplaceImage 测试替换图像保留位置和不透明度
func TestSceneObject_ReplaceImage(t *testing.T) {
	first := ebiten.NewImage(4, 4)
	second := ebiten.NewImage(8, 8)

	obj := NewSceneObject(first, 12, 34, 200, 150)
	obj.ReplaceImage(second)

	s := obj.Sprite()
	if s.Image != second {
		t.Error("Image not replaced")
	}
	if s.X != 12 || s.Y != 34 || s.Opacity != 200 {
		t.Errorf("Transform changed: %+v", *s)
	}
	if w, h := s.Size(); w != 8 || h != 8 {
		t.Errorf("Size() = %dx%d, want 8x8", w, h)
	}
}

// TestSprite_Alpha 测试不透明度归一化
func TestSprite_Alpha(t *testing.T) {
	tests := []struct {
		opacity float64
		want    float32
	}{
		{0, 0},
		{255, 1},
		{-10, 0},
		{300, 1},
	}
	for _, tt := range tests {
		s := &Sprite{Opacity: tt.opacity}
		if got := s.Alpha(); got != tt.want {
			t.Errorf("Alpha(%f) = %f, want %f", tt.opacity, got, tt.want)
		}
	}
}
