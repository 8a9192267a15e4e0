package app

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/script"
	"github.com/decker502/vnplayer/pkg/story"
)

// TestNewApp_NoScript 测试没有剧本时返回错误
func TestNewApp_NoScript(t *testing.T) {
	if _, err := NewApp(Config{Player: config.DefaultPlayerConfig()}); err == nil {
		t.Error("expected error without script")
	}
}

// TestApp 测试完整的应用组装与结束流程
// 音频上下文每个进程只能创建一次，因此只调用一次 NewApp
func TestApp(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	player := config.DefaultPlayerConfig()
	player.Window.Width = 640
	player.Window.Height = 360

	s := script.New(
		script.Action{Kind: script.SayText, Person: "Alice", Text: "Hi", Value1: "1"},
		script.Action{Kind: script.HideTextBox},
	)

	a, err := NewApp(Config{
		Player:    player,
		Script:    s,
		Resources: fstest.MapFS{},
	})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	t.Run("Layout", func(t *testing.T) {
		w, h := a.Layout(1920, 1080)
		if w != 640 || h != 360 {
			t.Errorf("Layout = %dx%d, want 640x360", w, h)
		}
	})

	t.Run("WaitsForInput", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			if err := a.Update(); err != nil {
				t.Fatalf("Update %d failed: %v", i, err)
			}
		}
		if a.Engine().State() != story.WaitingInput {
			t.Errorf("state = %v, want WaitingInput", a.Engine().State())
		}
		a.Draw(ebiten.NewImage(640, 360))
	})

	t.Run("TerminatesAtEnd", func(t *testing.T) {
		if err := a.Engine().HandleInput(story.InputAdvance); err != nil {
			t.Fatalf("HandleInput failed: %v", err)
		}
		var err error
		for i := 0; i < 100 && err == nil; i++ {
			err = a.Update()
		}
		if !errors.Is(err, ebiten.Termination) {
			t.Errorf("expected ebiten.Termination, got %v", err)
		}
	})
}

// TestLoadFonts_NoPath 测试未配置字体时使用调试字体
func TestLoadFonts_NoPath(t *testing.T) {
	fonts, err := loadFonts(nil, config.FontConfig{})
	if err != nil {
		t.Fatalf("loadFonts failed: %v", err)
	}
	if fonts.Dialogue != nil || fonts.Speaker != nil || fonts.Choice != nil {
		t.Error("expected empty fonts without a font path")
	}
}
