package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// TestDefaultPlayerConfig 测试默认配置
func TestDefaultPlayerConfig(t *testing.T) {
	cfg := DefaultPlayerConfig()

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("Window: got %dx%d, want 1280x720", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.TicksPerSecond != 160 {
		t.Errorf("TicksPerSecond: got %d, want 160", cfg.TicksPerSecond)
	}
	if cfg.TweenRate != 150 {
		t.Errorf("TweenRate: got %v, want 150", cfg.TweenRate)
	}
	if cfg.RevealSpeed != 2 {
		t.Errorf("RevealSpeed: got %d, want 2", cfg.RevealSpeed)
	}
	if cfg.CharacterY != 210 {
		t.Errorf("CharacterY: got %v, want 210", cfg.CharacterY)
	}
	if cfg.Easing != "linear" {
		t.Errorf("Easing: got %q, want linear", cfg.Easing)
	}
}

// TestParsePlayerConfig 测试 YAML 解析与默认值合并
func TestParsePlayerConfig(t *testing.T) {
	data := []byte(`
window:
  title: Test Novel
tween_rate: 300
easing: out-cubic
script: story/test.csv
keys:
  advance: [Enter, Space]
`)

	cfg, err := ParsePlayerConfig(data)
	if err != nil {
		t.Fatalf("ParsePlayerConfig failed: %v", err)
	}

	if cfg.Window.Title != "Test Novel" {
		t.Errorf("Title: got %q", cfg.Window.Title)
	}
	if cfg.Window.Width != DefaultWindowWidth {
		t.Errorf("Width default not applied: got %d", cfg.Window.Width)
	}
	if cfg.TweenRate != 300 {
		t.Errorf("TweenRate: got %v, want 300", cfg.TweenRate)
	}
	if cfg.Script != "story/test.csv" {
		t.Errorf("Script: got %q", cfg.Script)
	}

	bindings, err := cfg.Keys.Bindings()
	if err != nil {
		t.Fatalf("Bindings failed: %v", err)
	}
	if len(bindings.Advance) != 2 || bindings.Advance[0] != ebiten.KeyEnter || bindings.Advance[1] != ebiten.KeySpace {
		t.Errorf("Advance bindings: got %v", bindings.Advance)
	}
	if len(bindings.Choice1) != 2 || bindings.Choice1[0] != ebiten.KeyDigit1 {
		t.Errorf("Choice1 default bindings: got %v", bindings.Choice1)
	}
}

// TestParsePlayerConfigInvalid 测试非法配置
func TestParsePlayerConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"非法YAML", "window: [1, 2"},
		{"负速率", "tween_rate: -1"},
		{"未知缓动", "easing: bounce"},
		{"未知按键", "keys:\n  quit: [NoSuchKey]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePlayerConfig([]byte(tt.data)); err == nil {
				t.Errorf("expected error for %q", tt.data)
			}
		})
	}
}

// TestLoadPlayerConfig 测试从文件加载
func TestLoadPlayerConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(path, []byte("reveal_speed: 4\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadPlayerConfig(path)
	if err != nil {
		t.Fatalf("LoadPlayerConfig failed: %v", err)
	}
	if cfg.RevealSpeed != 4 {
		t.Errorf("RevealSpeed: got %d, want 4", cfg.RevealSpeed)
	}

	if _, err := LoadPlayerConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
