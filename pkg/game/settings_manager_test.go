package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试默认设置
func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", s.SoundVolume)
	}
	if !s.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if s.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestSettingsManagerNilGdata 测试无持久化时的内存模式
func TestSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", sm.GetSettings().SoundVolume)
	}

	enabled, err := sm.ToggleSound()
	if err != nil {
		t.Fatalf("ToggleSound in memory mode: %v", err)
	}
	if enabled {
		t.Error("ToggleSound should disable sound")
	}
}

// TestSettingsLoadSave 测试保存后重新加载
func TestSettingsLoadSave(t *testing.T) {
	m := openTestGdata(t, "test_vnplayer_settings")

	sm1 := NewSettingsManager(m)
	sm1.SetSoundVolume(0.6)
	if _, err := sm1.ToggleFullscreen(); err != nil {
		t.Fatalf("ToggleFullscreen: %v", err)
	}
	if _, err := sm1.ToggleSound(); err != nil {
		t.Fatalf("ToggleSound: %v", err)
	}

	sm2 := NewSettingsManager(m)
	s := sm2.GetSettings()
	if s.SoundVolume != 0.6 {
		t.Errorf("Loaded SoundVolume: got %v, want 0.6", s.SoundVolume)
	}
	if s.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if !s.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSettingsLoadCorrupted 测试损坏的数据回退到默认设置
func TestSettingsLoadCorrupted(t *testing.T) {
	m := openTestGdata(t, "test_vnplayer_settings_corrupted")
	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm := NewSettingsManager(m)
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("expected defaults after corrupted data, got %+v", sm.GetSettings())
	}
	if err := sm.Load(); err == nil {
		t.Error("Load should report the unmarshal error")
	}
}

// TestSetSoundVolumeClamp 测试音量范围限制
func TestSetSoundVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},
		{0.0, 0.0},
		{1.0, 1.0},
		{-0.5, 0.0},
		{1.5, 1.0},
	}

	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if got := sm.GetSettings().SoundVolume; got != tt.expected {
			t.Errorf("SetSoundVolume(%v): got %v, want %v", tt.input, got, tt.expected)
		}
	}
}
