package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// fakeSoundLoader 记录加载请求
type fakeSoundLoader struct {
	requested []string
	err       error
}

func (f *fakeSoundLoader) LoadSoundEffect(name string) (*audio.Player, error) {
	f.requested = append(f.requested, name)
	return nil, f.err
}

// TestAudioManager_SoundDisabled 测试音效关闭时不加载文件
func TestAudioManager_SoundDisabled(t *testing.T) {
	loader := &fakeSoundLoader{}
	sm := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)

	am := &AudioManager{loader: loader, settings: sm}
	if err := am.PlaySound("sfx/door.wav"); err != nil {
		t.Errorf("PlaySound with sound disabled: %v", err)
	}
	if len(loader.requested) != 0 {
		t.Errorf("expected no loads, got %v", loader.requested)
	}
}

// TestAudioManager_LoadError 测试加载失败时返回错误
func TestAudioManager_LoadError(t *testing.T) {
	loader := &fakeSoundLoader{err: &AssetError{Path: "sfx/missing.wav", Err: errors.New("boom")}}
	am := &AudioManager{loader: loader}

	err := am.PlaySound("sfx/missing.wav")
	var assetErr *AssetError
	if !errors.As(err, &assetErr) {
		t.Fatalf("expected AssetError, got %v", err)
	}
	if len(loader.requested) != 1 || loader.requested[0] != "sfx/missing.wav" {
		t.Errorf("requested: %v", loader.requested)
	}
}

// TestAudioManager_Play 测试真实播放器的播放流程
func TestAudioManager_Play(t *testing.T) {
	rm := NewResourceManager(testFS(map[string][]byte{"sfx/beep.wav": encodeTestWAV(48000, 48)}), testAudioContext)
	am := NewAudioManager(rm, NewSettingsManager(nil))

	if err := am.PlaySound("sfx/beep.wav"); err != nil {
		t.Fatalf("PlaySound failed: %v", err)
	}
	if err := am.PlaySound("sfx/beep.wav"); err != nil {
		t.Fatalf("second PlaySound failed: %v", err)
	}
}
