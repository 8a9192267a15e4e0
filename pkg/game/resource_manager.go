package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	auaudio "github.com/decker502/vnplayer/internal/audio"
)

// ErrMissingAsset 资源文件不存在
var ErrMissingAsset = errors.New("missing asset")

// AssetError 资源加载错误，Path 为相对于资源根目录的路径
//
// 文件不存在时 errors.Is(err, ErrMissingAsset) 成立；
// 解码失败等其他错误只带有原始原因。
type AssetError struct {
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("asset %s: %v", e.Path, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// Is 文件不存在的 AssetError 匹配 ErrMissingAsset
func (e *AssetError) Is(target error) bool {
	return target == ErrMissingAsset && errors.Is(e.Err, fs.ErrNotExist)
}

// ResourceManager 集中加载并缓存图像、音效和字体
//
// 所有路径都相对于资源文件系统的根目录（通常为 os.DirFS(resource_dir)），
// 使用 '/' 分隔，例如 "bg/mm.jpg"、"char/alice.png"、"sfx/door.wav"。
//
// 非线程安全：只在游戏主循环中使用。
//
// 用法：
//
//	rm := NewResourceManager(os.DirFS("res"), audio.NewContext(48000))
//	img, err := rm.LoadImage("bg/mm.jpg")
type ResourceManager struct {
	fsys         fs.FS
	audioContext *audio.Context // 为 nil 时不能播放音效

	imageCache      map[string]*ebiten.Image
	soundCache      map[string]*audio.Player
	fontSourceCache map[string]*text.GoTextFaceSource
	fontFaceCache   map[string]*text.GoTextFace
}

// NewResourceManager 创建资源管理器
//
// 参数：
//   - fsys: 资源文件系统
//   - audioContext: 全局音频上下文，可为 nil（无音频设备或测试环境）
func NewResourceManager(fsys fs.FS, audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		fsys:            fsys,
		audioContext:    audioContext,
		imageCache:      make(map[string]*ebiten.Image),
		soundCache:      make(map[string]*audio.Player),
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
	}
}

// readAsset 读取资源文件的全部内容
func (rm *ResourceManager) readAsset(name string) ([]byte, error) {
	data, err := fs.ReadFile(rm.fsys, name)
	if err != nil {
		return nil, &AssetError{Path: name, Err: err}
	}
	return data, nil
}

// LoadImage 加载图像并缓存（PNG / JPEG）
func (rm *ResourceManager) LoadImage(name string) (*ebiten.Image, error) {
	if img, exists := rm.imageCache[name]; exists {
		return img, nil
	}

	data, err := rm.readAsset(name)
	if err != nil {
		return nil, err
	}

	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &AssetError{Path: name, Err: fmt.Errorf("failed to decode image: %w", err)}
	}

	img := ebiten.NewImageFromImage(decoded)
	rm.imageCache[name] = img
	log.Printf("[ResourceManager] Loaded image %s (%dx%d)", name, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// GetImage 返回已缓存的图像，未加载时为 nil
func (rm *ResourceManager) GetImage(name string) *ebiten.Image {
	return rm.imageCache[name]
}

// LoadSoundEffect 加载单次播放的音效并缓存播放器
// 支持 .mp3 / .ogg / .wav / .au
func (rm *ResourceManager) LoadSoundEffect(name string) (*audio.Player, error) {
	if player, exists := rm.soundCache[name]; exists {
		return player, nil
	}

	data, err := rm.readAsset(name)
	if err != nil {
		return nil, err
	}
	if rm.audioContext == nil {
		return nil, &AssetError{Path: name, Err: errors.New("audio context unavailable")}
	}

	stream, err := decodeSound(name, data, rm.audioContext.SampleRate())
	if err != nil {
		return nil, &AssetError{Path: name, Err: err}
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, &AssetError{Path: name, Err: fmt.Errorf("failed to create audio player: %w", err)}
	}

	rm.soundCache[name] = player
	return player, nil
}

// decodeSound 按扩展名解码音频，输出为 sampleRate 下的 16 位双声道 PCM
func decodeSound(name string, data []byte, sampleRate int) (io.ReadSeeker, error) {
	reader := bytes.NewReader(data)

	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3: %w", err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG: %w", err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV: %w", err)
		}
		return stream, nil
	case ".au":
		stream, err := auaudio.Decode(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode AU: %w", err)
		}
		if stream.SampleRate() == sampleRate {
			return stream, nil
		}
		return audio.Resample(stream, stream.Length(), stream.SampleRate(), sampleRate), nil
	default:
		return nil, fmt.Errorf("unsupported audio format %q (supported: .mp3, .ogg, .wav, .au)", ext)
	}
}

// LoadFont 加载 TrueType/OpenType 字体并按字号缓存
func (rm *ResourceManager) LoadFont(name string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	if face, exists := rm.fontFaceCache[cacheKey]; exists {
		return face, nil
	}

	source, exists := rm.fontSourceCache[name]
	if !exists {
		data, err := rm.readAsset(name)
		if err != nil {
			return nil, err
		}
		source, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, &AssetError{Path: name, Err: fmt.Errorf("failed to parse font: %w", err)}
		}
		rm.fontSourceCache[name] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// GetFont 返回已缓存的字体，未加载时为 nil
func (rm *ResourceManager) GetFont(name string, size float64) *text.GoTextFace {
	return rm.fontFaceCache[fmt.Sprintf("%s:%.1f", name, size)]
}
