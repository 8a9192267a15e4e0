// Package app 提供播放器应用的核心包装器
//
// 该包把配置、资源、用户设置、剧情引擎和场景组装成一个 ebiten.Game，
// 由 main 包的 play 命令调用 NewApp() 创建。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/game"
	"github.com/decker502/vnplayer/pkg/scenes"
	"github.com/decker502/vnplayer/pkg/script"
	"github.com/decker502/vnplayer/pkg/story"
)

// AppName 用户设置的存储名称
const AppName = "vnplayer"

// sampleRate 全局音频采样率
const sampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和 FPS 显示
	Verbose bool
	// Player 播放器配置（已应用默认值）
	Player *config.PlayerConfig
	// Script 已解析并校验的剧本
	Script *script.Script
	// Resources 资源根目录（bg/、char/、sfx/ 与字体）
	Resources fs.FS
	// Settings 用户设置存储，为 nil 时使用 gdata 打开 AppName
	Settings *gdata.Manager
}

// App 是播放器应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	engine       *story.Engine
	settings     *game.SettingsManager

	width     int
	height    int
	deltaTime float64
}

// NewApp 创建并初始化播放器应用
//
// 剧本中引用的第一批资源在首次 Update 时才加载；
// 开场背景和字体在此处加载，缺失时返回错误。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if cfg.Player == nil {
		cfg.Player = config.DefaultPlayerConfig()
	}
	if cfg.Script == nil {
		return nil, errors.New("no script to play")
	}
	player := cfg.Player

	// 初始化音频上下文
	audioContext := audio.NewContext(sampleRate)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(cfg.Resources, audioContext)

	// 用户设置
	settingsStore := cfg.Settings
	if settingsStore == nil {
		m, err := gdata.Open(gdata.Config{AppName: AppName})
		if err != nil {
			log.Printf("[App] Warning: settings storage unavailable: %v", err)
		} else {
			settingsStore = m
		}
	}
	settingsManager := game.NewSettingsManager(settingsStore)

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized")

	// 剧情引擎
	opts, err := story.OptionsFromConfig(player)
	if err != nil {
		return nil, fmt.Errorf("invalid engine options: %w", err)
	}
	engine, err := story.NewEngine(cfg.Script, game.NewStoryHost(resourceManager, audioManager), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create story engine: %w", err)
	}

	keys, err := player.Keys.Bindings()
	if err != nil {
		return nil, err
	}

	fonts, err := loadFonts(resourceManager, player.Font)
	if err != nil {
		return nil, err
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewStoryScene(scenes.StorySceneConfig{
		Engine:   engine,
		Settings: settingsManager,
		Keys:     keys,
		Fonts:    fonts,
		Width:    float64(player.Window.Width),
		Height:   float64(player.Window.Height),
		ShowFPS:  cfg.Verbose,
	}))

	log.Printf("[App] Playing %d rows at %d TPS", cfg.Script.Len(), player.TicksPerSecond)

	return &App{
		sceneManager: sceneManager,
		engine:       engine,
		settings:     settingsManager,
		width:        player.Window.Width,
		height:       player.Window.Height,
		deltaTime:    player.TickDuration(),
	}, nil
}

// loadFonts 按配置加载三种字号，未配置字体路径时返回空 Fonts（使用调试字体）
func loadFonts(rm *game.ResourceManager, fc config.FontConfig) (scenes.Fonts, error) {
	if fc.Path == "" {
		log.Printf("[App] No font configured, using debug font")
		return scenes.Fonts{}, nil
	}

	var fonts scenes.Fonts
	var err error
	if fonts.Dialogue, err = rm.LoadFont(fc.Path, fc.Size); err != nil {
		return scenes.Fonts{}, err
	}
	if fonts.Speaker, err = rm.LoadFont(fc.Path, fc.SpeakerSize); err != nil {
		return scenes.Fonts{}, err
	}
	if fonts.Choice, err = rm.LoadFont(fc.Path, fc.ChoiceSize); err != nil {
		return scenes.Fonts{}, err
	}
	return fonts, nil
}

// ConfigureWindow 按配置和用户设置设置窗口，需在 ebiten.RunGame 之前调用
func (a *App) ConfigureWindow(title string, ticksPerSecond int) {
	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(ticksPerSecond)
	ebiten.SetFullscreen(a.settings.GetSettings().Fullscreen)
}

// Update 更新一个 tick
// 剧本结束或按下退出键时返回 ebiten.Termination 正常结束
func (a *App) Update() error {
	err := a.sceneManager.Update(a.deltaTime)
	if errors.Is(err, story.ErrStoryEnded) || errors.Is(err, story.ErrQuit) {
		log.Printf("[App] Exiting: %v", err)
		return ebiten.Termination
	}
	return err
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Engine 返回剧情引擎
func (a *App) Engine() *story.Engine {
	return a.engine
}
