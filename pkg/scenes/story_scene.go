package scenes

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/vnplayer/pkg/components"
	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/game"
	"github.com/decker502/vnplayer/pkg/story"
	"github.com/decker502/vnplayer/pkg/utils"
)

const (
	// lineSpacingFactor 行距相对字号的倍数
	lineSpacingFactor = 1.4

	// choiceBorderWidth 选项框描边宽度
	choiceBorderWidth = 2
)

// Fonts 剧情画面使用的字体，任一为 nil 时退回调试字体
type Fonts struct {
	Dialogue *text.GoTextFace
	Speaker  *text.GoTextFace
	Choice   *text.GoTextFace
}

// StorySceneConfig 创建剧情场景所需的参数
type StorySceneConfig struct {
	Engine   *story.Engine
	Settings *game.SettingsManager // 可为 nil
	Keys     config.KeyBindings
	Fonts    Fonts
	Width    float64
	Height   float64
	ShowFPS  bool
}

// StoryScene 剧情场景
//
// 每帧先把按键转换为至多一个引擎输入，再推进引擎。
// 绘制顺序：背景、角色、对话框、选项框、遮罩。
type StoryScene struct {
	engine   *story.Engine
	settings *game.SettingsManager
	keys     config.KeyBindings
	fonts    Fonts

	width   float64
	height  float64
	showFPS bool

	// 便于测试替换
	justPressed   func(keys []ebiten.Key) bool
	setFullscreen func(bool)
}

// NewStoryScene 创建剧情场景
func NewStoryScene(cfg StorySceneConfig) *StoryScene {
	return &StoryScene{
		engine:        cfg.Engine,
		settings:      cfg.Settings,
		keys:          cfg.Keys,
		fonts:         cfg.Fonts,
		width:         cfg.Width,
		height:        cfg.Height,
		showFPS:       cfg.ShowFPS,
		justPressed:   utils.IsAnyKeyJustPressed,
		setFullscreen: ebiten.SetFullscreen,
	}
}

// Update 处理输入并推进剧情
func (s *StoryScene) Update(deltaTime float64) error {
	s.handleToggles()

	if in := s.pollInput(); in != story.InputNone {
		if err := s.engine.HandleInput(in); err != nil {
			return err
		}
	}
	return s.engine.Update(deltaTime)
}

// pollInput 返回本帧的剧情输入（退出优先，其次是选项，最后是推进）
func (s *StoryScene) pollInput() story.Input {
	switch {
	case s.justPressed(s.keys.Quit):
		return story.InputQuit
	case s.justPressed(s.keys.Choice1):
		return story.InputChoice1
	case s.justPressed(s.keys.Choice2):
		return story.InputChoice2
	case s.justPressed(s.keys.Advance):
		return story.InputAdvance
	default:
		return story.InputNone
	}
}

// handleToggles 处理全屏与静音切换，保存失败只记录日志
func (s *StoryScene) handleToggles() {
	if s.settings == nil {
		return
	}

	if s.justPressed(s.keys.Fullscreen) {
		fullscreen, err := s.settings.ToggleFullscreen()
		if err != nil {
			log.Printf("[StoryScene] Warning: Failed to save fullscreen setting: %v", err)
		}
		s.setFullscreen(fullscreen)
	}

	if s.justPressed(s.keys.Mute) {
		enabled, err := s.settings.ToggleSound()
		if err != nil {
			log.Printf("[StoryScene] Warning: Failed to save sound setting: %v", err)
		}
		log.Printf("[StoryScene] Sound enabled: %v", enabled)
	}
}

// Draw 绘制整个画面
func (s *StoryScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	s.drawObject(screen, s.engine.Background())
	for _, character := range s.engine.Characters() {
		s.drawObject(screen, character)
	}
	s.drawTextBox(screen)
	s.drawChoiceBox(screen)
	s.drawObject(screen, s.engine.Darkness())

	if s.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), 0, 0)
	}
}

// ToScreenY 将左下角原点的 y 坐标（对象底边）转换为屏幕坐标（对象顶边）
func ToScreenY(screenHeight, y, objectHeight float64) float64 {
	return screenHeight - y - objectHeight
}

func (s *StoryScene) drawObject(screen *ebiten.Image, obj *components.SceneObject) {
	sprite := obj.Sprite()
	if sprite.Image == nil || sprite.Opacity <= 0 {
		return
	}

	_, h := sprite.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(sprite.X, ToScreenY(s.height, sprite.Y, float64(h)))
	op.ColorScale.ScaleAlpha(sprite.Alpha())
	screen.DrawImage(sprite.Image, op)
}

func (s *StoryScene) drawTextBox(screen *ebiten.Image) {
	box := s.engine.TextBox()
	if !box.Visible() {
		return
	}
	s.drawObject(screen, box.Panel())
	s.drawObject(screen, box.SpeakerPanel())

	alpha := box.Panel().Sprite().Alpha()
	rect := config.TextBoxRect(s.width)
	top := rect.Y + rect.Height

	// 说话人
	speakerX := rect.X + config.SpeakerLabelOffsetX
	speakerBaseline := s.height - (top - config.SpeakerBoxOffsetTop/2)
	s.drawLabel(screen, box.Speaker(), s.fonts.Speaker, speakerX, speakerBaseline, alpha)

	// 正文：去掉标记后按宽度换行
	dialogue := utils.StripMarkup(box.VisibleText())
	dialogueX := rect.X + config.DialogueOffsetX
	dialogueTop := s.height - (top - config.DialogueOffsetTop)
	maxWidth := rect.Width - 2*config.DialogueOffsetX
	lines := utils.WrapText(dialogue, s.fonts.Dialogue, maxWidth)
	s.drawLines(screen, lines, s.fonts.Dialogue, dialogueX, dialogueTop, alpha)
}

func (s *StoryScene) drawChoiceBox(screen *ebiten.Image) {
	choices := s.engine.ChoiceBox()
	if !choices.Visible() {
		return
	}

	label1, label2 := choices.Labels()
	first, second := config.ChoiceBoxRects(s.width, s.height)
	for i, panel := range choices.Panels() {
		s.drawObject(screen, panel)

		rect, label := first, label1
		if i == 1 {
			rect, label = second, label2
		}
		alpha := panel.Sprite().Alpha()
		x, y := rect.ScreenTopLeft(s.height)
		border := color.NRGBA{R: config.TextColor.R, G: config.TextColor.G, B: config.TextColor.B, A: uint8(alpha * 255)}
		vector.StrokeRect(screen, float32(x), float32(y), float32(rect.Width), float32(rect.Height), choiceBorderWidth, border, false)

		s.drawCentered(screen, label, s.fonts.Choice, rect, alpha)
	}
}

// drawLabel 绘制单行文字，y 为基线附近的屏幕坐标
func (s *StoryScene) drawLabel(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, alpha float32) {
	if str == "" {
		return
	}
	if face == nil {
		ebitenutil.DebugPrintAt(screen, str, int(x), int(y)-12)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Size)
	op.ColorScale.ScaleWithColor(config.TextColor)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, str, face, op)
}

// drawLines 从 top 开始逐行绘制
func (s *StoryScene) drawLines(screen *ebiten.Image, lines []string, face *text.GoTextFace, x, top float64, alpha float32) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), int(x), int(top))
		return
	}

	lineHeight := face.Size * lineSpacingFactor
	for i, line := range lines {
		if line == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, top+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(config.TextColor)
		op.ColorScale.ScaleAlpha(alpha)
		text.Draw(screen, line, face, op)
	}
}

// drawCentered 在矩形中居中绘制（可多行）
func (s *StoryScene) drawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, rect config.Rect, alpha float32) {
	if str == "" {
		return
	}
	x, y := rect.ScreenTopLeft(s.height)
	centerX := x + rect.Width/2
	centerY := y + rect.Height/2

	if face == nil {
		w := len(str) * 6
		ebitenutil.DebugPrintAt(screen, str, int(centerX)-w/2, int(centerY)-8)
		return
	}

	lines := utils.WrapText(str, face, rect.Width)
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(config.TextColor)
	op.ColorScale.ScaleAlpha(alpha)
	op.LineSpacing = face.Size * lineSpacingFactor
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, strings.Join(lines, "\n"), face, op)
}
