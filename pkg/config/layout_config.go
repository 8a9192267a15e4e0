package config

import "image/color"

// 布局配置常量
// 本文件定义了剧情画面中对话框、选项框、角色立绘的位置与颜色
//
// 坐标约定：
// 剧本和组件使用"左下角原点"坐标系（y 轴向上），与剧本中角色 x 坐标的写法一致；
// 绘制时由场景转换为 Ebitengine 的左上角原点坐标。

// Window Configuration (窗口配置)
const (
	// DefaultWindowWidth 默认逻辑屏幕宽度
	DefaultWindowWidth = 1280

	// DefaultWindowHeight 默认逻辑屏幕高度
	DefaultWindowHeight = 720

	// DefaultWindowTitle 默认窗口标题
	DefaultWindowTitle = "BestVN"

	// DefaultTicksPerSecond 默认逻辑帧率（每秒 tick 次数）
	DefaultTicksPerSecond = 160
)

// Animation Configuration (动画配置)
const (
	// DefaultTweenRate 补间值每秒变化的单位数（位置像素 / 不透明度）
	DefaultTweenRate = 150.0

	// DefaultRevealSpeed 打字机效果默认速度：每显示一个字符需要的 tick 数
	DefaultRevealSpeed = 2

	// DefaultCharacterY 角色立绘固定的 y 坐标
	DefaultCharacterY = 210.0

	// OpacityOpaque 完全不透明
	OpacityOpaque = 255.0

	// OpacityTransparent 完全透明
	OpacityTransparent = 0.0
)

// Text Box Configuration (对话框配置)
const (
	// TextBoxMargin 对话框距离屏幕左/下边缘的距离
	TextBoxMargin = 10.0

	// TextBoxHeight 对话框高度
	TextBoxHeight = 210.0

	// SpeakerBoxWidth 说话人名牌宽度
	SpeakerBoxWidth = 200.0

	// SpeakerBoxHeight 说话人名牌高度
	SpeakerBoxHeight = 30.0

	// SpeakerBoxOffsetX 名牌相对对话框的 x 偏移
	SpeakerBoxOffsetX = 10.0

	// SpeakerBoxOffsetTop 名牌底边距离对话框顶边的距离
	SpeakerBoxOffsetTop = 20.0

	// SpeakerLabelOffsetX 说话人文字相对对话框的 x 偏移
	SpeakerLabelOffsetX = 15.0

	// DialogueOffsetX 正文相对对话框的 x 偏移
	DialogueOffsetX = 10.0

	// DialogueOffsetTop 正文第一行距离对话框顶边的距离
	DialogueOffsetTop = 40.0
)

// Choice Box Configuration (选项框配置)
const (
	// ChoiceBoxX 选项框左边缘 x 坐标
	ChoiceBoxX = 300.0

	// ChoiceBoxOffsetTop 第一个选项框底边距离屏幕顶边的距离
	ChoiceBoxOffsetTop = 200.0

	// ChoiceBoxHeight 选项框高度
	ChoiceBoxHeight = 100.0

	// ChoiceBoxSpacing 两个选项框之间的垂直距离
	ChoiceBoxSpacing = 200.0
)

// 面板颜色（RGBA）
var (
	// TextBoxColor 对话框背景色
	TextBoxColor = color.RGBA{R: 133, G: 172, B: 173, A: 200}

	// SpeakerBoxColor 说话人名牌背景色
	SpeakerBoxColor = color.RGBA{R: 128, G: 191, B: 255, A: 255}

	// ChoiceBoxColor 选项框背景色
	ChoiceBoxColor = color.RGBA{R: 16, G: 129, B: 146, A: 230}

	// DarknessColor 遮罩层颜色
	DarknessColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

	// TextColor 文字颜色
	TextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Rect 一个左下角原点坐标系下的矩形
type Rect struct {
	X, Y, Width, Height float64
}

// TextBoxRect 返回对话框面板区域
func TextBoxRect(windowWidth float64) Rect {
	return Rect{
		X:      TextBoxMargin,
		Y:      TextBoxMargin,
		Width:  windowWidth - 2*TextBoxMargin,
		Height: TextBoxHeight,
	}
}

// SpeakerBoxRect 返回说话人名牌区域（位于对话框顶边附近）
func SpeakerBoxRect(windowWidth float64) Rect {
	box := TextBoxRect(windowWidth)
	return Rect{
		X:      box.X + SpeakerBoxOffsetX,
		Y:      box.Y + box.Height - SpeakerBoxOffsetTop,
		Width:  SpeakerBoxWidth,
		Height: SpeakerBoxHeight,
	}
}

// ChoiceBoxRects 返回两个选项框的区域
// 选项框水平居中，宽度为屏幕宽度减去左右各 ChoiceBoxX
func ChoiceBoxRects(windowWidth, windowHeight float64) (Rect, Rect) {
	first := Rect{
		X:      ChoiceBoxX,
		Y:      windowHeight - ChoiceBoxOffsetTop,
		Width:  windowWidth - 2*ChoiceBoxX,
		Height: ChoiceBoxHeight,
	}
	second := first
	second.Y -= ChoiceBoxSpacing
	return first, second
}

// ScreenTopLeft 返回矩形左上角的屏幕坐标（左上角原点）
func (r Rect) ScreenTopLeft(screenHeight float64) (float64, float64) {
	return r.X, screenHeight - r.Y - r.Height
}
