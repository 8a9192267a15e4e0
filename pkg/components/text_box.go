package components

import (
	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/utils"
)

// TextBox 打字机效果的对话框
//
// 每 speed 帧显示一个字符。正文中的 <...> 标记在一帧内整体显示，
// 并且同一帧再多显示一个普通字符（下一个字符是 '<' 或正文结束时除外）。
// 字符按 rune 计数。
type TextBox struct {
	panel        *SceneObject
	speakerPanel *SceneObject

	speaker     string
	fullText    []rune
	revealed    int
	tickCounter int
	speed       int
}

// NewTextBox 创建对话框
//
// 参数：
//   - panel: 正文背景面板
//   - speakerPanel: 说话人名字面板
//   - speed: 初始打字速度（每个字符的帧数）
func NewTextBox(panel, speakerPanel *SceneObject, speed int) *TextBox {
	return &TextBox{
		panel:        panel,
		speakerPanel: speakerPanel,
		speed:        speed,
	}
}

// SetText 替换正文并从头开始显示
// speed <= 0 时保留当前速度
func (b *TextBox) SetText(text string, speed int) {
	if speed > 0 {
		b.speed = speed
	}
	b.fullText = []rune(text)
	b.revealed = 0
	b.tickCounter = 0
}

// SetSpeaker 设置说话人
func (b *TextBox) SetSpeaker(speaker string) {
	b.speaker = speaker
}

// SetOpacity 设置对话框不透明度
// 设为 0 时清空正文、说话人和计数器
func (b *TextBox) SetOpacity(value float64) {
	b.panel.SetOpacity(value)
	b.speakerPanel.SetOpacity(value)
	if value == config.OpacityTransparent {
		b.speaker = ""
		b.fullText = nil
		b.revealed = 0
		b.tickCounter = 0
	}
}

// Tick 推进打字效果
func (b *TextBox) Tick(dt float64) {
	b.panel.Tick(dt)
	b.speakerPanel.Tick(dt)

	if b.Ready() {
		return
	}

	b.tickCounter++
	speed := b.speed
	if speed < 1 {
		speed = 1
	}
	if b.tickCounter < speed {
		return
	}
	b.tickCounter = 0
	b.reveal()
}

// reveal 显示下一个字符（或一整段标记）
func (b *TextBox) reveal() {
	if b.fullText[b.revealed] == utils.MarkupOpen {
		end := utils.MarkupEnd(b.fullText, b.revealed)
		if end < 0 {
			// 未闭合的标记：直接显示剩余全部内容
			b.revealed = len(b.fullText)
			return
		}
		b.revealed = end + 1
		if b.revealed >= len(b.fullText) || b.fullText[b.revealed] == utils.MarkupOpen {
			return
		}
	}
	b.revealed++
}

// Skip 立即显示全部正文
func (b *TextBox) Skip() {
	b.revealed = len(b.fullText)
	b.tickCounter = 0
}

// Ready 正文是否已全部显示
func (b *TextBox) Ready() bool {
	return b.revealed == len(b.fullText)
}

// Revealed 已显示的字符数
func (b *TextBox) Revealed() int {
	return b.revealed
}

// Len 正文字符数
func (b *TextBox) Len() int {
	return len(b.fullText)
}

// Speed 当前打字速度
func (b *TextBox) Speed() int {
	return b.speed
}

// Text 完整正文
func (b *TextBox) Text() string {
	return string(b.fullText)
}

// VisibleText 已显示部分（含标记）
func (b *TextBox) VisibleText() string {
	return string(b.fullText[:b.revealed])
}

// Speaker 说话人
func (b *TextBox) Speaker() string {
	return b.speaker
}

// Visible 对话框是否可见
func (b *TextBox) Visible() bool {
	return b.panel.Opacity() > config.OpacityTransparent
}

// Panel 正文面板
func (b *TextBox) Panel() *SceneObject {
	return b.panel
}

// SpeakerPanel 说话人面板
func (b *TextBox) SpeakerPanel() *SceneObject {
	return b.speakerPanel
}
