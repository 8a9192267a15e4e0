package components

import "github.com/decker502/vnplayer/pkg/config"

// ChoiceBox 二选一选项框
//
// awaiting 只由 Present 设置、由 Resolve 清除；Hide 不改变它。
type ChoiceBox struct {
	panels   [2]*SceneObject
	labels   [2]string
	awaiting bool
}

// NewChoiceBox 创建选项框，panel1 在上，panel2 在下
func NewChoiceBox(panel1, panel2 *SceneObject) *ChoiceBox {
	return &ChoiceBox{panels: [2]*SceneObject{panel1, panel2}}
}

// Present 显示两个选项并进入等待选择状态
func (c *ChoiceBox) Present(label1, label2 string) {
	c.labels = [2]string{label1, label2}
	for _, p := range c.panels {
		p.SetOpacity(config.OpacityOpaque)
	}
	c.awaiting = true
}

// Hide 隐藏面板并清空选项文字
func (c *ChoiceBox) Hide() {
	c.labels = [2]string{}
	for _, p := range c.panels {
		p.SetOpacity(config.OpacityTransparent)
	}
}

// Resolve 结束等待选择
func (c *ChoiceBox) Resolve() {
	c.awaiting = false
}

// Awaiting 是否在等待选择
func (c *ChoiceBox) Awaiting() bool {
	return c.awaiting
}

// Labels 返回两个选项文字
func (c *ChoiceBox) Labels() (string, string) {
	return c.labels[0], c.labels[1]
}

// Visible 选项框是否可见
func (c *ChoiceBox) Visible() bool {
	return c.panels[0].Opacity() > config.OpacityTransparent
}

// Panels 返回两个选项面板
func (c *ChoiceBox) Panels() [2]*SceneObject {
	return c.panels
}

// Tick 推进面板动画
func (c *ChoiceBox) Tick(dt float64) {
	for _, p := range c.panels {
		p.Tick(dt)
	}
}
