// Package story 实现剧本推进状态机
//
// Engine 持有剧本、指令指针（cursor）和场景中的所有对象。
// 宿主循环每帧调用 Update(dt)，在此之前把按键转换为 Input 交给 HandleInput。
//
// 状态流转：
//
//	Running ──SayText/PresentChoice──▶ WaitingInput ──Advance/Choice──▶ Running
//	Running ──MoveCharacter/Dim──▶ WaitingAnimation ──动画完成──▶ Running
//	Running ──cursor == -1──▶ Terminated
//
// Jump、SpawnCharacter 等不等待的指令在同一帧内连续派发。
package story

import (
	"fmt"
	"image/color"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/vnplayer/pkg/components"
	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/script"
)

// Engine 剧本推进引擎
type Engine struct {
	script *script.Script
	host   Host
	opts   Options

	cursor            int
	progressing       bool
	awaitingAnimation bool
	terminated        bool

	// characters 按名字索引的角色，order 保存创建顺序（绘制顺序）
	characters map[string]*components.SceneObject
	order      []string

	background *components.SceneObject
	darkness   *components.SceneObject
	textBox    *components.TextBox
	choiceBox  *components.ChoiceBox
}

// NewEngine 创建引擎
//
// 参数：
//   - s: 已加载的剧本
//   - host: 图像与音效的提供者
//   - opts: 引擎参数
//
// 返回：
//   - *Engine: cursor 位于第 0 行、处于 Running 状态的引擎（空剧本直接指向 -1）
//   - error: 开场背景加载失败
func NewEngine(s *script.Script, host Host, opts Options) (*Engine, error) {
	e := &Engine{
		script:      s,
		host:        host,
		opts:        opts,
		progressing: true,
		characters:  make(map[string]*components.SceneObject),
	}
	if s.Len() == 0 {
		e.cursor = script.EndOfStory
	}

	bgImage := host.NewSolidImage(int(opts.Width), int(opts.Height), config.DarknessColor)
	if opts.InitialBackground != "" {
		img, err := host.LoadImage(path.Join(BackgroundDir, opts.InitialBackground))
		if err != nil {
			return nil, fmt.Errorf("failed to load initial background: %w", err)
		}
		bgImage = img
	}
	e.background = e.newObject(bgImage, 0, 0, config.OpacityOpaque)

	e.darkness = e.newObject(
		host.NewSolidImage(int(opts.Width), int(opts.Height), config.DarknessColor),
		0, 0, config.OpacityTransparent)

	box := config.TextBoxRect(opts.Width)
	speaker := config.SpeakerBoxRect(opts.Width)
	e.textBox = components.NewTextBox(
		e.newPanel(box, config.TextBoxColor),
		e.newPanel(speaker, config.SpeakerBoxColor),
		opts.RevealSpeed)
	e.textBox.SetOpacity(config.OpacityTransparent)

	first, second := config.ChoiceBoxRects(opts.Width, opts.Height)
	e.choiceBox = components.NewChoiceBox(
		e.newPanel(first, config.ChoiceBoxColor),
		e.newPanel(second, config.ChoiceBoxColor))
	e.choiceBox.Hide()

	log.Printf("[Engine] Created: %d actions, %.0fx%.0f", s.Len(), opts.Width, opts.Height)
	return e, nil
}

func (e *Engine) newObject(img *ebiten.Image, x, y, opacity float64) *components.SceneObject {
	obj := components.NewSceneObject(img, x, y, opacity, e.opts.TweenRate)
	obj.SetEasing(e.opts.Easing)
	return obj
}

func (e *Engine) newPanel(r config.Rect, c color.RGBA) *components.SceneObject {
	img := e.host.NewSolidImage(int(r.Width), int(r.Height), c)
	return e.newObject(img, r.X, r.Y, config.OpacityOpaque)
}

// Update 推进一帧
//
// 先派发指令（Running 状态下可连续派发多条），再推进所有动画。
// 剧本结束时返回 ErrStoryEnded，其他错误均为致命错误。
func (e *Engine) Update(dt float64) error {
	if e.terminated {
		return ErrStoryEnded
	}

	dispatched := 0
	for e.progressing {
		if e.cursor == script.EndOfStory {
			e.progressing = false
			e.terminated = true
			log.Printf("[Engine] Story ended")
			return ErrStoryEnded
		}

		dispatched++
		if dispatched > e.script.Len()+1 {
			return fmt.Errorf("%w: more than %d dispatches in one tick (cursor %d)",
				ErrRunawayScript, e.script.Len()+1, e.cursor)
		}

		if err := e.dispatch(); err != nil {
			return err
		}
	}

	e.tick(dt)
	return nil
}

// dispatch 执行 cursor 处的指令
func (e *Engine) dispatch() error {
	a, ok := e.script.At(e.cursor)
	if !ok {
		return &DispatchError{
			Cursor: e.cursor,
			Err:    fmt.Errorf("%w: %d not in [-1, %d]", ErrCursorOutOfRange, e.cursor, e.script.Len()-1),
		}
	}
	e.progressing = false

	fail := func(err error) error {
		return &DispatchError{Cursor: a.Index, Kind: a.Kind, Person: a.Person, Err: err}
	}

	switch a.Kind {
	case script.SayText:
		speed := 0
		if a.Value1 != "" {
			v, err := a.IntValue1()
			if err != nil {
				return fail(fmt.Errorf("invalid reveal speed: %w", err))
			}
			speed = v
		}
		e.textBox.SetOpacity(config.OpacityOpaque)
		e.textBox.SetSpeaker(a.Person)
		e.textBox.SetText(a.Text, speed)

	case script.PresentChoice:
		e.choiceBox.Present(a.Value1, a.Value2)

	case script.Jump:
		target, err := a.IntValue1()
		if err != nil {
			return fail(fmt.Errorf("invalid jump target: %w", err))
		}
		e.cursor = target
		e.progressing = true

	case script.SpawnCharacter:
		x, err := a.IntValue2()
		if err != nil {
			return fail(fmt.Errorf("invalid character x: %w", err))
		}
		img, err := e.host.LoadImage(path.Join(CharacterDir, a.Value1))
		if err != nil {
			return fail(err)
		}
		e.spawn(a.Person, e.newObject(img, float64(x), e.opts.CharacterY, config.OpacityOpaque))
		e.advance()

	case script.MoveCharacter:
		obj, err := e.character(a.Person)
		if err != nil {
			return fail(err)
		}
		x, err := a.IntValue1()
		if err != nil {
			return fail(fmt.Errorf("invalid character x: %w", err))
		}
		obj.AnimateX(float64(x))
		e.advance()
		e.wait(obj)

	case script.RemoveCharacter:
		if _, err := e.character(a.Person); err != nil {
			return fail(err)
		}
		e.remove(a.Person)
		e.advance()

	case script.ChangeBackground:
		img, err := e.host.LoadImage(path.Join(BackgroundDir, a.Value1))
		if err != nil {
			return fail(err)
		}
		e.background.ReplaceImage(img)
		log.Printf("[Engine] Background changed to %s", a.Value1)
		e.advance()

	case script.Dim:
		v, err := a.IntValue1()
		if err != nil {
			return fail(fmt.Errorf("invalid dim direction: %w", err))
		}
		var target float64
		switch v {
		case 0:
			target = config.OpacityTransparent
		case 1:
			target = config.OpacityOpaque
		default:
			return fail(fmt.Errorf("dim direction must be 0 or 1, got %d", v))
		}
		e.darkness.AnimateOpacity(target)
		e.advance()
		e.wait(e.darkness)

	case script.PlaySound:
		if err := e.host.PlaySound(path.Join(SoundDir, a.Value1)); err != nil {
			return fail(err)
		}
		e.advance()

	case script.HideTextBox:
		e.textBox.SetOpacity(config.OpacityTransparent)
		e.advance()

	default:
		return fail(fmt.Errorf("%w: unknown action code %d", script.ErrMalformedRow, int(a.Kind)))
	}
	return nil
}

// advance cursor 前进一行并继续派发
func (e *Engine) advance() {
	e.cursor = e.script.Next(e.cursor)
	e.progressing = true
}

// wait 等待对象的动画完成；目标与当前值相同时不会有完成信号，直接继续
func (e *Engine) wait(obj *components.SceneObject) {
	if !obj.IsAnimating() {
		return
	}
	e.progressing = false
	e.awaitingAnimation = true
}

// character 查找角色，不存在时返回 ErrUnknownCharacter
func (e *Engine) character(name string) (*components.SceneObject, error) {
	obj, ok := e.characters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, name)
	}
	return obj, nil
}

// spawn 添加角色，同名角色会被替换
func (e *Engine) spawn(name string, obj *components.SceneObject) {
	if _, exists := e.characters[name]; exists {
		e.remove(name)
	}
	e.characters[name] = obj
	e.order = append(e.order, name)
	log.Printf("[Engine] Spawned character %q at x=%.0f", name, obj.X())
}

func (e *Engine) remove(name string) {
	delete(e.characters, name)
	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// tick 推进对话框、遮罩和所有角色的动画
// 等待动画时，任一对象在本帧完成即恢复派发
func (e *Engine) tick(dt float64) {
	e.textBox.Tick(dt)
	e.choiceBox.Tick(dt)
	e.background.Tick(dt)

	e.darkness.Tick(dt)
	completed := e.darkness.JustCompleted()

	for _, name := range e.order {
		obj := e.characters[name]
		obj.Tick(dt)
		if obj.JustCompleted() {
			completed = true
		}
	}

	if e.awaitingAnimation && completed {
		e.awaitingAnimation = false
		e.progressing = true
	}
}

// HandleInput 处理一次逻辑输入
//
// 不适用于当前状态的输入被忽略。InputQuit 返回 ErrQuit。
func (e *Engine) HandleInput(in Input) error {
	if in == InputQuit {
		log.Printf("[Engine] Quit at cursor %d", e.cursor)
		return ErrQuit
	}
	if e.State() != WaitingInput {
		return nil
	}

	a, ok := e.script.At(e.cursor)
	if !ok {
		return nil
	}

	switch in {
	case InputAdvance:
		if a.Kind != script.SayText || e.choiceBox.Awaiting() {
			return nil
		}
		if !e.textBox.Ready() {
			e.textBox.Skip()
			return nil
		}
		e.advance()

	case InputChoice1, InputChoice2:
		if a.Kind != script.PresentChoice || !e.choiceBox.Awaiting() {
			return nil
		}
		target := a.Choice1
		if in == InputChoice2 {
			target = a.Choice2
		}
		e.choiceBox.Hide()
		e.choiceBox.Resolve()
		e.cursor = target
		e.progressing = true
	}
	return nil
}

// State 返回当前状态
func (e *Engine) State() State {
	switch {
	case e.terminated:
		return Terminated
	case e.progressing:
		return Running
	case e.awaitingAnimation:
		return WaitingAnimation
	default:
		return WaitingInput
	}
}

// Cursor 返回当前指令指针
func (e *Engine) Cursor() int {
	return e.cursor
}

// Script 返回剧本
func (e *Engine) Script() *script.Script {
	return e.script
}

// Character 按名字查找角色
func (e *Engine) Character(name string) (*components.SceneObject, bool) {
	obj, ok := e.characters[name]
	return obj, ok
}

// Characters 按创建顺序返回所有角色
func (e *Engine) Characters() []*components.SceneObject {
	out := make([]*components.SceneObject, 0, len(e.order))
	for _, name := range e.order {
		out = append(out, e.characters[name])
	}
	return out
}

// CharacterCount 返回角色数量
func (e *Engine) CharacterCount() int {
	return len(e.characters)
}

// Background 背景对象
func (e *Engine) Background() *components.SceneObject {
	return e.background
}

// Darkness 遮罩对象
func (e *Engine) Darkness() *components.SceneObject {
	return e.darkness
}

// TextBox 对话框
func (e *Engine) TextBox() *components.TextBox {
	return e.textBox
}

// ChoiceBox 选项框
func (e *Engine) ChoiceBox() *components.ChoiceBox {
	return e.choiceBox
}
