// Package script 定义剧本指令及其加载与校验
//
// 剧本是一张按行编号的指令表，行号即指令指针（cursor）的取值。
// 指令在加载后不可变；-1 是保留的"剧本结束"目标。
package script

import "strconv"

// Kind 指令类型，取值即剧本文件中 action 列的数字代码
type Kind int

const (
	// SayText 显示对话：person 为说话人，text 为正文，value1 为打字速度（可空）
	SayText Kind = iota
	// PresentChoice 显示二选一：value1/value2 为选项文字，set1/set2 为跳转目标
	PresentChoice
	// Jump 无条件跳转到 value1
	Jump
	// SpawnCharacter 创建角色：person 为名字，value1 为立绘文件，value2 为 x 坐标
	SpawnCharacter
	// MoveCharacter 移动角色到 value1 指定的 x 坐标，等待动画完成
	MoveCharacter
	// RemoveCharacter 移除角色
	RemoveCharacter
	// ChangeBackground 更换背景为 value1
	ChangeBackground
	// Dim 遮罩淡入（value1=1）或淡出（value1=0），等待动画完成
	Dim
	// PlaySound 播放音效 value1
	PlaySound
	// HideTextBox 隐藏对话框
	HideTextBox
)

// EndOfStory 跳转到该目标表示剧本结束
const EndOfStory = -1

var kindNames = [...]string{
	SayText:          "SayText",
	PresentChoice:    "PresentChoice",
	Jump:             "Jump",
	SpawnCharacter:   "SpawnCharacter",
	MoveCharacter:    "MoveCharacter",
	RemoveCharacter:  "RemoveCharacter",
	ChangeBackground: "ChangeBackground",
	Dim:              "Dim",
	PlaySound:        "PlaySound",
	HideTextBox:      "HideTextBox",
}

// String 返回 Kind 的名称
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid 判断是否为已知的指令类型
func (k Kind) Valid() bool {
	return k >= SayText && k <= HideTextBox
}

// Action 一行剧本指令
type Action struct {
	Index   int    // 行号（从 0 开始）
	Kind    Kind   // 指令类型
	Person  string // 角色名 / 说话人
	Text    string // 对话正文
	Value1  string // 通用参数 1
	Value2  string // 通用参数 2
	Choice1 int    // 选项 1 跳转目标（仅 PresentChoice）
	Choice2 int    // 选项 2 跳转目标（仅 PresentChoice）
}

// IntValue1 将 Value1 解析为整数
func (a Action) IntValue1() (int, error) {
	return strconv.Atoi(a.Value1)
}

// IntValue2 将 Value2 解析为整数
func (a Action) IntValue2() (int, error) {
	return strconv.Atoi(a.Value2)
}

// Script 有序的指令序列
type Script struct {
	actions []Action
}

// New 由指令列表创建剧本，Index 按位置重新编号
// 不做校验，校验见 Validate
func New(actions ...Action) *Script {
	s := &Script{actions: make([]Action, len(actions))}
	for i, a := range actions {
		a.Index = i
		s.actions[i] = a
	}
	return s
}

// Len 返回指令数量
func (s *Script) Len() int {
	return len(s.actions)
}

// At 返回第 i 行指令；越界时 ok 为 false
func (s *Script) At(i int) (Action, bool) {
	if i < 0 || i >= len(s.actions) {
		return Action{}, false
	}
	return s.actions[i], true
}

// Actions 返回指令列表的副本
func (s *Script) Actions() []Action {
	out := make([]Action, len(s.actions))
	copy(out, s.actions)
	return out
}

// Next 返回 cursor 的下一行；越过最后一行时返回 EndOfStory
func (s *Script) Next(cursor int) int {
	if cursor+1 >= len(s.actions) {
		return EndOfStory
	}
	return cursor + 1
}
