package story

// Input 引擎接受的逻辑输入
type Input int

const (
	InputNone Input = iota
	// InputAdvance 推进对话（正文未显示完时为跳过）
	InputAdvance
	// InputChoice1 选择第一个选项
	InputChoice1
	// InputChoice2 选择第二个选项
	InputChoice2
	// InputQuit 退出
	InputQuit
)

func (in Input) String() string {
	switch in {
	case InputNone:
		return "None"
	case InputAdvance:
		return "Advance"
	case InputChoice1:
		return "Choice1"
	case InputChoice2:
		return "Choice2"
	case InputQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// State 引擎状态，由内部标志推导
type State int

const (
	// Running 正在派发指令
	Running State = iota
	// WaitingInput 等待按键（对话或选项）
	WaitingInput
	// WaitingAnimation 等待移动或遮罩动画完成
	WaitingAnimation
	// Terminated 剧本已结束
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case WaitingInput:
		return "WaitingInput"
	case WaitingAnimation:
		return "WaitingAnimation"
	case Terminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}
