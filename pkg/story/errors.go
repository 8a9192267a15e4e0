package story

import (
	"errors"
	"fmt"

	"github.com/decker502/vnplayer/pkg/script"
)

var (
	// ErrStoryEnded 剧本执行到 -1，正常结束
	ErrStoryEnded = errors.New("story ended")

	// ErrQuit 玩家按下退出键
	ErrQuit = errors.New("quit requested")

	// ErrUnknownCharacter 指令引用了不存在的角色
	ErrUnknownCharacter = errors.New("unknown character")

	// ErrRunawayScript 一帧内派发的指令数超过剧本长度，说明存在不等待的跳转循环
	ErrRunawayScript = errors.New("runaway script")

	// ErrCursorOutOfRange cursor 指向剧本之外（未经校验的剧本才会出现）
	ErrCursorOutOfRange = errors.New("cursor out of range")
)

// DispatchError 派发指令时的错误，带有出错位置
type DispatchError struct {
	Cursor int
	Kind   script.Kind
	Person string
	Err    error
}

func (e *DispatchError) Error() string {
	// 越界时没有可派发的指令
	if errors.Is(e.Err, ErrCursorOutOfRange) {
		return fmt.Sprintf("dispatch at cursor %d: %v", e.Cursor, e.Err)
	}
	if e.Person == "" {
		return fmt.Sprintf("dispatch %s at cursor %d: %v", e.Kind, e.Cursor, e.Err)
	}
	return fmt.Sprintf("dispatch %s at cursor %d (person %q): %v", e.Kind, e.Cursor, e.Person, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
