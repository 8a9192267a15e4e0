package script

import (
	"errors"
	"fmt"
)

// ErrMalformedRow 剧本行格式错误（缺失或非数字的 action、参数非法、标记未闭合等）
// 加载阶段发现即中止，不会进入第一帧
var ErrMalformedRow = errors.New("malformed script row")

// RowError 描述某一行的具体错误
// errors.Is(err, ErrMalformedRow) 对所有 RowError 成立
type RowError struct {
	Row    int    // 行号（从 0 开始，-1 表示表头）
	Column string // 出错的列名，可为空
	Err    error  // 具体原因
}

func (e *RowError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("script header: %v", e.Err)
	}
	if e.Column == "" {
		return fmt.Sprintf("script row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("script row %d, column %s: %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Is 使所有 RowError 都匹配 ErrMalformedRow
func (e *RowError) Is(target error) bool {
	return target == ErrMalformedRow
}

func rowErrorf(row int, column, format string, args ...any) *RowError {
	return &RowError{Row: row, Column: column, Err: fmt.Errorf(format, args...)}
}

// RowErrors 展开 Parse/Load 返回的错误，按出现顺序返回其中所有的 RowError
func RowErrors(err error) []*RowError {
	if err == nil {
		return nil
	}

	switch e := err.(type) {
	case *RowError:
		return []*RowError{e}
	case interface{ Unwrap() []error }:
		var all []*RowError
		for _, inner := range e.Unwrap() {
			all = append(all, RowErrors(inner)...)
		}
		return all
	case interface{ Unwrap() error }:
		return RowErrors(e.Unwrap())
	}
	return nil
}
