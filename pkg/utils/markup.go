package utils

import (
	"fmt"
	"strings"
)

// 对话文本中的标记语法
//
// 对话文本允许嵌入 <...> 形式的标记（如 <b>、<i>、<br>）。
// 标记在打字机效果中作为一个整体出现，绘制时被移除，<br> 转换为换行。
const (
	MarkupOpen  = '<'
	MarkupClose = '>'
)

// MarkupEnd 返回从 i 开始的标记的结束位置（'>' 的下标）
// 如果 runes[i] 不是 '<' 或者标记没有闭合，返回 -1
func MarkupEnd(runes []rune, i int) int {
	if i < 0 || i >= len(runes) || runes[i] != MarkupOpen {
		return -1
	}
	for j := i + 1; j < len(runes); j++ {
		if runes[j] == MarkupClose {
			return j
		}
	}
	return -1
}

// ValidateMarkup 检查文本中每个 '<' 都有对应的 '>'
// 返回的错误包含未闭合标记的字符位置
func ValidateMarkup(s string) error {
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] != MarkupOpen {
			continue
		}
		end := MarkupEnd(runes, i)
		if end < 0 {
			return fmt.Errorf("unterminated markup at character %d", i)
		}
		i = end
	}
	return nil
}

// StripMarkup 移除文本中的标记，<br> 转换为换行
// 未闭合的 '<' 原样保留
func StripMarkup(s string) string {
	if !strings.ContainsRune(s, MarkupOpen) {
		return s
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); i++ {
		end := MarkupEnd(runes, i)
		if end < 0 {
			b.WriteRune(runes[i])
			continue
		}
		if isLineBreakTag(string(runes[i+1 : end])) {
			b.WriteByte('\n')
		}
		i = end
	}
	return b.String()
}

// isLineBreakTag 判断标记内容是否为换行（br、br/、BR 等）
func isLineBreakTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	tag = strings.TrimSuffix(tag, "/")
	return strings.TrimSpace(tag) == "br"
}
