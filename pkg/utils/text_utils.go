package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本（可包含 '\n' 强制换行）
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - '\n' 处强制断行
//   - 超过最大宽度时优先在最后一个空格处断行
//   - 没有空格（如中文）时按字符断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, font, maxWidth)...)
	}
	return lines
}

// wrapParagraph 对不含换行符的一段文本进行换行
func wrapParagraph(paragraph string, font *text.GoTextFace, maxWidth float64) []string {
	if measureTextWidth(paragraph, font) <= maxWidth {
		return []string{paragraph}
	}

	var lines []string
	currentLine := ""
	rest := paragraph

	for len(rest) > 0 {
		r, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]

		testLine := currentLine + string(r)
		if measureTextWidth(testLine, font) <= maxWidth || currentLine == "" {
			currentLine = testLine
			continue
		}

		// 超宽：尽量在最后一个空格处断开
		if cut := strings.LastIndexByte(currentLine, ' '); cut > 0 {
			lines = append(lines, strings.TrimSpace(currentLine[:cut]))
			currentLine = strings.TrimLeft(currentLine[cut:], " ") + string(r)
		} else {
			lines = append(lines, currentLine)
			currentLine = string(r)
		}
	}

	if currentLine != "" {
		lines = append(lines, strings.TrimSpace(currentLine))
	}
	return lines
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}
