package utils

import "testing"

// TestMarkupEnd 测试标记结束位置查找
func TestMarkupEnd(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		index    int
		expected int
	}{
		{"普通字符", "abc", 0, -1},
		{"完整标记", "<b>x", 0, 2},
		{"中间标记", "a<i>b", 1, 3},
		{"未闭合", "a<b", 1, -1},
		{"越界", "ab", 5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarkupEnd([]rune(tt.text), tt.index); got != tt.expected {
				t.Errorf("MarkupEnd(%q, %d) = %d, 期望 %d", tt.text, tt.index, got, tt.expected)
			}
		})
	}
}

// TestValidateMarkup 测试标记闭合检查
func TestValidateMarkup(t *testing.T) {
	valid := []string{"", "Hi", "<b>Hi</b>", "a<br>b", "你好<i>世界</i>"}
	for _, s := range valid {
		if err := ValidateMarkup(s); err != nil {
			t.Errorf("ValidateMarkup(%q) 返回错误: %v", s, err)
		}
	}

	invalid := []string{"<b", "Hi <b>there</b", "a > b < c"}
	for _, s := range invalid {
		if err := ValidateMarkup(s); err == nil {
			t.Errorf("ValidateMarkup(%q) 应该返回错误", s)
		}
	}
}

// TestStripMarkup 测试标记移除
func TestStripMarkup(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hi", "Hi"},
		{"<b>Hi</b>", "Hi"},
		{"line1<br>line2", "line1\nline2"},
		{"line1<BR/>line2", "line1\nline2"},
		{"<font color='red'>红</font>色", "红色"},
		{"a < b", "a < b"},
	}

	for _, tt := range tests {
		if got := StripMarkup(tt.input); got != tt.expected {
			t.Errorf("StripMarkup(%q) = %q, 期望 %q", tt.input, got, tt.expected)
		}
	}
}
