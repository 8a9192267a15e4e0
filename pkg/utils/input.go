// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsAnyKeyJustPressed 检查按键列表中是否有按键在本帧刚被按下
// 同一逻辑操作可以绑定多个物理按键（如 1 和小键盘 1）
func IsAnyKeyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// ParseKeys 将按键名称列表解析为 ebiten.Key
// 名称格式与 ebiten.Key 的文本形式一致（如 "Space"、"Digit1"、"Numpad1"、"Escape"）
func ParseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(name)); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
