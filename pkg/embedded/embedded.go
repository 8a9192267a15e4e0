// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问内置的默认配置和演示剧本。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/script"
)

const (
	// DefaultConfigPath 内置默认配置
	DefaultConfigPath = "data/config/player.yaml"

	// StoryDir 内置剧本目录
	StoryDir = "data/story"

	// DemoScriptPath 内置演示剧本
	DemoScriptPath = StoryDir + "/" + demoScriptName

	demoScriptName = "demo.csv"
)

var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化内置文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径并检查前缀
func normalize(path string) (string, error) {
	if !initialized {
		return "", errNotInitialized
	}

	// embed.FS 使用正斜杠
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// Open 打开内置文件，路径必须以 "data/" 开头
func Open(path string) (fs.File, error) {
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return dataFS.Open(path)
}

// ReadFile 读取内置文件内容，路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Sub 返回指定目录的子文件系统
func Sub(dir string) (fs.FS, error) {
	dir, err := normalize(dir)
	if err != nil {
		return nil, err
	}
	return fs.Sub(dataFS, dir)
}

// DefaultConfig 解析内置的默认播放器配置
func DefaultConfig() (*config.PlayerConfig, error) {
	data, err := ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParsePlayerConfig(data)
}

// DemoScript 加载并校验内置演示剧本
func DemoScript() (*script.Script, error) {
	stories, err := Sub(StoryDir)
	if err != nil {
		return nil, err
	}
	return script.Load(stories, demoScriptName)
}
