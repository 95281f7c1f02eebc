// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包按路径前缀把 "assets/" 和 "data/" 分派到对应的文件系统。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// ErrNotInitialized Init 之前访问资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 设置资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// route 标准化路径并选出对应的文件系统
func route(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", ErrNotInitialized
	}
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS, path, nil
	case strings.HasPrefix(path, "data/"):
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 根据路径前缀打开文件
func Open(path string) (fs.File, error) {
	fsys, p, err := route(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(p)
}

// ReadFile 根据路径前缀读取文件内容
func ReadFile(path string) ([]byte, error) {
	fsys, p, err := route(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, p)
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

// Sub 返回指定目录的子文件系统，例如 Sub("assets") 供模型加载器使用
func Sub(dir string) (fs.FS, error) {
	fsys, p, err := route(strings.TrimSuffix(dir, "/") + "/")
	if err != nil {
		return nil, err
	}
	return fs.Sub(fsys, strings.TrimSuffix(p, "/"))
}
