// Package embedded 提供内置资源的统一访问接口
//
// 内容文件由 data 包嵌入（data.FS，以 data/ 目录为根），
// 所以任何可执行程序都能拿到内置内容，不依赖工作目录。
// 本包提供包装函数，让其他包可以按 "assets/" 或 "data/" 前缀访问资源。
//
// 图片等大体积素材不嵌入二进制，由调用方传入磁盘文件系统（os.DirFS）。
// 使用前必须调用 Init() 初始化。
package embedded

import (
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

// Init 初始化资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
// assets 以包含 assets/ 的目录为根，可以为 nil（没有随程序分发的图片时）
// data 以 data/ 目录本身为根
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// resolve 根据路径前缀选择文件系统
func resolve(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", fmt.Errorf("embedded package not initialized, call Init() first")
	}

	// 标准化路径分隔符为正斜杠（fs.FS 使用正斜杠）
	path = filepath.ToSlash(path)

	// 移除可能的 "./" 前缀
	path = strings.TrimPrefix(path, "./")

	var target fs.FS
	switch {
	case strings.HasPrefix(path, "assets/"):
		target = assetsFS
	case strings.HasPrefix(path, "data/"):
		target = dataFS
		path = strings.TrimPrefix(path, "data/")
	default:
		return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
	}

	if target == nil {
		return nil, "", fmt.Errorf("no filesystem registered for %s", path)
	}
	return target, path, nil
}

// Open 根据路径前缀选择正确的文件系统并打开文件
// 路径必须以 "assets/" 或 "data/" 开头
func Open(path string) (fs.File, error) {
	target, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return target.Open(name)
}

// ReadFile 根据路径前缀选择正确的文件系统并读取文件内容
// 路径必须以 "assets/" 或 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	target, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(target, name)
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
