// birthday24-check 检查内容文件和照片是否齐全
//
// 用法：
//
//	go run ./cmd/birthday24-check -content data/content.yaml -assets .
//
// 内容文件不满足"每个分类 24 项"时退出码为 1；
// 只缺少照片时退出码为 2（程序仍可运行，缺失的照片显示占位图）。
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/embedded"
	"github.com/decker502/birthday24/pkg/types"
)

const (
	exitInvalid = 1
	exitMissing = 2
)

func main() {
	contentPath := flag.String("content", config.DefaultContentPath, "内容文件路径")
	assetsDir := flag.String("assets", ".", "包含 assets/ 目录的根目录")
	flag.Parse()

	os.Exit(run(os.Stdout, *contentPath, os.DirFS(*assetsDir)))
}

// run 执行检查并返回退出码
// 照片按程序运行时的方式通过 embedded 解析；内容文件总是从磁盘读取
func run(out io.Writer, contentPath string, assets fs.FS) int {
	embedded.Init(assets, nil)

	cfg, err := config.LoadContentConfig(contentPath)
	if err != nil {
		if errors.Is(err, config.ErrInvalidContent) {
			fmt.Fprintf(out, "❌ 内容无效: %v\n", err)
		} else {
			fmt.Fprintf(out, "❌ 读取失败: %v\n", err)
		}
		return exitInvalid
	}
	fmt.Fprintf(out, "✅ 内容有效: %d 个分类 × %d 项\n", types.CategoryCount, config.SlidesPerCategory)

	missing := missingImages(cfg)
	for _, p := range missing {
		fmt.Fprintf(out, "⚠️  缺少照片: %s\n", p)
	}
	if len(missing) > 0 {
		fmt.Fprintf(out, "❌ 共缺少 %d 张照片\n", len(missing))
		return exitMissing
	}
	fmt.Fprintf(out, "✅ 所有照片都存在\n")
	return 0
}

// missingImages 按旅程顺序列出不存在的图片路径
func missingImages(cfg *config.ContentConfig) []string {
	var paths []string
	if cfg.Preface.Cover != "" {
		paths = append(paths, cfg.Preface.Cover)
	}
	for _, cat := range types.Categories() {
		for _, item := range cfg.Items(cat) {
			paths = append(paths, item.Image)
		}
	}

	var missing []string
	seen := make(map[string]bool)
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		if !embedded.Exists(p) {
			missing = append(missing, p)
		}
	}
	return missing
}
