// Package data 嵌入内容文件
//
// FS 以 data/ 目录为根，通过 embedded.Init 注册后
// 按 "data/content.yaml" 这样的路径访问。
package data

import "embed"

//go:embed content.yaml
var FS embed.FS
