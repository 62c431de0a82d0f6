//go:build mobile

// embed.go - 移动端照片嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 内容文件由 data 包嵌入，这里只需要照片，构建前复制到此目录：
//
//	cp -r ../assets .
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS
