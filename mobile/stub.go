//go:build !mobile

// 桌面构建时 mobile 包只有这个文件，
// 绑定代码在 mobile.go / embed.go 中，需要 -tags mobile。
package mobile

// Dummy 让 gomobile bind 以外的构建也能引用本包
func Dummy() {}
