//go:build !mobile

// Package mobile 的桌面端占位：实际入口在 mobile.go，仅在 -tags mobile 时编译
package mobile

// Dummy 是一个空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
