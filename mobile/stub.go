//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// mobile.go 和 embed.go 只在 -tags mobile 时编译，
// 普通构建下 ./... 仍然需要这个包有可编译的文件。
package mobile

// Dummy 与移动端构建导出相同的符号
func Dummy() {}
