//go:build mobile

package utils

// IsMobile 移动端构建恒为 true
func IsMobile() bool {
	return true
}

// ConfirmVerb 界面提示里“确认”对应的操作词
func ConfirmVerb() string {
	return "TAP"
}
