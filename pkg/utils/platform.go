//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 置为 1 时桌面端按触屏方式提示和取样输入
const MobileEmulateEnv = "LANE_MOBILE_EMULATE"

// IsMobile 是否运行在触屏设备上，桌面端默认 false
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}

// ConfirmVerb 界面提示里“确认”对应的操作词
func ConfirmVerb() string {
	if IsMobile() {
		return "TAP"
	}
	return "PRESS SPACE"
}
