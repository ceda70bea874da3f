package game

// InputSnapshot 每帧开始时采样的输入快照
// 模拟步进内只读取快照，不直接访问键盘/触摸设备
type InputSnapshot struct {
	MoveAxis   float64 // 方向键输入，-1 向左，1 向右
	TargetX    float64 // 拖动/触摸指定的目标横坐标（世界坐标）
	HasTargetX bool
	Confirm    bool // 确认键（开始/下一关/重开），边沿触发
}

// ClampedAxis 返回限制在 [-1, 1] 的方向输入
func (in InputSnapshot) ClampedAxis() float64 {
	if in.MoveAxis > 1 {
		return 1
	}
	if in.MoveAxis < -1 {
		return -1
	}
	return in.MoveAxis
}
