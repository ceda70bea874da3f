package utils

import "math"

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach 指数平滑逼近目标值
// 每帧移动剩余距离的 rate*dt（超过 1 时直接到达目标）
func Approach(current, target, rate, dt float64) float64 {
	k := rate * dt
	if k >= 1 {
		return target
	}
	return current + (target-current)*k
}

// LaneForX 计算横坐标所在的车道
//
// 车道从左到右编号 0..numLanes-1，战场中线为 X=0。
// 超出战场的坐标归入最外侧车道。
func LaneForX(x, fieldWidth float64, numLanes int) int {
	if numLanes <= 1 {
		return 0
	}
	laneWidth := fieldWidth / float64(numLanes)
	lane := int(math.Floor((x + fieldWidth/2) / laneWidth))
	if lane < 0 {
		return 0
	}
	if lane >= numLanes {
		return numLanes - 1
	}
	return lane
}

// LaneCenterX 计算车道中心的横坐标
func LaneCenterX(lane int, fieldWidth float64, numLanes int) float64 {
	laneWidth := fieldWidth / float64(numLanes)
	return -fieldWidth/2 + laneWidth*(float64(lane)+0.5)
}
