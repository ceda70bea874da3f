package components

import "math"

// PositionComponent 实体在战场中的位置（世界坐标）
//
// 坐标约定：
//   - X 轴为横向，0 为战场中线
//   - Z 轴为纵深，玩家位于 Z=0，敌人从负方向接近
//   - Y 轴为高度，仅用于下落类弹幕
type PositionComponent struct {
	X float64
	Y float64
	Z float64
}

// DistanceXZ 计算两点在地面平面上的距离
func (p PositionComponent) DistanceXZ(other PositionComponent) float64 {
	dx := p.X - other.X
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dz*dz)
}
