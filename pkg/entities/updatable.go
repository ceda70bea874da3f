package entities

import "github.com/jumofe95/lane-shooter/pkg/ecs"

// Updatable 可逐帧推进的实体
// 所有实体种类通过嵌入 ecs.Header 满足 Head()
type Updatable interface {
	Head() *ecs.Header
	Update(dt float64)
}

// BulletSpec 射击产生的子弹参数，由调用方从子弹池中取出实例并初始化
type BulletSpec struct {
	X, Z     float64
	Damage   int
	Piercing int
}
