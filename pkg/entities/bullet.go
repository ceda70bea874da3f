package entities

import (
	"math"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
)

// Bullet 玩家/盟友子弹（池化）
// Speed 的符号表示飞行方向：玩家子弹向 -Z 飞行
type Bullet struct {
	ecs.Header

	Position       components.PositionComponent
	Damage         int
	Piercing       int
	PiercedCount   int
	IsPlayerBullet bool
	Speed          float64

	minZ, maxZ float64
}

// NewBullet 创建空白子弹实例（对象池构造函数）
func NewBullet() *Bullet {
	return &Bullet{IsPlayerBullet: true}
}

// Reset 用新参数完整重置子弹状态（从对象池取出时调用）
func (b *Bullet) Reset(spec BulletSpec, isPlayer bool, cfg *config.GameConfig) {
	b.Position = components.PositionComponent{X: spec.X, Z: spec.Z}
	b.Damage = spec.Damage
	b.Piercing = spec.Piercing
	if b.Piercing < components.MinPiercing {
		b.Piercing = components.MinPiercing
	}
	b.PiercedCount = 0
	b.IsPlayerBullet = isPlayer
	if isPlayer {
		b.Speed = -cfg.Bullet.Speed
	} else {
		b.Speed = cfg.Bullet.EnemySpeed
	}
	b.minZ = -cfg.Field.Depth
	b.maxZ = cfg.Bullet.EnemyBoundZ
}

// Update 直线飞行，飞出边界后失活
func (b *Bullet) Update(dt float64) {
	b.Position.Z += b.Speed * dt
	if b.IsPlayerBullet && b.Position.Z < b.minZ {
		b.Active = false
	} else if !b.IsPlayerBullet && b.Position.Z > b.maxZ {
		b.Active = false
	}
}

// OnHit 记录一次命中，穿透次数用完时失活
// 返回子弹是否仍然有效
func (b *Bullet) OnHit() bool {
	b.PiercedCount++
	if b.PiercedCount >= b.Piercing {
		b.Active = false
	}
	return b.Active
}

// CollidesWith 判断是否与指定位置的目标碰撞（地面平面距离）
func (b *Bullet) CollidesWith(pos components.PositionComponent, threshold float64) bool {
	dx := b.Position.X - pos.X
	if math.Abs(dx) > threshold {
		return false
	}
	dz := b.Position.Z - pos.Z
	if math.Abs(dz) > threshold {
		return false
	}
	return dx*dx+dz*dz < threshold*threshold
}
