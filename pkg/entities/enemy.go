package entities

import (
	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
)

// Enemy 普通敌人（池化）
type Enemy struct {
	ecs.Header

	Position components.PositionComponent
	Health   components.HealthComponent
	Speed    float64
	Value    int
	Flash    components.FlashEffectComponent

	flashDuration float64
}

// EnemySpec 敌人初始化参数
type EnemySpec struct {
	X, Z          float64
	Health        int
	Speed         float64 // 已包含随机附加值
	Value         int
	FlashDuration float64
}

// NewEnemy 创建空白敌人实例（对象池构造函数）
func NewEnemy() *Enemy {
	return &Enemy{}
}

// Reset 用新参数完整重置敌人状态（从对象池取出时调用）
func (e *Enemy) Reset(spec EnemySpec) {
	e.Position = components.PositionComponent{X: spec.X, Z: spec.Z}
	e.Health = components.NewHealth(spec.Health)
	e.Speed = spec.Speed
	e.Value = spec.Value
	e.Flash = components.FlashEffectComponent{}
	e.flashDuration = spec.FlashDuration
}

// Update 向玩家方向前进
func (e *Enemy) Update(dt float64) {
	e.Position.Z += e.Speed * dt
	e.Flash.Tick(dt)
}

// TakeDamage 受到伤害，返回是否因此被击杀
// 已失活的敌人不再受伤，保证每个敌人只结算一次
func (e *Enemy) TakeDamage(amount int) bool {
	if !e.Active || !e.Health.Alive() {
		return false
	}
	e.Health.Current -= amount
	e.Flash.Trigger(e.flashDuration)
	if e.Health.Current <= 0 {
		e.Health.Current = 0
		e.Active = false
		return true
	}
	return false
}

// ReachedEnd 是否已越过指定纵深（冲到玩家面前）
func (e *Enemy) ReachedEnd(endZ float64) bool {
	return e.Position.Z > endZ
}
