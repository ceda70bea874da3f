package entities

import (
	"log"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
)

// Boss 关底 Boss（每关一个）
//
// 先向前推进到停止纵深，之后左右摆动并按冷却时间发动攻击。
type Boss struct {
	ecs.Header

	Position components.PositionComponent
	Health   components.HealthComponent
	Value    int
	Level    int
	Flash    components.FlashEffectComponent

	AttackType     components.BossAttackType
	AttackCooldown float64
	attackTimer    float64

	Speed            float64
	StopZ            float64
	LateralSpeed     float64
	LateralAmplitude float64
	direction        float64

	flashDuration float64
}

// BossSpec Boss 初始化参数
type BossSpec struct {
	Level            int
	Health           int
	Value            int
	AttackType       components.BossAttackType
	AttackCooldown   float64
	Speed            float64
	SpawnZ           float64
	StopZ            float64
	LateralSpeed     float64
	LateralAmplitude float64
	FlashDuration    float64
}

// NewBoss 创建 Boss 并通知表现层
func NewBoss(em *ecs.EntityManager, spec BossSpec) *Boss {
	b := &Boss{
		Position:         components.PositionComponent{X: 0, Z: spec.SpawnZ},
		Health:           components.NewHealth(spec.Health),
		Value:            spec.Value,
		Level:            spec.Level,
		AttackType:       spec.AttackType,
		AttackCooldown:   spec.AttackCooldown,
		Speed:            spec.Speed,
		StopZ:            spec.StopZ,
		LateralSpeed:     spec.LateralSpeed,
		LateralAmplitude: spec.LateralAmplitude,
		direction:        1,
		flashDuration:    spec.FlashDuration,
	}
	em.Spawn(&b.Header, ecs.KindBoss)
	log.Printf("[Boss] level %d boss spawned: health=%d attack=%s cooldown=%.2fs",
		spec.Level, spec.Health, spec.AttackType, spec.AttackCooldown)
	return b
}

// AtStopDepth 是否已到达停止纵深
func (b *Boss) AtStopDepth() bool {
	return b.Position.Z >= b.StopZ
}

// Update 推进或左右摆动
func (b *Boss) Update(dt float64) {
	if !b.AtStopDepth() {
		b.Position.Z += b.Speed * dt
		if b.Position.Z > b.StopZ {
			b.Position.Z = b.StopZ
		}
	} else if b.LateralAmplitude > 0 {
		b.Position.X += b.direction * b.LateralSpeed * dt
		if b.Position.X > b.LateralAmplitude {
			b.Position.X = b.LateralAmplitude
			b.direction = -1
		} else if b.Position.X < -b.LateralAmplitude {
			b.Position.X = -b.LateralAmplitude
			b.direction = 1
		}
	}
	b.Flash.Tick(dt)
}

// TickAttack 推进攻击计时，冷却结束时返回 true
// 未到达停止纵深前不计时
func (b *Boss) TickAttack(dt float64) bool {
	if !b.Active || !b.AtStopDepth() {
		return false
	}
	b.attackTimer += dt
	if b.attackTimer >= b.AttackCooldown {
		b.attackTimer = 0
		return true
	}
	return false
}

// TakeDamage 受到伤害，返回是否因此被击败
func (b *Boss) TakeDamage(amount int) bool {
	if !b.Active || !b.Health.Alive() {
		return false
	}
	b.Health.Current -= amount
	b.Flash.Trigger(b.flashDuration)
	if b.Health.Current <= 0 {
		b.Health.Current = 0
		b.Active = false
		return true
	}
	return false
}

// HealthPercent 生命值百分比（0.0 - 1.0）
func (b *Boss) HealthPercent() float64 {
	return b.Health.Percent()
}
