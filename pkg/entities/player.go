package entities

import (
	"log"
	"math"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
	"github.com/jumofe95/lane-shooter/pkg/utils"
)

// Player 玩家实体（单例）
type Player struct {
	ecs.Header

	Position components.PositionComponent
	TargetX  float64
	Health   components.HealthComponent
	Stats    components.PlayerStats
	Flash    components.FlashEffectComponent

	shootTimer float64
	cfg        *config.PlayerConfig
}

// NewPlayer 创建玩家（初始属性来自配置）
func NewPlayer(em *ecs.EntityManager, cfg *config.GameConfig) *Player {
	p := &Player{cfg: &cfg.Player}
	p.Reset()
	em.Spawn(&p.Header, ecs.KindPlayer)
	return p
}

// Reset 恢复到开局状态：满血、初始属性、回到中线
func (p *Player) Reset() {
	p.Health = components.NewHealth(p.cfg.MaxHealth)
	p.Stats = components.PlayerStats{
		NumAllies: p.cfg.StartAllies,
		FireRate:  p.cfg.StartFireRate,
		Damage:    p.cfg.StartDamage,
		Piercing:  p.cfg.StartPiercing,
	}
	p.Stats.Clamp()
	p.Flash = components.FlashEffectComponent{}
	p.ResetPosition()
}

// ResetPosition 回到中线并清空射击计时（进入下一关时保留属性和生命值）
func (p *Player) ResetPosition() {
	p.Position = components.PositionComponent{X: 0, Z: p.cfg.Z}
	p.TargetX = 0
	p.shootTimer = 0
}

// Move 按方向键移动目标位置
// dir 取值 [-1, 1]，负数向左
func (p *Player) Move(dir, dt float64) {
	p.SetTargetX(p.TargetX + dir*p.cfg.Speed*dt)
}

// SetTargetX 直接设置目标横坐标（拖动/触摸跟随）
func (p *Player) SetTargetX(x float64) {
	p.TargetX = utils.Clamp(x, -p.cfg.HalfWidth, p.cfg.HalfWidth)
}

// Update 向目标位置平滑移动，推进射击和闪烁计时
func (p *Player) Update(dt float64) {
	p.Position.X = utils.Approach(p.Position.X, p.TargetX, p.cfg.FollowSmoothing, dt)
	p.Position.X = utils.Clamp(p.Position.X, -p.cfg.HalfWidth, p.cfg.HalfWidth)
	p.TargetX = utils.Clamp(p.TargetX, -p.cfg.HalfWidth, p.cfg.HalfWidth)

	p.shootTimer += dt
	p.Flash.Tick(dt)
}

// TryShoot 射击间隔到达时返回一发子弹的参数
func (p *Player) TryShoot() (BulletSpec, bool) {
	if p.shootTimer < p.Stats.ShootInterval() {
		return BulletSpec{}, false
	}
	p.shootTimer = 0
	return BulletSpec{
		X:        p.Position.X + p.cfg.BulletOffsetX,
		Z:        p.Position.Z + p.cfg.BulletOffsetZ,
		Damage:   p.Stats.Damage,
		Piercing: p.Stats.Piercing,
	}, true
}

// ApplyModifier 应用门的属性修改
// 未知类型不做任何修改
func (p *Player) ApplyModifier(mod components.Modifier) {
	s := &p.Stats
	switch mod.Type {
	case components.ModifierAddAllies:
		s.NumAllies += int(mod.Value)
	case components.ModifierRemoveAllies:
		s.NumAllies -= int(mod.Value)
	case components.ModifierMultiplyAllies:
		s.NumAllies = int(math.Floor(float64(s.NumAllies) * mod.Value))
	case components.ModifierFireRate:
		s.FireRate += mod.Value
	case components.ModifierDamage:
		s.Damage += int(mod.Value)
	case components.ModifierPiercing:
		s.Piercing += int(mod.Value)
	default:
		log.Printf("[Player] ignoring unknown modifier type %q", mod.Type)
		return
	}
	s.Clamp()
}

// SetStats 直接覆盖属性（调试用），同样受下限约束
func (p *Player) SetStats(stats components.PlayerStats) {
	stats.Clamp()
	p.Stats = stats
}

// TakeDamage 玩家唯一的受伤入口
// 返回玩家是否因此死亡
func (p *Player) TakeDamage(source components.DamageSource, amount int) bool {
	if !p.Active || amount <= 0 || !p.Health.Alive() {
		return false
	}
	p.Health.Current -= amount
	if p.Health.Current < 0 {
		p.Health.Current = 0
	}
	p.Flash.Trigger(p.cfg.FlashDuration)
	log.Printf("[Player] took %d damage from %s, health %d/%d", amount, source, p.Health.Current, p.Health.Max)
	return !p.Health.Alive()
}

// Regenerate 恢复最大生命值的一定比例（不超过上限）
func (p *Player) Regenerate(fraction float64) {
	heal := int(math.Round(float64(p.Health.Max) * fraction))
	p.Health.Current += heal
	if p.Health.Current > p.Health.Max {
		p.Health.Current = p.Health.Max
	}
}

// HealthPercent 生命值百分比（0.0 - 1.0）
func (p *Player) HealthPercent() float64 {
	return p.Health.Percent()
}
