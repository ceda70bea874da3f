package systems

import (
	"log"
	"math"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/entities"
	"github.com/jumofe95/lane-shooter/pkg/event"
)

// 各攻击方式的弹幕出手高度
const (
	orbLaunchY   = 1.0
	laserLaunchY = 0.5
)

// AttackTypeForLevel 按关卡区间选择 Boss 攻击方式
//
//	1-2 triple_shot, 3-4 wave, 5-6 rain, 7-8 laser_sweep, 9+ minion_call
func AttackTypeForLevel(level int) components.BossAttackType {
	switch {
	case level <= 2:
		return components.AttackTripleShot
	case level <= 4:
		return components.AttackWave
	case level <= 6:
		return components.AttackRain
	case level <= 8:
		return components.AttackLaserSweep
	default:
		return components.AttackMinionCall
	}
}

// AttackCooldown 攻击冷却 = max(CooldownMin, CooldownBase - level*CooldownPerLevel)
func AttackCooldown(cfg *config.GameConfig, level int) float64 {
	return math.Max(cfg.Attack.CooldownMin, cfg.Attack.CooldownBase-float64(level)*cfg.Attack.CooldownPerLevel)
}

// BaseDamage 单发弹幕基础伤害 = DamageBase + level*DamagePerLevel
func BaseDamage(cfg *config.GameConfig, level int) int {
	return cfg.Attack.DamageBase + level*cfg.Attack.DamagePerLevel
}

// scaledDamage 按倍率缩放伤害，至少为 1
func scaledDamage(base int, scale float64) int {
	d := int(math.Round(float64(base) * scale))
	if d < 1 {
		return 1
	}
	return d
}

// SpawnBoss 按当前关卡参数生成 Boss
func SpawnBoss(w *World) *entities.Boss {
	cfg := w.Config
	lvl := w.Level
	attack := AttackTypeForLevel(lvl.Level)

	w.Boss = entities.NewBoss(w.EM, entities.BossSpec{
		Level:            lvl.Level,
		Health:           lvl.BossHealth,
		Value:            lvl.BossValue,
		AttackType:       attack,
		AttackCooldown:   AttackCooldown(cfg, lvl.Level),
		Speed:            lvl.BossSpeed,
		SpawnZ:           cfg.Boss.SpawnZ,
		StopZ:            cfg.Boss.StopZ,
		LateralSpeed:     lvl.BossLateralSpeed,
		LateralAmplitude: cfg.Boss.LateralAmplitude,
		FlashDuration:    cfg.Boss.FlashDuration,
	})

	w.Events.Dispatch(event.Event{
		Type: event.BossSpawned,
		Data: event.BossSpawnedData{Level: lvl.Level, Health: lvl.BossHealth, AttackName: attack.DisplayName()},
	})
	return w.Boss
}

// BossAttackSystem Boss 攻击系统
// Boss 到达停止纵深后按冷却时间发动攻击，生成对应的弹幕
type BossAttackSystem struct{}

// NewBossAttackSystem 创建 Boss 攻击系统
func NewBossAttackSystem() *BossAttackSystem {
	return &BossAttackSystem{}
}

// Update 推进 Boss 攻击计时，冷却结束时发动攻击
// 返回本帧生成的弹幕数量
func (s *BossAttackSystem) Update(w *World, dt float64) int {
	if !w.BossActive() {
		return 0
	}
	if !w.Boss.TickAttack(dt) {
		return 0
	}
	return s.Fire(w)
}

// Fire 立即发动一次 Boss 当前的攻击方式
func (s *BossAttackSystem) Fire(w *World) int {
	boss := w.Boss
	before := len(w.BossProjectiles)
	base := BaseDamage(w.Config, boss.Level)

	switch boss.AttackType {
	case components.AttackTripleShot:
		s.fireOrbs(w, base, []float64{-w.Config.Attack.OrbSpread, 0, w.Config.Attack.OrbSpread})
	case components.AttackWave:
		s.fireWave(w, base)
	case components.AttackRain:
		s.fireRain(w, base)
	case components.AttackLaserSweep:
		s.fireLasers(w, base)
	case components.AttackMinionCall:
		s.fireMinionCall(w, base)
	default:
		log.Printf("[BossAttackSystem] unknown attack type %q", boss.AttackType)
		return 0
	}

	fired := len(w.BossProjectiles) - before
	w.Events.Dispatch(event.Event{
		Type: event.BossAttack,
		Data: event.BossAttackData{AttackName: boss.AttackType.DisplayName(), Projectiles: fired},
	})
	return fired
}

// baseProjectile 所有弹幕共用的参数
func baseProjectile(w *World, t components.BossProjectileType, damage int) entities.BossProjectileSpec {
	return entities.BossProjectileSpec{
		Type:        t,
		X:           w.Boss.Position.X,
		Z:           w.Boss.Position.Z,
		Damage:      damage,
		MaxLifetime: w.Config.Attack.MaxLifetime,
		Radius:      w.Config.Attack.HitRadius,
		BoundZ:      w.Config.Attack.BoundZ,
	}
}

// fireOrbs 朝玩家当前位置发射光球，offsets 为相对瞄准方向的偏角（弧度）
func (s *BossAttackSystem) fireOrbs(w *World, damage int, offsets []float64) {
	boss := w.Boss
	player := w.Player
	aim := math.Atan2(player.Position.X-boss.Position.X, player.Position.Z-boss.Position.Z)

	for _, off := range offsets {
		spec := baseProjectile(w, components.ProjectileOrb, damage)
		spec.Y = orbLaunchY
		spec.DirX = math.Sin(aim + off)
		spec.DirZ = math.Cos(aim + off)
		spec.Speed = w.Config.Attack.OrbSpeed
		w.SpawnBossProjectile(spec)
	}
}

// fireWave 在 Boss 位置释放一圈扩张的冲击波
func (s *BossAttackSystem) fireWave(w *World, base int) {
	spec := baseProjectile(w, components.ProjectileWave, scaledDamage(base, w.Config.Attack.WaveDamage))
	spec.Speed = w.Config.Attack.WaveSpeed
	spec.WaveGrowth = w.Config.Attack.WaveGrowth
	w.SpawnBossProjectile(spec)
}

// fireRain 在玩家前方随机位置从高处落下 RainCount + level/2 个雨滴
func (s *BossAttackSystem) fireRain(w *World, base int) {
	a := w.Config.Attack
	count := a.RainCount + w.Boss.Level/2
	damage := scaledDamage(base, a.RainDamage)
	half := w.Config.Player.HalfWidth

	for i := 0; i < count; i++ {
		spec := baseProjectile(w, components.ProjectileRain, damage)
		spec.X = w.RNG.Range(-half, half)
		spec.Y = a.RainHeight
		spec.Z = w.Player.Position.Z - w.RNG.Range(a.RainNear, a.RainFar)
		spec.Speed = a.RainSpeed
		spec.FallSpeed = a.RainFall
		spec.HitY = a.RainHitY
		w.SpawnBossProjectile(spec)
	}
}

// fireLasers 在 Boss 正前方及两侧发射三道平行激光
func (s *BossAttackSystem) fireLasers(w *World, base int) {
	a := w.Config.Attack
	damage := scaledDamage(base, a.LaserDamage)

	for _, dx := range []float64{-a.LaserGap, 0, a.LaserGap} {
		spec := baseProjectile(w, components.ProjectileLaser, damage)
		spec.X = w.Boss.Position.X + dx
		spec.Y = laserLaunchY
		spec.Speed = a.LaserSpeed
		w.SpawnBossProjectile(spec)
	}
}

// fireMinionCall 组合攻击：带缺口的屏障 + 召唤小兵 + 两发侧向光球
func (s *BossAttackSystem) fireMinionCall(w *World, base int) {
	a := w.Config.Attack
	cfg := w.Config

	// 缺口中心必须在玩家能到达的范围内
	gapRange := math.Min(a.BarrierWidth/2-a.BarrierGapWidth/2, cfg.Player.HalfWidth)
	barrier := baseProjectile(w, components.ProjectileBarrier, scaledDamage(base, a.BarrierDamage))
	barrier.X = 0
	barrier.Speed = a.BarrierSpeed
	barrier.BoundZ = a.BarrierDespawnZ
	barrier.GapX = w.RNG.Range(-gapRange, gapRange)
	barrier.GapWidth = a.BarrierGapWidth
	barrier.BarrierWidth = a.BarrierWidth
	barrier.HitDepth = a.BarrierHitDepth
	w.SpawnBossProjectile(barrier)

	boss := w.Boss
	for i := 0; i < a.MinionCount; i++ {
		side := -1.0
		if i%2 == 1 {
			side = 1
		}
		offset := side * a.LaserGap * float64(i/2+1)
		w.SpawnEnemy(entities.EnemySpec{
			X:             boss.Position.X + offset,
			Z:             boss.Position.Z,
			Health:        w.Level.EnemyHealth,
			Speed:         w.Level.EnemySpeed + w.RNG.Float64()*cfg.Enemy.SpeedJitter,
			Value:         w.Level.EnemyValue,
			FlashDuration: cfg.Enemy.FlashDuration,
		})
	}

	s.fireOrbs(w, base, []float64{-a.OrbSpread, a.OrbSpread})
}
