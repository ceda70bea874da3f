package components

// BossAttackType Boss 攻击方式（按关卡区间选择）
type BossAttackType string

const (
	AttackTripleShot BossAttackType = "triple_shot"
	AttackWave       BossAttackType = "wave"
	AttackRain       BossAttackType = "rain"
	AttackLaserSweep BossAttackType = "laser_sweep"
	AttackMinionCall BossAttackType = "minion_call"
)

var attackDisplayNames = map[BossAttackType]string{
	AttackTripleShot: "Triple Shot",
	AttackWave:       "Shock Wave",
	AttackRain:       "Meteor Rain",
	AttackLaserSweep: "Laser Sweep",
	AttackMinionCall: "Minion Call",
}

// DisplayName HUD 上显示的攻击名称
func (t BossAttackType) DisplayName() string {
	if name, ok := attackDisplayNames[t]; ok {
		return name
	}
	return string(t)
}

// BossProjectileType Boss 弹幕类型
type BossProjectileType string

const (
	ProjectileOrb     BossProjectileType = "orb"
	ProjectileWave    BossProjectileType = "wave"
	ProjectileRain    BossProjectileType = "rain"
	ProjectileLaser   BossProjectileType = "laser"
	ProjectileBarrier BossProjectileType = "barrier"
)
