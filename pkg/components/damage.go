package components

// DamageSource 玩家受到伤害的来源
// 所有来源走同一个伤害入口，但各自的伤害数值保持不变
type DamageSource string

const (
	// DamageEnemyReachedEnd 敌人冲到玩家所在纵深（固定伤害）
	DamageEnemyReachedEnd DamageSource = "enemy_reached_end"
	// DamageBossProjectile Boss 弹幕命中
	DamageBossProjectile DamageSource = "boss_projectile"
)
