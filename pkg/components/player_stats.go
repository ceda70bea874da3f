package components

import "math"

// 玩家属性下限
const (
	MinAllies   = 0
	MinFireRate = 0.5
	MinDamage   = 1
	MinPiercing = 1
)

// PlayerStats 玩家属性（由门修改，所有盟友共享）
type PlayerStats struct {
	NumAllies int     // 盟友数量
	FireRate  float64 // 每秒射击次数
	Damage    int     // 子弹伤害
	Piercing  int     // 子弹可穿透的敌人数
}

// Clamp 将所有属性限制在下限以上
func (s *PlayerStats) Clamp() {
	if s.NumAllies < MinAllies {
		s.NumAllies = MinAllies
	}
	if s.FireRate < MinFireRate || math.IsNaN(s.FireRate) {
		s.FireRate = MinFireRate
	}
	if s.Damage < MinDamage {
		s.Damage = MinDamage
	}
	if s.Piercing < MinPiercing {
		s.Piercing = MinPiercing
	}
}

// ShootInterval 两次射击之间的间隔（秒）
func (s PlayerStats) ShootInterval() float64 {
	rate := s.FireRate
	if rate < MinFireRate {
		rate = MinFireRate
	}
	return 1 / rate
}
