package entities

import (
	"testing"

	"github.com/jumofe95/lane-shooter/pkg/components"
)

// TestPlayerInitialState 测试玩家初始状态
func TestPlayerInitialState(t *testing.T) {
	cfg, em := newTestWorld()
	p := NewPlayer(em, cfg)

	if !p.Active {
		t.Error("player should be active after creation")
	}
	if p.Health.Current != 100 || p.Health.Max != 100 {
		t.Errorf("health = %d/%d, want 100/100", p.Health.Current, p.Health.Max)
	}
	want := components.PlayerStats{NumAllies: 0, FireRate: 3, Damage: 10, Piercing: 1}
	if p.Stats != want {
		t.Errorf("stats = %+v, want %+v", p.Stats, want)
	}
	if em.LiveCount(p.Kind) != 1 {
		t.Errorf("LiveCount(player) = %d, want 1", em.LiveCount(p.Kind))
	}
}

// TestPlayerApplyModifier 测试门修改器及属性下限
func TestPlayerApplyModifier(t *testing.T) {
	tests := []struct {
		name  string
		start components.PlayerStats
		mod   components.Modifier
		want  components.PlayerStats
	}{
		{
			name:  "增加盟友",
			start: components.PlayerStats{NumAllies: 1, FireRate: 3, Damage: 10, Piercing: 1},
			mod:   components.Modifier{Type: components.ModifierAddAllies, Value: 2},
			want:  components.PlayerStats{NumAllies: 3, FireRate: 3, Damage: 10, Piercing: 1},
		},
		{
			name:  "移除盟友不低于0",
			start: components.PlayerStats{NumAllies: 0, FireRate: 3, Damage: 10, Piercing: 1},
			mod:   components.Modifier{Type: components.ModifierRemoveAllies, Value: 1},
			want:  components.PlayerStats{NumAllies: 0, FireRate: 3, Damage: 10, Piercing: 1},
		},
		{
			name:  "盟友翻倍",
			start: components.PlayerStats{NumAllies: 3, FireRate: 3, Damage: 10, Piercing: 1},
			mod:   components.Modifier{Type: components.ModifierMultiplyAllies, Value: 2},
			want:  components.PlayerStats{NumAllies: 6, FireRate: 3, Damage: 10, Piercing: 1},
		},
		{
			name:  "盟友减半向下取整",
			start: components.PlayerStats{NumAllies: 3, FireRate: 3, Damage: 10, Piercing: 1},
			mod:   components.Modifier{Type: components.ModifierMultiplyAllies, Value: 0.5},
			want:  components.PlayerStats{NumAllies: 1, FireRate: 3, Damage: 10, Piercing: 1},
		},
		{
			name:  "射速下限0.5",
			start: components.PlayerStats{NumAllies: 0, FireRate: 0.6, Damage: 10, Piercing: 1},
			mod:   components.Modifier{Type: components.ModifierFireRate, Value: -0.4},
			want:  components.PlayerStats{NumAllies: 0, FireRate: 0.5, Damage: 10, Piercing: 1},
		},
		{
			name:  "伤害下限1",
			start: components.PlayerStats{NumAllies: 0, FireRate: 3, Damage: 2, Piercing: 1},
			mod:   components.Modifier{Type: components.ModifierDamage, Value: -2},
			want:  components.PlayerStats{NumAllies: 0, FireRate: 3, Damage: 1, Piercing: 1},
		},
		{
			name:  "穿透下限1",
			start: components.PlayerStats{NumAllies: 0, FireRate: 3, Damage: 10, Piercing: 1},
			mod:   components.Modifier{Type: components.ModifierPiercing, Value: -1},
			want:  components.PlayerStats{NumAllies: 0, FireRate: 3, Damage: 10, Piercing: 1},
		},
		{
			name:  "增加穿透",
			start: components.PlayerStats{NumAllies: 0, FireRate: 3, Damage: 10, Piercing: 1},
			mod:   components.Modifier{Type: components.ModifierPiercing, Value: 1},
			want:  components.PlayerStats{NumAllies: 0, FireRate: 3, Damage: 10, Piercing: 2},
		},
		{
			name:  "未知类型不修改",
			start: components.PlayerStats{NumAllies: 2, FireRate: 3, Damage: 10, Piercing: 1},
			mod:   components.Modifier{Type: "teleport", Value: 99},
			want:  components.PlayerStats{NumAllies: 2, FireRate: 3, Damage: 10, Piercing: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, em := newTestWorld()
			p := NewPlayer(em, cfg)
			p.Stats = tt.start
			p.ApplyModifier(tt.mod)
			if p.Stats != tt.want {
				t.Errorf("stats = %+v, want %+v", p.Stats, tt.want)
			}
		})
	}
}

// TestPlayerSetStatsClamps 调试覆盖同样受下限约束
func TestPlayerSetStatsClamps(t *testing.T) {
	cfg, em := newTestWorld()
	p := NewPlayer(em, cfg)
	p.SetStats(components.PlayerStats{NumAllies: -3, FireRate: 0, Damage: -5, Piercing: 0})

	want := components.PlayerStats{NumAllies: 0, FireRate: 0.5, Damage: 1, Piercing: 1}
	if p.Stats != want {
		t.Errorf("stats = %+v, want %+v", p.Stats, want)
	}
}

// TestPlayerDiesAfterSevenEnemies 7 个敌人冲到面前（每个15伤害）后玩家死亡
func TestPlayerDiesAfterSevenEnemies(t *testing.T) {
	cfg, em := newTestWorld()
	p := NewPlayer(em, cfg)

	for i := 1; i <= 6; i++ {
		if dead := p.TakeDamage(components.DamageEnemyReachedEnd, cfg.Enemy.ReachDamage); dead {
			t.Fatalf("player died after %d hits", i)
		}
	}
	if p.Health.Current != 10 {
		t.Errorf("health after 6 hits = %d, want 10", p.Health.Current)
	}
	if !p.Flash.Active() {
		t.Error("player should flash after taking damage")
	}

	if dead := p.TakeDamage(components.DamageEnemyReachedEnd, cfg.Enemy.ReachDamage); !dead {
		t.Fatal("player should die on the 7th hit")
	}
	if p.Health.Current != 0 {
		t.Errorf("health = %d, want clamped to 0", p.Health.Current)
	}
	if p.HealthPercent() != 0 {
		t.Errorf("HealthPercent() = %v, want 0", p.HealthPercent())
	}

	// 已死亡后不再重复报告
	if dead := p.TakeDamage(components.DamageBossProjectile, 10); dead {
		t.Error("TakeDamage on a dead player should not report death again")
	}
}

// TestPlayerMovementClamp 测试移动范围限制
func TestPlayerMovementClamp(t *testing.T) {
	cfg, em := newTestWorld()
	p := NewPlayer(em, cfg)

	for i := 0; i < 100; i++ {
		p.Move(1, 0.1)
		p.Update(0.1)
	}
	if p.Position.X != 9 {
		t.Errorf("X = %v, want clamped to 9", p.Position.X)
	}

	p.SetTargetX(-50)
	if p.TargetX != -9 {
		t.Errorf("TargetX = %v, want -9", p.TargetX)
	}
	p.Update(0.1)
	if p.Position.X != -9 {
		t.Errorf("X = %v, want -9 after full-step approach", p.Position.X)
	}
}

// TestPlayerSmoothFollow 测试目标跟随的平滑逼近
func TestPlayerSmoothFollow(t *testing.T) {
	cfg, em := newTestWorld()
	p := NewPlayer(em, cfg)

	p.SetTargetX(4)
	p.Update(0.05)
	if !approxEqual(p.Position.X, 2) {
		t.Errorf("X = %v, want 2 (half way at rate 10, dt 0.05)", p.Position.X)
	}
}

// TestPlayerShootCadence 测试射击间隔 1/fireRate
func TestPlayerShootCadence(t *testing.T) {
	cfg, em := newTestWorld()
	p := NewPlayer(em, cfg)

	shots := 0
	for i := 0; i < 3; i++ {
		p.Update(0.1)
		if _, ok := p.TryShoot(); ok {
			shots++
		}
	}
	if shots != 0 {
		t.Fatalf("shots after 0.3s = %d, want 0", shots)
	}

	p.Update(0.1)
	spec, ok := p.TryShoot()
	if !ok {
		t.Fatal("expected a shot after 0.4s at fire rate 3")
	}
	if !approxEqual(spec.X, -0.4) || !approxEqual(spec.Z, -1.8) {
		t.Errorf("bullet spawn = (%v, %v), want (-0.4, -1.8)", spec.X, spec.Z)
	}
	if spec.Damage != 10 || spec.Piercing != 1 {
		t.Errorf("bullet stats = %d/%d, want 10/1", spec.Damage, spec.Piercing)
	}
	if _, ok := p.TryShoot(); ok {
		t.Error("timer should reset after a shot")
	}
}

// TestPlayerRegenerate 过关回血不超过上限
func TestPlayerRegenerate(t *testing.T) {
	tests := []struct {
		name   string
		health int
		want   int
	}{
		{"低血量", 10, 40},
		{"接近满血", 90, 100},
		{"满血", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, em := newTestWorld()
			p := NewPlayer(em, cfg)
			p.Health.Current = tt.health
			p.Regenerate(cfg.Player.LevelRegenFraction)
			if p.Health.Current != tt.want {
				t.Errorf("health = %d, want %d", p.Health.Current, tt.want)
			}
		})
	}
}
