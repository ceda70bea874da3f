package entities

import "testing"

func newActiveEnemy(health int) *Enemy {
	e := NewEnemy()
	e.Reset(EnemySpec{X: 1, Z: -80, Health: health, Speed: 9, Value: 10, FlashDuration: 0.08})
	e.Active = true
	return e
}

// TestEnemyKilledOnce 敌人只会被结算一次
func TestEnemyKilledOnce(t *testing.T) {
	e := newActiveEnemy(30)

	if killed := e.TakeDamage(20); killed {
		t.Fatal("enemy should survive 20 damage")
	}
	if !e.Flash.Active() {
		t.Error("enemy should flash after taking damage")
	}
	if killed := e.TakeDamage(20); !killed {
		t.Fatal("enemy should be killed by the second hit")
	}
	if e.Active {
		t.Error("killed enemy should be inactive")
	}
	if e.Health.Current != 0 {
		t.Errorf("health = %d, want 0", e.Health.Current)
	}
	if killed := e.TakeDamage(20); killed {
		t.Error("inactive enemy must not be killed again")
	}
}

// TestEnemyResetClearsState 复用时完整重置
func TestEnemyResetClearsState(t *testing.T) {
	e := newActiveEnemy(10)
	e.TakeDamage(100)
	e.Update(0.05)

	e.Reset(EnemySpec{X: -3, Z: -83, Health: 45, Speed: 8.5, Value: 20})
	if e.Health.Current != 45 || e.Health.Max != 45 {
		t.Errorf("health = %d/%d, want 45/45", e.Health.Current, e.Health.Max)
	}
	if e.Position.X != -3 || e.Position.Z != -83 {
		t.Errorf("position = %+v", e.Position)
	}
	if e.Flash.Active() {
		t.Error("flash should be cleared on reset")
	}
}

// TestEnemyReachedEnd 测试冲线判定
func TestEnemyReachedEnd(t *testing.T) {
	e := newActiveEnemy(30)
	e.Position.Z = 7.5
	if e.ReachedEnd(8) {
		t.Error("enemy at z=7.5 has not reached z=8")
	}
	e.Update(0.1)
	if !e.ReachedEnd(8) {
		t.Errorf("enemy at z=%v should have reached z=8", e.Position.Z)
	}
}
