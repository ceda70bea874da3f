package entities

import (
	"testing"

	"github.com/jumofe95/lane-shooter/pkg/components"
)

func newActiveBullet(piercing int) *Bullet {
	cfg, _ := newTestWorld()
	b := NewBullet()
	b.Reset(BulletSpec{X: 0, Z: -2, Damage: 10, Piercing: piercing}, true, cfg)
	b.Active = true
	return b
}

// TestBulletPierceExhaustion 穿透次数用完时恰好失活
func TestBulletPierceExhaustion(t *testing.T) {
	b := newActiveBullet(3)

	for i := 1; i <= 2; i++ {
		if !b.OnHit() {
			t.Fatalf("bullet deactivated after %d hits, want 3", i)
		}
	}
	if b.OnHit() {
		t.Error("bullet should deactivate on the 3rd hit")
	}
	if b.PiercedCount != 3 {
		t.Errorf("PiercedCount = %d, want 3", b.PiercedCount)
	}
}

// TestBulletOutOfBounds 玩家子弹飞出战场纵深后失活
func TestBulletOutOfBounds(t *testing.T) {
	b := newActiveBullet(1)
	if b.Speed != -50 {
		t.Fatalf("Speed = %v, want -50", b.Speed)
	}

	b.Position.Z = -99.9
	b.Update(0.001)
	if !b.Active {
		t.Fatal("bullet inside the field should stay active")
	}
	b.Update(0.1)
	if b.Active {
		t.Errorf("bullet at z=%v should be inactive", b.Position.Z)
	}
}

// TestEnemyBulletDirection 敌方子弹向玩家方向飞行
func TestEnemyBulletDirection(t *testing.T) {
	cfg, _ := newTestWorld()
	b := NewBullet()
	b.Reset(BulletSpec{Z: 19, Damage: 5, Piercing: 1}, false, cfg)
	b.Active = true

	if b.Speed != 25 {
		t.Fatalf("Speed = %v, want 25", b.Speed)
	}
	b.Update(0.1)
	if b.Active {
		t.Error("enemy bullet past z=20 should be inactive")
	}
}

// TestBulletCollidesWith 测试碰撞判定
func TestBulletCollidesWith(t *testing.T) {
	b := newActiveBullet(1)
	b.Position = components.PositionComponent{X: 0, Z: -20}

	tests := []struct {
		name   string
		target components.PositionComponent
		want   bool
	}{
		{"重合", components.PositionComponent{X: 0, Z: -20}, true},
		{"阈值内", components.PositionComponent{X: 1, Z: -21}, true},
		{"X 超出", components.PositionComponent{X: 1.6, Z: -20}, false},
		{"对角超出", components.PositionComponent{X: 1.2, Z: -21.2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.CollidesWith(tt.target, 1.5); got != tt.want {
				t.Errorf("CollidesWith(%+v) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}
