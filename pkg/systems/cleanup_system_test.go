package systems

import (
	"testing"

	"github.com/jumofe95/lane-shooter/pkg/ecs"
	"github.com/jumofe95/lane-shooter/pkg/entities"
)

func TestCleanupSystem_ReleasesAndCompacts(t *testing.T) {
	w := newTestWorld(1)
	s := NewCleanupSystem()

	a := spawnTestEnemy(w, 0, -20, 10)
	b := spawnTestEnemy(w, 2, -20, 10)
	a.Active = false

	bullet := w.SpawnBullet(entities.BulletSpec{Z: -10, Damage: 10, Piercing: 1}, true)
	bullet.Active = false

	s.Update(w)

	if len(w.Enemies) != 1 || w.Enemies[0] != b {
		t.Fatalf("enemies after cleanup = %d, want only the live one", len(w.Enemies))
	}
	if len(w.Bullets) != 0 {
		t.Errorf("bullets after cleanup = %d, want 0", len(w.Bullets))
	}
	if got := w.EM.LiveCount(ecs.KindEnemy); got != 1 {
		t.Errorf("LiveCount(enemy) = %d, want 1", got)
	}
	if got := w.EM.LiveCount(ecs.KindBullet); got != 0 {
		t.Errorf("LiveCount(bullet) = %d, want 0", got)
	}
}

func TestCleanupSystem_PoolReuse(t *testing.T) {
	w := newTestWorld(1)
	s := NewCleanupSystem()
	size := w.EnemyPool.Size()

	e := spawnTestEnemy(w, 0, -20, 10)
	id := e.ID
	e.Active = false
	s.Update(w)

	again := spawnTestEnemy(w, 1, -30, 20)
	if again.ID != id {
		t.Errorf("reused enemy ID = %d, want %d", again.ID, id)
	}
	if again.Health.Current != 20 || again.Position.Z != -30 {
		t.Errorf("reused enemy not reset: health=%d z=%.1f", again.Health.Current, again.Position.Z)
	}
	if w.EnemyPool.Size() != size {
		t.Errorf("pool grew to %d, want %d", w.EnemyPool.Size(), size)
	}
}

func TestCleanupSystem_RemovesDefeatedBoss(t *testing.T) {
	w := newTestWorld(1)
	s := NewCleanupSystem()
	boss := SpawnBoss(w)
	g := w.SpawnGate(entities.GateSpec{Lane: 0, X: -5})

	boss.Active = false
	g.Consume()
	s.Update(w)

	if w.Boss != nil {
		t.Error("inactive boss not removed")
	}
	if len(w.Gates) != 0 {
		t.Errorf("gates = %d, want 0", len(w.Gates))
	}
	if got := w.EM.LiveCount(ecs.KindBoss); got != 0 {
		t.Errorf("LiveCount(boss) = %d, want 0", got)
	}
}
