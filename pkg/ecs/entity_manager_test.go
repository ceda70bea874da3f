package ecs

import "testing"

// recordingBinder 记录所有绑定通知
type recordingBinder struct {
	attached []EntityID
	detached []EntityID
}

func (b *recordingBinder) Attach(id EntityID, kind Kind) { b.attached = append(b.attached, id) }
func (b *recordingBinder) Detach(id EntityID, kind Kind) { b.detached = append(b.detached, id) }

type testEntity struct {
	Header
	Value int
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager(nil)
	var a, b testEntity
	id1 := em.CreateEntity(&a.Header, KindEnemy)
	id2 := em.CreateEntity(&b.Header, KindEnemy)

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}

	if a.Kind != KindEnemy {
		t.Errorf("Kind = %v, want %v", a.Kind, KindEnemy)
	}
}

func TestSpawnAndDespawn(t *testing.T) {
	binder := &recordingBinder{}
	em := NewEntityManager(binder)

	var gate testEntity
	id := em.Spawn(&gate.Header, KindGate)

	if !gate.Active {
		t.Error("Spawned entity should be active")
	}
	if len(binder.attached) != 1 || binder.attached[0] != id {
		t.Errorf("attached = %v, want [%d]", binder.attached, id)
	}
	if got := em.LiveCount(KindGate); got != 1 {
		t.Errorf("LiveCount(gate) = %d, want 1", got)
	}

	em.Despawn(&gate.Header)
	// 重复移除不应产生第二次通知
	em.Despawn(&gate.Header)

	if gate.Active {
		t.Error("Despawned entity should be inactive")
	}
	if len(binder.detached) != 1 {
		t.Errorf("detached = %v, want exactly one notification", binder.detached)
	}
	if got := em.LiveCount(KindGate); got != 0 {
		t.Errorf("LiveCount(gate) = %d, want 0", got)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPlayer, "player"},
		{KindBossProjectile, "boss_projectile"},
		{KindGate, "gate"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
