package systems

import "github.com/jumofe95/lane-shooter/pkg/ecs"

// CleanupSystem 每帧末尾清理失活实体
// 池化实体归还对象池，其余实体通知表现层移除，集合原地压缩
type CleanupSystem struct{}

// NewCleanupSystem 创建清理系统
func NewCleanupSystem() *CleanupSystem {
	return &CleanupSystem{}
}

// Update 清理所有集合
func (s *CleanupSystem) Update(w *World) {
	w.Enemies = compactPooled(w.Enemies, w.EnemyPool)
	w.Bullets = compactPooled(w.Bullets, w.BulletPool)
	w.Gates = compactSpawned(w.Gates, w.EM)
	w.BossProjectiles = compactSpawned(w.BossProjectiles, w.EM)

	if w.Boss != nil && !w.Boss.Active {
		w.EM.Despawn(&w.Boss.Header)
		w.Boss = nil
	}
}

// compactPooled 原地移除失活实例并归还对象池
func compactPooled[T ecs.Pooled](items []T, pool *ecs.Pool[T]) []T {
	n := 0
	for _, item := range items {
		if item.Head().Active {
			items[n] = item
			n++
			continue
		}
		pool.Release(item)
	}
	clearTail(items, n)
	return items[:n]
}

// compactSpawned 原地移除失活实体并通知表现层
func compactSpawned[T ecs.Pooled](items []T, em *ecs.EntityManager) []T {
	n := 0
	for _, item := range items {
		if item.Head().Active {
			items[n] = item
			n++
			continue
		}
		em.Despawn(item.Head())
	}
	clearTail(items, n)
	return items[:n]
}

// clearTail 清空被截掉的部分，避免底层数组继续引用已移除的实体
func clearTail[T any](items []T, n int) {
	var zero T
	for i := n; i < len(items); i++ {
		items[i] = zero
	}
}
