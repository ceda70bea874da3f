package ecs

import "log"

// Pool 泛型对象池（arena + 空闲下标列表）
//
// 用于高频创建/销毁的实体（敌人、子弹），避免每波分配造成的 GC 抖动。
//
// 规则：
//   - 每个实例在 arena 中的位置固定，实体ID在复用时保持不变
//   - 失活的实例只属于池本身，不属于任何活动列表
//   - Acquire 时由调用方提供的 reset 函数完整重置实例状态
type Pool[T Pooled] struct {
	name  string
	kind  Kind
	em    *EntityManager
	newFn func() T

	items []T
	free  []int // 空闲实例在 items 中的下标
}

// NewPool 创建对象池
//
// 参数：
//
//	em - 实体管理器（分配ID、通知表现层）
//	kind - 池中实体的种类
//	newFn - 构造一个空实例
func NewPool[T Pooled](em *EntityManager, kind Kind, newFn func() T) *Pool[T] {
	return &Pool[T]{
		name:  kind.String(),
		kind:  kind,
		em:    em,
		newFn: newFn,
		items: make([]T, 0),
		free:  make([]int, 0),
	}
}

// Prewarm 预先创建 count 个失活实例，避免第一波时集中分配
func (p *Pool[T]) Prewarm(count int) {
	for i := 0; i < count; i++ {
		item := p.newItem()
		item.Head().pooled = true
		p.free = append(p.free, item.Head().slot)
	}
	log.Printf("[Pool] prewarmed %s pool: %d instances", p.name, count)
}

// Acquire 取出一个可用实例
//
// 优先复用满足 match 条件的空闲实例（match 为 nil 表示任意实例都可复用），
// 没有可用实例时扩容。返回前调用 reset 完整重置实例，并标记为激活。
func (p *Pool[T]) Acquire(match func(T) bool, reset func(T)) T {
	var item T
	found := false

	for i := len(p.free) - 1; i >= 0; i-- {
		candidate := p.items[p.free[i]]
		if match != nil && !match(candidate) {
			continue
		}
		// 从空闲列表移除（交换删除）
		last := len(p.free) - 1
		p.free[i] = p.free[last]
		p.free = p.free[:last]
		item = candidate
		found = true
		break
	}

	if !found {
		item = p.newItem()
		if len(p.items) > 1 {
			log.Printf("[Pool] %s pool grew to %d instances", p.name, len(p.items))
		}
	}

	h := item.Head()
	id, slot, attached := h.ID, h.slot, h.attached
	if reset != nil {
		reset(item)
	}
	// reset 可能整体覆盖了实例，恢复池管理的字段
	h = item.Head()
	h.ID, h.Kind, h.slot, h.attached = id, p.kind, slot, attached
	h.pooled = false
	h.Active = true
	p.em.attach(h)
	return item
}

// Release 把实例归还到池中：标记失活并通知表现层移除可视对象
// 对已经失活的实例调用不会重复归还
func (p *Pool[T]) Release(item T) {
	h := item.Head()
	if h.slot < 0 || h.slot >= len(p.items) {
		return
	}
	if h.pooled || p.items[h.slot].Head() != h {
		return
	}
	h.Active = false
	h.pooled = true
	p.em.detach(h)
	p.free = append(p.free, h.slot)
}

// ReleaseAll 归还所有未归还的实例（关卡切换时使用）
func (p *Pool[T]) ReleaseAll() {
	for _, item := range p.items {
		p.Release(item)
	}
}

// Size 池中实例总数
func (p *Pool[T]) Size() int {
	return len(p.items)
}

// FreeCount 空闲实例数量
func (p *Pool[T]) FreeCount() int {
	return len(p.free)
}

// ActiveCount 已借出的实例数量
func (p *Pool[T]) ActiveCount() int {
	return len(p.items) - len(p.free)
}

func (p *Pool[T]) newItem() T {
	item := p.newFn()
	h := item.Head()
	p.em.CreateEntity(h, p.kind)
	h.Active = false
	h.slot = len(p.items)
	p.items = append(p.items, item)
	return item
}
