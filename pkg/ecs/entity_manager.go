package ecs

import "log"

// EntityID 是实体的唯一标识符
type EntityID uint64

// InvalidEntityID 0 保留为无效ID
const InvalidEntityID EntityID = 0

// Kind 实体种类（封闭集合）
type Kind int

const (
	KindPlayer Kind = iota
	KindAlly
	KindEnemy
	KindBoss
	KindBullet
	KindBossProjectile
	KindGate

	kindCount
)

var kindNames = [...]string{
	KindPlayer:         "player",
	KindAlly:           "ally",
	KindEnemy:          "enemy",
	KindBoss:           "boss",
	KindBullet:         "bullet",
	KindBossProjectile: "boss_projectile",
	KindGate:           "gate",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Header 所有实体共用的头部数据
// 各实体类型通过嵌入 Header 获得 ID、种类和激活标志
type Header struct {
	ID     EntityID
	Kind   Kind
	Active bool

	slot     int  // 在所属对象池中的下标，-1 表示不属于任何池
	attached bool // 表现层是否持有该实体的可视对象
	pooled   bool // 是否处于对象池的空闲列表中
}

// Head 返回实体头部（满足 Pooled 接口）
func (h *Header) Head() *Header { return h }

// Pooled 可以被 EntityManager / Pool 管理的实体
type Pooled interface {
	Head() *Header
}

// VisualBinder 表现层绑定接口
// 核心逻辑只负责在实体出现/消失时发出通知，不关心可视对象是什么
type VisualBinder interface {
	Attach(id EntityID, kind Kind)
	Detach(id EntityID, kind Kind)
}

// NopBinder 不做任何事情的绑定器（无头运行、测试）
type NopBinder struct{}

func (NopBinder) Attach(EntityID, Kind) {}
func (NopBinder) Detach(EntityID, Kind) {}

// EntityManager 负责分配实体ID，并把实体的出现/消失通知给表现层
type EntityManager struct {
	nextID uint64
	binder VisualBinder
	// 每种实体当前挂在表现层上的数量
	live [kindCount]int
}

// NewEntityManager 创建一个新的 EntityManager 实例
// binder 为 nil 时使用 NopBinder
func NewEntityManager(binder VisualBinder) *EntityManager {
	if binder == nil {
		binder = NopBinder{}
	}
	return &EntityManager{
		nextID: 1, // ID从1开始,0保留为无效ID
		binder: binder,
	}
}

// SetBinder 替换表现层绑定器
func (em *EntityManager) SetBinder(binder VisualBinder) {
	if binder == nil {
		binder = NopBinder{}
	}
	em.binder = binder
}

// CreateEntity 为实体头部分配新ID（不通知表现层）
func (em *EntityManager) CreateEntity(h *Header, kind Kind) EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	h.ID = id
	h.Kind = kind
	h.slot = -1
	return id
}

// Spawn 为非池化实体分配ID、标记激活并通知表现层
func (em *EntityManager) Spawn(h *Header, kind Kind) EntityID {
	id := em.CreateEntity(h, kind)
	h.Active = true
	em.attach(h)
	return id
}

// Despawn 标记实体失活并通知表现层移除可视对象
// 对已经移除的实体重复调用是安全的
func (em *EntityManager) Despawn(h *Header) {
	h.Active = false
	em.detach(h)
}

// LiveCount 返回指定种类当前挂在表现层上的实体数量
func (em *EntityManager) LiveCount(kind Kind) int {
	if kind < 0 || kind >= kindCount {
		return 0
	}
	return em.live[kind]
}

func (em *EntityManager) attach(h *Header) {
	if h.attached {
		return
	}
	h.attached = true
	em.live[h.Kind]++
	em.binder.Attach(h.ID, h.Kind)
}

func (em *EntityManager) detach(h *Header) {
	if !h.attached {
		return
	}
	h.attached = false
	em.live[h.Kind]--
	if em.live[h.Kind] < 0 {
		log.Printf("[EntityManager] WARNING: live count for %s dropped below zero", h.Kind)
		em.live[h.Kind] = 0
	}
	em.binder.Detach(h.ID, h.Kind)
}
