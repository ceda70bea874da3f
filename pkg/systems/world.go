package systems

import (
	"log"

	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
	"github.com/jumofe95/lane-shooter/pkg/entities"
	"github.com/jumofe95/lane-shooter/pkg/event"
	"github.com/jumofe95/lane-shooter/pkg/utils"
)

// World 模拟世界：持有所有实体集合和对象池
//
// 每个激活的实体只属于一个集合；失活的池化实体只属于它的对象池。
// World 由 GameScene 创建并注入到各个系统，不是全局单例。
type World struct {
	Config *config.GameConfig
	Level  config.LevelConfig
	EM     *ecs.EntityManager
	RNG    *utils.RNG
	Events *event.Dispatcher

	Player          *entities.Player
	Allies          []*entities.Ally
	Enemies         []*entities.Enemy
	Bullets         []*entities.Bullet
	Gates           []*entities.Gate
	Boss            *entities.Boss
	BossProjectiles []*entities.BossProjectile

	EnemyPool  *ecs.Pool[*entities.Enemy]
	BulletPool *ecs.Pool[*entities.Bullet]
}

// NewWorld 创建世界：预热对象池并创建玩家
// events 可以为 nil
func NewWorld(cfg *config.GameConfig, em *ecs.EntityManager, rng *utils.RNG, events *event.Dispatcher, level int) *World {
	w := &World{
		Config: cfg,
		Level:  config.NewLevelConfig(cfg, level),
		EM:     em,
		RNG:    rng,
		Events: events,
	}

	w.EnemyPool = ecs.NewPool(em, ecs.KindEnemy, entities.NewEnemy)
	w.BulletPool = ecs.NewPool(em, ecs.KindBullet, entities.NewBullet)
	w.EnemyPool.Prewarm(cfg.Pool.EnemyPrewarm)
	w.BulletPool.Prewarm(cfg.Pool.BulletPrewarm)

	w.Player = entities.NewPlayer(em, cfg)
	return w
}

// SetLevel 进入指定关卡，重新计算关卡参数
func (w *World) SetLevel(level int) {
	w.Level = config.NewLevelConfig(w.Config, level)
	log.Printf("[World] level %d: enemyHealth=%d enemySpeed=%.1f perWave=%d interval=%.2fs bossHealth=%d",
		w.Level.Level, w.Level.EnemyHealth, w.Level.EnemySpeed, w.Level.EnemiesPerWave,
		w.Level.WaveInterval, w.Level.BossHealth)
}

// SpawnEnemy 从对象池取出一个敌人并加入敌人集合
func (w *World) SpawnEnemy(spec entities.EnemySpec) *entities.Enemy {
	e := w.EnemyPool.Acquire(nil, func(e *entities.Enemy) { e.Reset(spec) })
	w.Enemies = append(w.Enemies, e)
	return e
}

// SpawnBullet 从对象池取出一发子弹并加入子弹集合
// 优先复用同一阵营的子弹实例
func (w *World) SpawnBullet(spec entities.BulletSpec, isPlayer bool) *entities.Bullet {
	b := w.BulletPool.Acquire(
		func(b *entities.Bullet) bool { return b.IsPlayerBullet == isPlayer },
		func(b *entities.Bullet) { b.Reset(spec, isPlayer, w.Config) },
	)
	w.Bullets = append(w.Bullets, b)
	return b
}

// SpawnBossProjectile 创建 Boss 弹幕并加入弹幕集合
func (w *World) SpawnBossProjectile(spec entities.BossProjectileSpec) *entities.BossProjectile {
	p := entities.NewBossProjectile(w.EM, spec)
	w.BossProjectiles = append(w.BossProjectiles, p)
	return p
}

// SpawnGate 创建门并加入门集合
func (w *World) SpawnGate(spec entities.GateSpec) *entities.Gate {
	g := entities.NewGate(w.EM, w.Config, spec)
	w.Gates = append(w.Gates, g)
	return g
}

// HasActiveGates 是否还有未消失的门
func (w *World) HasActiveGates() bool {
	for _, g := range w.Gates {
		if g.Active {
			return true
		}
	}
	return false
}

// ActiveEnemyCount 激活的敌人数量
func (w *World) ActiveEnemyCount() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Active {
			n++
		}
	}
	return n
}

// BossActive 当前是否有存活的 Boss
func (w *World) BossActive() bool {
	return w.Boss != nil && w.Boss.Active
}

// ClearLevel 清除关卡内的实体（敌人、子弹、门、Boss、弹幕）
// 玩家和盟友保留
func (w *World) ClearLevel() {
	for _, e := range w.Enemies {
		w.EnemyPool.Release(e)
	}
	w.Enemies = w.Enemies[:0]
	w.EnemyPool.ReleaseAll()

	for _, b := range w.Bullets {
		w.BulletPool.Release(b)
	}
	w.Bullets = w.Bullets[:0]
	w.BulletPool.ReleaseAll()

	for _, g := range w.Gates {
		w.EM.Despawn(&g.Header)
	}
	w.Gates = w.Gates[:0]

	for _, p := range w.BossProjectiles {
		w.EM.Despawn(&p.Header)
	}
	w.BossProjectiles = w.BossProjectiles[:0]

	if w.Boss != nil {
		w.EM.Despawn(&w.Boss.Header)
		w.Boss = nil
	}
}

// ClearAllies 移除所有盟友
func (w *World) ClearAllies() {
	for _, a := range w.Allies {
		w.EM.Despawn(&a.Header)
	}
	w.Allies = w.Allies[:0]
}

// UpdateAll 推进集合中所有激活的实体
func UpdateAll[T entities.Updatable](items []T, dt float64) {
	for _, item := range items {
		if item.Head().Active {
			item.Update(dt)
		}
	}
}
