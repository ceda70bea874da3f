package systems

import (
	"log"
	"math"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/event"
	"github.com/jumofe95/lane-shooter/pkg/utils"
)

// CollisionResult 一帧碰撞结算的结果
type CollisionResult struct {
	ScoreGained   int
	EnemiesKilled int
	BossKilled    bool
	GatesConsumed int
}

// DamageResult 玩家受伤结算的结果
type DamageResult struct {
	Hits        int
	DamageTaken int
	PlayerDied  bool
}

// CollisionSystem 碰撞检测系统
type CollisionSystem struct{}

// NewCollisionSystem 创建碰撞检测系统
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// damagePlayer 玩家受伤的统一入口
func damagePlayer(w *World, source components.DamageSource, amount int, res *DamageResult) bool {
	dead := w.Player.TakeDamage(source, amount)
	res.Hits++
	res.DamageTaken += amount
	w.Events.Dispatch(event.Event{
		Type: event.PlayerDamaged,
		Data: event.PlayerDamagedData{Source: string(source), Amount: amount, Health: w.Player.Health.Current},
	})
	if dead {
		res.PlayerDied = true
	}
	return dead
}

// ResolveEnemiesReachedEnd 冲到玩家面前的敌人造成固定伤害并失活
// 玩家死亡时立即返回，剩余敌人本帧不再结算
func (s *CollisionSystem) ResolveEnemiesReachedEnd(w *World) DamageResult {
	var res DamageResult
	endZ := w.Config.Enemy.EndZ
	for _, e := range w.Enemies {
		if !e.Active || !e.ReachedEnd(endZ) {
			continue
		}
		e.Active = false
		if damagePlayer(w, components.DamageEnemyReachedEnd, w.Config.Enemy.ReachDamage, &res) {
			return res
		}
	}
	return res
}

// ResolveBossProjectiles 检测 Boss 弹幕与玩家的碰撞，命中的弹幕失活
// 玩家死亡时立即返回
func (s *CollisionSystem) ResolveBossProjectiles(w *World) DamageResult {
	var res DamageResult
	p := w.Player
	radius := w.Config.Player.Radius
	for _, proj := range w.BossProjectiles {
		if !proj.CheckPlayerCollision(p.Position.X, p.Position.Z, radius) {
			continue
		}
		proj.Active = false
		if damagePlayer(w, components.DamageBossProjectile, proj.Damage, &res) {
			return res
		}
	}
	return res
}

// Update 子弹与敌人/Boss 的碰撞、玩家穿门
//
// 子弹与敌人按子弹优先、敌人次之的顺序检测，一发子弹在穿透次数内可以同帧命中多个敌人。
func (s *CollisionSystem) Update(w *World) CollisionResult {
	var res CollisionResult
	enemySize := w.Config.Enemy.Size
	bossSize := w.Config.Boss.Size

	for _, b := range w.Bullets {
		if !b.Active || !b.IsPlayerBullet {
			continue
		}

		for _, e := range w.Enemies {
			if !e.Active {
				continue
			}
			if !b.CollidesWith(e.Position, enemySize) {
				continue
			}
			if e.TakeDamage(b.Damage) {
				res.ScoreGained += e.Value
				res.EnemiesKilled++
				w.Events.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Value: e.Value}})
			}
			if !b.OnHit() {
				break
			}
		}

		if b.Active && w.BossActive() && b.CollidesWith(w.Boss.Position, bossSize) {
			boss := w.Boss
			if boss.TakeDamage(b.Damage) {
				res.ScoreGained += boss.Value
				res.BossKilled = true
				log.Printf("[CollisionSystem] level %d boss defeated (+%d)", boss.Level, boss.Value)
				w.Events.Dispatch(event.Event{
					Type: event.BossDefeated,
					Data: event.BossDefeatedData{Level: boss.Level, Value: boss.Value},
				})
			}
			b.OnHit()
		}
	}

	res.GatesConsumed = s.resolveGates(w)
	return res
}

// resolveGates 玩家所在车道的门进入纵深范围时被穿过
func (s *CollisionSystem) resolveGates(w *World) int {
	p := w.Player
	cfg := w.Config
	lane := utils.LaneForX(p.Position.X, cfg.Field.Width, cfg.Field.NumLanes)

	consumed := 0
	for _, g := range w.Gates {
		if !g.Active || g.Lane != lane {
			continue
		}
		if math.Abs(g.Position.Z-p.Position.Z) >= cfg.Gate.HitDepth {
			continue
		}
		p.ApplyModifier(g.Modifier)
		g.Consume()
		consumed++
		log.Printf("[CollisionSystem] gate consumed: %s (lane %d)", g.Modifier.Label, g.Lane)
		w.Events.Dispatch(event.Event{
			Type: event.GateConsumed,
			Data: event.GateConsumedData{Lane: g.Lane, Label: g.Modifier.Label, IsPositive: g.Modifier.IsPositive},
		})
	}
	return consumed
}
