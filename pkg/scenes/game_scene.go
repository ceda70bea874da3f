package scenes

import (
	"log"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
	"github.com/jumofe95/lane-shooter/pkg/event"
	"github.com/jumofe95/lane-shooter/pkg/game"
	"github.com/jumofe95/lane-shooter/pkg/systems"
	"github.com/jumofe95/lane-shooter/pkg/utils"
)

// Options GameScene 的可选参数
type Options struct {
	Seed       int64             // 随机种子，0 表示按时间取种
	Binder     ecs.VisualBinder  // 表现层绑定器，nil 时无头运行
	Dispatcher *event.Dispatcher // 事件分发器，nil 时内部创建
	StartLevel int               // 开局关卡（调试用），0 表示第1关
}

// GameScene 游戏主场景：持有世界、各系统和游戏状态，按固定顺序推进一帧
//
// 场景本身不依赖任何渲染库，宿主（桌面窗口、终端、无头脚本）负责采样输入、
// 提供帧间隔并根据 VisualBinder 通知绘制实体。
type GameScene struct {
	cfg    *config.GameConfig
	em     *ecs.EntityManager
	rng    *utils.RNG
	events *event.Dispatcher
	state  *game.GameState
	world  *systems.World

	waveSpawner *systems.WaveSpawnSystem
	gateSpawner *systems.GateSpawnSystem
	bossAttacks *systems.BossAttackSystem
	collisions  *systems.CollisionSystem
	formation   *systems.FormationSystem
	cleanup     *systems.CleanupSystem
}

// NewGameScene 创建游戏场景，初始处于标题阶段
func NewGameScene(cfg *config.GameConfig, opts Options) *GameScene {
	events := opts.Dispatcher
	if events == nil {
		events = event.NewDispatcher()
	}
	startLevel := opts.StartLevel
	if startLevel < 1 || startLevel > cfg.Level.MaxLevel {
		startLevel = 1
	}

	em := ecs.NewEntityManager(opts.Binder)
	rng := utils.NewRNG(opts.Seed)
	state := game.NewGameState(cfg.Level.MaxLevel, startLevel, events)
	world := systems.NewWorld(cfg, em, rng, events, startLevel)

	s := &GameScene{
		cfg:         cfg,
		em:          em,
		rng:         rng,
		events:      events,
		state:       state,
		world:       world,
		waveSpawner: systems.NewWaveSpawnSystem(),
		gateSpawner: systems.NewGateSpawnSystem(world),
		bossAttacks: systems.NewBossAttackSystem(),
		collisions:  systems.NewCollisionSystem(),
		formation:   systems.NewFormationSystem(),
		cleanup:     systems.NewCleanupSystem(),
	}
	s.formation.SyncAllies(world)

	log.Printf("[GameScene] created (seed %d, start level %d/%d)", rng.Seed(), startLevel, cfg.Level.MaxLevel)
	return s
}

// Update 推进一帧
//
// dt 会被限制在 MaxDeltaTime 以内。确认输入先于模拟处理，
// 只有 playing 阶段才推进模拟。
func (s *GameScene) Update(dt float64, in game.InputSnapshot) {
	if dt < 0 {
		dt = 0
	}
	if s.cfg.MaxDeltaTime > 0 && dt > s.cfg.MaxDeltaTime {
		dt = s.cfg.MaxDeltaTime
	}

	if in.Confirm {
		s.handleConfirm()
	}
	if !s.state.IsPlaying() {
		return
	}
	s.step(dt, in)
}

// step 一帧模拟，顺序固定
func (s *GameScene) step(dt float64, in game.InputSnapshot) {
	w := s.world
	player := w.Player

	// 1. 移动输入
	if in.HasTargetX {
		player.SetTargetX(in.TargetX)
	} else if axis := in.ClampedAxis(); axis != 0 {
		player.Move(axis, dt)
	}

	// 2. 玩家自动射击
	player.Update(dt)
	if spec, ok := player.TryShoot(); ok {
		w.SpawnBullet(spec, true)
	}

	// 3. 盟友跟随并射击
	for _, a := range w.Allies {
		a.Update(dt)
		if spec, ok := a.TryShoot(player.Stats); ok {
			w.SpawnBullet(spec, true)
		}
	}

	// 4. 子弹
	systems.UpdateAll(w.Bullets, dt)

	// 5. 波次
	if !w.BossActive() && !s.waveSpawner.IsBossTime(w) {
		if s.waveSpawner.Update(w, dt) > 0 {
			s.state.Wave = s.waveSpawner.Wave()
		}
	}

	// 6. 波次打完且场上清空后出现 Boss
	if s.waveSpawner.IsBossTime(w) && w.ActiveEnemyCount() == 0 && !w.BossActive() && !s.waveSpawner.Paused() {
		boss := systems.SpawnBoss(w)
		s.waveSpawner.Pause()
		s.state.AttackName = boss.AttackType.DisplayName()
	}

	// 7. 敌人前进，冲到玩家面前的造成伤害
	systems.UpdateAll(w.Enemies, dt)
	if res := s.collisions.ResolveEnemiesReachedEnd(w); res.PlayerDied {
		s.onPlayerDied(components.DamageEnemyReachedEnd)
		return
	}

	// 8. Boss 移动与攻击
	if w.BossActive() {
		w.Boss.Update(dt)
		s.bossAttacks.Update(w, dt)
	}

	// 9. Boss 弹幕
	systems.UpdateAll(w.BossProjectiles, dt)
	if res := s.collisions.ResolveBossProjectiles(w); res.PlayerDied {
		s.onPlayerDied(components.DamageBossProjectile)
		return
	}

	// 10-11. 门
	s.gateSpawner.Update(w, dt)
	systems.UpdateAll(w.Gates, dt)

	// 12. 碰撞结算
	res := s.collisions.Update(w)
	s.state.AddScore(res.ScoreGained)
	if res.GatesConsumed > 0 {
		s.formation.SyncAllies(w)
	}
	if res.BossKilled {
		s.onBossDefeated()
	}

	// 13. 阵型
	s.formation.UpdateTargets(w)

	// 14. 清理
	s.cleanup.Update(w)
}

func (s *GameScene) handleConfirm() {
	switch s.state.Confirm() {
	case game.ConfirmStartRun, game.ConfirmRestart:
		s.resetRun()
	case game.ConfirmNextLevel:
		s.world.Player.Regenerate(s.cfg.Player.LevelRegenFraction)
		s.enterLevel(s.state.Level)
	}
}

// resetRun 完整重开：玩家属性、生命值、盟友全部回到开局状态
func (s *GameScene) resetRun() {
	w := s.world
	w.ClearAllies()
	w.Player.Reset()
	s.enterLevel(s.state.Level)
}

// enterLevel 进入关卡：清除关卡内实体，重新计算关卡参数并重置生成器
// 玩家属性和盟友保留
func (s *GameScene) enterLevel(level int) {
	w := s.world
	w.ClearLevel()
	w.SetLevel(level)
	w.Player.ResetPosition()

	s.waveSpawner.Reset()
	s.gateSpawner.Reset(w)
	s.formation.SyncAllies(w)

	s.events.Dispatch(event.Event{Type: event.LevelStarted, Data: event.LevelStartedData{Level: level}})
}

func (s *GameScene) onPlayerDied(source components.DamageSource) {
	log.Printf("[GameScene] player died (%s) at level %d wave %d, score %d",
		source, s.state.Level, s.state.Wave, s.state.Score)
	s.state.PlayerDied()
}

func (s *GameScene) onBossDefeated() {
	next := s.state.BossDefeated()
	log.Printf("[GameScene] level %d cleared -> %s", s.state.Level, next)
}

// AdminSetStats 直接设置玩家属性（调试用），同样受下限约束并刷新阵型
func (s *GameScene) AdminSetStats(stats components.PlayerStats) {
	s.world.Player.SetStats(stats)
	s.formation.SyncAllies(s.world)
}

// Score 当前得分
func (s *GameScene) Score() int { return s.state.Score }

// Level 当前关卡
func (s *GameScene) Level() int { return s.state.Level }

// MaxLevel 最后一关
func (s *GameScene) MaxLevel() int { return s.state.MaxLevel }

// Phase 当前阶段
func (s *GameScene) Phase() game.Phase { return s.state.Phase() }

// Wave 当前关卡已出现的波数
func (s *GameScene) Wave() int { return s.state.Wave }

// AttackName 当前 Boss 攻击名称，没有 Boss 时为空
func (s *GameScene) AttackName() string { return s.state.AttackName }

// PlayerStats 玩家当前属性
func (s *GameScene) PlayerStats() components.PlayerStats { return s.world.Player.Stats }

// PlayerHealthPercent 玩家生命值百分比（0.0 - 1.0）
func (s *GameScene) PlayerHealthPercent() float64 { return s.world.Player.HealthPercent() }

// BossActive 是否有存活的 Boss
func (s *GameScene) BossActive() bool { return s.world.BossActive() }

// BossHealthPercent Boss 生命值百分比，没有 Boss 时为 0
func (s *GameScene) BossHealthPercent() float64 {
	if !s.world.BossActive() {
		return 0
	}
	return s.world.Boss.HealthPercent()
}

// World 模拟世界（渲染层只读）
func (s *GameScene) World() *systems.World { return s.world }

// Config 游戏配置
func (s *GameScene) Config() *config.GameConfig { return s.cfg }

// Events 事件分发器，宿主通过它订阅阶段切换等事件
func (s *GameScene) Events() *event.Dispatcher { return s.events }
