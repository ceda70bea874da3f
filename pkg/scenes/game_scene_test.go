package scenes

import (
	"testing"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
	"github.com/jumofe95/lane-shooter/pkg/entities"
	"github.com/jumofe95/lane-shooter/pkg/event"
	"github.com/jumofe95/lane-shooter/pkg/game"
	"github.com/jumofe95/lane-shooter/pkg/systems"
)

func TestGameScene_StartPhaseIdle(t *testing.T) {
	s := newTestScene(0)
	if s.Phase() != game.PhaseStart {
		t.Fatalf("Phase() = %s, want start", s.Phase())
	}

	for i := 0; i < 600; i++ {
		s.Update(testFrame, idle)
	}
	if n := len(s.World().Enemies); n != 0 {
		t.Errorf("enemies spawned before start: %d", n)
	}

	s.Update(testFrame, game.InputSnapshot{Confirm: true})
	if s.Phase() != game.PhasePlaying {
		t.Errorf("Phase() after confirm = %s, want playing", s.Phase())
	}
}

func TestGameScene_DeltaTimeClamped(t *testing.T) {
	s := startedScene(0)

	// 单帧 5 秒应按 0.1 秒处理，不足以触发第一波
	s.Update(5, idle)
	if s.Wave() != 0 {
		t.Errorf("Wave() = %d after clamped frame, want 0", s.Wave())
	}
}

func TestGameScene_WavesThenBoss(t *testing.T) {
	s := startedScene(0)
	w := s.World()
	spawned := 0
	s.Events().SubscribeFunc(event.BossSpawned, func(event.Event) { spawned++ })

	// 每帧清空敌人，只推进波次计时
	for i := 0; i < 2000 && s.Wave() < w.Level.WavesBeforeBoss; i++ {
		for _, e := range w.Enemies {
			e.Active = false
		}
		s.Update(0.1, idle)
	}
	if s.Wave() != w.Level.WavesBeforeBoss {
		t.Fatalf("Wave() = %d, want %d", s.Wave(), w.Level.WavesBeforeBoss)
	}
	if s.BossActive() {
		t.Fatal("boss spawned while enemies remain")
	}

	// 清空场上敌人后 Boss 出现
	for _, e := range w.Enemies {
		e.Active = false
	}
	s.Update(testFrame, idle)
	s.Update(testFrame, idle)
	if !s.BossActive() || spawned != 1 {
		t.Fatalf("BossActive() = %v, BossSpawned events = %d, want true/1", s.BossActive(), spawned)
	}
	if s.AttackName() == "" {
		t.Error("AttackName() empty with boss active")
	}
	if p := s.BossHealthPercent(); p <= 0 || p > 1 {
		t.Errorf("BossHealthPercent() = %.2f, want (0, 1]", p)
	}
}

func TestGameScene_GameOverAfterSevenEnemies(t *testing.T) {
	s := startedScene(0)
	w := s.World()

	for i := 0; i < 7; i++ {
		w.SpawnEnemy(entities.EnemySpec{Z: w.Config.Enemy.EndZ + 0.5, Health: 30, Speed: 8, Value: 10})
	}
	s.Update(testFrame, idle)

	if s.Phase() != game.PhaseGameOver {
		t.Fatalf("Phase() = %s, want gameover", s.Phase())
	}
	if s.PlayerHealthPercent() != 0 {
		t.Errorf("PlayerHealthPercent() = %.2f, want 0", s.PlayerHealthPercent())
	}

	// 游戏结束后不再推进模拟
	before := len(w.Enemies)
	s.Update(10, idle)
	if len(w.Enemies) != before {
		t.Errorf("simulation advanced after gameover")
	}
}

func TestGameScene_SixEnemiesSurvivable(t *testing.T) {
	s := startedScene(0)
	w := s.World()
	for i := 0; i < 6; i++ {
		w.SpawnEnemy(entities.EnemySpec{Z: w.Config.Enemy.EndZ + 0.5, Health: 30, Speed: 8, Value: 10})
	}
	s.Update(testFrame, idle)

	if s.Phase() != game.PhasePlaying {
		t.Fatalf("Phase() = %s, want playing", s.Phase())
	}
	if got := w.Player.Health.Current; got != 10 {
		t.Errorf("player health = %d, want 10", got)
	}
	if len(w.Enemies) != 0 {
		t.Errorf("reached-end enemies not cleaned up: %d", len(w.Enemies))
	}
}

// killBoss 生成 Boss 并让一发子弹将其击败
func killBoss(s *GameScene) int {
	w := s.World()
	boss := systems.SpawnBoss(w)
	boss.Health.Current = 1
	w.SpawnBullet(entities.BulletSpec{X: boss.Position.X, Z: boss.Position.Z, Damage: 10, Piercing: 1}, true)
	s.Update(testFrame, idle)
	return boss.Value
}

func TestGameScene_LevelComplete(t *testing.T) {
	s := startedScene(0)
	w := s.World()

	value := killBoss(s)
	if s.Phase() != game.PhaseLevelComplete {
		t.Fatalf("Phase() = %s, want levelComplete", s.Phase())
	}
	if s.Score() != value {
		t.Errorf("Score() = %d, want %d", s.Score(), value)
	}
	if w.Boss != nil {
		t.Error("defeated boss not cleaned up")
	}

	w.Player.Health.Current = 50
	w.SpawnEnemy(entities.EnemySpec{Z: -40, Health: 30, Speed: 8, Value: 10})
	s.Update(testFrame, game.InputSnapshot{Confirm: true})

	if s.Phase() != game.PhasePlaying || s.Level() != 2 {
		t.Fatalf("after confirm: phase=%s level=%d, want playing/2", s.Phase(), s.Level())
	}
	if got := w.Player.Health.Current; got != 80 {
		t.Errorf("player health = %d, want 80 (30%% regen)", got)
	}
	if w.Level.Level != 2 {
		t.Errorf("world level = %d, want 2", w.Level.Level)
	}
	if len(w.Enemies) != 0 {
		t.Errorf("enemies carried into next level: %d", len(w.Enemies))
	}
	if s.Wave() != 0 || s.AttackName() != "" {
		t.Errorf("level progress not reset: wave=%d attack=%q", s.Wave(), s.AttackName())
	}
	if s.Score() != value {
		t.Errorf("score not kept across levels: %d", s.Score())
	}
}

func TestGameScene_VictoryAndRestart(t *testing.T) {
	s := startedScene(10)
	w := s.World()
	w.Player.SetStats(components.PlayerStats{NumAllies: 3, FireRate: 5, Damage: 20, Piercing: 2})

	killBoss(s)
	if s.Phase() != game.PhaseVictory {
		t.Fatalf("Phase() = %s, want victory", s.Phase())
	}

	s.Update(testFrame, game.InputSnapshot{Confirm: true})
	if s.Phase() != game.PhasePlaying {
		t.Fatalf("Phase() after restart = %s, want playing", s.Phase())
	}
	if s.Level() != 10 || s.Score() != 0 {
		t.Errorf("after restart: level=%d score=%d, want 10/0", s.Level(), s.Score())
	}
	stats := s.PlayerStats()
	if stats.Damage != w.Config.Player.StartDamage || stats.NumAllies != w.Config.Player.StartAllies {
		t.Errorf("stats not reset: %+v", stats)
	}
	if s.PlayerHealthPercent() != 1 {
		t.Errorf("PlayerHealthPercent() = %.2f, want 1", s.PlayerHealthPercent())
	}
}

func TestGameScene_RestartAfterGameOver(t *testing.T) {
	s := startedScene(0)
	w := s.World()
	s.AdminSetStats(components.PlayerStats{NumAllies: 4, FireRate: 3, Damage: 10, Piercing: 1})
	s.World().Player.Health.Current = 10
	w.SpawnEnemy(entities.EnemySpec{Z: w.Config.Enemy.EndZ + 1, Health: 30, Speed: 8, Value: 10})
	s.Update(testFrame, idle)
	if s.Phase() != game.PhaseGameOver {
		t.Fatalf("Phase() = %s, want gameover", s.Phase())
	}

	s.Update(testFrame, game.InputSnapshot{Confirm: true})
	if s.Phase() != game.PhasePlaying || s.Level() != 1 {
		t.Fatalf("after restart: phase=%s level=%d", s.Phase(), s.Level())
	}
	if len(w.Allies) != w.Config.Player.StartAllies {
		t.Errorf("allies = %d, want %d", len(w.Allies), w.Config.Player.StartAllies)
	}
	if len(w.Enemies) != 0 {
		t.Errorf("enemies = %d, want 0", len(w.Enemies))
	}
}

func TestGameScene_GateScenario(t *testing.T) {
	s := startedScene(0)
	w := s.World()
	w.Player.Position.X = -5
	w.Player.SetTargetX(-5)

	left := w.SpawnGate(entities.GateSpec{
		Lane:     0,
		X:        -5,
		Modifier: components.Modifier{Type: components.ModifierAddAllies, Value: 2, Label: "+2 Allies", IsPositive: true},
	})
	right := w.SpawnGate(entities.GateSpec{
		Lane:     1,
		X:        5,
		Modifier: components.Modifier{Type: components.ModifierFireRate, Value: -0.3, Label: "-0.3 Fire Rate"},
	})
	left.Position.Z = w.Player.Position.Z
	right.Position.Z = w.Player.Position.Z

	s.Update(testFrame, idle)

	if got := s.PlayerStats().NumAllies; got != 2 {
		t.Errorf("NumAllies = %d, want 2", got)
	}
	if len(w.Allies) != 2 {
		t.Errorf("allies = %d, want 2", len(w.Allies))
	}
	if !right.Active {
		t.Error("gate in the other lane was consumed")
	}
	if len(w.Gates) != 1 {
		t.Errorf("gates = %d, want 1", len(w.Gates))
	}
	if got := s.PlayerStats().FireRate; got != w.Config.Player.StartFireRate {
		t.Errorf("FireRate = %.2f, want %.2f", got, w.Config.Player.StartFireRate)
	}
}

func TestGameScene_AdminSetStatsClamps(t *testing.T) {
	s := startedScene(0)
	s.AdminSetStats(components.PlayerStats{NumAllies: 3, FireRate: 0.1, Damage: 0, Piercing: 0})

	stats := s.PlayerStats()
	if stats.FireRate != components.MinFireRate || stats.Damage != components.MinDamage || stats.Piercing != components.MinPiercing {
		t.Errorf("stats not clamped: %+v", stats)
	}
	if len(s.World().Allies) != 3 {
		t.Errorf("allies = %d, want 3", len(s.World().Allies))
	}
}

func TestGameScene_BinderBalanced(t *testing.T) {
	binder := newCountingBinder()
	s := NewGameScene(config.DefaultGameConfig(), Options{Seed: 3, Binder: binder})
	s.Update(testFrame, game.InputSnapshot{Confirm: true})

	// 连续运行一段时间后重开，所有关卡实体都应被移除
	for i := 0; i < 1200; i++ {
		s.Update(testFrame, game.InputSnapshot{MoveAxis: 1})
		if !s.state.IsPlaying() {
			break
		}
	}
	s.World().Player.Health.Current = 1
	s.World().SpawnEnemy(entities.EnemySpec{Z: 20, Health: 1, Speed: 1, Value: 1})
	s.Update(testFrame, idle)
	s.Update(testFrame, game.InputSnapshot{Confirm: true})

	for _, kind := range []ecs.Kind{ecs.KindEnemy, ecs.KindBullet, ecs.KindGate, ecs.KindBoss, ecs.KindBossProjectile} {
		if live := binder.attached[kind] - binder.detached[kind]; live != s.em.LiveCount(kind) {
			t.Errorf("%s: binder live %d, manager live %d", kind, live, s.em.LiveCount(kind))
		}
		if kind != ecs.KindBullet && s.em.LiveCount(kind) != 0 {
			t.Errorf("%s still attached after restart: %d", kind, s.em.LiveCount(kind))
		}
	}
	if binder.attached[ecs.KindPlayer] != 1 {
		t.Errorf("player attached %d times, want 1", binder.attached[ecs.KindPlayer])
	}
}
