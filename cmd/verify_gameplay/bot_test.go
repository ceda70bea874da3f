package main

import (
	"testing"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/entities"
	"github.com/jumofe95/lane-shooter/pkg/game"
	"github.com/jumofe95/lane-shooter/pkg/scenes"
)

func startedScene(t *testing.T) *scenes.GameScene {
	t.Helper()
	s := scenes.NewGameScene(config.DefaultGameConfig(), scenes.Options{Seed: 1})
	s.Update(frameDT, game.InputSnapshot{Confirm: true})
	if s.Phase() != game.PhasePlaying {
		t.Fatalf("Phase() = %s, want playing", s.Phase())
	}
	return s
}

func TestBot_ConfirmsOutsidePlaying(t *testing.T) {
	s := scenes.NewGameScene(config.DefaultGameConfig(), scenes.Options{Seed: 1})
	b := newBot()
	if in := b.Decide(s); !in.Confirm {
		t.Error("bot did not confirm on start screen")
	}
	if in := b.Decide(s); in.Confirm {
		t.Error("bot confirmed on consecutive frames")
	}
}

func TestBot_FollowsPositiveGate(t *testing.T) {
	s := startedScene(t)
	w := s.World()
	w.SpawnGate(entities.GateSpec{Lane: 0, X: -5, Modifier: components.Modifier{Type: components.ModifierDamage, Value: -5}})
	w.SpawnGate(entities.GateSpec{Lane: 1, X: 5, Modifier: components.Modifier{Type: components.ModifierDamage, Value: 5, IsPositive: true}})

	in := newBot().Decide(s)
	if !in.HasTargetX || in.TargetX != 5 {
		t.Errorf("TargetX = %.1f (has %v), want 5", in.TargetX, in.HasTargetX)
	}
}

func TestBot_DodgesBarrier(t *testing.T) {
	s := startedScene(t)
	w := s.World()
	w.SpawnGate(entities.GateSpec{Lane: 1, X: 5, Modifier: components.Modifier{Type: components.ModifierDamage, Value: 5, IsPositive: true}})
	w.SpawnBossProjectile(entities.BossProjectileSpec{
		Type:         components.ProjectileBarrier,
		Z:            w.Player.Position.Z - 5,
		GapX:         -3,
		GapWidth:     2.5,
		BarrierWidth: 14,
		HitDepth:     1.5,
		MaxLifetime:  5,
		BoundZ:       5,
	})

	if in := newBot().Decide(s); in.TargetX != -3 {
		t.Errorf("TargetX = %.1f, want barrier gap -3", in.TargetX)
	}
}

func TestRun_FinishesWithinBudget(t *testing.T) {
	s := scenes.NewGameScene(config.DefaultGameConfig(), scenes.Options{Seed: 5})
	summaries := run(s, 60*60*30, 1)
	if len(summaries) != 1 {
		t.Fatalf("runs finished = %d, want 1", len(summaries))
	}
	if p := summaries[0].Phase; p != game.PhaseGameOver && p != game.PhaseVictory {
		t.Errorf("final phase = %s, want gameover or victory", p)
	}
}
