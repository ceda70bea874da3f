package main

import (
	"math"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/game"
	"github.com/jumofe95/lane-shooter/pkg/scenes"
	"github.com/jumofe95/lane-shooter/pkg/utils"
)

// 屏障进入这一距离后开始躲避
const barrierAlertDepth = 12.0

// bot 脚本机器人
type bot struct {
	confirmCooldown int
}

func newBot() *bot {
	return &bot{}
}

// Decide 根据当前场景生成一帧输入
func (b *bot) Decide(scene *scenes.GameScene) game.InputSnapshot {
	if scene.Phase() != game.PhasePlaying {
		// 隔帧确认，保证每次都是新的按下
		b.confirmCooldown--
		if b.confirmCooldown <= 0 {
			b.confirmCooldown = 2
			return game.InputSnapshot{Confirm: true}
		}
		return game.InputSnapshot{}
	}
	return game.InputSnapshot{TargetX: b.targetX(scene), HasTargetX: true}
}

// targetX 优先级：躲避屏障 > 正面门 > Boss > 最近的敌人
func (b *bot) targetX(scene *scenes.GameScene) float64 {
	w := scene.World()
	player := w.Player

	for _, p := range w.BossProjectiles {
		if !p.Active || p.Type != components.ProjectileBarrier {
			continue
		}
		if dz := player.Position.Z - p.Position.Z; dz >= 0 && dz < barrierAlertDepth {
			return p.GapX
		}
	}

	if x, ok := positiveGateX(scene); ok {
		return x
	}

	if w.BossActive() {
		return w.Boss.Position.X
	}

	nearest := math.Inf(-1)
	target := player.TargetX
	for _, e := range w.Enemies {
		if e.Active && e.Position.Z > nearest {
			nearest = e.Position.Z
			target = e.Position.X
		}
	}
	return target
}

// positiveGateX 最近一组门中正面门所在车道的中心
func positiveGateX(scene *scenes.GameScene) (float64, bool) {
	w := scene.World()
	cfg := w.Config
	playerZ := w.Player.Position.Z

	found := false
	bestZ := math.Inf(-1)
	x := 0.0
	for _, g := range w.Gates {
		if !g.Active || !g.Modifier.IsPositive || g.Position.Z > playerZ+cfg.Gate.HitDepth {
			continue
		}
		if g.Position.Z > bestZ {
			bestZ = g.Position.Z
			x = utils.LaneCenterX(g.Lane, cfg.Field.Width, cfg.Field.NumLanes)
			found = true
		}
	}
	return x, found
}
