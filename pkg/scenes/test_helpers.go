package scenes

import (
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
	"github.com/jumofe95/lane-shooter/pkg/game"
)

const testFrame = 1.0 / 60

// countingBinder 统计表现层收到的挂载/移除通知
type countingBinder struct {
	attached map[ecs.Kind]int
	detached map[ecs.Kind]int
}

func newCountingBinder() *countingBinder {
	return &countingBinder{
		attached: make(map[ecs.Kind]int),
		detached: make(map[ecs.Kind]int),
	}
}

func (b *countingBinder) Attach(_ ecs.EntityID, kind ecs.Kind) { b.attached[kind]++ }
func (b *countingBinder) Detach(_ ecs.EntityID, kind ecs.Kind) { b.detached[kind]++ }

// newTestScene 创建使用默认配置、固定种子的场景
func newTestScene(startLevel int) *GameScene {
	return NewGameScene(config.DefaultGameConfig(), Options{Seed: 7, StartLevel: startLevel})
}

// startedScene 创建并确认开始的场景
func startedScene(startLevel int) *GameScene {
	s := newTestScene(startLevel)
	s.Update(testFrame, game.InputSnapshot{Confirm: true})
	return s
}

var idle = game.InputSnapshot{}
