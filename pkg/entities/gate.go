package entities

import (
	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
)

// Gate 属性门，占据一整条车道
type Gate struct {
	ecs.Header

	Position components.PositionComponent
	Lane     int
	Modifier components.Modifier
	Width    float64

	speed    float64
	despawnZ float64
}

// GateSpec 门的生成参数
type GateSpec struct {
	Lane     int
	X        float64
	Modifier components.Modifier
}

// NewGate 在车道中心创建门并通知表现层
func NewGate(em *ecs.EntityManager, cfg *config.GameConfig, spec GateSpec) *Gate {
	g := &Gate{
		Position: components.PositionComponent{X: spec.X, Z: cfg.Gate.SpawnZ},
		Lane:     spec.Lane,
		Modifier: spec.Modifier,
		Width:    cfg.Gate.Width,
		speed:    cfg.Gate.Speed,
		despawnZ: cfg.Gate.DespawnZ,
	}
	em.Spawn(&g.Header, ecs.KindGate)
	return g
}

// Update 向玩家方向移动，越过玩家后失活
func (g *Gate) Update(dt float64) {
	g.Position.Z += g.speed * dt
	if g.Position.Z > g.despawnZ {
		g.Active = false
	}
}

// Consume 玩家穿过门后失活
func (g *Gate) Consume() {
	g.Active = false
}
