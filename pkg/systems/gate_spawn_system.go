package systems

import (
	"log"

	"github.com/jumofe95/lane-shooter/pkg/entities"
)

// GateSpawnSystem 门生成系统
// 场上没有门时计时，到达随机间隔后生成一组横跨所有车道的门
type GateSpawnSystem struct {
	timer     float64
	nextSpawn float64
}

// NewGateSpawnSystem 创建门生成系统
func NewGateSpawnSystem(w *World) *GateSpawnSystem {
	s := &GateSpawnSystem{}
	s.Reset(w)
	return s
}

// Reset 重置计时并重新抽取生成间隔
func (s *GateSpawnSystem) Reset(w *World) {
	s.timer = 0
	s.nextSpawn = w.RNG.Range(w.Config.Gate.SpawnMin, w.Config.Gate.SpawnMax)
}

// NextSpawn 当前抽取的生成间隔（秒）
func (s *GateSpawnSystem) NextSpawn() float64 {
	return s.nextSpawn
}

// Update 推进计时，返回本帧生成的门
// 场上还有门时计时暂停
func (s *GateSpawnSystem) Update(w *World, dt float64) []*entities.Gate {
	if w.HasActiveGates() {
		return nil
	}

	s.timer += dt
	if s.timer < s.nextSpawn {
		return nil
	}
	s.Reset(w)

	specs := entities.GenerateGateSet(w.Config, w.RNG)
	gates := make([]*entities.Gate, 0, len(specs))
	for _, spec := range specs {
		gates = append(gates, w.SpawnGate(spec))
	}
	log.Printf("[GateSpawnSystem] spawned %d gates", len(gates))
	return gates
}
