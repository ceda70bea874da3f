package systems

import (
	"log"

	"github.com/jumofe95/lane-shooter/pkg/entities"
)

// formationSlots 盟友阵型槽位（相对玩家的偏移，单位为盟友间距）
// 先是左右成对的侧翼，然后是后排
var formationSlots = [...][2]float64{
	{-1, 0.8}, {1, 0.8},
	{-2, 1.6}, {2, 1.6},
	{-0.5, 1.6}, {0.5, 1.6},
	{-1.5, 2.4}, {1.5, 2.4},
	{-0.5, 3.2}, {0.5, 3.2},
}

// 阵型表之外的网格从这一纵深开始
const gridStartDepth = 4.0

// FormationSystem 盟友阵型管理
type FormationSystem struct{}

// NewFormationSystem 创建阵型系统
func NewFormationSystem() *FormationSystem {
	return &FormationSystem{}
}

// SyncAllies 增减盟友使数量与玩家属性一致，并刷新阵型
func (s *FormationSystem) SyncAllies(w *World) {
	target := w.Player.Stats.NumAllies
	current := len(w.Allies)

	if target > current {
		interval := w.Player.Stats.ShootInterval()
		for i := current; i < target; i++ {
			x, z := s.SlotPosition(w, i)
			w.Allies = append(w.Allies, entities.NewAlly(w.EM, w.Config, i, x, z, interval))
		}
		log.Printf("[FormationSystem] allies %d -> %d", current, target)
	} else if target < current {
		for _, a := range w.Allies[target:] {
			w.EM.Despawn(&a.Header)
		}
		for i := target; i < current; i++ {
			w.Allies[i] = nil
		}
		w.Allies = w.Allies[:target]
		log.Printf("[FormationSystem] allies %d -> %d", current, target)
	}

	s.UpdateTargets(w)
}

// UpdateTargets 根据玩家当前位置刷新每个盟友的槽位
func (s *FormationSystem) UpdateTargets(w *World) {
	for i, a := range w.Allies {
		x, z := s.SlotPosition(w, i)
		a.SetTarget(x, z)
	}
}

// SlotPosition 第 index 个盟友的目标位置（世界坐标）
func (s *FormationSystem) SlotPosition(w *World, index int) (float64, float64) {
	spacing := w.Config.Ally.Spacing
	px, pz := w.Player.Position.X, w.Player.Position.Z

	if index < len(formationSlots) {
		slot := formationSlots[index]
		return px + slot[0]*spacing, pz + slot[1]*spacing
	}

	cols := w.Config.Ally.GridColumns
	if cols < 1 {
		cols = 1
	}
	k := index - len(formationSlots)
	col := k % cols
	row := k / cols
	dx := float64(col) - float64(cols-1)/2
	dz := gridStartDepth + float64(row)*0.8
	return px + dx*spacing, pz + dz*spacing
}
