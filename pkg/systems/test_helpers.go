package systems

import (
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
	"github.com/jumofe95/lane-shooter/pkg/event"
	"github.com/jumofe95/lane-shooter/pkg/utils"
)

// newTestWorld 创建使用默认配置、固定种子的测试世界
func newTestWorld(level int) *World {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager(nil)
	return NewWorld(cfg, em, utils.NewRNG(42), event.NewDispatcher(), level)
}

// recordEvents 记录指定类型的所有事件
func recordEvents(w *World, eventType event.EventType) *[]event.Event {
	var got []event.Event
	w.Events.SubscribeFunc(eventType, func(e event.Event) {
		got = append(got, e)
	})
	return &got
}

// countActiveEnemies 统计激活的敌人
func countActiveEnemies(w *World) int {
	return w.ActiveEnemyCount()
}
