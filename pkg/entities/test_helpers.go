package entities

import (
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
)

// newTestWorld 创建测试用的配置和实体管理器
func newTestWorld() (*config.GameConfig, *ecs.EntityManager) {
	return config.DefaultGameConfig(), ecs.NewEntityManager(nil)
}

// approxEqual 浮点数近似比较
func approxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
