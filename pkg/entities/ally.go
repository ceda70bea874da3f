package entities

import (
	"math"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
	"github.com/jumofe95/lane-shooter/pkg/utils"
)

// Ally 盟友实体，跟随玩家阵型并以相同属性射击
type Ally struct {
	ecs.Header

	Index    int
	Position components.PositionComponent
	TargetX  float64
	TargetZ  float64

	// 射击相位偏移（0..1），避免所有盟友同一帧开火
	shootOffset float64
	shootTimer  float64
	cfg         *config.AllyConfig
}

// NewAlly 在指定位置创建第 index 个盟友
// interval 为当前射击间隔，用于初始化射击相位
func NewAlly(em *ecs.EntityManager, cfg *config.GameConfig, index int, x, z, interval float64) *Ally {
	a := &Ally{
		Index:    index,
		Position: components.PositionComponent{X: x, Z: z},
		TargetX:  x,
		TargetZ:  z,
		cfg:      &cfg.Ally,
	}
	a.shootOffset = math.Mod(float64(index)*cfg.Ally.ShootOffsetStep, 1)
	a.shootTimer = a.shootOffset * interval
	em.Spawn(&a.Header, ecs.KindAlly)
	return a
}

// SetTarget 设置阵型槽位
func (a *Ally) SetTarget(x, z float64) {
	a.TargetX = x
	a.TargetZ = z
}

// ShootOffset 射击相位偏移
func (a *Ally) ShootOffset() float64 {
	return a.shootOffset
}

// Update 向阵型槽位平滑移动
func (a *Ally) Update(dt float64) {
	a.Position.X = utils.Approach(a.Position.X, a.TargetX, a.cfg.Smoothing, dt)
	a.Position.Z = utils.Approach(a.Position.Z, a.TargetZ, a.cfg.Smoothing, dt)
	a.shootTimer += dt
}

// TryShoot 按玩家属性射击，射速与玩家相同
func (a *Ally) TryShoot(stats components.PlayerStats) (BulletSpec, bool) {
	if a.shootTimer < stats.ShootInterval() {
		return BulletSpec{}, false
	}
	a.shootTimer = 0
	return BulletSpec{
		X:        a.Position.X + a.cfg.BulletOffsetX,
		Z:        a.Position.Z + a.cfg.BulletOffsetZ,
		Damage:   stats.Damage,
		Piercing: stats.Piercing,
	}, true
}
