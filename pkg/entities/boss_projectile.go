package entities

import (
	"math"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
)

// 雨滴落到此高度以下即消失
const rainGroundY = 0.2

// BossProjectile Boss 弹幕
//
// 不同类型的运动方式：
//   - orb: 沿方向直线飞行
//   - wave: 原地扩张的冲击波，以半速缓慢推进
//   - rain: 从高处一边推进一边下落，落到低处才能命中
//   - laser: 直线推进的激光
//   - barrier: 横跨战场的屏障，留有一个可穿过的缺口
type BossProjectile struct {
	ecs.Header

	Position    components.PositionComponent
	Type        components.BossProjectileType
	Damage      int
	DirX, DirZ  float64
	Speed       float64
	Lifetime    float64
	MaxLifetime float64
	Radius      float64 // 基础命中半径
	BoundZ      float64 // 越过此纵深后失活

	WaveGrowth float64 // wave: 半径每秒增长量
	FallSpeed  float64 // rain: 下落速度
	HitY       float64 // rain: 低于此高度才会命中

	GapX         float64 // barrier: 缺口中心
	GapWidth     float64 // barrier: 缺口宽度
	BarrierWidth float64 // barrier: 屏障总宽度
	HitDepth     float64 // barrier: 纵深命中范围
}

// BossProjectileSpec 弹幕初始化参数
type BossProjectileSpec struct {
	Type        components.BossProjectileType
	X, Y, Z     float64
	DirX, DirZ  float64
	Speed       float64
	Damage      int
	MaxLifetime float64
	Radius      float64
	BoundZ      float64

	WaveGrowth float64
	FallSpeed  float64
	HitY       float64

	GapX         float64
	GapWidth     float64
	BarrierWidth float64
	HitDepth     float64
}

// NewBossProjectile 创建弹幕并通知表现层
func NewBossProjectile(em *ecs.EntityManager, spec BossProjectileSpec) *BossProjectile {
	p := &BossProjectile{
		Position:     components.PositionComponent{X: spec.X, Y: spec.Y, Z: spec.Z},
		Type:         spec.Type,
		Damage:       spec.Damage,
		DirX:         spec.DirX,
		DirZ:         spec.DirZ,
		Speed:        spec.Speed,
		MaxLifetime:  spec.MaxLifetime,
		Radius:       spec.Radius,
		BoundZ:       spec.BoundZ,
		WaveGrowth:   spec.WaveGrowth,
		FallSpeed:    spec.FallSpeed,
		HitY:         spec.HitY,
		GapX:         spec.GapX,
		GapWidth:     spec.GapWidth,
		BarrierWidth: spec.BarrierWidth,
		HitDepth:     spec.HitDepth,
	}
	em.Spawn(&p.Header, ecs.KindBossProjectile)
	return p
}

// Update 按类型推进弹幕，超时或越界后失活
func (p *BossProjectile) Update(dt float64) {
	p.Lifetime += dt
	if p.Lifetime >= p.MaxLifetime {
		p.Active = false
		return
	}

	switch p.Type {
	case components.ProjectileOrb:
		p.Position.X += p.DirX * p.Speed * dt
		p.Position.Z += p.DirZ * p.Speed * dt
	case components.ProjectileWave:
		p.Position.Z += p.Speed * dt * 0.5
	case components.ProjectileRain:
		p.Position.Z += p.Speed * dt
		p.Position.Y -= p.FallSpeed * dt
		if p.Position.Y < rainGroundY {
			p.Active = false
		}
	case components.ProjectileLaser, components.ProjectileBarrier:
		p.Position.Z += p.Speed * dt
	}

	if p.Position.Z > p.BoundZ {
		p.Active = false
	}
}

// HitRadius 当前命中半径（冲击波随时间扩张）
func (p *BossProjectile) HitRadius() float64 {
	if p.Type == components.ProjectileWave {
		return 1 + p.Lifetime*p.WaveGrowth
	}
	return p.Radius
}

// CheckPlayerCollision 判断是否命中位于 (x, z) 半径为 radius 的玩家
func (p *BossProjectile) CheckPlayerCollision(x, z, radius float64) bool {
	if !p.Active {
		return false
	}

	switch p.Type {
	case components.ProjectileBarrier:
		if math.Abs(p.Position.Z-z) > p.HitDepth {
			return false
		}
		// 玩家整个身体都在缺口内时安全通过
		gapLeft := p.GapX - p.GapWidth/2
		gapRight := p.GapX + p.GapWidth/2
		if x > gapLeft+radius && x < gapRight-radius {
			return false
		}
		half := p.BarrierWidth / 2
		return x >= p.Position.X-half && x <= p.Position.X+half
	case components.ProjectileRain:
		if p.Position.Y > p.HitY {
			return false
		}
	}

	dx := p.Position.X - x
	dz := p.Position.Z - z
	r := p.HitRadius() + radius
	return dx*dx+dz*dz < r*r
}
