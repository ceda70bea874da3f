package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
	"github.com/jumofe95/lane-shooter/pkg/systems"
)

var (
	backgroundColor  = color.RGBA{R: 24, G: 26, B: 38, A: 255}
	laneColor        = color.RGBA{R: 40, G: 44, B: 64, A: 255}
	laneDividerColor = color.RGBA{R: 90, G: 96, B: 130, A: 255}
	playerColor      = color.RGBA{R: 80, G: 170, B: 255, A: 255}
	allyColor        = color.RGBA{R: 120, G: 210, B: 255, A: 255}
	enemyColor       = color.RGBA{R: 230, G: 80, B: 70, A: 255}
	bossColor        = color.RGBA{R: 170, G: 60, B: 200, A: 255}
	bulletColor      = color.RGBA{R: 255, G: 240, B: 120, A: 255}
	projectileColor  = color.RGBA{R: 255, G: 120, B: 40, A: 255}
	gatePositive     = color.RGBA{R: 60, G: 200, B: 110, A: 160}
	gateNegative     = color.RGBA{R: 220, G: 60, B: 60, A: 160}
	flashColor       = color.White
)

// drawField 绘制战场和车道分隔线
func drawField(screen *ebiten.Image, l fieldLayout, cfg *config.GameConfig) {
	half := cfg.Field.Width / 2
	x0, y0 := l.ToScreen(-half, l.farZ)
	x1, y1 := l.ToScreen(half, viewNearZ)
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), laneColor, false)

	for lane := 1; lane < cfg.Field.NumLanes; lane++ {
		x := -half + cfg.Field.LaneWidth*float64(lane)
		sx, _ := l.ToScreen(x, 0)
		vector.StrokeLine(screen, float32(sx), float32(y0), float32(sx), float32(y1), 2, laneDividerColor, false)
	}
}

// drawWorld 绘制所有已挂载可视对象的实体
func drawWorld(screen *ebiten.Image, l fieldLayout, w *systems.World, visuals map[ecs.EntityID]ecs.Kind) {
	visible := func(h *ecs.Header) bool {
		_, ok := visuals[h.ID]
		return ok && h.Active
	}

	for _, g := range w.Gates {
		if visible(&g.Header) {
			drawGate(screen, l, w.Config, g.Position, g.Modifier)
		}
	}
	for _, e := range w.Enemies {
		if visible(&e.Header) {
			drawCircle(screen, l, e.Position, w.Config.Enemy.Size/2, pick(e.Flash, enemyColor))
		}
	}
	if w.Boss != nil && visible(&w.Boss.Header) {
		drawCircle(screen, l, w.Boss.Position, w.Config.Boss.Size/2, pick(w.Boss.Flash, bossColor))
	}
	for _, b := range w.Bullets {
		if visible(&b.Header) {
			drawCircle(screen, l, b.Position, w.Config.Bullet.Size, bulletColor)
		}
	}
	for _, p := range w.BossProjectiles {
		if !visible(&p.Header) {
			continue
		}
		if p.Type == components.ProjectileBarrier {
			drawBarrier(screen, l, p.Position, p.BarrierWidth, p.GapX, p.GapWidth)
			continue
		}
		drawCircle(screen, l, p.Position, p.HitRadius(), projectileColor)
	}
	for _, a := range w.Allies {
		if visible(&a.Header) {
			drawCircle(screen, l, a.Position, w.Config.Ally.Size/2, allyColor)
		}
	}
	if visible(&w.Player.Header) {
		drawCircle(screen, l, w.Player.Position, w.Config.Player.Size/2, pick(w.Player.Flash, playerColor))
	}
}

func pick(flash components.FlashEffectComponent, c color.Color) color.Color {
	if flash.Active() {
		return flashColor
	}
	return c
}

func drawCircle(screen *ebiten.Image, l fieldLayout, pos components.PositionComponent, radius float64, c color.Color) {
	x, y := l.ToScreen(pos.X, pos.Z)
	r := l.Length(radius)
	if r < 2 {
		r = 2
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), c, true)
}

func drawGate(screen *ebiten.Image, l fieldLayout, cfg *config.GameConfig, pos components.PositionComponent, mod components.Modifier) {
	c := gateNegative
	if mod.IsPositive {
		c = gatePositive
	}
	w := l.Length(cfg.Gate.Width)
	h := l.Depth(cfg.Gate.Depth)
	if h < 4 {
		h = 4
	}
	x, y := l.ToScreen(pos.X, pos.Z)
	vector.DrawFilledRect(screen, float32(x-w/2), float32(y-h/2), float32(w), float32(h), c, false)
	drawLabel(screen, mod.Label, x, y-h/2-14, color.White)
}

// drawBarrier 屏障绘制为两段，中间留出缺口
func drawBarrier(screen *ebiten.Image, l fieldLayout, pos components.PositionComponent, width, gapX, gapWidth float64) {
	left := pos.X - width/2
	right := pos.X + width/2
	gapLeft := gapX - gapWidth/2
	gapRight := gapX + gapWidth/2
	h := float32(6)

	for _, seg := range [][2]float64{{left, gapLeft}, {gapRight, right}} {
		if seg[1] <= seg[0] {
			continue
		}
		x0, y := l.ToScreen(seg[0], pos.Z)
		x1, _ := l.ToScreen(seg[1], pos.Z)
		vector.DrawFilledRect(screen, float32(x0), float32(y)-h/2, float32(x1-x0), h, projectileColor, false)
	}
}
