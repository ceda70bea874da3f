package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/jumofe95/lane-shooter/pkg/event"
	"github.com/jumofe95/lane-shooter/pkg/game"
	"github.com/jumofe95/lane-shooter/pkg/scenes"
	"github.com/jumofe95/lane-shooter/pkg/utils"
)

// 提示横幅显示时长和末尾淡出时长（秒）
const (
	bannerDuration = 2.0
	bannerFade     = 0.5
)

var (
	hudFace = text.NewGoXFace(basicfont.Face7x13)

	healthBarBack  = color.RGBA{R: 60, G: 20, B: 20, A: 255}
	healthBarFront = color.RGBA{R: 90, G: 220, B: 90, A: 255}
	bossBarFront   = color.RGBA{R: 200, G: 80, B: 220, A: 255}
	overlayColor   = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	bannerColor    = color.RGBA{R: 255, G: 220, B: 120, A: 255}
)

// hud 顶部信息栏、阶段覆盖层和事件横幅
type hud struct {
	banner      string
	bannerTimer float64
}

// newHUD 创建 HUD，并订阅需要以横幅提示的事件
func newHUD(d *event.Dispatcher) *hud {
	h := &hud{}
	d.SubscribeFunc(event.WaveSpawned, func(e event.Event) {
		if data, ok := e.Data.(event.WaveSpawnedData); ok {
			h.show(fmt.Sprintf("WAVE %d", data.Wave))
		}
	})
	d.SubscribeFunc(event.BossSpawned, func(e event.Event) {
		if data, ok := e.Data.(event.BossSpawnedData); ok {
			h.show(fmt.Sprintf("BOSS: %s", data.AttackName))
		}
	})
	d.SubscribeFunc(event.GateConsumed, func(e event.Event) {
		if data, ok := e.Data.(event.GateConsumedData); ok {
			h.show(data.Label)
		}
	})
	d.SubscribeFunc(event.LevelStarted, func(e event.Event) {
		if data, ok := e.Data.(event.LevelStartedData); ok {
			h.show(fmt.Sprintf("LEVEL %d", data.Level))
		}
	})
	return h
}

func (h *hud) show(msg string) {
	h.banner = msg
	h.bannerTimer = bannerDuration
}

// Update 推进横幅倒计时
func (h *hud) Update(dt float64) {
	if h.bannerTimer > 0 {
		h.bannerTimer -= dt
		if h.bannerTimer <= 0 {
			h.banner = ""
		}
	}
}

// Draw 绘制 HUD
func (h *hud) Draw(screen *ebiten.Image, s *scenes.GameScene) {
	drawLabel(screen, fmt.Sprintf("SCORE %d", s.Score()), 10, 8, color.White)
	drawLabel(screen, fmt.Sprintf("LEVEL %d/%d  WAVE %d", s.Level(), s.MaxLevel(), s.Wave()), 10, 24, color.White)
	drawLabel(screen, debugStats(s.PlayerStats()), 10, 40, color.White)

	drawBar(screen, ScreenWidth-150, 10, 140, 10, s.PlayerHealthPercent(), healthBarFront)
	if s.BossActive() {
		drawBar(screen, ScreenWidth-150, 28, 140, 10, s.BossHealthPercent(), bossBarFront)
		drawLabel(screen, s.AttackName(), ScreenWidth-150, 42, color.White)
	}

	if h.banner != "" && s.Phase() == game.PhasePlaying {
		c := bannerColor
		c.A = uint8(255 * utils.FadeOut(h.bannerTimer, bannerFade))
		drawCentered(screen, h.banner, ScreenHeight/3, c)
	}

	verb := utils.ConfirmVerb()
	switch s.Phase() {
	case game.PhaseStart:
		drawOverlay(screen, "LANE SHOOTER", verb+" TO START")
	case game.PhaseGameOver:
		drawOverlay(screen, "GAME OVER", fmt.Sprintf("SCORE %d - %s TO RESTART", s.Score(), verb))
	case game.PhaseLevelComplete:
		drawOverlay(screen, fmt.Sprintf("LEVEL %d COMPLETE", s.Level()), fmt.Sprintf("%s FOR LEVEL %d", verb, s.Level()+1))
	case game.PhaseVictory:
		drawOverlay(screen, "VICTORY", fmt.Sprintf("FINAL SCORE %d - %s", s.Score(), verb))
	}
}

func drawLabel(screen *ebiten.Image, msg string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, msg, hudFace, op)
}

func drawCentered(screen *ebiten.Image, msg string, y float64, c color.Color) {
	w, _ := text.Measure(msg, hudFace, 0)
	drawLabel(screen, msg, (ScreenWidth-w)/2, y, c)
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, percent float64, front color.Color) {
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}
	vector.DrawFilledRect(screen, x, y, w, h, healthBarBack, false)
	vector.DrawFilledRect(screen, x, y, w*float32(percent), h, front, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.White, false)
}

func drawOverlay(screen *ebiten.Image, title, hint string) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, ScreenHeight, overlayColor, false)
	drawCentered(screen, title, ScreenHeight/2-20, color.White)
	drawCentered(screen, hint, ScreenHeight/2+4, bannerColor)
}
