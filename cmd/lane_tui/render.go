package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/game"
)

// 底部状态栏行数
const statusRows = 2

// 终端中显示的纵深范围
const (
	viewFarZ  = -90.0
	viewNearZ = 10.0
)

var (
	styleField    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleAlly     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBoss     = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleBullet   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleAttack   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleGateGood = tcell.StyleDefault.Foreground(tcell.ColorGreen).Reverse(true)
	styleGateBad  = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	styleFlash    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOverlay  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

// gridView 世界坐标到终端字符格的映射
type gridView struct {
	cols, rows int
	halfWidth  float64
}

func newGridView(cfg *config.GameConfig, cols, rows int) gridView {
	if rows < 1 {
		rows = 1
	}
	return gridView{cols: cols, rows: rows, halfWidth: cfg.Field.Width / 2}
}

// cell 世界坐标所在的字符格，超出视野时 ok 为 false
func (v gridView) cell(x, z float64) (int, int, bool) {
	col := int(math.Floor((x + v.halfWidth) / (2 * v.halfWidth) * float64(v.cols)))
	row := int(math.Floor((z - viewFarZ) / (viewNearZ - viewFarZ) * float64(v.rows)))
	if col < 0 || col >= v.cols || row < 0 || row >= v.rows {
		return 0, 0, false
	}
	return col, row, true
}

func (t *TUI) put(x, z float64, ch rune, style tcell.Style) {
	if col, row, ok := t.view.cell(x, z); ok {
		t.screen.SetContent(col, row, ch, nil, style)
	}
}

func (t *TUI) text(col, row int, msg string, style tcell.Style) {
	for i, r := range msg {
		t.screen.SetContent(col+i, row, r, nil, style)
	}
}

func flashOr(f components.FlashEffectComponent, style tcell.Style) tcell.Style {
	if f.Active() {
		return styleFlash
	}
	return style
}

func (t *TUI) draw() {
	t.screen.Clear()
	w := t.scene.World()
	cfg := w.Config

	// 车道分隔线
	for lane := 1; lane < cfg.Field.NumLanes; lane++ {
		x := -cfg.Field.Width/2 + cfg.Field.LaneWidth*float64(lane)
		for row := 0; row < t.view.rows; row++ {
			col, _, _ := t.view.cell(x, viewFarZ)
			t.screen.SetContent(col, row, '┊', nil, styleField)
		}
	}

	for _, g := range w.Gates {
		if !g.Active {
			continue
		}
		style := styleGateBad
		if g.Modifier.IsPositive {
			style = styleGateGood
		}
		col, row, ok := t.view.cell(g.Position.X-g.Width/2, g.Position.Z)
		if ok {
			t.text(col, row, fmt.Sprintf("%-*s", int(float64(t.view.cols)*g.Width/cfg.Field.Width), g.Modifier.Label), style)
		}
	}
	for _, e := range w.Enemies {
		if e.Active {
			t.put(e.Position.X, e.Position.Z, 'E', flashOr(e.Flash, styleEnemy))
		}
	}
	if w.BossActive() {
		b := w.Boss
		for dx := -cfg.Boss.Size / 2; dx <= cfg.Boss.Size/2; dx += 0.5 {
			t.put(b.Position.X+dx, b.Position.Z, '█', flashOr(b.Flash, styleBoss))
		}
	}
	for _, b := range w.Bullets {
		if b.Active {
			t.put(b.Position.X, b.Position.Z, '|', styleBullet)
		}
	}
	for _, p := range w.BossProjectiles {
		if !p.Active {
			continue
		}
		if p.Type == components.ProjectileBarrier {
			for x := p.Position.X - p.BarrierWidth/2; x <= p.Position.X+p.BarrierWidth/2; x += 0.25 {
				if math.Abs(x-p.GapX) > p.GapWidth/2 {
					t.put(x, p.Position.Z, '=', styleAttack)
				}
			}
			continue
		}
		t.put(p.Position.X, p.Position.Z, '*', styleAttack)
	}
	for _, a := range w.Allies {
		t.put(a.Position.X, a.Position.Z, 'a', styleAlly)
	}
	t.put(w.Player.Position.X, w.Player.Position.Z, '@', flashOr(w.Player.Flash, stylePlayer))

	t.drawStatus()
	t.screen.Show()
}

func (t *TUI) drawStatus() {
	s := t.scene
	st := s.PlayerStats()
	row := t.view.rows
	t.text(0, row, fmt.Sprintf("L%d/%d W%d  Score %d  HP %3.0f%%  Allies %d Rate %.1f Dmg %d Pierce %d",
		s.Level(), s.MaxLevel(), s.Wave(), s.Score(), s.PlayerHealthPercent()*100,
		st.NumAllies, st.FireRate, st.Damage, st.Piercing), styleStatus)
	if s.BossActive() {
		t.text(0, row+1, fmt.Sprintf("BOSS %3.0f%%  %s", s.BossHealthPercent()*100, s.AttackName()), styleBoss)
	}

	var msg string
	switch s.Phase() {
	case game.PhaseStart:
		msg = " LANE SHOOTER - press SPACE "
	case game.PhaseGameOver:
		msg = fmt.Sprintf(" GAME OVER - score %d - SPACE to restart ", s.Score())
	case game.PhaseLevelComplete:
		msg = fmt.Sprintf(" LEVEL %d COMPLETE - SPACE for level %d ", s.Level(), s.Level()+1)
	case game.PhaseVictory:
		msg = fmt.Sprintf(" VICTORY - score %d - SPACE to play again ", s.Score())
	}
	if msg != "" {
		t.text((t.view.cols-len(msg))/2, t.view.rows/2, msg, styleOverlay)
	}
}
