package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/jumofe95/lane-shooter/pkg/game"
)

// inputSampler 每帧开始时把键盘/鼠标/触摸状态采样为 InputSnapshot
type inputSampler struct {
	layout   fieldLayout
	touchIDs []ebiten.TouchID
}

func newInputSampler(layout fieldLayout) *inputSampler {
	return &inputSampler{layout: layout}
}

// Sample 采样输入
//
// 游戏进行中，按住鼠标或触摸屏幕时玩家跟随指针横向移动；
// 其他阶段点击/轻触等同于确认键。
func (s *inputSampler) Sample(playing bool) game.InputSnapshot {
	var in game.InputSnapshot

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.MoveAxis--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.MoveAxis++
	}

	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	if !playing {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
			in.Confirm = true
		}
		return in
	}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		x, _ := ebiten.TouchPosition(s.touchIDs[0])
		in.TargetX = s.layout.WorldX(float64(x))
		in.HasTargetX = true
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		in.TargetX = s.layout.WorldX(float64(x))
		in.HasTargetX = true
	}
	return in
}
