package game

import (
	"log"

	"github.com/jumofe95/lane-shooter/pkg/event"
)

// ConfirmAction 确认输入触发的动作
type ConfirmAction int

const (
	ConfirmNone      ConfirmAction = iota // 当前阶段不响应确认
	ConfirmStartRun                       // 开始游戏
	ConfirmNextLevel                      // 进入下一关
	ConfirmRestart                        // 重新开始
)

// GameState 一局游戏的全局状态（阶段、得分、关卡）
//
// 由 GameScene 持有并注入，不是全局单例。
// 只负责状态和合法的阶段切换，关卡内实体的清理由场景完成。
type GameState struct {
	phase Phase

	Score      int
	Level      int    // 当前关卡（从1开始）
	MaxLevel   int    // 最后一关
	StartLevel int    // 开局/重开时进入的关卡
	Wave       int    // 当前波次（HUD 显示）
	AttackName string // 当前 Boss 攻击名称（HUD 显示），无 Boss 时为空

	dispatcher *event.Dispatcher
}

// NewGameState 创建处于标题阶段的游戏状态
// dispatcher 可以为 nil
func NewGameState(maxLevel, startLevel int, dispatcher *event.Dispatcher) *GameState {
	if maxLevel < 1 {
		maxLevel = 1
	}
	if startLevel < 1 || startLevel > maxLevel {
		startLevel = 1
	}
	return &GameState{
		phase:      PhaseStart,
		Level:      startLevel,
		MaxLevel:   maxLevel,
		StartLevel: startLevel,
		dispatcher: dispatcher,
	}
}

// Phase 当前阶段
func (gs *GameState) Phase() Phase {
	return gs.phase
}

// IsPlaying 是否正在进行模拟
func (gs *GameState) IsPlaying() bool {
	return gs.phase == PhasePlaying
}

// Confirm 处理确认输入，返回调用方需要执行的动作
func (gs *GameState) Confirm() ConfirmAction {
	switch gs.phase {
	case PhaseStart:
		if gs.transition(PhasePlaying) {
			return ConfirmStartRun
		}
	case PhaseLevelComplete:
		if gs.Level >= gs.MaxLevel {
			log.Printf("[GameState] WARNING: level complete on final level %d", gs.Level)
			return ConfirmNone
		}
		gs.Level++
		gs.resetLevelProgress()
		if gs.transition(PhasePlaying) {
			return ConfirmNextLevel
		}
	case PhaseGameOver, PhaseVictory:
		gs.Reset()
		if gs.transition(PhasePlaying) {
			return ConfirmRestart
		}
	}
	return ConfirmNone
}

// PlayerDied 玩家死亡：playing → gameover
func (gs *GameState) PlayerDied() bool {
	return gs.transition(PhaseGameOver)
}

// BossDefeated Boss 被击败：最后一关进入 victory，否则进入 levelComplete
func (gs *GameState) BossDefeated() Phase {
	next := PhaseLevelComplete
	if gs.Level >= gs.MaxLevel {
		next = PhaseVictory
	}
	if !gs.transition(next) {
		return gs.phase
	}
	return next
}

// AddScore 增加得分
func (gs *GameState) AddScore(amount int) {
	if amount > 0 {
		gs.Score += amount
	}
}

// Reset 清空得分并回到开局关卡（不改变阶段）
func (gs *GameState) Reset() {
	gs.Score = 0
	gs.Level = gs.StartLevel
	gs.resetLevelProgress()
}

func (gs *GameState) resetLevelProgress() {
	gs.Wave = 0
	gs.AttackName = ""
}

// transition 切换阶段，非法切换只记录日志并忽略
func (gs *GameState) transition(to Phase) bool {
	from := gs.phase
	if !CanTransition(from, to) {
		log.Printf("[GameState] ignoring illegal transition %s -> %s", from, to)
		return false
	}
	gs.phase = to
	log.Printf("[GameState] %s -> %s (level %d, score %d)", from, to, gs.Level, gs.Score)
	gs.dispatcher.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseChangedData{From: from.String(), To: to.String(), Level: gs.Level},
	})
	return true
}
