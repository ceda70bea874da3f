package game

// Phase 游戏阶段
type Phase int

const (
	PhaseStart         Phase = iota // 标题界面，等待确认
	PhasePlaying                    // 游戏进行中
	PhaseGameOver                   // 玩家死亡
	PhaseLevelComplete              // 过关，等待确认进入下一关
	PhaseVictory                    // 通关
)

var phaseNames = [...]string{
	PhaseStart:         "start",
	PhasePlaying:       "playing",
	PhaseGameOver:      "gameover",
	PhaseLevelComplete: "levelComplete",
	PhaseVictory:       "victory",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// legalTransitions 合法的阶段切换
var legalTransitions = map[Phase][]Phase{
	PhaseStart:         {PhasePlaying},
	PhasePlaying:       {PhaseGameOver, PhaseLevelComplete, PhaseVictory},
	PhaseLevelComplete: {PhasePlaying},
	PhaseGameOver:      {PhasePlaying},
	PhaseVictory:       {PhasePlaying},
}

// CanTransition 是否允许从 from 切换到 to
func CanTransition(from, to Phase) bool {
	for _, p := range legalTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
