package event

const (
	PhaseChanged  EventType = "PhaseChanged"  // 游戏阶段切换
	LevelStarted  EventType = "LevelStarted"  // 进入关卡
	WaveSpawned   EventType = "WaveSpawned"   // 一波敌人出现
	BossSpawned   EventType = "BossSpawned"   // Boss 出现
	BossAttack    EventType = "BossAttack"    // Boss 发动攻击
	GateConsumed  EventType = "GateConsumed"  // 玩家穿过门
	PlayerDamaged EventType = "PlayerDamaged" // 玩家受伤
	EnemyKilled   EventType = "EnemyKilled"   // 敌人被击杀
	BossDefeated  EventType = "BossDefeated"  // Boss 被击败
)

// PhaseChangedData 阶段切换事件数据
type PhaseChangedData struct {
	From, To string
	Level    int
}

// LevelStartedData 关卡开始事件数据
type LevelStartedData struct {
	Level int
}

// WaveSpawnedData 波次事件数据
type WaveSpawnedData struct {
	Wave    int
	Enemies int
}

// BossSpawnedData Boss 出现事件数据
type BossSpawnedData struct {
	Level      int
	Health     int
	AttackName string
}

// BossAttackData Boss 攻击事件数据
type BossAttackData struct {
	AttackName  string
	Projectiles int
}

// GateConsumedData 穿门事件数据
type GateConsumedData struct {
	Lane       int
	Label      string
	IsPositive bool
}

// PlayerDamagedData 玩家受伤事件数据
type PlayerDamagedData struct {
	Source string
	Amount int
	Health int
}

// EnemyKilledData 击杀事件数据
type EnemyKilledData struct {
	Value int
}

// BossDefeatedData Boss 击败事件数据
type BossDefeatedData struct {
	Level int
	Value int
}
