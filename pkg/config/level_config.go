package config

import "math"

// LevelConfig 单个关卡的难度参数
//
// 在进入关卡时由 NewLevelConfig 一次性计算，关卡进行中不会变化。
type LevelConfig struct {
	Level   int  // 关卡编号（从1开始）
	IsFinal bool // 是否为最后一关（击败 Boss 即通关）

	EnemyHealth     int     // 第1波敌人生命值
	EnemySpeed      float64 // 敌人基础速度（每个敌人另加随机值）
	EnemyValue      int     // 击杀敌人的得分
	EnemiesPerWave  int     // 第1波敌人数
	WaveInterval    float64 // 波次间隔（秒）
	WavesBeforeBoss int     // 出现 Boss 前的波数

	BossHealth       int
	BossSpeed        float64
	BossValue        int
	BossLateralSpeed float64
}

// NewLevelConfig 根据关卡编号计算关卡参数（纯函数）
//
// 公式（level 从 1 开始，n = level-1）：
//
//	EnemyHealth    = round(HealthBase * (1 + n*EnemyHealthGrowth))
//	EnemySpeed     = SpeedBase + n*EnemySpeedGrowth
//	EnemyValue     = ValueBase + n*EnemyValueGrowth
//	EnemiesPerWave = EnemiesBase + n/EnemiesPerWaveEvery
//	WaveInterval   = max(IntervalMin, IntervalBase - n*IntervalPerLevel)
//	BossHealth     = round(BossHealthBase * (1 + n*BossHealthGrowth))
//	BossSpeed      = BossSpeedBase + n*BossSpeedGrowth
//	BossValue      = BossValueBase * level
func NewLevelConfig(cfg *GameConfig, level int) LevelConfig {
	if level < 1 {
		level = 1
	}
	if level > cfg.Level.MaxLevel {
		level = cfg.Level.MaxLevel
	}
	n := float64(level - 1)

	every := cfg.Level.EnemiesPerWaveEvery
	if every < 1 {
		every = 1
	}

	return LevelConfig{
		Level:   level,
		IsFinal: level >= cfg.Level.MaxLevel,

		EnemyHealth:     int(math.Round(float64(cfg.Enemy.HealthBase) * (1 + n*cfg.Level.EnemyHealthGrowth))),
		EnemySpeed:      cfg.Enemy.SpeedBase + n*cfg.Level.EnemySpeedGrowth,
		EnemyValue:      cfg.Enemy.ValueBase + (level-1)*cfg.Level.EnemyValueGrowth,
		EnemiesPerWave:  cfg.Wave.EnemiesBase + (level-1)/every,
		WaveInterval:    math.Max(cfg.Wave.IntervalMin, cfg.Wave.IntervalBase-n*cfg.Wave.IntervalPerLevel),
		WavesBeforeBoss: cfg.Wave.WavesBeforeBoss,

		BossHealth:       int(math.Round(float64(cfg.Boss.HealthBase) * (1 + n*cfg.Level.BossHealthGrowth))),
		BossSpeed:        cfg.Boss.SpeedBase + n*cfg.Level.BossSpeedGrowth,
		BossValue:        cfg.Boss.ValueBase * level,
		BossLateralSpeed: cfg.Boss.LateralSpeedBase + float64(level)*cfg.Boss.LateralSpeedPerLevel,
	}
}

// WaveSize 指定波次（从1开始）的敌人数量
// 同一关内随波次单调不减
func (l LevelConfig) WaveSize(wave int) int {
	if wave < 1 {
		wave = 1
	}
	return l.EnemiesPerWave + (wave - 1)
}

// WaveEnemyHealth 指定波次（从1开始）的敌人生命值
func (l LevelConfig) WaveEnemyHealth(healthPerWave, wave int) int {
	if wave < 1 {
		wave = 1
	}
	return l.EnemyHealth + (wave-1)*healthPerWave
}
