package systems

import (
	"log"

	"github.com/jumofe95/lane-shooter/pkg/entities"
	"github.com/jumofe95/lane-shooter/pkg/event"
)

// WaveSpawnSystem 波次生成系统
//
// 职责：
//   - 按关卡波次间隔计时，时间到达时生成一波敌人
//   - 敌人从对象池取出，横向均分战场并加入随机偏移
//   - 达到 Boss 波数后由调用方暂停，进入下一关时重置
type WaveSpawnSystem struct {
	timer  float64
	wave   int
	paused bool
}

// NewWaveSpawnSystem 创建波次生成系统
func NewWaveSpawnSystem() *WaveSpawnSystem {
	return &WaveSpawnSystem{}
}

// Wave 已生成的波数
func (s *WaveSpawnSystem) Wave() int {
	return s.wave
}

// IsBossTime 是否已达到 Boss 波数
func (s *WaveSpawnSystem) IsBossTime(w *World) bool {
	return s.wave >= w.Level.WavesBeforeBoss
}

// Paused 是否已暂停
func (s *WaveSpawnSystem) Paused() bool {
	return s.paused
}

// Pause 停止生成（Boss 出现后）
func (s *WaveSpawnSystem) Pause() {
	s.paused = true
}

// Reset 重置计时和波数（进入新关卡/重新开始）
func (s *WaveSpawnSystem) Reset() {
	s.timer = 0
	s.wave = 0
	s.paused = false
}

// Update 推进计时，时间到达时生成一波敌人
// 返回本帧生成的敌人数量
func (s *WaveSpawnSystem) Update(w *World, dt float64) int {
	if s.paused {
		return 0
	}

	s.timer += dt
	if s.timer < w.Level.WaveInterval {
		return 0
	}
	s.timer = 0
	return s.spawnWave(w)
}

func (s *WaveSpawnSystem) spawnWave(w *World) int {
	s.wave++
	cfg := w.Config
	count := w.Level.WaveSize(s.wave)
	health := w.Level.WaveEnemyHealth(cfg.Enemy.HealthPerWave, s.wave)
	positions := s.spawnPositions(w, count)

	rows := cfg.Enemy.StaggerRows
	if rows < 1 {
		rows = 1
	}

	for i := 0; i < count; i++ {
		zOffset := float64(i%rows) * cfg.Enemy.RowStagger
		w.SpawnEnemy(entities.EnemySpec{
			X:             positions[i],
			Z:             cfg.Enemy.SpawnZ - zOffset,
			Health:        health,
			Speed:         w.Level.EnemySpeed + w.RNG.Float64()*cfg.Enemy.SpeedJitter,
			Value:         w.Level.EnemyValue,
			FlashDuration: cfg.Enemy.FlashDuration,
		})
	}

	log.Printf("[WaveSpawnSystem] wave %d: %d enemies (health %d)", s.wave, count, health)
	w.Events.Dispatch(event.Event{
		Type: event.WaveSpawned,
		Data: event.WaveSpawnedData{Wave: s.wave, Enemies: count},
	})
	return count
}

// spawnPositions 把战场横向均分成 count 段，每段中心加随机偏移
func (s *WaveSpawnSystem) spawnPositions(w *World, count int) []float64 {
	cfg := w.Config
	halfWidth := cfg.Field.Width/2 - cfg.Enemy.Size
	section := halfWidth * 2 / float64(count)

	positions := make([]float64, count)
	for i := range positions {
		base := -halfWidth + section*float64(i) + section/2
		jitter := (w.RNG.Float64() - 0.5) * section * cfg.Enemy.SpawnJitter
		positions[i] = base + jitter
	}
	return positions
}
