package config

import (
	"fmt"
	"os"

	"github.com/jumofe95/lane-shooter/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 内嵌默认配置文件路径
const DefaultConfigPath = "data/game.yaml"

// GameConfig 游戏全局调参配置
// 从 YAML 加载一次后不再修改，派生值（车道宽度等）在加载时计算好
type GameConfig struct {
	Field  FieldConfig  `yaml:"field"`
	Player PlayerConfig `yaml:"player"`
	Ally   AllyConfig   `yaml:"ally"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Boss   BossConfig   `yaml:"boss"`
	Attack AttackConfig `yaml:"attack"`
	Bullet BulletConfig `yaml:"bullet"`
	Gate   GateConfig   `yaml:"gate"`
	Wave   WaveConfig   `yaml:"wave"`
	Level  LevelScaling `yaml:"level"`
	Pool   PoolConfig   `yaml:"pool"`

	MaxDeltaTime float64 `yaml:"maxDeltaTime"` // 单帧最大时间步长（秒），防止卡顿后的大跨度追帧
}

// FieldConfig 战场尺寸
type FieldConfig struct {
	Width    float64 `yaml:"width"`    // 战场宽度
	Depth    float64 `yaml:"depth"`    // 战场纵深（玩家子弹飞出此距离后回收）
	NumLanes int     `yaml:"numLanes"` // 车道数量

	LaneWidth float64 `yaml:"-"` // 派生：单个车道宽度
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Size               float64 `yaml:"size"`
	Radius             float64 `yaml:"radius"`          // 被弹幕命中判定半径
	Speed              float64 `yaml:"speed"`           // 方向键移动速度
	FollowSmoothing    float64 `yaml:"followSmoothing"` // 向目标X逼近的平滑系数
	Z                  float64 `yaml:"z"`
	MaxHealth          int     `yaml:"maxHealth"`
	StartAllies        int     `yaml:"startAllies"`
	StartFireRate      float64 `yaml:"startFireRate"`
	StartDamage        int     `yaml:"startDamage"`
	StartPiercing      int     `yaml:"startPiercing"`
	BulletOffsetX      float64 `yaml:"bulletOffsetX"`
	BulletOffsetZ      float64 `yaml:"bulletOffsetZ"`
	LevelRegenFraction float64 `yaml:"levelRegenFraction"` // 过关时恢复的最大生命值比例
	FlashDuration      float64 `yaml:"flashDuration"`

	HalfWidth float64 `yaml:"-"` // 派生：玩家横向活动范围
}

// AllyConfig 盟友参数
type AllyConfig struct {
	Size            float64 `yaml:"size"`
	Spacing         float64 `yaml:"spacing"`   // 阵型槽位间距
	Smoothing       float64 `yaml:"smoothing"` // 向阵型槽位逼近的平滑系数
	ShootOffsetStep float64 `yaml:"shootOffsetStep"`
	BulletOffsetX   float64 `yaml:"bulletOffsetX"`
	BulletOffsetZ   float64 `yaml:"bulletOffsetZ"`
	GridColumns     int     `yaml:"gridColumns"` // 超出阵型表后网格布局的列数
}

// EnemyConfig 普通敌人参数（1级基础值）
type EnemyConfig struct {
	Size          float64 `yaml:"size"` // 碰撞判定距离
	HealthBase    int     `yaml:"healthBase"`
	HealthPerWave int     `yaml:"healthPerWave"` // 同一关内每波增加的生命值
	SpeedBase     float64 `yaml:"speedBase"`
	SpeedJitter   float64 `yaml:"speedJitter"` // 每个敌人随机附加的速度上限
	ValueBase     int     `yaml:"valueBase"`
	SpawnZ        float64 `yaml:"spawnZ"`
	EndZ          float64 `yaml:"endZ"`        // 越过此纵深视为冲到玩家面前
	ReachDamage   int     `yaml:"reachDamage"` // 冲到玩家面前造成的固定伤害
	SpawnJitter   float64 `yaml:"spawnJitter"` // 横向随机偏移占分区宽度的比例
	RowStagger    float64 `yaml:"rowStagger"`  // 纵向错开间距
	StaggerRows   int     `yaml:"staggerRows"` // 纵向错开的循环行数
	FlashDuration float64 `yaml:"flashDuration"`
}

// BossConfig Boss 参数（1级基础值）
type BossConfig struct {
	Size                 float64 `yaml:"size"`
	HealthBase           int     `yaml:"healthBase"`
	SpeedBase            float64 `yaml:"speedBase"`
	ValueBase            int     `yaml:"valueBase"`
	SpawnZ               float64 `yaml:"spawnZ"`
	StopZ                float64 `yaml:"stopZ"` // 前进到此纵深后停下并开始攻击
	LateralSpeedBase     float64 `yaml:"lateralSpeedBase"`
	LateralSpeedPerLevel float64 `yaml:"lateralSpeedPerLevel"`
	FlashDuration        float64 `yaml:"flashDuration"`

	LateralAmplitude float64 `yaml:"-"` // 派生：横向摆动幅度
}

// AttackConfig Boss 攻击与弹幕参数
type AttackConfig struct {
	CooldownBase     float64 `yaml:"cooldownBase"`
	CooldownPerLevel float64 `yaml:"cooldownPerLevel"`
	CooldownMin      float64 `yaml:"cooldownMin"`
	DamageBase       int     `yaml:"damageBase"`
	DamagePerLevel   int     `yaml:"damagePerLevel"`
	MaxLifetime      float64 `yaml:"maxLifetime"`
	HitRadius        float64 `yaml:"hitRadius"`
	BoundZ           float64 `yaml:"boundZ"` // 弹幕越过此纵深后回收

	OrbSpeed  float64 `yaml:"orbSpeed"`
	OrbSpread float64 `yaml:"orbSpread"` // 三连发的左右偏角（弧度）

	WaveSpeed   float64 `yaml:"waveSpeed"`
	WaveGrowth  float64 `yaml:"waveGrowth"` // 冲击波半径每秒增长量
	WaveDamage  float64 `yaml:"waveDamage"` // 伤害倍率
	RainCount   int     `yaml:"rainCount"`
	RainSpeed   float64 `yaml:"rainSpeed"`
	RainHeight  float64 `yaml:"rainHeight"`
	RainFall    float64 `yaml:"rainFall"` // 下落速度
	RainHitY    float64 `yaml:"rainHitY"` // 低于此高度才会命中
	RainNear    float64 `yaml:"rainNear"` // 落点纵深范围（玩家前方距离）
	RainFar     float64 `yaml:"rainFar"`
	RainDamage  float64 `yaml:"rainDamage"` // 伤害倍率
	LaserSpeed  float64 `yaml:"laserSpeed"`
	LaserGap    float64 `yaml:"laserGap"`    // 三道激光的间距
	LaserDamage float64 `yaml:"laserDamage"` // 伤害倍率

	BarrierSpeed    float64 `yaml:"barrierSpeed"`
	BarrierWidth    float64 `yaml:"barrierWidth"`
	BarrierGapWidth float64 `yaml:"barrierGapWidth"`
	BarrierHitDepth float64 `yaml:"barrierHitDepth"`
	BarrierDespawnZ float64 `yaml:"barrierDespawnZ"`
	BarrierDamage   float64 `yaml:"barrierDamage"` // 伤害倍率
	MinionCount     int     `yaml:"minionCount"`
}

// BulletConfig 子弹参数
type BulletConfig struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`      // 玩家子弹速度（向 -Z）
	EnemySpeed  float64 `yaml:"enemySpeed"` // 敌方子弹速度（向 +Z）
	EnemyBoundZ float64 `yaml:"enemyBoundZ"`
}

// GateConfig 门参数
type GateConfig struct {
	WidthFraction  float64 `yaml:"widthFraction"` // 门宽占车道宽度的比例
	Height         float64 `yaml:"height"`
	Depth          float64 `yaml:"depth"`
	SpawnZ         float64 `yaml:"spawnZ"`
	Speed          float64 `yaml:"speed"`
	SpawnMin       float64 `yaml:"spawnMin"` // 生成间隔下限（秒）
	SpawnMax       float64 `yaml:"spawnMax"` // 生成间隔上限（秒）
	HitDepth       float64 `yaml:"hitDepth"` // 纵深差小于此值时穿过门
	DespawnZ       float64 `yaml:"despawnZ"`
	EnableMultiply bool    `yaml:"enableMultiply"` // 是否生成倍增/减半盟友的门

	Width float64 `yaml:"-"` // 派生：门宽
}

// WaveConfig 波次参数（1级基础值）
type WaveConfig struct {
	IntervalBase     float64 `yaml:"intervalBase"`
	IntervalPerLevel float64 `yaml:"intervalPerLevel"`
	IntervalMin      float64 `yaml:"intervalMin"`
	EnemiesBase      int     `yaml:"enemiesBase"`
	WavesBeforeBoss  int     `yaml:"wavesBeforeBoss"`
}

// LevelScaling 关卡难度成长系数
type LevelScaling struct {
	MaxLevel            int     `yaml:"maxLevel"`
	EnemyHealthGrowth   float64 `yaml:"enemyHealthGrowth"` // 每级敌人生命值增长比例
	EnemySpeedGrowth    float64 `yaml:"enemySpeedGrowth"`  // 每级敌人速度增量
	EnemyValueGrowth    int     `yaml:"enemyValueGrowth"`  // 每级敌人分值增量
	EnemiesPerWaveEvery int     `yaml:"enemiesPerWaveEvery"`
	BossHealthGrowth    float64 `yaml:"bossHealthGrowth"`
	BossSpeedGrowth     float64 `yaml:"bossSpeedGrowth"`
}

// PoolConfig 对象池预热数量
type PoolConfig struct {
	EnemyPrewarm  int `yaml:"enemyPrewarm"`
	BulletPrewarm int `yaml:"bulletPrewarm"`
}

// DefaultGameConfig 返回内置默认配置
func DefaultGameConfig() *GameConfig {
	cfg := &GameConfig{}
	applyDefaults(cfg)
	finalize(cfg)
	return cfg
}

// ParseGameConfig 解析 YAML 配置数据
// 缺失的字段使用默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateGameConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	finalize(&cfg)
	return &cfg, nil
}

// LoadGameConfig 从文件系统加载配置（用于 -config 参数覆盖内置配置）
func LoadGameConfig(filepath string) (*GameConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", filepath, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// LoadEmbeddedGameConfig 加载内嵌的默认配置文件
// 调用前必须先调用 embedded.Init()
func LoadEmbeddedGameConfig() (*GameConfig, error) {
	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return ParseGameConfig(data)
}

func defaultFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func defaultInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

// applyDefaults 为缺失的字段设置默认值
// 注意：零值即视为未配置，因此 0 不能作为这些字段的有效配置
func applyDefaults(c *GameConfig) {
	defaultFloat(&c.MaxDeltaTime, 0.1)

	defaultFloat(&c.Field.Width, 20)
	defaultFloat(&c.Field.Depth, 100)
	defaultInt(&c.Field.NumLanes, 2)

	defaultFloat(&c.Player.Size, 1)
	defaultFloat(&c.Player.Radius, 0.5)
	defaultFloat(&c.Player.Speed, 15)
	defaultFloat(&c.Player.FollowSmoothing, 10)
	defaultInt(&c.Player.MaxHealth, 100)
	defaultFloat(&c.Player.StartFireRate, 3)
	defaultInt(&c.Player.StartDamage, 10)
	defaultInt(&c.Player.StartPiercing, 1)
	defaultFloat(&c.Player.BulletOffsetX, -0.4)
	defaultFloat(&c.Player.BulletOffsetZ, -1.8)
	defaultFloat(&c.Player.LevelRegenFraction, 0.3)
	defaultFloat(&c.Player.FlashDuration, 0.1)

	defaultFloat(&c.Ally.Size, 0.7)
	defaultFloat(&c.Ally.Spacing, 1.5)
	defaultFloat(&c.Ally.Smoothing, 6)
	defaultFloat(&c.Ally.ShootOffsetStep, 0.2)
	defaultFloat(&c.Ally.BulletOffsetX, -0.25)
	defaultFloat(&c.Ally.BulletOffsetZ, -1.0)
	defaultInt(&c.Ally.GridColumns, 5)

	defaultFloat(&c.Enemy.Size, 1.5)
	defaultInt(&c.Enemy.HealthBase, 30)
	defaultInt(&c.Enemy.HealthPerWave, 5)
	defaultFloat(&c.Enemy.SpeedBase, 8)
	defaultFloat(&c.Enemy.SpeedJitter, 2)
	defaultInt(&c.Enemy.ValueBase, 10)
	defaultFloat(&c.Enemy.SpawnZ, -80)
	defaultFloat(&c.Enemy.EndZ, 8)
	defaultInt(&c.Enemy.ReachDamage, 15)
	defaultFloat(&c.Enemy.SpawnJitter, 0.6)
	defaultFloat(&c.Enemy.RowStagger, 3)
	defaultInt(&c.Enemy.StaggerRows, 3)
	defaultFloat(&c.Enemy.FlashDuration, 0.08)

	defaultFloat(&c.Boss.Size, 4)
	defaultInt(&c.Boss.HealthBase, 500)
	defaultFloat(&c.Boss.SpeedBase, 3)
	defaultInt(&c.Boss.ValueBase, 100)
	defaultFloat(&c.Boss.SpawnZ, -60)
	defaultFloat(&c.Boss.StopZ, -10)
	defaultFloat(&c.Boss.LateralSpeedBase, 2)
	defaultFloat(&c.Boss.LateralSpeedPerLevel, 0.3)
	defaultFloat(&c.Boss.FlashDuration, 0.1)

	defaultFloat(&c.Attack.CooldownBase, 3.5)
	defaultFloat(&c.Attack.CooldownPerLevel, 0.2)
	defaultFloat(&c.Attack.CooldownMin, 1.5)
	defaultInt(&c.Attack.DamageBase, 10)
	defaultInt(&c.Attack.DamagePerLevel, 3)
	defaultFloat(&c.Attack.MaxLifetime, 5)
	defaultFloat(&c.Attack.HitRadius, 0.5)
	defaultFloat(&c.Attack.BoundZ, 15)
	defaultFloat(&c.Attack.OrbSpeed, 10)
	defaultFloat(&c.Attack.OrbSpread, 0.25)
	defaultFloat(&c.Attack.WaveSpeed, 6)
	defaultFloat(&c.Attack.WaveGrowth, 3)
	defaultFloat(&c.Attack.WaveDamage, 1)
	defaultInt(&c.Attack.RainCount, 6)
	defaultFloat(&c.Attack.RainSpeed, 4)
	defaultFloat(&c.Attack.RainHeight, 6)
	defaultFloat(&c.Attack.RainFall, 3)
	defaultFloat(&c.Attack.RainHitY, 1.5)
	defaultFloat(&c.Attack.RainNear, 4)
	defaultFloat(&c.Attack.RainFar, 10)
	defaultFloat(&c.Attack.RainDamage, 0.6)
	defaultFloat(&c.Attack.LaserSpeed, 12)
	defaultFloat(&c.Attack.LaserGap, 3)
	defaultFloat(&c.Attack.LaserDamage, 1.2)
	defaultFloat(&c.Attack.BarrierSpeed, 6)
	defaultFloat(&c.Attack.BarrierWidth, 14)
	defaultFloat(&c.Attack.BarrierGapWidth, 2.5)
	defaultFloat(&c.Attack.BarrierHitDepth, 1.5)
	defaultFloat(&c.Attack.BarrierDespawnZ, 5)
	defaultFloat(&c.Attack.BarrierDamage, 1.5)
	defaultInt(&c.Attack.MinionCount, 2)

	defaultFloat(&c.Bullet.Size, 0.3)
	defaultFloat(&c.Bullet.Speed, 50)
	defaultFloat(&c.Bullet.EnemySpeed, 25)
	defaultFloat(&c.Bullet.EnemyBoundZ, 20)

	defaultFloat(&c.Gate.WidthFraction, 0.95)
	defaultFloat(&c.Gate.Height, 6)
	defaultFloat(&c.Gate.Depth, 0.8)
	defaultFloat(&c.Gate.SpawnZ, -50)
	defaultFloat(&c.Gate.Speed, 10)
	defaultFloat(&c.Gate.SpawnMin, 6)
	defaultFloat(&c.Gate.SpawnMax, 10)
	defaultFloat(&c.Gate.HitDepth, 1.5)
	defaultFloat(&c.Gate.DespawnZ, 15)

	defaultFloat(&c.Wave.IntervalBase, 3.5)
	defaultFloat(&c.Wave.IntervalPerLevel, 0.15)
	defaultFloat(&c.Wave.IntervalMin, 2)
	defaultInt(&c.Wave.EnemiesBase, 3)
	defaultInt(&c.Wave.WavesBeforeBoss, 5)

	defaultInt(&c.Level.MaxLevel, 10)
	defaultFloat(&c.Level.EnemyHealthGrowth, 0.25)
	defaultFloat(&c.Level.EnemySpeedGrowth, 0.5)
	defaultInt(&c.Level.EnemyValueGrowth, 5)
	defaultInt(&c.Level.EnemiesPerWaveEvery, 2)
	defaultFloat(&c.Level.BossHealthGrowth, 0.5)
	defaultFloat(&c.Level.BossSpeedGrowth, 0.2)

	defaultInt(&c.Pool.EnemyPrewarm, 30)
	defaultInt(&c.Pool.BulletPrewarm, 100)
}

// finalize 计算派生值
func finalize(c *GameConfig) {
	c.Field.LaneWidth = c.Field.Width / float64(c.Field.NumLanes)
	c.Gate.Width = c.Field.LaneWidth * c.Gate.WidthFraction
	c.Player.HalfWidth = c.Field.Width/2 - c.Player.Size
	c.Boss.LateralAmplitude = c.Field.Width/2 - c.Boss.Size
	if c.Boss.LateralAmplitude < 0 {
		c.Boss.LateralAmplitude = 0
	}
}

// validateGameConfig 验证配置的合法性
func validateGameConfig(c *GameConfig) error {
	if c.Field.Width <= 0 {
		return fmt.Errorf("field.width must be positive, got %v", c.Field.Width)
	}
	if c.Field.Depth <= 0 {
		return fmt.Errorf("field.depth must be positive, got %v", c.Field.Depth)
	}
	// 门必须一正一负成对出现
	if c.Field.NumLanes < 2 {
		return fmt.Errorf("field.numLanes must be at least 2, got %d", c.Field.NumLanes)
	}
	if c.Player.Size*2 >= c.Field.Width {
		return fmt.Errorf("player.size %v does not fit in field.width %v", c.Player.Size, c.Field.Width)
	}
	if c.Player.MaxHealth < 1 {
		return fmt.Errorf("player.maxHealth must be at least 1, got %d", c.Player.MaxHealth)
	}
	if c.Player.StartAllies < 0 {
		return fmt.Errorf("player.startAllies cannot be negative, got %d", c.Player.StartAllies)
	}
	if c.Player.LevelRegenFraction < 0 || c.Player.LevelRegenFraction > 1 {
		return fmt.Errorf("player.levelRegenFraction must be within [0,1], got %v", c.Player.LevelRegenFraction)
	}
	if c.MaxDeltaTime < 0 {
		return fmt.Errorf("maxDeltaTime cannot be negative, got %v", c.MaxDeltaTime)
	}
	if c.Gate.SpawnMin < 0 || c.Gate.SpawnMax < c.Gate.SpawnMin {
		return fmt.Errorf("gate spawn interval [%v,%v] is invalid", c.Gate.SpawnMin, c.Gate.SpawnMax)
	}
	if c.Gate.WidthFraction > 1 {
		return fmt.Errorf("gate.widthFraction must not exceed 1, got %v", c.Gate.WidthFraction)
	}
	if c.Wave.WavesBeforeBoss < 1 {
		return fmt.Errorf("wave.wavesBeforeBoss must be at least 1, got %d", c.Wave.WavesBeforeBoss)
	}
	if c.Wave.EnemiesBase < 1 {
		return fmt.Errorf("wave.enemiesBase must be at least 1, got %d", c.Wave.EnemiesBase)
	}
	if c.Wave.IntervalMin <= 0 {
		return fmt.Errorf("wave.intervalMin must be positive, got %v", c.Wave.IntervalMin)
	}
	if c.Level.MaxLevel < 1 {
		return fmt.Errorf("level.maxLevel must be at least 1, got %d", c.Level.MaxLevel)
	}
	if c.Attack.CooldownMin <= 0 {
		return fmt.Errorf("attack.cooldownMin must be positive, got %v", c.Attack.CooldownMin)
	}
	if c.Attack.BarrierGapWidth >= c.Attack.BarrierWidth {
		return fmt.Errorf("attack.barrierGapWidth %v must be smaller than attack.barrierWidth %v",
			c.Attack.BarrierGapWidth, c.Attack.BarrierWidth)
	}
	if c.Attack.RainFar < c.Attack.RainNear {
		return fmt.Errorf("attack.rainFar %v must not be smaller than attack.rainNear %v", c.Attack.RainFar, c.Attack.RainNear)
	}
	if c.Pool.EnemyPrewarm < 0 || c.Pool.BulletPrewarm < 0 {
		return fmt.Errorf("pool prewarm counts cannot be negative")
	}
	return nil
}
