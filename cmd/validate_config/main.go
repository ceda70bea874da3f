// validate_config 离线校验游戏配置文件，并打印各关卡的难度参数
//
// 用法：
//
//	go run ./cmd/validate_config -config data/game.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/systems"
)

func main() {
	path := flag.String("config", config.DefaultConfigPath, "配置文件路径")
	flag.Parse()

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	if err := config.CheckUnknownFields(data); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ %s 格式正确\n", *path)
	fmt.Printf("✅ 战场 %.0f 宽, %d 条车道, 共 %d 关\n\n", cfg.Field.Width, cfg.Field.NumLanes, cfg.Level.MaxLevel)

	fmt.Printf("%-5s %-8s %-8s %-6s %-6s %-8s %-8s %-6s %-12s %-8s %s\n",
		"关卡", "敌人HP", "敌人速度", "得分", "每波", "间隔", "BossHP", "Boss分", "攻击", "冷却", "伤害")
	for level := 1; level <= cfg.Level.MaxLevel; level++ {
		lc := config.NewLevelConfig(cfg, level)
		fmt.Printf("%-5d %-8d %-8.2f %-6d %-6d %-8.2f %-8d %-6d %-12s %-8.2f %d\n",
			level, lc.EnemyHealth, lc.EnemySpeed, lc.EnemyValue, lc.EnemiesPerWave, lc.WaveInterval,
			lc.BossHealth, lc.BossValue,
			systems.AttackTypeForLevel(level).DisplayName(),
			systems.AttackCooldown(cfg, level), systems.BaseDamage(cfg, level))
	}
}
