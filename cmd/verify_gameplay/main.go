// verify_gameplay 无头运行完整模拟，由脚本机器人操控
//
// 机器人跟随正面门所在的车道，躲避屏障缺口，其余时间瞄准最近的敌人或 Boss，
// 所有阶段切换自动确认。用于在没有图形环境时验证整条游戏流程。
//
// 用法：
//
//	go run ./cmd/verify_gameplay [-frames N] [-seed N] [-level N] [-runs N] [-verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/event"
	"github.com/jumofe95/lane-shooter/pkg/game"
	"github.com/jumofe95/lane-shooter/pkg/scenes"
)

const frameDT = 1.0 / 60.0

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	frames     = flag.Int("frames", 60*60*10, "最多运行的帧数")
	seed       = flag.Int64("seed", 1, "随机种子")
	level      = flag.Int("level", 0, "开局关卡")
	runs       = flag.Int("runs", 1, "游戏结束/通关后重开的局数")
	configPath = flag.String("config", "", "游戏配置文件路径")
	reportSec  = flag.Float64("report", 10, "状态输出间隔（秒，0 表示不输出）")
)

// runSummary 一局的结果
type runSummary struct {
	Phase game.Phase
	Level int
	Score int
	Frame int
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	dispatcher := event.NewDispatcher()
	subscribeReport(dispatcher)

	scene := scenes.NewGameScene(cfg, scenes.Options{Seed: *seed, Dispatcher: dispatcher, StartLevel: *level})
	summaries := run(scene, *frames, *runs)

	fmt.Println("==== summary ====")
	for i, s := range summaries {
		fmt.Printf("run %d: %s at level %d, score %d, %.1fs\n", i+1, s.Phase, s.Level, s.Score, float64(s.Frame)*frameDT)
	}
	if len(summaries) == 0 {
		fmt.Printf("no run finished within %d frames (level %d, score %d)\n", *frames, scene.Level(), scene.Score())
	}
}

// run 推进模拟，直到完成指定局数或帧数用完
func run(scene *scenes.GameScene, maxFrames, maxRuns int) []runSummary {
	bot := newBot()
	var summaries []runSummary
	reportEvery := int(*reportSec / frameDT)

	for frame := 0; frame < maxFrames; frame++ {
		phase := scene.Phase()
		if phase == game.PhaseGameOver || phase == game.PhaseVictory {
			summaries = append(summaries, runSummary{Phase: phase, Level: scene.Level(), Score: scene.Score(), Frame: frame})
			if len(summaries) >= maxRuns {
				return summaries
			}
		}

		scene.Update(frameDT, bot.Decide(scene))

		if reportEvery > 0 && frame%reportEvery == 0 && scene.Phase() == game.PhasePlaying {
			st := scene.PlayerStats()
			fmt.Printf("[%6.1fs] level %d wave %d score %d hp %3.0f%% allies %d rate %.1f dmg %d pierce %d enemies %d\n",
				float64(frame)*frameDT, scene.Level(), scene.Wave(), scene.Score(), scene.PlayerHealthPercent()*100,
				st.NumAllies, st.FireRate, st.Damage, st.Piercing, scene.World().ActiveEnemyCount())
		}
	}
	return summaries
}

// subscribeReport 把关键事件打印到标准输出
func subscribeReport(d *event.Dispatcher) {
	d.SubscribeFunc(event.PhaseChanged, func(e event.Event) {
		data := e.Data.(event.PhaseChangedData)
		fmt.Printf("phase %s -> %s (level %d)\n", data.From, data.To, data.Level)
	})
	d.SubscribeFunc(event.BossSpawned, func(e event.Event) {
		data := e.Data.(event.BossSpawnedData)
		fmt.Printf("boss spawned: level %d, health %d, attack %s\n", data.Level, data.Health, data.AttackName)
	})
	d.SubscribeFunc(event.GateConsumed, func(e event.Event) {
		data := e.Data.(event.GateConsumedData)
		fmt.Printf("gate: %s (lane %d)\n", data.Label, data.Lane)
	})
	d.SubscribeFunc(event.BossDefeated, func(e event.Event) {
		data := e.Data.(event.BossDefeatedData)
		fmt.Printf("boss defeated: level %d (+%d)\n", data.Level, data.Value)
	})
}
