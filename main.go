package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jumofe95/lane-shooter/pkg/app"
	"github.com/jumofe95/lane-shooter/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试日志")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示按时间取种）")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用嵌入的 data/game.yaml）")
	level      = flag.Int("level", 0, "开局关卡（调试用）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       *seed,
		ConfigPath: *configPath,
		StartLevel: *level,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Lane Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
