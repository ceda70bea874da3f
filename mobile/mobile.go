//go:build mobile

// Package mobile 是 ebitenmobile bind 的入口包
//
// 构建前先把配置复制进包目录（见 embed.go）：
//
//	cp -r data mobile/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.jumofe95.laneshooter -o build/laneshooter.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/LaneShooter.xcframework ./mobile
package mobile

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/jumofe95/lane-shooter/pkg/app"
	"github.com/jumofe95/lane-shooter/pkg/embedded"
)

// VerboseEnv 置为 1 时打开日志，真机调试用
const VerboseEnv = "LANE_VERBOSE"

func init() {
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{Verbose: os.Getenv(VerboseEnv) == "1"})
	if err != nil {
		log.Fatalf("[Mobile] init failed: %v", err)
	}
	mobile.SetGame(a)
}

// Dummy 导出一个符号，ebitenmobile 生成绑定时需要
func Dummy() {}
