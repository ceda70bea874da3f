// lane_tui 在终端中运行同一套模拟核心
//
// 用法：
//
//	go run ./cmd/lane_tui [-seed N] [-level N] [-config path]
//
// 方向键/A/D 左右移动，空格确认，Esc 或 q 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/game"
	"github.com/jumofe95/lane-shooter/pkg/scenes"
)

const frameDuration = 16 * time.Millisecond

var (
	seed       = flag.Int64("seed", 0, "随机种子（0 表示按时间取种）")
	level      = flag.Int("level", 0, "开局关卡")
	configPath = flag.String("config", "", "游戏配置文件路径")
	logPath    = flag.String("log", "", "日志输出文件（终端被占用，默认丢弃日志）")
)

// TUI 终端宿主
type TUI struct {
	screen  tcell.Screen
	scene   *scenes.GameScene
	view    gridView
	targetX float64
	confirm bool
}

func newTUI() (*TUI, error) {
	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	t := &TUI{
		screen: screen,
		scene:  scenes.NewGameScene(cfg, scenes.Options{Seed: *seed, StartLevel: *level}),
	}
	t.resize()
	return t, nil
}

func (t *TUI) resize() {
	w, h := t.screen.Size()
	t.view = newGridView(t.scene.Config(), w, h-statusRows)
}

// handleInput 处理一个终端事件，返回 false 表示退出
func (t *TUI) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		step := t.scene.Config().Field.LaneWidth / 4
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyLeft:
			t.targetX -= step
		case ev.Key() == tcell.KeyRight:
			t.targetX += step
		case ev.Key() == tcell.KeyEnter:
			t.confirm = true
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'a', 'A':
				t.targetX -= step
			case 'd', 'D':
				t.targetX += step
			case ' ':
				t.confirm = true
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
	return true
}

// tick 推进一帧模拟
// 终端没有按键抬起事件，移动用目标横坐标表示
func (t *TUI) tick(dt float64) {
	half := t.scene.Config().Player.HalfWidth
	if t.targetX < -half {
		t.targetX = -half
	} else if t.targetX > half {
		t.targetX = half
	}

	in := game.InputSnapshot{TargetX: t.targetX, HasTargetX: true, Confirm: t.confirm}
	t.confirm = false
	before := t.scene.Phase()
	t.scene.Update(dt, in)
	if before != game.PhasePlaying && t.scene.Phase() == game.PhasePlaying {
		t.targetX = 0
	}
}

func (t *TUI) run() {
	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			t.tick(now.Sub(last).Seconds())
			last = now
			t.draw()
		}
	}
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	t, err := newTUI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer t.screen.Fini()

	t.run()
}
