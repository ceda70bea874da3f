// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/ecs"
	"github.com/jumofe95/lane-shooter/pkg/embedded"
	"github.com/jumofe95/lane-shooter/pkg/event"
	"github.com/jumofe95/lane-shooter/pkg/game"
	"github.com/jumofe95/lane-shooter/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示按时间取种
	Seed int64
	// ConfigPath 游戏配置文件路径，为空则使用嵌入的 data/game.yaml
	ConfigPath string
	// StartLevel 开局关卡（调试用），0 表示第1关
	StartLevel int
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
//
// App 同时是模拟核心的 VisualBinder：实体出现/消失时登记或移除可视对象。
type App struct {
	scene   *scenes.GameScene
	layout  fieldLayout
	input   *inputSampler
	hud     *hud
	visuals map[ecs.EntityID]ecs.Kind
	verbose bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameCfg, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	a := &App{
		layout:  newFieldLayout(gameCfg),
		visuals: make(map[ecs.EntityID]ecs.Kind),
		verbose: cfg.Verbose,
	}
	a.input = newInputSampler(a.layout)

	dispatcher := event.NewDispatcher()
	a.hud = newHUD(dispatcher)

	a.scene = scenes.NewGameScene(gameCfg, scenes.Options{
		Seed:       cfg.Seed,
		Binder:     a,
		Dispatcher: dispatcher,
		StartLevel: cfg.StartLevel,
	})
	log.Printf("[App] initialized (%d lanes, max level %d)", gameCfg.Field.NumLanes, gameCfg.Level.MaxLevel)
	return a, nil
}

// LoadConfig 加载游戏配置
// path 非空时从文件系统读取，否则读取嵌入的配置；两者都不可用时使用内置默认值
func LoadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("游戏配置加载失败: %w", err)
		}
		log.Printf("[Config] loaded game config from %s", path)
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] embedded data not initialized, using built-in defaults")
		return config.DefaultGameConfig(), nil
	}

	cfg, err := config.LoadEmbeddedGameConfig()
	if err != nil {
		return nil, fmt.Errorf("嵌入配置加载失败: %w", err)
	}
	log.Printf("[Config] loaded embedded %s", config.DefaultConfigPath)
	return cfg, nil
}

// Attach 登记实体的可视对象（实现 ecs.VisualBinder）
func (a *App) Attach(id ecs.EntityID, kind ecs.Kind) {
	a.visuals[id] = kind
}

// Detach 移除实体的可视对象（实现 ecs.VisualBinder）
func (a *App) Detach(id ecs.EntityID, kind ecs.Kind) {
	delete(a.visuals, id)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.handleDebugKeys()

	deltaTime := 1.0 / 60.0
	in := a.input.Sample(a.scene.Phase() == game.PhasePlaying)
	a.scene.Update(deltaTime, in)
	a.hud.Update(deltaTime)
	return nil
}

// handleDebugKeys F1-F4 调整玩家属性（调试用）
func (a *App) handleDebugKeys() {
	stats := a.scene.PlayerStats()
	changed := true
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		stats.NumAllies++
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		stats.FireRate += 0.5
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		stats.Damage += 5
	case inpututil.IsKeyJustPressed(ebiten.KeyF4):
		stats.Piercing++
	default:
		changed = false
	}
	if changed {
		a.scene.AdminSetStats(stats)
		log.Printf("[App] debug stats: %+v", a.scene.PlayerStats())
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	drawField(screen, a.layout, a.scene.Config())
	drawWorld(screen, a.layout, a.scene.World(), a.visuals)
	a.hud.Draw(screen, a.scene)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Scene 返回游戏场景
func (a *App) Scene() *scenes.GameScene {
	return a.scene
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// debugStats HUD 上显示的调试属性文本
func debugStats(s components.PlayerStats) string {
	return fmt.Sprintf("Allies %d  Rate %.1f  Dmg %d  Pierce %d", s.NumAllies, s.FireRate, s.Damage, s.Piercing)
}
