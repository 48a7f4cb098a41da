// Package app 提供演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/targetcursor/pkg/config"
	"github.com/decker502/targetcursor/pkg/cursor"
	"github.com/decker502/targetcursor/pkg/dom"
	"github.com/decker502/targetcursor/pkg/ecs"
	"github.com/decker502/targetcursor/pkg/embedded"
	"github.com/decker502/targetcursor/pkg/entities"
	"github.com/decker502/targetcursor/pkg/event"
	"github.com/decker502/targetcursor/pkg/frame"
	"github.com/decker502/targetcursor/pkg/game"
	"github.com/decker502/targetcursor/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 内嵌默认配置路径
const (
	defaultCursorConfig = "data/cursor.yaml"
	defaultPageConfig   = "data/page.yaml"
)

// AppName gdata 存储使用的应用名
const AppName = "targetcursor"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// CursorConfigPath 光标配置文件，为空则使用内嵌默认配置
	CursorConfigPath string
	// PageConfigPath 页面配置文件，为空则使用内嵌演示页面
	PageConfigPath string
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	page     *config.PageConfig
	doc      *dom.Document
	loop     *frame.Loop
	engine   *cursor.Engine
	settings *game.SettingsManager

	input     *systems.InputSystem
	highlight *systems.HighlightSystem
	render    *systems.RenderSystem

	status                   string // 最近一次点击消息
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化演示应用
//
// 使用内嵌默认配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	opts, err := loadCursorOptions(cfg.CursorConfigPath)
	if err != nil {
		return nil, fmt.Errorf("光标配置加载失败: %w", err)
	}
	page, err := loadPageConfig(cfg.PageConfigPath)
	if err != nil {
		return nil, fmt.Errorf("页面配置加载失败: %w", err)
	}
	log.Printf("[Config] 光标配置: %+v", opts)

	settings := game.NewSettingsManager(game.OpenStorage(AppName))
	settings.Adopt(opts)
	opts = settings.Apply(opts)

	a := &App{
		page:     page,
		settings: settings,
		verbose:  cfg.Verbose,
		loop:     frame.NewLoop(),
	}

	em := ecs.NewEntityManager()
	a.doc = dom.NewDocument(em)
	events := event.NewDispatcher(a.doc)
	entities.BuildPage(a.doc, page, func(msg string) {
		a.status = msg
		log.Printf("[App] 点击: %s", msg)
	})

	a.engine = cursor.New(cursor.Host{
		Document: a.doc,
		Events:   events,
		Frames:   a.loop,
		Platform: newEbitenPlatform(page.Viewport.Width, page.Viewport.Height),
		Metrics:  cursor.DefaultMetrics(),
	}, opts)
	a.engine.SetTransitionHook(func(t cursor.Transition) {
		log.Printf("[App] %s -> %s (element %d)", t.From, t.To, t.Target)
	})
	if err := a.engine.Start(); err != nil {
		return nil, fmt.Errorf("光标引擎启动失败: %w", err)
	}

	a.input = systems.NewInputSystem(a.doc, events)
	a.highlight = systems.NewHighlightSystem(em, a.engine)
	a.render = systems.NewRenderSystem(a.doc, a.engine)
	if page.Background != "" {
		bg, _ := config.ParseHexColor(page.Background)
		a.render.Background = bg
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return a, nil
}

func loadCursorOptions(path string) (cursor.Options, error) {
	if path != "" {
		return config.LoadCursorOptions(path)
	}
	data, err := embedded.ReadFile(defaultCursorConfig)
	if err != nil {
		return cursor.Options{}, err
	}
	return config.ParseCursorOptions(data)
}

func loadPageConfig(path string) (*config.PageConfig, error) {
	if path != "" {
		return config.LoadPageConfig(path)
	}
	data, err := embedded.ReadFile(defaultPageConfig)
	if err != nil {
		return nil, err
	}
	return config.ParsePageConfig(data)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.page.Viewport.Width, a.page.Viewport.Height)
			a.pendingWindowSizeReset = false
		}
	}

	a.handleKeys()

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.input.Update()
	a.loop.Step(deltaTime)
	a.highlight.Update(deltaTime)
	return nil
}

func (a *App) handleKeys() {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		}
		a.settings.SetFullscreen(fullscreen)
		a.saveSettings()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		a.settings.SetParallax(!a.engine.Options().ParallaxOn)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		a.settings.SetProximity(a.engine.Options().Proximity + game.ProximityStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		a.settings.SetProximity(a.engine.Options().Proximity - game.ProximityStep)
	default:
		return
	}
	a.saveSettings()
	if err := a.engine.Restart(a.settings.Apply(a.engine.Options())); err != nil {
		log.Printf("[App] Warning: 光标引擎重启失败: %v", err)
	}
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: 设置保存失败: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.render.Draw(screen)

	opts := a.engine.Options()
	mode := "hover"
	if opts.Magnetic() {
		mode = fmt.Sprintf("magnetic %.0fpx", opts.Proximity)
	}
	hud := fmt.Sprintf("[%s] parallax=%v state=%s  (P / + / - / F11)", mode, opts.ParallaxOn, a.engine.State())
	if a.status != "" {
		hud += "\n" + a.status
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, a.page.Viewport.Height-36)
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

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.page.Viewport.Width, a.page.Viewport.Height
}

// Title 返回窗口标题
func (a *App) Title() string {
	return a.page.Title
}

// Shutdown 停止光标引擎并保存设置
func (a *App) Shutdown() {
	a.engine.Stop()
	a.saveSettings()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
