// Package main 终端版目标光标演示
//
// 页面坐标以字符单元为单位，角标是单个框线字符，中心点是一个圆点。
//
// Usage:
//
//	go run ./cmd/termcursor [flags]
//
// Flags:
//
//	--config <path>   光标配置文件（默认使用内置配置，吸附距离 2 格）
//	--page <path>     页面配置文件，坐标单位为字符（默认使用内置页面）
//	--log <path>      日志输出文件（默认不输出）
//
// Controls:
//
//	鼠标移动 / 点击 / 滚轮
//	Esc, Ctrl+C  退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/decker502/targetcursor/pkg/components"
	"github.com/decker502/targetcursor/pkg/config"
	"github.com/decker502/targetcursor/pkg/cursor"
	"github.com/decker502/targetcursor/pkg/dom"
	"github.com/decker502/targetcursor/pkg/ecs"
	"github.com/decker502/targetcursor/pkg/entities"
	"github.com/decker502/targetcursor/pkg/event"
	"github.com/decker502/targetcursor/pkg/frame"
	"github.com/decker502/targetcursor/pkg/pointer"
	"github.com/decker502/targetcursor/pkg/tween"
	"github.com/gdamore/tcell/v2"
)

var (
	configFlag = flag.String("config", "", "Cursor options YAML file")
	pageFlag   = flag.String("page", "", "Page layout YAML file (cell units)")
	logFlag    = flag.String("log", "", "Write logs to this file")
)

const demoPage = `
title: termcursor
elements:
  - tag: nav
    x: 0
    y: 0
    width: 80
    height: 3
    fixed: true
    children:
      - {tag: a, classes: [cursor-target], x: 2, y: 0, width: 8, height: 3, label: Home, message: "nav: home"}
      - {tag: a, classes: [cursor-target], x: 12, y: 0, width: 8, height: 3, label: Docs, message: "nav: docs"}
  - tag: section
    x: 0
    y: 5
    width: 80
    height: 40
    children:
      - {tag: button, classes: [cursor-target], x: 4, y: 2, width: 16, height: 3, label: Plain, message: "button: plain"}
      - {tag: button, classes: [cursor-target, proximity-5], x: 28, y: 2, width: 16, height: 3, label: proximity-5, message: "button: proximity-5"}
      - {tag: div, x: 4, y: 8, width: 40, height: 6, label: Card}
      - {tag: button, classes: [cursor-target], x: 4, y: 30, width: 20, height: 3, label: Below, message: "button: below"}
`

// 终端中一个单元即一个单位，角标占一个字符
var termMetrics = cursor.Metrics{BorderWidth: 0, CornerSize: 1}

var cornerRunes = [4]rune{'┌', '┐', '┘', '└'}

var (
	styleElement = tcell.StyleDefault.Background(tcell.NewRGBColor(0x2a, 0x30, 0x38)).Foreground(tcell.ColorSilver)
	styleActive  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x3d, 0x5a, 0x80)).Foreground(tcell.ColorWhite)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// termPlatform 终端宿主
// 终端光标恢复显示时放在最后一次的指针单元上
type termPlatform struct {
	screen      tcell.Screen
	input       *pointer.Translator
	cursorShown bool
}

func (p *termPlatform) Viewport() (float64, float64) {
	w, h := p.screen.Size()
	return float64(w), float64(h)
}

func (p *termPlatform) CursorVisible() bool { return p.cursorShown }

func (p *termPlatform) SetCursorVisible(visible bool) {
	p.cursorShown = visible
	if !visible {
		p.screen.HideCursor()
		return
	}
	x, y, _ := p.input.Position()
	p.screen.ShowCursor(x, y)
}

func (p *termPlatform) Capabilities() cursor.Capabilities {
	return cursor.Capabilities{ScreenWidth: math.Inf(1), UserAgent: "terminal"}
}

type termApp struct {
	screen tcell.Screen
	doc    *dom.Document
	events *event.Dispatcher
	input  *pointer.Translator
	loop   *frame.Loop
	engine *cursor.Engine

	buttons tcell.ButtonMask
	status  string
}

func newTermApp(screen tcell.Screen, opts cursor.Options, page *config.PageConfig) (*termApp, error) {
	a := &termApp{
		screen: screen,
		doc:    dom.NewDocument(ecs.NewEntityManager()),
		loop:   frame.NewLoop(),
	}
	a.events = event.NewDispatcher(a.doc)
	a.input = pointer.NewTranslator(a.doc, a.events)
	a.input.ScrollStep = 1
	entities.BuildPage(a.doc, page, func(msg string) { a.status = msg })

	a.engine = cursor.New(cursor.Host{
		Document: a.doc,
		Events:   a.events,
		Frames:   a.loop,
		Platform: &termPlatform{screen: screen, input: a.input, cursorShown: true},
		Metrics:  termMetrics,
	}, opts)
	a.engine.SetTransitionHook(func(t cursor.Transition) {
		log.Printf("[Term] %s -> %s (element %d)", t.From, t.To, t.Target)
	})
	if err := a.engine.Start(); err != nil {
		return nil, err
	}
	return a, nil
}

// mouseState 把一次 tcell 鼠标事件转换为指针状态，左键按下/释放由前后两次按键掩码的边沿得出
func (a *termApp) mouseState(ev *tcell.EventMouse) pointer.State {
	x, y := ev.Position()
	btn := ev.Buttons()
	in := pointer.State{X: x, Y: y}

	if btn&tcell.WheelUp != 0 {
		in.WheelY = 1
	}
	if btn&tcell.WheelDown != 0 {
		in.WheelY = -1
	}

	pressed := btn&tcell.Button1 != 0
	wasPressed := a.buttons&tcell.Button1 != 0
	in.JustPressed = pressed && !wasPressed
	in.JustReleased = !pressed && wasPressed
	a.buttons = btn &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
	return in
}

func (a *termApp) handleMouse(ev *tcell.EventMouse) {
	a.input.Feed(a.mouseState(ev))
}

func (a *termApp) draw() {
	s := a.screen
	s.Clear()

	var active ecs.EntityID
	if t, ok := a.engine.ActiveTarget(); ok {
		active = t.ID
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ElementComponent](a.doc.EntityManager()) {
		r, ok := a.doc.Rect(id)
		if !ok {
			continue
		}
		style := styleElement
		if id == active {
			style = styleActive
		}
		for y := int(r.Top); y < int(r.Bottom); y++ {
			for x := int(r.Left); x < int(r.Right); x++ {
				s.SetContent(x, y, ' ', nil, style)
			}
		}
		if el, ok := a.doc.Element(id); ok && el.Label != "" {
			drawText(s, int(r.Left)+1, int(r.Top)+int(r.Height())/2, el.Label, style)
		}
	}

	v := a.engine.Visual()
	if v.Mounted {
		half := v.Metrics.CornerSize / 2
		for i, c := range v.Corners {
			p := v.ToScreen(c.Add(tween.Vec2{X: half, Y: half}))
			s.SetContent(int(math.Floor(p.X)), int(math.Floor(p.Y)), cornerRunes[i], nil, styleOverlay)
		}
		dot := v.ToScreen(v.Dot)
		s.SetContent(int(math.Floor(dot.X)), int(math.Floor(dot.Y)), '•', nil, styleOverlay)
	}

	_, h := s.Size()
	opts := a.engine.Options()
	drawText(s, 0, h-1, fmt.Sprintf("proximity=%.0f state=%s %s", opts.Proximity, a.engine.State(), a.status), styleStatus)
	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func (a *termApp) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
			case *tcell.EventMouse:
				a.handleMouse(ev)
			case *tcell.EventResize:
				a.screen.Sync()
			}

		case now := <-ticker.C:
			a.loop.Step(now.Sub(last).Seconds())
			last = now
			a.draw()
		}
	}
}

func loadOptions(path string) (cursor.Options, error) {
	if path != "" {
		return config.LoadCursorOptions(path)
	}
	// 终端单元较大，默认开启磁吸
	return config.ParseCursorOptions([]byte("proximity: 2\nparallaxOn: false\n"))
}

func loadPage(path string) (*config.PageConfig, error) {
	if path != "" {
		return config.LoadPageConfig(path)
	}
	return config.ParsePageConfig([]byte(demoPage))
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.Create(*logFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	opts, err := loadOptions(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load cursor options: %v\n", err)
		os.Exit(1)
	}
	page, err := loadPage(*pageFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load page: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)

	app, err := newTermApp(screen, opts, page)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start cursor: %v\n", err)
		os.Exit(1)
	}

	app.run()
	app.engine.Stop()
	screen.Fini()
}
