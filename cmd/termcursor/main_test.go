package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// newTestApp 在 80x24 的模拟终端上启动内置演示页面
func newTestApp(t *testing.T) (*termApp, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	opts, err := loadOptions("")
	if err != nil {
		t.Fatalf("loadOptions: %v", err)
	}
	page, err := loadPage("")
	if err != nil {
		t.Fatalf("loadPage: %v", err)
	}
	app, err := newTermApp(screen, opts, page)
	if err != nil {
		t.Fatalf("newTermApp: %v", err)
	}
	return app, screen
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func TestMouseStateEdges(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name    string
		buttons tcell.ButtonMask
		pressed bool
		release bool
		wheelY  float64
	}{
		{"按下", tcell.Button1, true, false, 0},
		{"按住不重复", tcell.Button1, false, false, 0},
		{"按住时滚轮", tcell.Button1 | tcell.WheelDown, false, false, -1},
		{"释放", tcell.ButtonNone, false, true, 0},
		{"向上滚动", tcell.WheelUp, false, false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := app.mouseState(mouse(10, 8, tt.buttons))
			if in.X != 10 || in.Y != 8 {
				t.Errorf("position = %d,%d, want 10,8", in.X, in.Y)
			}
			if in.JustPressed != tt.pressed || in.JustReleased != tt.release {
				t.Errorf("pressed=%v released=%v, want %v %v", in.JustPressed, in.JustReleased, tt.pressed, tt.release)
			}
			if in.WheelY != tt.wheelY {
				t.Errorf("WheelY = %v, want %v", in.WheelY, tt.wheelY)
			}
		})
	}
}

func TestHandleMouseClicksButton(t *testing.T) {
	app, _ := newTestApp(t)

	// Plain 按钮位于 (4,7)-(20,10)
	app.handleMouse(mouse(10, 8, tcell.ButtonNone))
	app.handleMouse(mouse(10, 8, tcell.Button1))
	app.handleMouse(mouse(10, 8, tcell.ButtonNone))

	if app.status != "button: plain" {
		t.Errorf("status = %q, want %q", app.status, "button: plain")
	}
	if got := app.input.Hovered(); got == 0 {
		t.Error("pointer over the button should hover it")
	}
}

func TestHandleMouseWheelScrollsOneCell(t *testing.T) {
	app, _ := newTestApp(t)

	app.handleMouse(mouse(10, 20, tcell.WheelDown))
	if _, sy := app.doc.Scroll(); sy != 1 {
		t.Errorf("scrollY = %v, want 1 after one wheel-down notch", sy)
	}
	app.handleMouse(mouse(10, 20, tcell.WheelUp))
	if _, sy := app.doc.Scroll(); sy != 0 {
		t.Errorf("scrollY = %v, want 0 after scrolling back", sy)
	}
}

func TestStopRestoresTerminalCursor(t *testing.T) {
	app, screen := newTestApp(t)

	app.handleMouse(mouse(12, 9, tcell.ButtonNone))
	if _, _, visible := screen.GetCursor(); visible {
		t.Error("terminal cursor should be hidden while the engine runs")
	}

	app.engine.Stop()
	x, y, visible := screen.GetCursor()
	if !visible {
		t.Fatal("Stop should show the terminal cursor again")
	}
	if x != 12 || y != 9 {
		t.Errorf("cursor at %d,%d, want last pointer cell 12,9", x, y)
	}
}
