package app

import (
	"runtime"

	"github.com/decker502/targetcursor/pkg/cursor"
	"github.com/decker502/targetcursor/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenPlatform 基于 ebiten 窗口的宿主平台
type ebitenPlatform struct {
	width, height float64
}

func newEbitenPlatform(width, height int) *ebitenPlatform {
	return &ebitenPlatform{width: float64(width), height: float64(height)}
}

func (p *ebitenPlatform) Viewport() (float64, float64) {
	return p.width, p.height
}

func (p *ebitenPlatform) CursorVisible() bool {
	return ebiten.CursorMode() == ebiten.CursorModeVisible
}

func (p *ebitenPlatform) SetCursorVisible(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

// Capabilities 屏幕宽度取显示器宽度，取不到时退回逻辑视口宽度
func (p *ebitenPlatform) Capabilities() cursor.Capabilities {
	width := p.width
	if m := ebiten.Monitor(); m != nil {
		if mw, _ := m.Size(); mw > 0 {
			width = float64(mw)
		}
	}
	return cursor.Capabilities{
		ScreenWidth:   width,
		CoarsePointer: utils.IsMobile(),
		UserAgent:     runtime.GOOS,
	}
}
