package systems

import (
	"image/color"

	"github.com/decker502/targetcursor/pkg/components"
	"github.com/decker502/targetcursor/pkg/cursor"
	"github.com/decker502/targetcursor/pkg/dom"
	"github.com/decker502/targetcursor/pkg/ecs"
	"github.com/decker502/targetcursor/pkg/tween"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// VisualSource 提供覆盖层快照
type VisualSource interface {
	Visual() cursor.VisualState
}

// 绘制颜色
var (
	elementFill      = color.RGBA{R: 0x2a, G: 0x30, B: 0x38, A: 0xff}
	elementHighlight = color.RGBA{R: 0x3d, G: 0x5a, B: 0x80, A: 0xff}
	elementBorder    = color.RGBA{R: 0x55, G: 0x5d, B: 0x68, A: 0xff}
	overlayColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// dotRadius 中心点半径（未缩放）
const dotRadius = 2.0

// Segment 一段线段（视口坐标）
type Segment struct {
	From, To tween.Vec2
}

// RenderSystem 绘制页面元素和目标光标覆盖层
type RenderSystem struct {
	entityManager *ecs.EntityManager
	doc           *dom.Document
	overlay       VisualSource
	Background    color.Color
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(doc *dom.Document, overlay VisualSource) *RenderSystem {
	return &RenderSystem{
		entityManager: doc.EntityManager(),
		doc:           doc,
		overlay:       overlay,
		Background:    color.RGBA{R: 0x10, G: 0x14, B: 0x18, A: 0xff},
	}
}

// Draw 绘制一帧：背景、元素（文档顺序）、覆盖层
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(s.Background)

	for _, id := range ecs.GetEntitiesWith1[*components.ElementComponent](s.entityManager) {
		s.drawElement(screen, id)
	}

	v := s.overlay.Visual()
	if !v.Mounted {
		return
	}
	width := float32(v.Metrics.BorderWidth * v.Scale)
	for _, seg := range CornerSegments(v) {
		vector.StrokeLine(screen,
			float32(seg.From.X), float32(seg.From.Y),
			float32(seg.To.X), float32(seg.To.Y),
			width, overlayColor, true)
	}
	dot := v.ToScreen(v.Dot)
	vector.DrawFilledCircle(screen, float32(dot.X), float32(dot.Y),
		float32(dotRadius*v.DotScale*v.Scale), overlayColor, true)
}

func (s *RenderSystem) drawElement(screen *ebiten.Image, id ecs.EntityID) {
	r, ok := s.doc.Rect(id)
	if !ok || r.Width() <= 0 || r.Height() <= 0 {
		return
	}

	fill := elementFill
	if h, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id); ok {
		fill = LerpColor(elementFill, elementHighlight, h.Level)
	}
	x, y := float32(r.Left), float32(r.Top)
	w, h := float32(r.Width()), float32(r.Height())
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, elementBorder, false)

	if el, ok := s.doc.Element(id); ok && el.Label != "" {
		ebitenutil.DebugPrintAt(screen, el.Label, int(r.Left)+6, int(r.Top)+4)
	}
}

// CornerSegments 计算四个 L 形角标的边框线段
// 每个角标方块只描出朝外的两条边：左上为上边和左边，依次顺时针
func CornerSegments(v cursor.VisualState) []Segment {
	bw, cs := v.Metrics.BorderWidth, v.Metrics.CornerSize
	half := bw / 2
	segs := make([]Segment, 0, len(v.Corners)*2)
	for i, c := range v.Corners {
		top := c.Y + half
		bottom := c.Y + cs - half
		left := c.X + half
		right := c.X + cs - half

		var horizontal, vertical Segment
		switch i {
		case 0:
			horizontal = Segment{tween.Vec2{X: c.X, Y: top}, tween.Vec2{X: c.X + cs, Y: top}}
			vertical = Segment{tween.Vec2{X: left, Y: c.Y}, tween.Vec2{X: left, Y: c.Y + cs}}
		case 1:
			horizontal = Segment{tween.Vec2{X: c.X, Y: top}, tween.Vec2{X: c.X + cs, Y: top}}
			vertical = Segment{tween.Vec2{X: right, Y: c.Y}, tween.Vec2{X: right, Y: c.Y + cs}}
		case 2:
			horizontal = Segment{tween.Vec2{X: c.X, Y: bottom}, tween.Vec2{X: c.X + cs, Y: bottom}}
			vertical = Segment{tween.Vec2{X: right, Y: c.Y}, tween.Vec2{X: right, Y: c.Y + cs}}
		default:
			horizontal = Segment{tween.Vec2{X: c.X, Y: bottom}, tween.Vec2{X: c.X + cs, Y: bottom}}
			vertical = Segment{tween.Vec2{X: left, Y: c.Y}, tween.Vec2{X: left, Y: c.Y + cs}}
		}
		segs = append(segs,
			Segment{v.ToScreen(horizontal.From), v.ToScreen(horizontal.To)},
			Segment{v.ToScreen(vertical.From), v.ToScreen(vertical.To)},
		)
	}
	return segs
}

// LerpColor 按 t ∈ [0, 1] 在两种颜色间插值
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = max(0, min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
