// Package pointer 把宿主无关的指针状态翻译为页面事件
//
// ebiten 与终端宿主各自采集一帧的指针状态，交给 Translator 统一分发。
package pointer

import (
	"github.com/decker502/targetcursor/pkg/dom"
	"github.com/decker502/targetcursor/pkg/ecs"
	"github.com/decker502/targetcursor/pkg/event"
)

// DefaultScrollStep 每格滚轮滚动的像素数
const DefaultScrollStep = 40.0

// State 存储当前帧的指针输入状态
// 统一处理鼠标和触摸输入
type State struct {
	// 指针位置（视口坐标）
	X, Y int
	// 本帧是否刚按下 / 刚释放
	JustPressed  bool
	JustReleased bool
	// 是否有活动的触摸
	IsTouching bool
	// 滚轮偏移（本帧），正值表示向上
	WheelX, WheelY float64
}

// Translator 把一帧指针状态翻译为页面事件
//
// 每帧最多产生：pointermove（位置变化时）、scroll（滚轮）、
// over（命中元素变化时）、mousedown、mouseup + click（释放时）。
type Translator struct {
	doc        *dom.Document
	events     *event.Dispatcher
	ScrollStep float64

	hasPointer   bool
	lastX, lastY int
	hovered      ecs.EntityID
}

// NewTranslator 创建指针翻译器
func NewTranslator(doc *dom.Document, events *event.Dispatcher) *Translator {
	return &Translator{
		doc:        doc,
		events:     events,
		ScrollStep: DefaultScrollStep,
	}
}

// Feed 分发一帧输入
func (t *Translator) Feed(in State) {
	x, y := float64(in.X), float64(in.Y)

	if !t.hasPointer || in.X != t.lastX || in.Y != t.lastY {
		t.hasPointer = true
		t.lastX, t.lastY = in.X, in.Y
		t.emit(event.PointerMove, x, y)
	}

	if in.WheelX != 0 || in.WheelY != 0 {
		dx, dy := -in.WheelX*t.ScrollStep, -in.WheelY*t.ScrollStep
		t.doc.ScrollBy(dx, dy)
		target, _ := t.doc.ElementAt(x, y)
		t.events.Dispatch(&event.Event{Kind: event.Scroll, X: x, Y: y, DX: dx, DY: dy, Target: target})
	}

	// 滚动和移动都可能改变指针下的元素
	if target, _ := t.doc.ElementAt(x, y); target != t.hovered {
		t.hovered = target
		if target != 0 {
			t.emit(event.Over, x, y)
		}
	}

	if in.JustPressed {
		t.emit(event.MouseDown, x, y)
	}
	if in.JustReleased {
		t.emit(event.MouseUp, x, y)
		t.emit(event.Click, x, y)
	}
}

// Position 返回最后一次的指针位置，尚无指针时 ok 为 false
func (t *Translator) Position() (x, y int, ok bool) {
	return t.lastX, t.lastY, t.hasPointer
}

// Hovered 返回指针下的元素
func (t *Translator) Hovered() ecs.EntityID {
	return t.hovered
}

func (t *Translator) emit(kind event.Kind, x, y float64) {
	target, _ := t.doc.ElementAt(x, y)
	t.events.Dispatch(&event.Event{Kind: kind, X: x, Y: y, Target: target})
}
