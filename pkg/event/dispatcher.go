// Package event 提供窗口级的指针事件分发
//
// 事件依次经过：捕获阶段监听器 → 元素层处理（点击冒泡）→ 冒泡阶段监听器。
// 任一环节调用 StopPropagation 后，后续环节不再执行（同一阶段剩余的窗口监听器除外）。
package event

import "github.com/decker502/targetcursor/pkg/ecs"

// Kind 事件类型
type Kind string

const (
	PointerMove Kind = "pointermove"
	Scroll      Kind = "scroll"
	MouseDown   Kind = "mousedown"
	MouseUp     Kind = "mouseup"
	Click       Kind = "click"
	Over        Kind = "over" // 指针进入某个元素
)

// Phase 监听阶段
type Phase int

const (
	// Bubble 冒泡阶段（默认）
	Bubble Phase = iota
	// Capture 捕获阶段，先于元素处理执行
	Capture
)

// Event 一次指针事件
type Event struct {
	Kind      Kind
	X, Y      float64      // 视口坐标
	DX, DY    float64      // 滚动量（仅 Scroll）
	Target    ecs.EntityID // 命中的元素，0 表示无
	Synthetic bool         // 是否为程序合成的事件

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault 取消事件的默认行为
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented 返回默认行为是否已被取消
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation 阻止事件继续传播
func (e *Event) StopPropagation() { e.propagationStopped = true }

// PropagationStopped 返回传播是否已被阻止
func (e *Event) PropagationStopped() bool { return e.propagationStopped }

// Listener 事件回调
type Listener func(*Event)

// ListenerID 监听器句柄
type ListenerID uint64

// ElementHandler 元素层事件处理（由文档实现）
type ElementHandler interface {
	HandleElementEvent(ev *Event)
}

type entry struct {
	id      ListenerID
	kind    Kind
	phase   Phase
	fn      Listener
	removed bool
}

// Dispatcher 事件分发器
type Dispatcher struct {
	elements  ElementHandler
	nextID    uint64
	listeners []*entry
}

// NewDispatcher 创建分发器；elements 可为 nil
func NewDispatcher(elements ElementHandler) *Dispatcher {
	return &Dispatcher{elements: elements}
}

// AddListener 注册监听器
func (d *Dispatcher) AddListener(kind Kind, phase Phase, fn Listener) ListenerID {
	d.nextID++
	id := ListenerID(d.nextID)
	d.listeners = append(d.listeners, &entry{id: id, kind: kind, phase: phase, fn: fn})
	return id
}

// RemoveListener 移除监听器，返回是否确实移除
func (d *Dispatcher) RemoveListener(id ListenerID) bool {
	for i, e := range d.listeners {
		if e.id == id {
			e.removed = true
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount 返回已注册的监听器数量
func (d *Dispatcher) ListenerCount() int {
	return len(d.listeners)
}

// Dispatch 分发事件
func (d *Dispatcher) Dispatch(ev *Event) {
	// 快照：回调内部可能增删监听器或嵌套分发
	snapshot := make([]*entry, len(d.listeners))
	copy(snapshot, d.listeners)

	d.run(snapshot, ev, Capture)
	if ev.PropagationStopped() {
		return
	}

	if d.elements != nil && ev.Target != 0 {
		d.elements.HandleElementEvent(ev)
		if ev.PropagationStopped() {
			return
		}
	}

	d.run(snapshot, ev, Bubble)
}

func (d *Dispatcher) run(snapshot []*entry, ev *Event, phase Phase) {
	for _, e := range snapshot {
		if e.removed || e.phase != phase || e.kind != ev.Kind {
			continue
		}
		e.fn(ev)
	}
}
