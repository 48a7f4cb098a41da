package cursor

import (
	"fmt"
	"log"

	"github.com/decker502/targetcursor/pkg/dom"
	"github.com/decker502/targetcursor/pkg/event"
	"github.com/decker502/targetcursor/pkg/frame"
	"github.com/decker502/targetcursor/pkg/tween"
	"github.com/decker502/targetcursor/pkg/utils"
)

// Host 引擎运行所需的宿主协作者
type Host struct {
	Document *dom.Document
	Events   *event.Dispatcher
	Frames   *frame.Loop
	Platform Platform
	// Metrics 覆盖层尺寸，零值时使用 DefaultMetrics
	Metrics Metrics
}

// Engine 目标光标引擎
//
// 所有回调都在宿主帧内同步执行，Engine 不是并发安全的。
type Engine struct {
	host    Host
	opts    Options
	metrics Metrics

	selector dom.Selector
	registry *Registry
	resolver Resolver
	observer *dom.MutationObserver

	props *tween.Table
	spin  spinner

	started bool // Start 已调用且尚未 Stop
	enabled bool // 非触屏设备，覆盖层已启用
	mounted bool

	state       State
	active      *ActiveTarget
	generation  uint64 // 每次激活/失活递增，用于丢弃过期的补间回调
	graceToken  frame.Token
	graceDone   bool
	restingDone bool

	animHandle   frame.Handle
	tickerHandle frame.Handle
	listeners    []event.ListenerID

	savedCursorVisible bool
	cursorHidden       bool

	pointer    tween.Vec2
	hasPointer bool

	onTransition func(Transition)
}

// New 创建引擎，需调用 Start 启动
func New(host Host, opts Options) *Engine {
	metrics := host.Metrics
	if metrics == (Metrics{}) {
		metrics = DefaultMetrics()
	}
	return &Engine{
		host:    host,
		opts:    opts,
		metrics: metrics,
		props:   tween.NewTable(),
	}
}

// Start 挂载覆盖层并注册所有监听
// 选择器无效时返回错误；触屏小屏设备上不启用，返回 nil
func (e *Engine) Start() error {
	if e.started {
		return nil
	}

	selector, err := dom.ParseSelector(e.opts.TargetSelector)
	if err != nil {
		return fmt.Errorf("invalid target selector %q: %w", e.opts.TargetSelector, err)
	}
	e.selector = selector
	e.started = true

	if IsTouchDevice(e.host.Platform.Capabilities()) {
		log.Printf("[TargetCursor] 检测到触屏设备，光标引擎不启用")
		return nil
	}
	e.enabled = true

	e.savedCursorVisible = e.host.Platform.CursorVisible()
	if e.opts.HideDefaultCursor {
		e.host.Platform.SetCursorVisible(false)
		e.cursorHidden = true
	}

	// 初始位置：视口中心
	w, h := e.host.Platform.Viewport()
	e.props.Set(propMarkerX, w/2)
	e.props.Set(propMarkerY, h/2)
	e.props.Set(propRotation, 0)
	e.props.Set(propScale, 1)
	e.props.Set(propDotScale, 1)
	e.props.Set(propDotX, 0)
	e.props.Set(propDotY, 0)
	e.props.Set(propStrength, 0)
	for i, pos := range RestingLayout(e.metrics) {
		e.props.Set(propCornerX[i], pos.X)
		e.props.Set(propCornerY[i], pos.Y)
	}
	e.mounted = true
	e.state = Idle

	e.registry = NewRegistry(e.host.Document, e.selector, e.opts.Proximity)
	e.registry.Refresh()
	e.resolver = Resolver{Rects: e.host.Document}
	e.observer = dom.NewMutationObserver(e.onMutation)
	e.observer.Observe(e.host.Document)

	e.spin.start(e.opts.SpinDuration)
	e.animHandle = e.host.Frames.Ticker.Add(e.animate)

	e.listen(event.PointerMove, event.Bubble, e.onPointerMove)
	e.listen(event.Scroll, event.Bubble, e.onScroll)
	e.listen(event.MouseDown, event.Bubble, e.onMouseDown)
	e.listen(event.MouseUp, event.Bubble, e.onMouseUp)
	if e.opts.Magnetic() {
		e.listen(event.Click, event.Capture, e.routeMagnetic)
		e.listen(event.MouseDown, event.Capture, e.routeMagnetic)
	} else {
		e.listen(event.Over, event.Bubble, e.onOver)
	}

	log.Printf("[TargetCursor] 已启动: selector=%q candidates=%d proximity=%.0f",
		e.opts.TargetSelector, e.registry.Len(), e.opts.Proximity)
	return nil
}

func (e *Engine) listen(kind event.Kind, phase event.Phase, fn event.Listener) {
	e.listeners = append(e.listeners, e.host.Events.AddListener(kind, phase, fn))
}

// Stop 卸载覆盖层并注销所有监听、逐帧回调、定时任务和观察者
// 可重复调用
func (e *Engine) Stop() {
	if !e.started {
		return
	}
	e.started = false

	for _, id := range e.listeners {
		e.host.Events.RemoveListener(id)
	}
	e.listeners = nil

	e.host.Frames.Ticker.Remove(e.tickerHandle)
	e.tickerHandle = 0
	e.host.Frames.Ticker.Remove(e.animHandle)
	e.animHandle = 0
	e.host.Frames.Scheduler.Cancel(e.graceToken)
	e.graceToken = frame.Token{}

	if e.observer != nil {
		e.observer.Disconnect()
		e.observer = nil
	}

	e.props.KillAll()
	e.spin.pause()

	if e.cursorHidden {
		e.host.Platform.SetCursorVisible(e.savedCursorVisible)
		e.cursorHidden = false
	}

	e.active = nil
	e.generation++
	e.mounted = false
	e.enabled = false
	e.state = Idle
	e.hasPointer = false

	log.Printf("[TargetCursor] 已停止")
}

// Restart 以新配置重新启动
func (e *Engine) Restart(opts Options) error {
	e.Stop()
	e.opts = opts
	return e.Start()
}

// SetSpinDuration 修改空闲旋转周期，正在旋转时立即生效
func (e *Engine) SetSpinDuration(seconds float64) {
	e.opts.SpinDuration = seconds
	if e.spin.running {
		e.spin.start(seconds)
	}
}

// SetTransitionHook 设置状态切换回调（用于日志和测试），nil 表示移除
func (e *Engine) SetTransitionHook(fn func(Transition)) {
	e.onTransition = fn
}

// Options 返回当前配置
func (e *Engine) Options() Options {
	return e.opts
}

// Started 返回 Start 是否已调用且尚未 Stop
func (e *Engine) Started() bool {
	return e.started
}

// Enabled 返回覆盖层是否启用（触屏设备上为 false）
func (e *Engine) Enabled() bool {
	return e.enabled
}

// State 返回当前激活状态
func (e *Engine) State() State {
	return e.state
}

// ActiveTarget 返回当前目标的副本
func (e *Engine) ActiveTarget() (ActiveTarget, bool) {
	if e.active == nil {
		return ActiveTarget{}, false
	}
	return *e.active, true
}

// Candidates 返回当前候选列表的副本
func (e *Engine) Candidates() []Candidate {
	if e.registry == nil {
		return nil
	}
	return append([]Candidate(nil), e.registry.Candidates()...)
}

// Visual 返回覆盖层的可绘制快照
func (e *Engine) Visual() VisualState {
	v := VisualState{
		Mounted:  e.mounted,
		Position: e.props.GetVec(propMarkerX, propMarkerY),
		Rotation: e.props.Get(propRotation),
		Scale:    e.props.Get(propScale),
		DotScale: e.props.Get(propDotScale),
		Dot:      e.props.GetVec(propDotX, propDotY),
		Strength: e.props.Get(propStrength),
		Metrics:  e.metrics,
	}
	for i := range v.Corners {
		v.Corners[i] = e.props.GetVec(propCornerX[i], propCornerY[i])
	}
	return v
}

func (e *Engine) onMutation() {
	if !e.mounted {
		return
	}
	e.registry.Refresh()
	// 目标被移除时立即释放
	if e.active != nil {
		if _, ok := e.host.Document.Rect(e.active.ID); !ok {
			e.deactivate(e.active.ID)
		}
	}
}

func (e *Engine) onPointerMove(ev *event.Event) {
	if !e.mounted {
		return
	}
	e.pointer = tween.Vec2{X: ev.X, Y: ev.Y}
	e.hasPointer = true
	e.props.To(propMarkerX, ev.X, markerFollowDuration, utils.EasePower1Out, nil)
	e.props.To(propMarkerY, ev.Y, markerFollowDuration, utils.EasePower1Out, nil)
	e.resolveAt(ev.X, ev.Y)
}

// resolveAt 在指针位置重新解析目标
// 没有候选合格时，当前目标仍在自身半径内则保留
func (e *Engine) resolveAt(px, py float64) {
	candidates := e.registry.Candidates()
	if len(candidates) == 0 {
		if e.active != nil {
			e.deactivate(e.active.ID)
		}
		return
	}
	if best, ok := e.resolver.Resolve(px, py, candidates); ok {
		e.activate(best)
		return
	}
	if e.active != nil && !e.resolver.Retains(px, py, e.active.Candidate) {
		e.deactivate(e.active.ID)
	}
}

// onOver 半径为 0 时的直接悬停路径
func (e *Engine) onOver(ev *event.Event) {
	if !e.mounted || ev.Target == 0 {
		return
	}
	id, ok := e.host.Document.Closest(ev.Target, e.selector)
	if !ok {
		return
	}
	e.activate(Candidate{ID: id, Threshold: e.registry.ThresholdFor(id)})
}

func (e *Engine) onScroll(*event.Event) {
	if !e.mounted || e.active == nil {
		return
	}
	if e.opts.Magnetic() {
		if e.hasPointer {
			e.resolveAt(e.pointer.X, e.pointer.Y)
		}
		return
	}

	marker := e.props.GetVec(propMarkerX, propMarkerY)
	current := e.active.ID
	under, ok := e.host.Document.ElementAt(marker.X, marker.Y)
	if ok {
		if under == current {
			return
		}
		if closest, found := e.host.Document.Closest(under, e.selector); found && closest == current {
			return
		}
	}
	e.deactivate(current)
}

func (e *Engine) onMouseDown(*event.Event) {
	if !e.mounted {
		return
	}
	e.props.To(propDotScale, pressDotScale, pressDotDuration, utils.EasePower1Out, nil)
	e.props.To(propScale, pressMarkerScale, pressMarkerDuration, utils.EasePower1Out, nil)
}

func (e *Engine) onMouseUp(*event.Event) {
	if !e.mounted {
		return
	}
	e.props.To(propDotScale, 1, releaseDotDuration, utils.EasePower1Out, nil)
	e.props.To(propScale, 1, releaseMarkerDuration, utils.EasePower1Out, nil)
}
