package cursor

import (
	"math"
	"testing"

	"github.com/decker502/targetcursor/pkg/components"
	"github.com/decker502/targetcursor/pkg/dom"
	"github.com/decker502/targetcursor/pkg/ecs"
	"github.com/decker502/targetcursor/pkg/event"
	"github.com/decker502/targetcursor/pkg/frame"
	"github.com/decker502/targetcursor/pkg/tween"
)

// frameDelta 测试使用的固定帧间隔（60 FPS）
const frameDelta = 1.0 / 60

// fakePlatform 无窗口的测试平台
type fakePlatform struct {
	width, height float64
	visible       bool
	caps          Capabilities
}

func (p *fakePlatform) Viewport() (float64, float64) { return p.width, p.height }
func (p *fakePlatform) CursorVisible() bool { return p.visible }
func (p *fakePlatform) SetCursorVisible(v bool) { p.visible = v }
func (p *fakePlatform) Capabilities() Capabilities { return p.caps }

// harness 组装一个完整的无窗口宿主
type harness struct {
	t        *testing.T
	em       *ecs.EntityManager
	doc      *dom.Document
	events   *event.Dispatcher
	loop     *frame.Loop
	platform *fakePlatform
	engine   *Engine

	transitions []Transition
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	em := ecs.NewEntityManager()
	doc := dom.NewDocument(em)
	h := &harness{
		t:      t,
		em:     em,
		doc:    doc,
		events: event.NewDispatcher(doc),
		loop:   frame.NewLoop(),
		platform: &fakePlatform{
			width:   1280,
			height:  720,
			visible: true,
			caps:    Capabilities{ScreenWidth: 1280},
		},
	}
	h.engine = New(Host{
		Document: h.doc,
		Events:   h.events,
		Frames:   h.loop,
		Platform: h.platform,
	}, opts)
	h.engine.SetTransitionHook(func(tr Transition) {
		h.transitions = append(h.transitions, tr)
	})
	return h
}

// start 启动引擎，失败时终止测试
func (h *harness) start() {
	h.t.Helper()
	if err := h.engine.Start(); err != nil {
		h.t.Fatalf("Start failed: %v", err)
	}
}

// addElement 在根节点下创建元素
func (h *harness) addElement(parent ecs.EntityID, x, y, w, height float64, classes ...string) ecs.EntityID {
	return h.doc.AppendChild(parent, &components.ElementComponent{
		Tag:     "div",
		Classes: classes,
		X:       x,
		Y:       y,
		Width:   w,
		Height:  height,
	})
}

// addTarget 创建带点击组件的候选元素
func (h *harness) addTarget(x, y, w, height float64, classes ...string) ecs.EntityID {
	id := h.addElement(0, x, y, w, height, append([]string{"cursor-target"}, classes...)...)
	h.em.AddComponent(id, &components.ClickableComponent{IsEnabled: true})
	return id
}

func (h *harness) clickable(id ecs.EntityID) *components.ClickableComponent {
	h.t.Helper()
	c, ok := ecs.GetComponent[*components.ClickableComponent](h.em, id)
	if !ok {
		h.t.Fatalf("entity %d has no ClickableComponent", id)
	}
	return c
}

// dispatch 在指定位置分发事件，命中元素由文档决定
func (h *harness) dispatch(kind event.Kind, x, y float64) *event.Event {
	target, _ := h.doc.ElementAt(x, y)
	ev := &event.Event{Kind: kind, X: x, Y: y, Target: target}
	h.events.Dispatch(ev)
	return ev
}

func (h *harness) move(x, y float64) {
	h.dispatch(event.PointerMove, x, y)
}

// step 以固定帧间隔推进 seconds 秒
func (h *harness) step(seconds float64) {
	frames := int(math.Round(seconds / frameDelta))
	for i := 0; i < frames; i++ {
		h.loop.Step(frameDelta)
	}
}

// screenCorners 返回角标在视口中的位置
func (h *harness) screenCorners() [cornerCount]tween.Vec2 {
	v := h.engine.Visual()
	var out [cornerCount]tween.Vec2
	for i, c := range v.Corners {
		out[i] = v.ToScreen(c)
	}
	return out
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func approxVec(a, b tween.Vec2, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}
