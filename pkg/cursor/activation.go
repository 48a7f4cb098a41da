package cursor

import (
	"log"

	"github.com/decker502/targetcursor/pkg/dom"
	"github.com/decker502/targetcursor/pkg/ecs"
	"github.com/decker502/targetcursor/pkg/frame"
	"github.com/decker502/targetcursor/pkg/tween"
	"github.com/decker502/targetcursor/pkg/utils"
)

// State 激活状态
type State int

const (
	// Idle 空闲旋转，没有目标
	Idle State = iota
	// Activating 激活强度正在从 0 升到 1
	Activating
	// Active 完全激活，跟随目标
	Active
	// Deactivating 角标回到静止布局、等待恢复旋转
	Deactivating
)

// String 返回状态名
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Activating:
		return "activating"
	case Active:
		return "active"
	case Deactivating:
		return "deactivating"
	}
	return "unknown"
}

// Transition 一次状态切换记录
type Transition struct {
	From   State
	To     State
	Target ecs.EntityID // 切换涉及的元素
}

// ActiveTarget 当前吸附的目标
//
// 矩形只在激活时捕获一次，之后不再重新采样：目标在激活期间移动或改变
// 尺寸时，取景框仍停留在捕获时的位置，直到下一次激活。
type ActiveTarget struct {
	Candidate
	Rect    dom.Rect
	Corners [cornerCount]tween.Vec2 // 角标目标位置（视口坐标）
	Center  tween.Vec2              // 目标中心（视口坐标）
}

// activate 吸附到候选元素
// 已有其他目标时先同步失活，任何时刻最多只有一个目标
func (e *Engine) activate(c Candidate) {
	if !e.mounted {
		return
	}
	if e.active != nil && e.active.ID == c.ID {
		return
	}
	rect, ok := e.host.Document.Rect(c.ID)
	if !ok {
		return
	}

	if e.active != nil {
		e.deactivate(e.active.ID)
	}

	// 取消待执行的恢复旋转
	e.host.Frames.Scheduler.Cancel(e.graceToken)
	e.graceToken = frame.Token{}

	e.props.Kill(cornerProps()...)
	e.props.Kill(propRotation)
	e.spin.pause()
	e.props.Set(propRotation, 0)

	marker := e.props.GetVec(propMarkerX, propMarkerY)
	cx, cy := rect.Center()
	e.active = &ActiveTarget{
		Candidate: c,
		Rect:      rect,
		Corners:   CornerTargets(rect, e.metrics),
		Center:    tween.Vec2{X: cx, Y: cy},
	}
	e.generation++
	generation := e.generation
	e.setState(Activating, c.ID)

	e.tickerHandle = e.host.Frames.Ticker.Add(e.interpolate)

	e.props.To(propStrength, 1, e.opts.HoverDuration, utils.EasePower2Out, func() {
		if e.generation == generation {
			e.setState(Active, c.ID)
		}
	})
	for i, corner := range e.active.Corners {
		offset := corner.Sub(marker)
		e.props.To(propCornerX[i], offset.X, cornerSnapDuration, utils.EasePower2Out, nil)
		e.props.To(propCornerY[i], offset.Y, cornerSnapDuration, utils.EasePower2Out, nil)
	}

	log.Printf("[TargetCursor] 激活目标 %d (半径 %.0f)", c.ID, c.Threshold)
}

// deactivate 释放目标；id 不是当前目标时忽略
func (e *Engine) deactivate(id ecs.EntityID) {
	if e.active == nil || e.active.ID != id {
		return
	}

	e.host.Frames.Ticker.Remove(e.tickerHandle)
	e.tickerHandle = 0
	e.active = nil
	e.generation++
	generation := e.generation

	// 强度立即归零，不做缓动
	e.props.Set(propStrength, 0)

	e.props.To(propDotX, 0, restingDuration, utils.EasePower3Out, nil)
	e.props.To(propDotY, 0, restingDuration, utils.EasePower3Out, nil)

	e.restingDone = false
	e.graceDone = false
	e.props.Kill(cornerProps()...)
	for i, pos := range RestingLayout(e.metrics) {
		var done func()
		if i == 0 {
			done = func() {
				if e.generation == generation {
					e.restingDone = true
					e.settleIdle()
				}
			}
		}
		e.props.To(propCornerX[i], pos.X, restingDuration, utils.EasePower3Out, done)
		e.props.To(propCornerY[i], pos.Y, restingDuration, utils.EasePower3Out, nil)
	}

	e.setState(Deactivating, id)

	e.graceToken = e.host.Frames.Scheduler.After(resumeGraceDelay, e.resumeSpin)

	log.Printf("[TargetCursor] 释放目标 %d", id)
}

// resumeSpin 宽限期结束后恢复空闲旋转，保持当前相位
// 先把角度归一化到 [0, 360)，再以稳态角速度补完本圈，之后重新开始匀速旋转
func (e *Engine) resumeSpin() {
	e.graceToken = frame.Token{}
	if e.active != nil || !e.mounted {
		return
	}
	e.graceDone = true

	generation := e.generation
	normalized := NormalizeRotation(e.props.Get(propRotation))
	e.spin.pause()
	e.props.Set(propRotation, normalized)
	remaining := e.opts.SpinDuration * (1 - normalized/360)
	e.props.To(propRotation, 360, remaining, utils.EaseLinear, func() {
		if e.generation != generation || e.active != nil {
			return
		}
		e.props.Set(propRotation, 0)
		e.spin.start(e.opts.SpinDuration)
	})

	e.settleIdle()
}

// settleIdle 角标归位且宽限期结束后进入空闲
func (e *Engine) settleIdle() {
	if e.state == Deactivating && e.restingDone && e.graceDone {
		e.setState(Idle, 0)
	}
}

func (e *Engine) setState(to State, target ecs.EntityID) {
	from := e.state
	e.state = to
	if e.onTransition != nil {
		e.onTransition(Transition{From: from, To: to, Target: target})
	}
}
