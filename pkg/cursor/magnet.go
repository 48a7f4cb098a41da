package cursor

import "github.com/decker502/targetcursor/pkg/event"

// routeMagnetic 磁吸点击转发（捕获阶段，仅磁吸模式注册）
// 点击或按下落在目标光晕内但不在目标及其后代上时，取消原事件并向目标合成一次点击
func (e *Engine) routeMagnetic(ev *event.Event) {
	if !e.opts.Magnetic() || e.active == nil {
		return
	}
	target := e.active.ID
	if ev.Target == target || e.host.Document.Contains(target, ev.Target) {
		return
	}

	ev.PreventDefault()
	ev.StopPropagation()

	e.host.Events.Dispatch(&event.Event{
		Kind:      event.Click,
		X:         ev.X,
		Y:         ev.Y,
		Target:    target,
		Synthetic: true,
	})
}
