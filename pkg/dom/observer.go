package dom

import (
	"github.com/decker502/targetcursor/pkg/components"
	"github.com/decker502/targetcursor/pkg/ecs"
)

// MutationObserver 观察元素树的结构变化（元素插入、移除）
// 回调在变化发生时同步调用，调用方通常在回调中重建缓存
type MutationObserver struct {
	callback func()
	doc      *Document
	handle   ecs.ObserverID
}

// NewMutationObserver 创建观察者，尚未开始观察
func NewMutationObserver(callback func()) *MutationObserver {
	return &MutationObserver{callback: callback}
}

// Observe 开始观察文档；重复调用会先断开之前的观察
func (o *MutationObserver) Observe(doc *Document) {
	o.Disconnect()
	o.doc = doc
	o.handle = doc.em.Observe(o.onChange)
}

// Disconnect 停止观察，可重复调用
func (o *MutationObserver) Disconnect() {
	if o.doc == nil {
		return
	}
	o.doc.em.Unobserve(o.handle)
	o.doc = nil
	o.handle = 0
}

// Observing 返回是否正在观察
func (o *MutationObserver) Observing() bool {
	return o.doc != nil
}

func (o *MutationObserver) onChange(c ecs.Change) {
	switch c.Kind {
	case ecs.EntityRemoved:
		o.callback()
	case ecs.ComponentAdded, ecs.ComponentRemoved:
		if ecs.IsComponentType[*components.ElementComponent](c) {
			o.callback()
		}
	}
}
