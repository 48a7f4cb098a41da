package dom

import (
	"github.com/decker502/targetcursor/pkg/components"
	"github.com/decker502/targetcursor/pkg/ecs"
	"github.com/decker502/targetcursor/pkg/event"
)

// Rect 视口坐标系下的轴对齐矩形
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width 返回矩形宽度
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height 返回矩形高度
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center 返回矩形中心点
func (r Rect) Center() (float64, float64) {
	return r.Left + r.Width()/2, r.Top + r.Height()/2
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Document 元素树访问入口
// 不持有元素生命周期：所有查询都以实体当前是否存活为准
type Document struct {
	em      *ecs.EntityManager
	scrollX float64
	scrollY float64
}

// NewDocument 基于实体管理器创建文档
func NewDocument(em *ecs.EntityManager) *Document {
	return &Document{em: em}
}

// EntityManager 返回底层实体管理器
func (d *Document) EntityManager() *ecs.EntityManager {
	return d.em
}

// AppendChild 创建元素并挂到 parent 下（parent 为 0 表示根）
func (d *Document) AppendChild(parent ecs.EntityID, el *components.ElementComponent) ecs.EntityID {
	id := d.em.CreateEntity()
	el.Parent = parent
	d.em.AddComponent(id, el)
	return id
}

// RemoveElement 删除元素及其全部后代
func (d *Document) RemoveElement(id ecs.EntityID) {
	if !d.em.IsAlive(id) {
		return
	}
	for _, other := range ecs.GetEntitiesWith1[*components.ElementComponent](d.em) {
		if d.Contains(id, other) {
			d.em.DestroyEntity(other)
		}
	}
	d.em.RemoveMarkedEntities()
}

// Element 返回元素组件
func (d *Document) Element(id ecs.EntityID) (*components.ElementComponent, bool) {
	return ecs.GetComponent[*components.ElementComponent](d.em, id)
}

// Attached 判断元素是否存活且父链完整（没有被移除的祖先）
func (d *Document) Attached(id ecs.EntityID) bool {
	for depth := 0; id != 0; depth++ {
		el, ok := d.Element(id)
		if !ok || depth > maxDepth {
			return false
		}
		id = el.Parent
	}
	return true
}

// maxDepth 防止父链成环时死循环
const maxDepth = 256

// Rect 返回元素当前的视口矩形
// 元素已被移除或脱离文档时返回 false，调用方必须处理该情况
func (d *Document) Rect(id ecs.EntityID) (Rect, bool) {
	el, ok := d.Element(id)
	if !ok || !d.Attached(id) {
		return Rect{}, false
	}
	x, y := el.X, el.Y
	if !el.Fixed {
		x -= d.scrollX
		y -= d.scrollY
	}
	return Rect{Left: x, Top: y, Right: x + el.Width, Bottom: y + el.Height}, true
}

// Classes 返回元素的类名列表
func (d *Document) Classes(id ecs.EntityID) []string {
	el, ok := d.Element(id)
	if !ok {
		return nil
	}
	return el.Classes
}

// Parent 返回父元素
func (d *Document) Parent(id ecs.EntityID) (ecs.EntityID, bool) {
	el, ok := d.Element(id)
	if !ok || el.Parent == 0 {
		return 0, false
	}
	return el.Parent, true
}

// Matches 判断元素是否匹配选择器
func (d *Document) Matches(id ecs.EntityID, sel Selector) bool {
	el, ok := d.Element(id)
	return ok && sel.MatchElement(el)
}

// QueryAll 按文档顺序返回所有匹配选择器且仍在文档中的元素
func (d *Document) QueryAll(sel Selector) []ecs.EntityID {
	result := make([]ecs.EntityID, 0)
	for _, id := range ecs.GetEntitiesWith1[*components.ElementComponent](d.em) {
		if d.Matches(id, sel) && d.Attached(id) {
			result = append(result, id)
		}
	}
	return result
}

// Closest 从元素自身开始沿父链查找第一个匹配选择器的元素
func (d *Document) Closest(id ecs.EntityID, sel Selector) (ecs.EntityID, bool) {
	for depth := 0; id != 0 && depth <= maxDepth; depth++ {
		el, ok := d.Element(id)
		if !ok {
			return 0, false
		}
		if sel.MatchElement(el) {
			return id, true
		}
		id = el.Parent
	}
	return 0, false
}

// Contains 判断 node 是否为 ancestor 本身或其后代
func (d *Document) Contains(ancestor, node ecs.EntityID) bool {
	if ancestor == 0 {
		return false
	}
	for depth := 0; node != 0 && depth <= maxDepth; depth++ {
		if node == ancestor {
			return true
		}
		el, ok := d.Element(node)
		if !ok {
			return false
		}
		node = el.Parent
	}
	return false
}

// ElementAt 返回视口坐标处最上层的元素（后创建者在上层）
func (d *Document) ElementAt(x, y float64) (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith1[*components.ElementComponent](d.em)
	for i := len(ids) - 1; i >= 0; i-- {
		r, ok := d.Rect(ids[i])
		if ok && r.Contains(x, y) {
			return ids[i], true
		}
	}
	return 0, false
}

// ScrollBy 滚动视口
func (d *Document) ScrollBy(dx, dy float64) {
	d.scrollX += dx
	d.scrollY += dy
	if d.scrollX < 0 {
		d.scrollX = 0
	}
	if d.scrollY < 0 {
		d.scrollY = 0
	}
}

// Scroll 返回当前滚动偏移
func (d *Document) Scroll() (float64, float64) {
	return d.scrollX, d.scrollY
}

// HandleElementEvent 执行元素层的事件处理
// 点击事件从目标元素沿父链冒泡，调用每一层启用的 ClickableComponent
func (d *Document) HandleElementEvent(ev *event.Event) {
	if ev.Kind != event.Click {
		return
	}
	id := ev.Target
	for depth := 0; id != 0 && depth <= maxDepth; depth++ {
		if ev.PropagationStopped() {
			return
		}
		el, ok := d.Element(id)
		if !ok {
			return
		}
		if clickable, ok := ecs.GetComponent[*components.ClickableComponent](d.em, id); ok && clickable.IsEnabled {
			clickable.Clicks++
			if clickable.OnClick != nil {
				clickable.OnClick()
			}
		}
		id = el.Parent
	}
}
