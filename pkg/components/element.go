package components

import "github.com/decker502/targetcursor/pkg/ecs"

// ElementComponent 页面元素组件
// 描述元素树中的一个节点：标签、类名列表、父节点和页面坐标系下的矩形
//
// 坐标为页面坐标（不含滚动偏移），视口坐标由 dom.Document 结合滚动量换算
type ElementComponent struct {
	Tag     string       // 元素标签，如 "button"、"li"
	Classes []string     // 类名列表，如 ["cursor-target", "proximity-40"]
	Parent  ecs.EntityID // 父元素，0 表示根节点
	X       float64      // 左上角X坐标（页面坐标）
	Y       float64      // 左上角Y坐标（页面坐标）
	Width   float64      // 宽度（像素）
	Height  float64      // 高度（像素）
	Label   string       // 显示文字（仅用于渲染）
	Fixed   bool         // 是否固定在视口（不随滚动移动）
}

// HasClass 检查元素是否带有指定类名
func (e *ElementComponent) HasClass(name string) bool {
	for _, c := range e.Classes {
		if c == name {
			return true
		}
	}
	return false
}
