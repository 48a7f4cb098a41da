package entities

import (
	"log"

	"github.com/decker502/targetcursor/pkg/components"
	"github.com/decker502/targetcursor/pkg/config"
	"github.com/decker502/targetcursor/pkg/dom"
	"github.com/decker502/targetcursor/pkg/ecs"
)

// highlightFadeSpeed 高亮渐变速度（每秒）
const highlightFadeSpeed = 6.0

// BuildPage 根据页面配置创建元素树
//
// 参数：
//   - doc: 目标文档
//   - cfg: 页面配置
//   - onMessage: 可点击元素被点击时的回调，参数为元素配置的 message
//
// 返回：
//   - 按文档顺序创建的全部元素ID
func BuildPage(doc *dom.Document, cfg *config.PageConfig, onMessage func(string)) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, cfg.CountElements())
	for _, el := range cfg.Elements {
		ids = appendElement(doc, 0, 0, 0, el, onMessage, ids)
	}
	log.Printf("[Entities] 创建页面元素 %d 个", len(ids))
	return ids
}

// appendElement 递归创建元素，子元素坐标相对父元素换算为页面坐标
func appendElement(doc *dom.Document, parent ecs.EntityID, originX, originY float64, cfg config.ElementConfig, onMessage func(string), ids []ecs.EntityID) []ecs.EntityID {
	id := NewElement(doc, parent, originX+cfg.X, originY+cfg.Y, cfg, onMessage)
	ids = append(ids, id)
	for _, child := range cfg.Children {
		ids = appendElement(doc, id, originX+cfg.X, originY+cfg.Y, child, onMessage, ids)
	}
	return ids
}

// NewElement 创建单个元素实体
// 带 message 的元素可点击；所有元素都带有吸附高亮组件，由高亮系统按需点亮
func NewElement(doc *dom.Document, parent ecs.EntityID, x, y float64, cfg config.ElementConfig, onMessage func(string)) ecs.EntityID {
	classes := append([]string(nil), cfg.Classes...)
	id := doc.AppendChild(parent, &components.ElementComponent{
		Tag:     cfg.Tag,
		Classes: classes,
		X:       x,
		Y:       y,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Label:   cfg.Label,
		Fixed:   cfg.Fixed,
	})

	em := doc.EntityManager()
	if cfg.Message != "" {
		message := cfg.Message
		ecs.AddComponent(em, id, &components.ClickableComponent{
			IsEnabled: true,
			OnClick: func() {
				if onMessage != nil {
					onMessage(message)
				}
			},
		})
	}
	ecs.AddComponent(em, id, &components.HoverHighlightComponent{FadeSpeed: highlightFadeSpeed})
	return id
}
