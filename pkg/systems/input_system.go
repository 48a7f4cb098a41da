package systems

import (
	"github.com/decker502/targetcursor/pkg/dom"
	"github.com/decker502/targetcursor/pkg/event"
	"github.com/decker502/targetcursor/pkg/pointer"
)

// InputSystem 每帧采集 ebiten 指针输入并翻译为页面事件
type InputSystem struct {
	*pointer.Translator
}

// NewInputSystem 创建输入系统
func NewInputSystem(doc *dom.Document, events *event.Dispatcher) *InputSystem {
	return &InputSystem{Translator: pointer.NewTranslator(doc, events)}
}

// Update 读取本帧的 ebiten 输入并分发
func (s *InputSystem) Update() {
	s.Feed(GetInputState())
}
