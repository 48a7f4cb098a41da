package systems

import (
	"github.com/decker502/targetcursor/pkg/components"
	"github.com/decker502/targetcursor/pkg/cursor"
	"github.com/decker502/targetcursor/pkg/ecs"
)

// ActiveTargetSource 提供当前吸附目标
type ActiveTargetSource interface {
	ActiveTarget() (cursor.ActiveTarget, bool)
}

// HighlightSystem 根据光标引擎的吸附目标点亮元素
type HighlightSystem struct {
	entityManager *ecs.EntityManager
	source        ActiveTargetSource
}

// NewHighlightSystem 创建高亮系统
func NewHighlightSystem(em *ecs.EntityManager, source ActiveTargetSource) *HighlightSystem {
	return &HighlightSystem{entityManager: em, source: source}
}

// Update 更新所有高亮组件
func (s *HighlightSystem) Update(deltaTime float64) {
	var active ecs.EntityID
	if target, ok := s.source.ActiveTarget(); ok {
		active = target.ID
	}

	for _, id := range ecs.GetEntitiesWith1[*components.HoverHighlightComponent](s.entityManager) {
		h, _ := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id)
		h.IsActive = id == active

		goal := 0.0
		if h.IsActive {
			goal = 1
		}
		if h.FadeSpeed <= 0 {
			h.Level = goal
			continue
		}
		step := h.FadeSpeed * deltaTime
		switch {
		case h.Level < goal:
			h.Level = min(goal, h.Level+step)
		case h.Level > goal:
			h.Level = max(goal, h.Level-step)
		}
	}
}
