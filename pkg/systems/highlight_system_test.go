package systems

import (
	"math"
	"testing"

	"github.com/decker502/targetcursor/pkg/components"
	"github.com/decker502/targetcursor/pkg/cursor"
	"github.com/decker502/targetcursor/pkg/ecs"
)

type fakeActive struct {
	id ecs.EntityID
}

func (f *fakeActive) ActiveTarget() (cursor.ActiveTarget, bool) {
	if f.id == 0 {
		return cursor.ActiveTarget{}, false
	}
	return cursor.ActiveTarget{Candidate: cursor.Candidate{ID: f.id}}, true
}

func TestHighlightSystemFades(t *testing.T) {
	em := ecs.NewEntityManager()
	a := em.CreateEntity()
	b := em.CreateEntity()
	ecs.AddComponent(em, a, &components.HoverHighlightComponent{FadeSpeed: 4})
	ecs.AddComponent(em, b, &components.HoverHighlightComponent{})

	source := &fakeActive{id: a}
	s := NewHighlightSystem(em, source)

	ha, _ := ecs.GetComponent[*components.HoverHighlightComponent](em, a)
	hb, _ := ecs.GetComponent[*components.HoverHighlightComponent](em, b)

	s.Update(0.125)
	if !ha.IsActive || math.Abs(ha.Level-0.5) > 1e-9 {
		t.Errorf("after 0.125s: active=%v level=%v, want true 0.5", ha.IsActive, ha.Level)
	}
	s.Update(1)
	if ha.Level != 1 {
		t.Errorf("level should saturate at 1, got %v", ha.Level)
	}
	if hb.IsActive || hb.Level != 0 {
		t.Errorf("inactive element: active=%v level=%v", hb.IsActive, hb.Level)
	}

	// FadeSpeed 为 0 时立即切换
	source.id = b
	s.Update(0.125)
	if ha.IsActive || math.Abs(ha.Level-0.5) > 1e-9 {
		t.Errorf("fading out: active=%v level=%v, want false 0.5", ha.IsActive, ha.Level)
	}
	if !hb.IsActive || hb.Level != 1 {
		t.Errorf("instant element: active=%v level=%v, want true 1", hb.IsActive, hb.Level)
	}

	source.id = 0
	s.Update(1)
	if ha.Level != 0 || hb.Level != 0 {
		t.Errorf("all levels should return to 0, got %v %v", ha.Level, hb.Level)
	}
}
