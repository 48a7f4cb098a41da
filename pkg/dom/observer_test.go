package dom

import (
	"testing"

	"github.com/decker502/targetcursor/pkg/components"
)

func TestMutationObserver(t *testing.T) {
	doc := newTestDocument()
	calls := 0
	observer := NewMutationObserver(func() { calls++ })

	appendBox(doc, 0, 0, 0, 10, 10)
	if calls != 0 {
		t.Fatal("observer should not fire before Observe")
	}

	observer.Observe(doc)
	if !observer.Observing() {
		t.Fatal("Observing should be true after Observe")
	}

	id := appendBox(doc, 0, 0, 0, 10, 10)
	if calls != 1 {
		t.Errorf("insertion should notify once, got %d", calls)
	}

	// 非元素组件不算结构变化
	doc.EntityManager().AddComponent(id, &components.ClickableComponent{})
	if calls != 1 {
		t.Errorf("non-element component should not notify, got %d", calls)
	}

	doc.RemoveElement(id)
	if calls != 2 {
		t.Errorf("removal should notify, got %d", calls)
	}

	observer.Disconnect()
	observer.Disconnect()
	appendBox(doc, 0, 0, 0, 10, 10)
	if calls != 2 {
		t.Errorf("disconnected observer should not fire, got %d", calls)
	}
	if doc.EntityManager().ObserverCount() != 0 {
		t.Error("Disconnect should unregister from the entity manager")
	}
}

func TestMutationObserverReobserve(t *testing.T) {
	doc := newTestDocument()
	calls := 0
	observer := NewMutationObserver(func() { calls++ })

	observer.Observe(doc)
	observer.Observe(doc)
	if n := doc.EntityManager().ObserverCount(); n != 1 {
		t.Fatalf("repeated Observe should keep a single subscription, got %d", n)
	}

	appendBox(doc, 0, 0, 0, 10, 10)
	if calls != 1 {
		t.Errorf("expected a single notification, got %d", calls)
	}
}
