package cursor

import (
	"testing"

	"github.com/decker502/targetcursor/pkg/dom"
)

func TestProximityFor(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    float64
	}{
		{"没有覆盖类名", []string{"cursor-target", "btn"}, 25},
		{"整数", []string{"cursor-target", "proximity-40"}, 40},
		{"带单位后缀", []string{"proximity-12px"}, 12},
		{"非数字", []string{"proximity-abc"}, 25},
		{"空值", []string{"proximity-"}, 25},
		{"带加号", []string{"proximity-+7"}, 7},
		{"多段只取第一段", []string{"proximity-40-50"}, 40},
		{"取第一个覆盖类名", []string{"proximity-5", "proximity-9"}, 5},
		{"第一个无法解析时不再继续查找", []string{"proximity-x", "proximity-9"}, 25},
		{"零", []string{"proximity-0"}, 0},
		{"空列表", nil, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProximityFor(tt.classes, 25); got != tt.want {
				t.Errorf("ProximityFor(%v) = %v, want %v", tt.classes, got, tt.want)
			}
		})
	}
}

func TestRegistryRefresh(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	a := h.addTarget(0, 0, 10, 10)
	h.addElement(0, 20, 0, 10, 10, "plain")
	b := h.addTarget(40, 0, 10, 10, "proximity-30")

	registry := NewRegistry(h.doc, dom.MustParseSelector(".cursor-target"), 15)
	if registry.Len() != 0 {
		t.Fatalf("registry should be empty before Refresh, got %d", registry.Len())
	}

	registry.Refresh()
	got := registry.Candidates()
	want := []Candidate{{ID: a, Threshold: 15}, {ID: b, Threshold: 30}}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidates[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// 幂等
	registry.Refresh()
	if registry.Len() != 2 {
		t.Errorf("second Refresh changed candidate count to %d", registry.Len())
	}

	h.doc.RemoveElement(a)
	registry.Refresh()
	if registry.Len() != 1 || registry.Candidates()[0].ID != b {
		t.Errorf("after removal candidates = %v, want only %d", registry.Candidates(), b)
	}
}

func TestRegistrySkipsDetachedDescendants(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	parent := h.addElement(0, 0, 0, 100, 100, "list")
	child := h.addElement(parent, 10, 10, 20, 20, "cursor-target")

	registry := NewRegistry(h.doc, dom.MustParseSelector(".cursor-target"), 0)
	registry.Refresh()
	if registry.Len() != 1 || registry.Candidates()[0].ID != child {
		t.Fatalf("expected nested candidate %d, got %v", child, registry.Candidates())
	}

	h.doc.RemoveElement(parent)
	registry.Refresh()
	if registry.Len() != 0 {
		t.Errorf("descendants of a removed element should not be candidates, got %v", registry.Candidates())
	}
}
