package tween

import (
	"math"
	"testing"

	"github.com/decker502/targetcursor/pkg/utils"
)

func TestTableToLinear(t *testing.T) {
	table := NewTable()
	table.Set("x", 10)
	completed := 0
	table.To("x", 20, 1, nil, func() { completed++ })

	table.Step(0.5)
	if got := table.Get("x"); math.Abs(got-15) > 1e-9 {
		t.Errorf("halfway value = %v, want 15", got)
	}
	if !table.Tweening("x") || completed != 0 {
		t.Error("tween should still be running")
	}

	table.Step(0.5)
	if got := table.Get("x"); got != 20 {
		t.Errorf("final value = %v, want 20", got)
	}
	if completed != 1 || table.Len() != 0 {
		t.Errorf("completed = %d, active = %d", completed, table.Len())
	}
}

func TestTableToOverwritesFromCurrent(t *testing.T) {
	table := NewTable()
	oldDone := false
	table.To("x", 100, 1, utils.EaseLinear, func() { oldDone = true })
	table.Step(0.5)

	table.To("x", 0, 1, utils.EaseLinear, nil)
	if table.Len() != 1 {
		t.Fatalf("overwriting should keep a single tween, got %d", table.Len())
	}
	table.Step(0.5)
	if got := table.Get("x"); math.Abs(got-25) > 1e-9 {
		t.Errorf("value = %v, want 25 (halfway from 50 to 0)", got)
	}
	table.Step(1)
	if oldDone {
		t.Error("overwritten tween's completion callback must not run")
	}
}

func TestTableZeroDurationIsImmediate(t *testing.T) {
	table := NewTable()
	done := false
	table.To("x", 7, 0, nil, func() { done = true })
	if table.Get("x") != 7 || !done || table.Len() != 0 {
		t.Errorf("zero duration should apply immediately, x=%v done=%v", table.Get("x"), done)
	}
}

func TestTableKillAndSet(t *testing.T) {
	table := NewTable()
	table.To("a", 10, 1, nil, nil)
	table.To("b", 10, 1, nil, nil)
	table.To("c", 10, 1, nil, nil)
	table.Step(0.5)

	table.Kill("a", "b")
	if table.Tweening("a") || table.Tweening("b") || !table.Tweening("c") {
		t.Error("Kill should stop only the named props")
	}
	if got := table.Get("a"); math.Abs(got-5) > 1e-9 {
		t.Errorf("killed prop should keep its current value, got %v", got)
	}

	table.Set("c", 3)
	if table.Tweening("c") || table.Get("c") != 3 {
		t.Error("Set should stop the tween and assign the value")
	}

	table.To("d", 1, 1, nil, nil)
	table.KillAll()
	if table.Len() != 0 {
		t.Errorf("KillAll left %d tweens", table.Len())
	}
}

func TestTableCompletionAfterFrames(t *testing.T) {
	table := NewTable()
	done := false
	table.To("x", 1, 0.2, utils.EasePower2Out, func() { done = true })

	// 12 帧 1/60 秒的累加值可能略小于 0.2
	for i := 0; i < 12; i++ {
		table.Step(1.0 / 60)
	}
	if !done || table.Get("x") != 1 {
		t.Errorf("tween should complete after 12 frames, done=%v x=%v", done, table.Get("x"))
	}
}

func TestTableCallbackCanStartTween(t *testing.T) {
	table := NewTable()
	table.To("x", 1, 0.1, nil, func() {
		table.To("x", 0, 0.1, nil, nil)
	})
	table.Step(0.1)
	if !table.Tweening("x") {
		t.Fatal("tween started from a completion callback should be active")
	}
	table.Step(0.1)
	if table.Get("x") != 0 {
		t.Errorf("x = %v, want 0", table.Get("x"))
	}
}

func TestVec2(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: 5}
	if got := a.Add(b); got != (Vec2{X: 4, Y: 7}) {
		t.Errorf("Add = %+v", got)
	}
	if got := b.Sub(a); got != (Vec2{X: 2, Y: 3}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 2, Y: 4}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := NewTable().GetVec("x", "y"); got != (Vec2{}) {
		t.Errorf("unset props should read as zero, got %+v", got)
	}
}
