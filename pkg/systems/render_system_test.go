package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/targetcursor/pkg/cursor"
	"github.com/decker502/targetcursor/pkg/dom"
	"github.com/decker502/targetcursor/pkg/tween"
)

func near(a, b tween.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestCornerSegmentsHugRect(t *testing.T) {
	m := cursor.DefaultMetrics()
	r := dom.Rect{Left: 100, Top: 100, Right: 200, Bottom: 150}
	marker := tween.Vec2{X: 150, Y: 125}

	v := cursor.VisualState{Mounted: true, Position: marker, Scale: 1, DotScale: 1, Metrics: m}
	for i, c := range cursor.CornerTargets(r, m) {
		v.Corners[i] = c.Sub(marker)
	}

	segs := CornerSegments(v)
	if len(segs) != 8 {
		t.Fatalf("expected 8 segments, got %d", len(segs))
	}

	half := m.BorderWidth / 2
	// 左上角的上边与左边
	wantTop := Segment{tween.Vec2{X: 97, Y: 97 + half}, tween.Vec2{X: 97 + m.CornerSize, Y: 97 + half}}
	wantLeft := Segment{tween.Vec2{X: 97 + half, Y: 97}, tween.Vec2{X: 97 + half, Y: 97 + m.CornerSize}}
	if !near(segs[0].From, wantTop.From) || !near(segs[0].To, wantTop.To) {
		t.Errorf("top-left horizontal = %+v, want %+v", segs[0], wantTop)
	}
	if !near(segs[1].From, wantLeft.From) || !near(segs[1].To, wantLeft.To) {
		t.Errorf("top-left vertical = %+v, want %+v", segs[1], wantLeft)
	}

	// 右下角的线段落在外扩后的右边和下边上
	bottom := segs[4]
	if math.Abs(bottom.From.Y-(r.Bottom+m.BorderWidth-half)) > 1e-9 {
		t.Errorf("bottom-right horizontal y = %v", bottom.From.Y)
	}
	right := segs[5]
	if math.Abs(right.From.X-(r.Right+m.BorderWidth-half)) > 1e-9 {
		t.Errorf("bottom-right vertical x = %v", right.From.X)
	}
}

func TestCornerSegmentsRotate(t *testing.T) {
	m := cursor.Metrics{BorderWidth: 2, CornerSize: 10}
	v := cursor.VisualState{
		Position: tween.Vec2{X: 50, Y: 50},
		Rotation: 90,
		Scale:    1,
		Metrics:  m,
		Corners:  cursor.RestingLayout(m),
	}

	// 旋转 90 度后，左上角的上边变为竖直线
	seg := CornerSegments(v)[0]
	if math.Abs(seg.From.X-seg.To.X) > 1e-9 {
		t.Errorf("expected vertical segment after rotation, got %+v", seg)
	}
}

func TestLerpColor(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 100, G: 200, B: 0, A: 255}

	tests := []struct {
		t    float64
		want color.RGBA
	}{
		{0, a},
		{1, b},
		{0.5, color.RGBA{R: 50, G: 150, B: 100, A: 255}},
		{-1, a},
		{2, b},
	}
	for _, tt := range tests {
		if got := LerpColor(a, b, tt.t); got != tt.want {
			t.Errorf("LerpColor(t=%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}
