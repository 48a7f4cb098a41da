package cursor

import (
	"math"

	"github.com/decker502/targetcursor/pkg/dom"
	"github.com/decker502/targetcursor/pkg/ecs"
)

// RectSource 提供元素的当前视口矩形；元素失效时返回 false
type RectSource interface {
	Rect(id ecs.EntityID) (dom.Rect, bool)
}

// BoundaryDistance 点到矩形边界最近点的距离，点在矩形内时为 0
func BoundaryDistance(r dom.Rect, px, py float64) float64 {
	dx := math.Max(math.Max(r.Left-px, 0), px-r.Right)
	dy := math.Max(math.Max(r.Top-py, 0), py-r.Bottom)
	return math.Sqrt(dx*dx + dy*dy)
}

// Resolver 邻近度解析器
type Resolver struct {
	Rects RectSource
}

// Resolve 返回距离指针最近且在自身激活半径内（含边界）的候选
// 距离相同时保留先出现者；无法读取矩形的候选被跳过
func (r Resolver) Resolve(px, py float64, candidates []Candidate) (Candidate, bool) {
	var best Candidate
	bestDistance := math.Inf(1)
	found := false
	for _, c := range candidates {
		rect, ok := r.Rects.Rect(c.ID)
		if !ok {
			continue
		}
		d := BoundaryDistance(rect, px, py)
		if d <= c.Threshold && d < bestDistance {
			best, bestDistance, found = c, d, true
		}
	}
	return best, found
}

// Retains 判断当前目标是否仍在自身激活半径内
// 没有任何候选合格时用于滞回判断，避免指针停在两个元素光晕之间时闪烁
func (r Resolver) Retains(px, py float64, c Candidate) bool {
	rect, ok := r.Rects.Rect(c.ID)
	if !ok {
		return false
	}
	return BoundaryDistance(rect, px, py) <= c.Threshold
}
