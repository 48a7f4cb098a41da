package cursor

import (
	"strconv"
	"strings"

	"github.com/decker502/targetcursor/pkg/dom"
	"github.com/decker502/targetcursor/pkg/ecs"
)

// Candidate 一个可被光标吸附的元素
// ID 是弱引用，使用前必须通过文档重新校验
type Candidate struct {
	ID        ecs.EntityID
	Threshold float64 // 激活半径
}

// proximityClassPrefix 单个元素覆盖激活半径的类名前缀，如 "proximity-40"
const proximityClassPrefix = "proximity-"

// Registry 候选元素注册表
// 除候选列表外不保存任何状态，任何时候都可以从文档完整重建
type Registry struct {
	doc       *dom.Document
	selector  dom.Selector
	proximity float64

	candidates []Candidate
}

// NewRegistry 创建注册表，需调用 Refresh 填充
func NewRegistry(doc *dom.Document, selector dom.Selector, proximity float64) *Registry {
	return &Registry{doc: doc, selector: selector, proximity: proximity}
}

// Refresh 重新扫描文档，替换候选列表（幂等）
func (r *Registry) Refresh() {
	ids := r.doc.QueryAll(r.selector)
	candidates := make([]Candidate, 0, len(ids))
	for _, id := range ids {
		candidates = append(candidates, Candidate{
			ID:        id,
			Threshold: ProximityFor(r.doc.Classes(id), r.proximity),
		})
	}
	r.candidates = candidates
}

// Candidates 返回当前候选列表（文档顺序），调用方不得修改
func (r *Registry) Candidates() []Candidate {
	return r.candidates
}

// Len 返回候选数量
func (r *Registry) Len() int {
	return len(r.candidates)
}

// ThresholdFor 读取元素当前的激活半径
func (r *Registry) ThresholdFor(id ecs.EntityID) float64 {
	return ProximityFor(r.doc.Classes(id), r.proximity)
}

// ProximityFor 从类名列表解析激活半径覆盖值
// 取第一个以 "proximity-" 开头的类名，解析其后的整数前缀（"proximity-12px" → 12）；
// 没有该类名或无法解析时返回 fallback
func ProximityFor(classes []string, fallback float64) float64 {
	for _, c := range classes {
		if !strings.HasPrefix(c, proximityClassPrefix) {
			continue
		}
		segment := strings.Split(c, "-")[1]
		if v, ok := parseLeadingInt(segment); ok {
			return float64(v)
		}
		return fallback
	}
	return fallback
}

// parseLeadingInt 解析字符串开头的整数（可带 + 号），忽略其后的非数字字符
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t")
	end := 0
	if end < len(s) && s[end] == '+' {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
