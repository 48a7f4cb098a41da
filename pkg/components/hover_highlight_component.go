package components

// HoverHighlightComponent 吸附高亮组件
// 元素被目标光标框住时逐渐变亮，释放后逐渐恢复
type HoverHighlightComponent struct {
	Level     float64 // 当前高亮强度 [0, 1]
	FadeSpeed float64 // 每秒变化量，0 表示立即切换
	IsActive  bool    // 当前是否被光标框住
}
