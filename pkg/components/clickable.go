package components

// ClickableComponent 标记元素可以响应点击
// 点击事件从目标元素沿父链冒泡，依次调用各层的 OnClick
type ClickableComponent struct {
	OnClick   func() // 点击回调
	IsEnabled bool   // 是否可以被点击
	Clicks    int    // 已响应的点击次数（调试与测试用）
}
