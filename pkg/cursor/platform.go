package cursor

import (
	"regexp"
	"strings"
)

// Capabilities 宿主设备能力
type Capabilities struct {
	ScreenWidth   float64 // 视口宽度
	CoarsePointer bool    // 主要输入是否为粗粒度指针（触摸）
	UserAgent     string  // 运行环境标识
}

// Platform 宿主平台
type Platform interface {
	// Viewport 返回视口尺寸，用于初始居中
	Viewport() (width, height float64)
	// CursorVisible 返回系统指针当前是否可见
	CursorVisible() bool
	// SetCursorVisible 显示或隐藏系统指针
	SetCursorVisible(visible bool)
	// Capabilities 返回设备能力
	Capabilities() Capabilities
}

// smallScreenWidth 小屏阈值
const smallScreenWidth = 768

var mobileAgentPattern = regexp.MustCompile(`android|webos|iphone|ipad|ipod|blackberry|iemobile|opera mini`)

// IsTouchDevice 判断是否为触屏小屏设备，此类设备上引擎整体不启用
// 仅有触摸屏的笔记本不算：必须同时是小屏
func IsTouchDevice(c Capabilities) bool {
	if c.ScreenWidth > smallScreenWidth {
		return false
	}
	return c.CoarsePointer || mobileAgentPattern.MatchString(strings.ToLower(c.UserAgent))
}
