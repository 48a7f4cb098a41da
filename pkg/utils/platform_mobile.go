//go:build mobile

package utils

// IsMobile 移动端构建恒为 true，用于把主要输入视为粗粒度指针
func IsMobile() bool {
	return true
}
