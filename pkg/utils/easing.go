package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 超出范围的输入会被截断，保证输出不会越过终点。
//
// 命名对照（Power 系列即常见动画库中的 powerN.out）：
//   - EasePower1Out = 二次方缓出
//   - EasePower2Out = 三次方缓出
//   - EasePower3Out = 四次方缓出
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return Clamp01(t)
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuart 四次方缓出
// 比 Cubic 更"急停"，适合跟随指针的位移
// 公式：f(t) = 1 - (1-t)⁴
func EaseOutQuart(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 4)
}

var (
	// EasePower1Out 对应 power1.out
	EasePower1Out = EaseOutQuad
	// EasePower2Out 对应 power2.out
	EasePower2Out = EaseOutCubic
	// EasePower3Out 对应 power3.out
	EasePower3Out = EaseOutQuart
)

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
