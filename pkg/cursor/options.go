// Package cursor 实现磁吸式目标光标引擎
//
// 引擎用一个自绘标记替代系统指针：空闲时持续旋转；指针靠近候选元素时，
// 四个角标和中心点平滑地变形为紧贴该元素的取景框；在磁吸模式下，
// 落在元素光晕内但不在元素本身上的点击会被转发给该元素。
//
// 引擎不拥有任何页面状态，只观察元素树和指针事件并输出一个可绘制的
// VisualState。宿主负责逐帧调用 frame.Loop.Step 并分发指针事件。
package cursor

// Options 光标引擎配置
// 使用 DefaultOptions 作为基础再按需覆盖
type Options struct {
	// TargetSelector 候选元素选择器
	TargetSelector string `yaml:"targetSelector" mapstructure:"targetSelector"`
	// SpinDuration 空闲时旋转一整圈的时长（秒）
	SpinDuration float64 `yaml:"spinDuration" mapstructure:"spinDuration"`
	// HideDefaultCursor 挂载期间是否隐藏系统指针
	HideDefaultCursor bool `yaml:"hideDefaultCursor" mapstructure:"hideDefaultCursor"`
	// HoverDuration 激活强度 0→1 的时长（秒）
	HoverDuration float64 `yaml:"hoverDuration" mapstructure:"hoverDuration"`
	// ParallaxOn 完全激活后角标是否继续平滑跟随，关闭则直接贴合
	ParallaxOn bool `yaml:"parallaxOn" mapstructure:"parallaxOn"`
	// Proximity 默认激活半径（像素），0 表示只在指针悬停于元素上时激活
	Proximity float64 `yaml:"proximity" mapstructure:"proximity"`
}

// DefaultTargetSelector 默认候选元素选择器
const DefaultTargetSelector = ".cursor-target"

// DefaultOptions 返回默认配置
func DefaultOptions() Options {
	return Options{
		TargetSelector:    DefaultTargetSelector,
		SpinDuration:      2,
		HideDefaultCursor: true,
		HoverDuration:     0.2,
		ParallaxOn:        true,
		Proximity:         0,
	}
}

// Magnetic 是否处于磁吸模式（全局激活半径大于 0）
func (o Options) Magnetic() bool {
	return o.Proximity > 0
}

// Metrics 覆盖层的几何尺寸，单位与宿主坐标一致
type Metrics struct {
	BorderWidth float64 // 角标边框宽度
	CornerSize  float64 // 角标边长
}

// DefaultMetrics 返回像素宿主使用的默认尺寸
func DefaultMetrics() Metrics {
	return Metrics{BorderWidth: 3, CornerSize: 12}
}

// 动画时长与阈值（秒 / 比例）
const (
	markerFollowDuration = 0.1  // 标记跟随指针
	cornerSnapDuration   = 0.2  // 激活时角标飞向目标
	restingDuration      = 0.3  // 失活后角标回到静止布局
	resumeGraceDelay     = 0.05 // 失活后恢复旋转前的宽限期
	parallaxDuration     = 0.2  // 完全激活后的跟随平滑时长
	rampDuration         = 0.05 // 激活过程中的逐帧平滑时长
	saturatedStrength    = 0.99 // 视为"完全激活"的强度

	pressDotScale         = 0.7
	pressDotDuration      = 0.3
	pressMarkerScale      = 0.9
	pressMarkerDuration   = 0.2
	releaseDotDuration    = 0.3
	releaseMarkerDuration = 0.2
)
