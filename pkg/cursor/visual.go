package cursor

import (
	"math"

	"github.com/decker502/targetcursor/pkg/dom"
	"github.com/decker502/targetcursor/pkg/tween"
)

// 补间表中的属性
const (
	propMarkerX  tween.Prop = "marker.x"
	propMarkerY  tween.Prop = "marker.y"
	propRotation tween.Prop = "marker.rotation"
	propScale    tween.Prop = "marker.scale"
	propDotX     tween.Prop = "dot.x"
	propDotY     tween.Prop = "dot.y"
	propDotScale tween.Prop = "dot.scale"
	propStrength tween.Prop = "strength"
)

// cornerCount 角标数量
const cornerCount = 4

var (
	propCornerX = [cornerCount]tween.Prop{"corner0.x", "corner1.x", "corner2.x", "corner3.x"}
	propCornerY = [cornerCount]tween.Prop{"corner0.y", "corner1.y", "corner2.y", "corner3.y"}
)

func cornerProps() []tween.Prop {
	props := make([]tween.Prop, 0, cornerCount*2)
	props = append(props, propCornerX[:]...)
	return append(props, propCornerY[:]...)
}

// VisualState 覆盖层的可绘制快照
//
// 角标偏移是每个角标方块左上角相对标记中心的位置（标记局部坐标，
// 绘制时需先按 Scale 缩放、按 Rotation 旋转）。角标顺序为
// 左上、右上、右下、左下。
type VisualState struct {
	Mounted  bool
	Position tween.Vec2 // 标记中心（视口坐标）
	Rotation float64    // 角度
	Scale    float64
	DotScale float64
	Corners  [cornerCount]tween.Vec2
	Dot      tween.Vec2
	Strength float64 // 激活强度 [0, 1]
	Metrics  Metrics
}

// ToScreen 将标记局部坐标转换为视口坐标
func (v VisualState) ToScreen(local tween.Vec2) tween.Vec2 {
	rad := v.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	x := local.X * v.Scale
	y := local.Y * v.Scale
	return tween.Vec2{
		X: v.Position.X + x*cos - y*sin,
		Y: v.Position.Y + x*sin + y*cos,
	}
}

// RestingLayout 静止时的对称角标布局（围绕中心的小方框）
func RestingLayout(m Metrics) [cornerCount]tween.Vec2 {
	cs := m.CornerSize
	return [cornerCount]tween.Vec2{
		{X: -cs * 1.5, Y: -cs * 1.5},
		{X: cs * 0.5, Y: -cs * 1.5},
		{X: cs * 0.5, Y: cs * 0.5},
		{X: -cs * 1.5, Y: cs * 0.5},
	}
}

// CornerTargets 计算贴合矩形的四个角标位置（视口坐标）
// 矩形向外扩一个边框宽度，右侧和下侧的角标再向内收一个角标边长，使角标与边缘齐平
func CornerTargets(r dom.Rect, m Metrics) [cornerCount]tween.Vec2 {
	bw, cs := m.BorderWidth, m.CornerSize
	return [cornerCount]tween.Vec2{
		{X: r.Left - bw, Y: r.Top - bw},
		{X: r.Right + bw - cs, Y: r.Top - bw},
		{X: r.Right + bw - cs, Y: r.Bottom + bw - cs},
		{X: r.Left - bw, Y: r.Bottom + bw - cs},
	}
}

// NormalizeRotation 将角度归一化到 [0, 360)
func NormalizeRotation(deg float64) float64 {
	n := math.Mod(deg, 360)
	if n < 0 {
		n += 360
	}
	return n
}

// spinner 空闲旋转
// 以恒定角速度累加 rotation，暂停时不改变当前角度
type spinner struct {
	running bool
	period  float64 // 一整圈的时长（秒）
}

func (s *spinner) start(period float64) {
	s.period = period
	s.running = true
}

func (s *spinner) pause() {
	s.running = false
}

func (s *spinner) advance(props *tween.Table, deltaTime float64) {
	if !s.running || s.period <= 0 {
		return
	}
	props.Set(propRotation, props.Get(propRotation)+360*deltaTime/s.period)
}
