// Package tween 提供数据驱动的补间表
//
// 表中每个属性是一个标量值；对属性发起补间会覆盖该属性上已有的补间
// （从当前值出发，旧补间的完成回调不再触发）。Step 由宿主逐帧调用，
// 不依赖真实时钟，单元测试可以直接逐帧驱动。
package tween

import "github.com/decker502/targetcursor/pkg/utils"

// Ease 缓动函数，输入输出均在 [0, 1]
type Ease func(float64) float64

// Prop 属性名
type Prop string

// Vec2 二维向量
type Vec2 struct {
	X, Y float64
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale 向量数乘
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// timeEpsilon 时间比较容差（秒）
const timeEpsilon = 1e-9

type tween struct {
	prop       Prop
	from, to   float64
	duration   float64
	elapsed    float64
	ease       Ease
	onComplete func()
}

// Table 补间表
type Table struct {
	values map[Prop]float64
	active []*tween // 按发起顺序推进
}

// NewTable 创建补间表
func NewTable() *Table {
	return &Table{values: make(map[Prop]float64)}
}

// Get 返回属性当前值（未设置过的属性为 0）
func (t *Table) Get(p Prop) float64 {
	return t.values[p]
}

// GetVec 返回由两个属性组成的向量
func (t *Table) GetVec(x, y Prop) Vec2 {
	return Vec2{t.values[x], t.values[y]}
}

// Set 立即设置属性值，并终止该属性上的补间
func (t *Table) Set(p Prop, v float64) {
	t.Kill(p)
	t.values[p] = v
}

// To 从当前值补间到 target
// duration <= 0 时立即赋值并同步调用 onComplete；ease 为 nil 时使用线性
func (t *Table) To(p Prop, target, duration float64, ease Ease, onComplete func()) {
	t.Kill(p)
	if duration <= 0 {
		t.values[p] = target
		if onComplete != nil {
			onComplete()
		}
		return
	}
	if ease == nil {
		ease = utils.EaseLinear
	}
	t.active = append(t.active, &tween{
		prop:       p,
		from:       t.values[p],
		to:         target,
		duration:   duration,
		ease:       ease,
		onComplete: onComplete,
	})
}

// Kill 终止属性上的补间，属性保持当前值
func (t *Table) Kill(props ...Prop) {
	if len(t.active) == 0 {
		return
	}
	kept := t.active[:0]
	for _, tw := range t.active {
		if !containsProp(props, tw.prop) {
			kept = append(kept, tw)
		}
	}
	// 清理尾部引用
	for i := len(kept); i < len(t.active); i++ {
		t.active[i] = nil
	}
	t.active = kept
}

// KillAll 终止全部补间
func (t *Table) KillAll() {
	t.active = nil
}

// Tweening 判断属性上是否有进行中的补间
func (t *Table) Tweening(p Prop) bool {
	for _, tw := range t.active {
		if tw.prop == p {
			return true
		}
	}
	return false
}

// Len 返回进行中的补间数量
func (t *Table) Len() int {
	return len(t.active)
}

// Step 推进所有补间 deltaTime 秒
// 完成回调在本帧所有补间推进完之后按完成顺序调用，回调中可以安全地发起新补间
func (t *Table) Step(deltaTime float64) {
	if len(t.active) == 0 {
		return
	}
	var done []func()
	kept := make([]*tween, 0, len(t.active))
	for _, tw := range t.active {
		tw.elapsed += deltaTime
		progress := utils.Clamp01(tw.elapsed / tw.duration)
		if tw.elapsed+timeEpsilon >= tw.duration {
			progress = 1 // 容差避免浮点累加误差导致补间晚一帧结束
		}
		t.values[tw.prop] = utils.Lerp(tw.from, tw.to, tw.ease(progress))
		if progress >= 1 {
			t.values[tw.prop] = tw.to
			if tw.onComplete != nil {
				done = append(done, tw.onComplete)
			}
			continue
		}
		kept = append(kept, tw)
	}
	t.active = kept
	for _, fn := range done {
		fn()
	}
}

func containsProp(props []Prop, p Prop) bool {
	for _, q := range props {
		if q == p {
			return true
		}
	}
	return false
}
