package cursor

import (
	"github.com/decker502/targetcursor/pkg/tween"
	"github.com/decker502/targetcursor/pkg/utils"
)

// animate 逐帧推进补间表和空闲旋转，在 Start 时最先注册，
// 保证插值回调读到的是本帧推进后的值
func (e *Engine) animate(deltaTime float64) {
	e.props.Step(deltaTime)
	e.spin.advance(e.props, deltaTime)
}

// interpolate 插值回调，仅在有目标时注册
//
// 每个角标取"当前位置 + (目标 - 当前) × 强度"作为新的补间终点：
// 强度上升阶段角标加速贴合；强度饱和后退化为带短暂平滑的直接跟随，
// 标记本身仍在追赶指针时角标也能持续对齐目标。中心点同理。
func (e *Engine) interpolate(float64) {
	if !e.mounted || e.active == nil {
		return
	}
	strength := e.props.Get(propStrength)
	if strength == 0 {
		return
	}

	marker := e.props.GetVec(propMarkerX, propMarkerY)
	duration, ease := e.blendTiming(strength)

	for i, corner := range e.active.Corners {
		current := e.props.GetVec(propCornerX[i], propCornerY[i])
		target := corner.Sub(marker)
		final := current.Add(target.Sub(current).Scale(strength))
		e.props.To(propCornerX[i], final.X, duration, ease, nil)
		e.props.To(propCornerY[i], final.Y, duration, ease, nil)
	}

	dot := e.active.Center.Sub(marker).Scale(strength)
	e.props.To(propDotX, dot.X, duration, ease, nil)
	e.props.To(propDotY, dot.Y, duration, ease, nil)
}

// blendTiming 返回本帧重新发起补间所用的时长和缓动
func (e *Engine) blendTiming(strength float64) (float64, tween.Ease) {
	if strength >= saturatedStrength {
		if e.opts.ParallaxOn {
			return parallaxDuration, utils.EasePower1Out
		}
		return 0, nil
	}
	return rampDuration, utils.EasePower1Out
}
