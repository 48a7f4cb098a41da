package systems

import (
	"github.com/decker502/targetcursor/pkg/pointer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// GetInputState 获取当前帧的输入状态
// 优先检测触摸，其次检测鼠标
func GetInputState() pointer.State {
	state := pointer.State{}
	state.WheelX, state.WheelY = ebiten.Wheel()

	if ids := inpututil.AppendJustReleasedTouchIDs(nil); len(ids) > 0 {
		state.JustReleased = true
		state.X, state.Y = lastTouchX, lastTouchY
		state.IsTouching = true
		return state
	}

	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = state.X, state.Y
		state.JustPressed = inpututil.TouchPressDuration(touchIDs[0]) == 1
		state.IsTouching = true
		return state
	}

	state.X, state.Y = ebiten.CursorPosition()
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return state
}
