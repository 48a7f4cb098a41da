package frame

// Loop 宿主帧循环的统一入口：先执行到期的延时任务，再调用逐帧回调
type Loop struct {
	Ticker    Ticker
	Scheduler Scheduler
}

// NewLoop 创建帧循环
func NewLoop() *Loop {
	return &Loop{}
}

// Step 推进一帧
func (l *Loop) Step(deltaTime float64) {
	l.Scheduler.Advance(deltaTime)
	l.Ticker.Tick(deltaTime)
}
