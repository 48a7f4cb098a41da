// Package frame 提供由宿主帧循环驱动的逐帧回调和延时任务
//
// 时间完全由 Step 传入的 deltaTime 推进，不读取系统时钟，
// 测试可以用固定步长精确地逐帧驱动。
package frame

// Callback 逐帧回调，参数为本帧时间增量（秒）
type Callback func(deltaTime float64)

// Handle 逐帧回调的句柄
type Handle uint64

type tickerEntry struct {
	handle  Handle
	fn      Callback
	removed bool
}

// Ticker 逐帧回调列表，按注册顺序调用
type Ticker struct {
	next    uint64
	entries []*tickerEntry
}

// Add 注册逐帧回调
func (t *Ticker) Add(fn Callback) Handle {
	t.next++
	h := Handle(t.next)
	t.entries = append(t.entries, &tickerEntry{handle: h, fn: fn})
	return h
}

// Remove 移除逐帧回调，返回是否确实移除；对 0 句柄安全
func (t *Ticker) Remove(h Handle) bool {
	if h == 0 {
		return false
	}
	for i, e := range t.entries {
		if e.handle == h {
			e.removed = true
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Has 判断句柄是否仍在注册中
func (t *Ticker) Has(h Handle) bool {
	for _, e := range t.entries {
		if e.handle == h {
			return true
		}
	}
	return false
}

// Len 返回注册的回调数量
func (t *Ticker) Len() int {
	return len(t.entries)
}

// Tick 调用所有回调；本帧内被移除的回调不会再被调用，本帧新增的回调下一帧才生效
func (t *Ticker) Tick(deltaTime float64) {
	snapshot := make([]*tickerEntry, len(t.entries))
	copy(snapshot, t.entries)
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		e.fn(deltaTime)
	}
}
