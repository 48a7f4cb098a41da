package frame

import "sort"

// Token 延时任务的令牌
// 零值表示"没有任务"，对其 Cancel 是安全的
type Token struct {
	id uint64
}

// Valid 判断令牌是否指向一个任务（不代表任务仍在等待）
func (t Token) Valid() bool {
	return t.id != 0
}

type task struct {
	id  uint64
	due float64
	fn  func()
}

// Scheduler 基于帧时间的延时任务调度器
type Scheduler struct {
	now   float64
	next  uint64
	tasks []*task
}

// Now 返回调度器当前时间（秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// After 在 delay 秒后执行 fn，返回可用于取消的令牌
func (s *Scheduler) After(delay float64, fn func()) Token {
	s.next++
	s.tasks = append(s.tasks, &task{id: s.next, due: s.now + delay, fn: fn})
	return Token{id: s.next}
}

// Cancel 取消任务，返回任务是否仍在等待并被取消
func (s *Scheduler) Cancel(t Token) bool {
	if !t.Valid() {
		return false
	}
	for i, tk := range s.tasks {
		if tk.id == t.id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending 判断令牌对应的任务是否仍在等待
func (s *Scheduler) Pending(t Token) bool {
	for _, tk := range s.tasks {
		if tk.id == t.id {
			return true
		}
	}
	return false
}

// Len 返回等待中的任务数量
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Advance 推进时间并按到期顺序执行到期任务
// 任务执行期间新安排且同样到期的任务会在本次调用中继续执行
func (s *Scheduler) Advance(deltaTime float64) {
	s.now += deltaTime
	for {
		due := s.popDue()
		if due == nil {
			return
		}
		due.fn()
	}
}

func (s *Scheduler) popDue() *task {
	if len(s.tasks) == 0 {
		return nil
	}
	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].due < s.tasks[j].due
	})
	// 容差避免浮点累加误差导致任务晚一帧执行
	if s.tasks[0].due > s.now+1e-9 {
		return nil
	}
	t := s.tasks[0]
	s.tasks = s.tasks[1:]
	return t
}
