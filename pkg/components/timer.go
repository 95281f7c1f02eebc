package components

// TimerComponent 通用一次性计时器组件
// 用于换弹等延迟动作：Start 后每帧推进，到时 IsReady 置位一次
type TimerComponent struct {
	Name        string  // 计时器名称，如 "reload"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsActive    bool    // 是否正在计时
	IsReady     bool    // 本帧是否刚完成
}

// Start 开始计时；已在计时中时不重置（合并重复请求）
// 返回 false 表示请求被合并
func (t *TimerComponent) Start() bool {
	if t.IsActive {
		return false
	}
	t.IsActive = true
	t.IsReady = false
	t.CurrentTime = 0
	return true
}

// Advance 推进 dt 秒，到时返回 true（只返回一次）
func (t *TimerComponent) Advance(dt float64) bool {
	t.IsReady = false
	if !t.IsActive {
		return false
	}
	t.CurrentTime += dt
	if t.CurrentTime >= t.TargetTime {
		t.IsActive = false
		t.IsReady = true
		t.CurrentTime = 0
		return true
	}
	return false
}

// Cancel 取消计时
func (t *TimerComponent) Cancel() {
	t.IsActive = false
	t.IsReady = false
	t.CurrentTime = 0
}
