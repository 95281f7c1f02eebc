package components

// PlayerComponent 玩家移动与跳跃状态
type PlayerComponent struct {
	Height float64 // 摄像机离地高度
	Speed  float64 // 水平基础速度

	// Fast 本帧的速度倍率：未按方向键为 0，按下为 1，按住 Shift 为 2
	// 每帧重新计算，同时作为子弹速度加成
	Fast float64

	CanJump   bool
	StartJump float64 // 起跳时的高度，着地后归零
}
