package components

// SpinComponent 每帧绕 Y 轴旋转的可拾取物
type SpinComponent struct {
	RatePerFrame float64
	Angle        float64
}
