package components

// OscillatorComponent 摆动障碍物
// z = BaseZ + sin(nowMs*0.001 + Phase) * Amplitude
type OscillatorComponent struct {
	Index     int
	BaseZ     float64
	Phase     float64
	Amplitude float64
}
