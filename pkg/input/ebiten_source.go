package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyMapping 宿主按键到符号键码的映射（有序，保证同帧事件顺序确定）
var keyMapping = []struct {
	host ebiten.Key
	key  Key
}{
	{ebiten.KeyW, KeyW},
	{ebiten.KeyA, KeyA},
	{ebiten.KeyS, KeyS},
	{ebiten.KeyD, KeyD},
	{ebiten.KeyE, KeyE},
	{ebiten.KeyR, KeyR},
	{ebiten.KeySpace, Space},
	{ebiten.KeyShiftLeft, ShiftLeft},
	{ebiten.KeyShiftRight, ShiftRight},
	{ebiten.KeyEscape, Escape},
}

// EbitenSource polls ebiten once per tick and turns what changed into
// queued events. Captured cursor mode plays the role of pointer lock.
type EbitenSource struct {
	locked       bool
	lastX, lastY int
	primed       bool
}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll pushes this tick's events onto q.
func (s *EbitenSource) Poll(q *Queue) {
	for _, m := range keyMapping {
		if inpututil.IsKeyJustPressed(m.host) {
			q.Push(KeyDown(m.key))
		}
		if inpututil.IsKeyJustReleased(m.host) {
			q.Push(KeyUp(m.key))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}

	locked := ebiten.CursorMode() == ebiten.CursorModeCaptured
	if locked != s.locked {
		s.locked = locked
		s.primed = false
		q.Push(PointerLockChanged(locked))
	}

	x, y := ebiten.CursorPosition()
	if s.locked && s.primed && (x != s.lastX || y != s.lastY) {
		q.Push(MouseMove(float64(x-s.lastX), float64(y-s.lastY)))
	}
	s.lastX, s.lastY = x, y
	s.primed = true

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		q.Push(Click())
	}
}

// RequestPointerLock captures the cursor; the change is reported as an
// event on a later Poll.
func (s *EbitenSource) RequestPointerLock() {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}
