// Package input turns host keyboard/mouse activity into a queue of events
// that the game drains once per frame, and tracks which keys are held.
package input

// Key is a symbolic key code, named like DOM KeyboardEvent.code values.
type Key string

const (
	KeyW       Key = "KeyW"
	KeyA       Key = "KeyA"
	KeyS       Key = "KeyS"
	KeyD       Key = "KeyD"
	KeyE       Key = "KeyE"
	KeyR       Key = "KeyR"
	Space      Key = "Space"
	ShiftLeft  Key = "ShiftLeft"
	ShiftRight Key = "ShiftRight"
	Escape     Key = "Escape"
)

// Bindings maps game actions onto keys.
type Bindings struct {
	Forward Key
	Left    Key
	Back    Key
	Right   Key
	Jump    Key
	Fire    Key
	Reload  Key
}

// DefaultBindings is the stock layout: WASD to move, E to
// jump, Space (on release) to fire, R (on release) to reload.
func DefaultBindings() Bindings {
	return Bindings{
		Forward: KeyW,
		Left:    KeyA,
		Back:    KeyS,
		Right:   KeyD,
		Jump:    KeyE,
		Fire:    Space,
		Reload:  KeyR,
	}
}
