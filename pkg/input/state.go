package input

// State is the held/released state of every key seen so far.
type State struct {
	pressed map[Key]bool
}

func NewState() *State {
	return &State{pressed: make(map[Key]bool)}
}

func (s *State) Set(k Key, down bool) {
	s.pressed[k] = down
}

func (s *State) Pressed(k Key) bool {
	return s.pressed[k]
}

// Shift reports whether either shift key is held.
func (s *State) Shift() bool {
	return s.pressed[ShiftLeft] || s.pressed[ShiftRight]
}

// Reset releases every key (used when focus is lost).
func (s *State) Reset() {
	for k := range s.pressed {
		delete(s.pressed, k)
	}
}
