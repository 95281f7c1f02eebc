package input

import "testing"

func TestQueueDrainKeepsOrder(t *testing.T) {
	q := NewQueue()
	q.Push(KeyDown(KeyW))
	q.Push(MouseMove(3, -2))
	q.Push(KeyUp(Space))

	events := q.Drain()
	if len(events) != 3 {
		t.Fatalf("drained %d events, want 3", len(events))
	}
	want := []EventType{EventKeyDown, EventMouseMove, EventKeyUp}
	for i, e := range events {
		if e.Type != want[i] {
			t.Errorf("event %d type = %v, want %v", i, e.Type, want[i])
		}
	}
	if events[1].DX != 3 || events[1].DY != -2 {
		t.Errorf("mouse delta = (%v, %v)", events[1].DX, events[1].DY)
	}
	if q.Len() != 0 || len(q.Drain()) != 0 {
		t.Error("queue should be empty after Drain")
	}
}

func TestStateShiftAndReset(t *testing.T) {
	s := NewState()
	if s.Shift() {
		t.Error("no shift held initially")
	}
	s.Set(ShiftRight, true)
	s.Set(KeyW, true)
	if !s.Shift() || !s.Pressed(KeyW) {
		t.Error("expected shift and W held")
	}
	s.Set(ShiftRight, false)
	if s.Shift() {
		t.Error("shift released")
	}
	s.Reset()
	if s.Pressed(KeyW) {
		t.Error("Reset should release all keys")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventClick.String() != "click" || EventType(99).String() != "unknown" {
		t.Error("unexpected String() output")
	}
}
