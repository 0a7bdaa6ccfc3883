package input

import "testing"

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		key  byte
		want Action
	}{
		{'w', ActionMoveForward},
		{'s', ActionMoveBackward},
		{'a', ActionTurnLeft},
		{'d', ActionTurnRight},
		{'o', ActionOpenDoor},
		{'c', ActionCloseDoor},
		{'f', ActionSearch},
		{'u', ActionAscend},
		{'j', ActionDescend},
		{'m', ActionShowMap},
		{'q', ActionQuit},
		{'W', ActionMoveForward},
		{'Q', ActionQuit},
		{3, ActionQuit},
		{'x', ActionNone},
		{' ', ActionNone},
		{'1', ActionNone},
	}

	for _, tc := range tests {
		if got := decodeKey(tc.key); got != tc.want {
			t.Errorf("decodeKey(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}
