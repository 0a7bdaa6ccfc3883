package world

import "testing"

func TestTurnLeftThenRightIsIdentity(t *testing.T) {
	for _, d := range AllDirections() {
		if got := d.TurnLeft().TurnRight(); got != d {
			t.Errorf("%v.TurnLeft().TurnRight() = %v, want %v", d, got, d)
		}
		if got := d.TurnRight().TurnLeft(); got != d {
			t.Errorf("%v.TurnRight().TurnLeft() = %v, want %v", d, got, d)
		}
	}
}

func TestTurnRightCycle(t *testing.T) {
	want := []Direction{East, South, West, North}
	d := North
	for i, expected := range want {
		d = d.TurnRight()
		if d != expected {
			t.Fatalf("turn %d: got %v, want %v", i+1, d, expected)
		}
	}
}

func TestOpposite(t *testing.T) {
	tests := []struct {
		dir, want Direction
	}{
		{North, South},
		{South, North},
		{East, West},
		{West, East},
	}
	for _, tt := range tests {
		if got := tt.dir.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestDeltaInvertsWithOpposite(t *testing.T) {
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v delta (%d,%d) and opposite delta (%d,%d) do not cancel", d, dx, dy, ox, oy)
		}
	}
}

func TestParseDirectionRoundTrip(t *testing.T) {
	for _, d := range AllDirections() {
		if got := ParseDirection(d.String()); got != d {
			t.Errorf("ParseDirection(%q) = %v, want %v", d.String(), got, d)
		}
	}
	if got := ParseDirection("sideways"); got != North {
		t.Errorf("ParseDirection of unknown name = %v, want North fallback", got)
	}
}
