package events

import "testing"

func TestQueueDrain(t *testing.T) {
	q := &Queue{}
	q.Emit(Event{Type: ExitTileLeft, X: 1, Y: 2})
	q.Emit(Event{Type: TreasureTileEntered, X: 6, Y: 2})

	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}

	got := q.Drain()
	if len(got) != 2 {
		t.Fatalf("drained %d events, want 2", len(got))
	}
	if got[0].Type != ExitTileLeft || got[1].Type != TreasureTileEntered {
		t.Errorf("drained out of order: %+v", got)
	}
	if q.Len() != 0 {
		t.Errorf("queue holds %d events after drain", q.Len())
	}
	if second := q.Drain(); second != nil {
		t.Errorf("second drain returned %+v", second)
	}
}

func TestEmitNilSink(t *testing.T) {
	// Emitting into a nil sink must be a silent no-op.
	Emit(nil, Event{Type: TrapTriggered})
}

func TestEmitForwards(t *testing.T) {
	q := &Queue{}
	Emit(q, Event{Type: SpecialSquareFound, Message: "hello"})

	got := q.Drain()
	if len(got) != 1 || got[0].Message != "hello" {
		t.Errorf("forwarded event = %+v", got)
	}
}
