package dualdial

import "testing"

func TestDebugStatsCountMoves(t *testing.T) {
	d, _ := newTestDial(t)
	d.SetDebugMode(true)
	if !d.DebugMode() {
		t.Fatal("DebugMode should be on")
	}

	d.BeginDrag(RingOuter)
	d.Move(testCX+100, testCY)
	d.Move(testCX, testCY+100)

	if d.stats.moves != 2 {
		t.Errorf("moves = %d, want 2", d.stats.moves)
	}
	if d.stats.selectionChanges != 1 {
		t.Errorf("selection changes = %d, want 1", d.stats.selectionChanges)
	}

	d.DebugFrame()
	if d.stats != (debugStats{}) {
		t.Errorf("stats not reset: %+v", d.stats)
	}
}

func TestDebugStatsOffByDefault(t *testing.T) {
	d, _ := newTestDial(t)
	d.BeginDrag(RingOuter)
	d.Move(testCX, testCY+100)
	if d.stats.moves != 0 {
		t.Errorf("moves = %d with debug off", d.stats.moves)
	}
}
