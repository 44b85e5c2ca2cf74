package dualdial

import "testing"

func TestPulseIdle(t *testing.T) {
	p := newPulse()
	p.Update(0.1)
	if p.Scale() != 1 {
		t.Errorf("idle scale = %v, want 1", p.Scale())
	}
}

func TestPulseRunsToRest(t *testing.T) {
	p := newPulse()
	p.trigger()
	if p.Scale() != pulseScale {
		t.Fatalf("scale after trigger = %v, want %v", p.Scale(), pulseScale)
	}

	p.Update(pulseDuration / 2)
	if s := p.Scale(); s <= 1 || s >= pulseScale {
		t.Errorf("mid-pulse scale = %v, want between 1 and %v", s, pulseScale)
	}

	p.Update(pulseDuration)
	if p.Scale() != 1 || !p.done {
		t.Errorf("scale after pulse = %v done=%v, want 1 done", p.Scale(), p.done)
	}
}

func TestSelectionChangeTriggersPulse(t *testing.T) {
	d, _ := newTestDial(t)
	if d.PointerScale() != 1 {
		t.Fatalf("initial pointer scale = %v, want 1", d.PointerScale())
	}

	d.SetRotation(RingOuter, 10) // still boring
	if d.PointerScale() != 1 {
		t.Error("rotation without a selection change should not pulse")
	}

	d.SetRotation(RingOuter, 90)
	if d.PointerScale() != pulseScale {
		t.Errorf("pointer scale = %v, want %v", d.PointerScale(), pulseScale)
	}
	if d.Rotation(RingOuter) != 90 {
		t.Error("pulse must not affect rotation")
	}
}
