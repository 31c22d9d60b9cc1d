package pulse

import "testing"

func TestOneShotLatchesOnFirstSet(t *testing.T) {
	p := NewOneShotProperty(5)
	notifies := 0
	p.Observe(func() { notifies++ })

	if p.Latched() {
		t.Error("construction must not latch")
	}

	p.Set(9)
	if p.Get() != 9 {
		t.Errorf("first set should stick, got %d", p.Get())
	}
	if notifies != 1 {
		t.Errorf("first set should notify once, got %d", notifies)
	}
	if !p.Latched() {
		t.Error("first set should latch")
	}

	p.Set(12)
	if p.Get() != 9 {
		t.Errorf("second set should be ignored, got %d", p.Get())
	}
	if notifies != 1 {
		t.Errorf("second set should not notify, got %d", notifies)
	}
}

func TestOneShotForceIgnoredAfterLatch(t *testing.T) {
	p := NewOneShotProperty("init")
	p.Set("real")

	notifies := 0
	p.Observe(func() { notifies++ })

	p.SetForce("other")
	p.SetSilent("other")

	if p.Get() != "real" {
		t.Errorf("latched value should be immutable, got %q", p.Get())
	}
	if notifies != 0 {
		t.Errorf("latched property should never notify, got %d", notifies)
	}
}

func TestOneShotSetterRespectsLatch(t *testing.T) {
	p := NewOneShotProperty(0)
	setter := p.Setter()

	setter.Set(1)
	setter.Set(2)

	if p.Get() != 1 {
		t.Errorf("setter must honor the latch, got %d", p.Get())
	}
}

func TestOneShotDedupFirstSetStillLatches(t *testing.T) {
	// Setting the current value consumes the one shot even though nothing
	// changes; the latch is about assignment, not mutation.
	p := NewOneShotProperty(5)
	p.Set(5)

	if !p.Latched() {
		t.Error("deduplicated first set should still latch")
	}

	p.Set(6)
	if p.Get() != 5 {
		t.Errorf("post-latch set should be ignored, got %d", p.Get())
	}
}
