package pulse

import "testing"

func TestObserverZeroValueInert(t *testing.T) {
	var obs Observer[int]

	if obs.Valid() {
		t.Error("zero view should be invalid")
	}
	if obs.Get() != 0 {
		t.Errorf("zero view Get should return zero value, got %d", obs.Get())
	}

	sub := obs.Observe(func() {})
	if !sub.Disposed() {
		t.Error("zero view should yield a disposed handle")
	}
	sub.Dispose()
}

func TestObserverIsCopyable(t *testing.T) {
	p := NewProperty(1)
	obs := p.Observer()
	copied := obs

	p.Set(2)

	if copied.Get() != 2 || obs.Get() != 2 {
		t.Errorf("copies should observe the same source, got %d and %d", copied.Get(), obs.Get())
	}
}

func TestObserverCannotOutliveSubscription(t *testing.T) {
	p := NewProperty(0)
	obs := p.Observer()

	calls := 0
	sub := obs.Observe(func() { calls++ })
	sub.Dispose()

	p.Set(1)
	if calls != 0 {
		t.Errorf("disposed view subscription should not fire, got %d", calls)
	}
}

func TestNewObserverCustomSource(t *testing.T) {
	var ch Channel
	value := "custom"
	obs := NewObserver(func() string { return value }, ch.Observe)

	if obs.Get() != "custom" {
		t.Errorf("expected custom read, got %q", obs.Get())
	}

	calls := 0
	obs.Observe(func() { calls++ })
	ch.Notify()

	if calls != 1 {
		t.Errorf("expected connector to reach the channel, got %d calls", calls)
	}
}
