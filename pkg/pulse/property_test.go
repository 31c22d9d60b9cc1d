package pulse

import "testing"

func TestPropertyBasic(t *testing.T) {
	p := NewProperty(7)

	if p.Get() != 7 {
		t.Errorf("expected initial value 7, got %d", p.Get())
	}

	p.Set(9)
	if p.Get() != 9 {
		t.Errorf("expected value 9, got %d", p.Get())
	}

	if !p.Equal(9) {
		t.Error("Equal(9) should be true")
	}
	if p.Equal(7) {
		t.Error("Equal(7) should be false")
	}
}

func TestPropertyDedupNotifications(t *testing.T) {
	p := NewProperty("a")
	notifies := 0
	p.Observe(func() { notifies++ })

	// a != b: two distinct sets notify twice.
	p.Set("b")
	p.Set("c")
	if notifies != 2 {
		t.Errorf("expected 2 notifications for two changes, got %d", notifies)
	}

	// Setting the current value again notifies zero more times.
	p.Set("c")
	if notifies != 2 {
		t.Errorf("no-op set should not notify, got %d", notifies)
	}
}

func TestPropertySetSilent(t *testing.T) {
	p := NewProperty(1)
	notifies := 0
	p.Observe(func() { notifies++ })

	p.SetSilent(2)

	if p.Get() != 2 {
		t.Errorf("SetSilent should store the value, got %d", p.Get())
	}
	if notifies != 0 {
		t.Errorf("SetSilent should not notify, got %d", notifies)
	}
}

func TestPropertySetForce(t *testing.T) {
	p := NewProperty(5)
	notifies := 0
	p.Observe(func() { notifies++ })

	p.SetForce(5)

	if notifies != 1 {
		t.Errorf("SetForce with equal value should notify, got %d", notifies)
	}
	if p.Get() != 5 {
		t.Errorf("expected value 5, got %d", p.Get())
	}
}

func TestPropertyNotifyWithoutChange(t *testing.T) {
	p := NewProperty([]int{1, 2})
	notifies := 0
	p.Observe(func() { notifies++ })

	// In-place mutation announced manually.
	p.Notify()

	if notifies != 1 {
		t.Errorf("Notify should fire unconditionally, got %d", notifies)
	}
	if p.Get()[0] != 1 {
		t.Error("Notify must not touch the stored value")
	}
}

func TestPropertyObserverReadsCurrentValue(t *testing.T) {
	p := NewProperty(10)
	obs := p.Observer()

	seen := -1
	obs.Observe(func() { seen = obs.Get() })

	p.Set(42)

	if seen != 42 {
		t.Errorf("observer should read the new value inside the callback, got %d", seen)
	}
}

func TestPropertySliceEquality(t *testing.T) {
	p := NewProperty([]int{1, 2, 3})
	notifies := 0
	p.Observe(func() { notifies++ })

	p.Set([]int{1, 2, 3})
	if notifies != 0 {
		t.Errorf("deep-equal slice should not notify, got %d", notifies)
	}

	p.Set([]int{1, 2, 3, 4})
	if notifies != 1 {
		t.Errorf("expected 1 notification for changed slice, got %d", notifies)
	}
}

func TestPropertyWithEquals(t *testing.T) {
	type user struct {
		ID   int
		Name string
	}

	p := NewProperty(user{ID: 1, Name: "Alice"}).WithEquals(func(a, b user) bool {
		return a.ID == b.ID
	})

	notifies := 0
	p.Observe(func() { notifies++ })

	p.Set(user{ID: 1, Name: "Alice Smith"})
	if notifies != 0 {
		t.Errorf("same ID should not notify, got %d", notifies)
	}

	p.Set(user{ID: 2, Name: "Bob"})
	if notifies != 1 {
		t.Errorf("different ID should notify, got %d", notifies)
	}
}

func TestPropertyNilPointerValue(t *testing.T) {
	var ptr *int
	p := NewProperty(ptr)
	notifies := 0
	p.Observe(func() { notifies++ })

	p.Set(nil)
	if notifies != 0 {
		t.Errorf("nil to nil should not notify, got %d", notifies)
	}

	v := 3
	p.Set(&v)
	if notifies != 1 {
		t.Errorf("nil to non-nil should notify, got %d", notifies)
	}
}

func TestSetterCapability(t *testing.T) {
	p := NewProperty(0)
	setter := p.Setter()

	setter.Set(8)
	if p.Get() != 8 {
		t.Errorf("setter should mutate its property, got %d", p.Get())
	}
	if !setter.Valid() {
		t.Error("obtained setter should be valid")
	}
}

func TestZeroSetterInert(t *testing.T) {
	var setter Setter[int]

	if setter.Valid() {
		t.Error("zero setter should be invalid")
	}
	setter.Set(1)       // no-op
	setter.SetForce(1)  // no-op
	setter.SetSilent(1) // no-op
}

func TestReadOnlyHalfSharesState(t *testing.T) {
	p := NewProperty("x")
	ro := p.ReadOnly()
	notifies := 0
	ro.Observe(func() { notifies++ })

	p.Set("y")

	if ro.Get() != "y" {
		t.Errorf("read-only half should see the new value, got %q", ro.Get())
	}
	if notifies != 1 {
		t.Errorf("read-only observer should be notified, got %d", notifies)
	}
}
