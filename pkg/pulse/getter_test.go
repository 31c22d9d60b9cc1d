package pulse

import "testing"

func TestGetterRecomputesEveryGet(t *testing.T) {
	calls := 0
	g := NewGetter(func() int {
		calls++
		return calls * 10
	})

	if got := g.Get(); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
	if got := g.Get(); got != 20 {
		t.Errorf("expected recompute on every call, got %d", got)
	}
	if calls != 2 {
		t.Errorf("producer should run once per Get, ran %d times", calls)
	}
}

func TestGetterNotifyIsCallerDriven(t *testing.T) {
	source := 1
	g := NewGetter(func() int { return source * 2 })

	notifies := 0
	g.Observe(func() { notifies++ })

	// Changing the input alone does not notify; the owner must announce it.
	source = 2
	if notifies != 0 {
		t.Errorf("input change alone must not notify, got %d", notifies)
	}

	g.Notify()
	if notifies != 1 {
		t.Errorf("expected 1 notification, got %d", notifies)
	}
	if g.Get() != 4 {
		t.Errorf("expected recomputed value 4, got %d", g.Get())
	}
}

func TestGetterSetFuncSilentRebind(t *testing.T) {
	g := NewGetter(func() string { return "old" })
	notifies := 0
	g.Observe(func() { notifies++ })

	g.SetFunc(func() string { return "new" })

	if notifies != 0 {
		t.Errorf("rebinding must be silent, got %d notifications", notifies)
	}
	if g.Get() != "new" {
		t.Errorf("expected rebound producer, got %q", g.Get())
	}
}

func TestGetterValid(t *testing.T) {
	g := NewGetter[int](nil)
	if g.Valid() {
		t.Error("getter without producer should be invalid")
	}

	g.SetFunc(func() int { return 1 })
	if !g.Valid() {
		t.Error("getter with producer should be valid")
	}
}

func TestGetterObserver(t *testing.T) {
	source := 5
	g := NewGetter(func() int { return source })
	obs := g.Observer()

	seen := -1
	obs.Observe(func() { seen = obs.Get() })

	source = 6
	g.Notify()

	if seen != 6 {
		t.Errorf("observer should recompute through the view, got %d", seen)
	}
}
