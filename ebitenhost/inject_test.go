package ebitenhost

import "testing"

func TestInjectDragQueuesFrames(t *testing.T) {
	f := newFixture(t)
	f.host.InjectDrag(0, 0, 90, 30, 5)
	if n := f.host.PendingInjections(); n != 5 {
		t.Fatalf("queued = %d, want 5", n)
	}
	want := []syntheticPointerEvent{
		{x: 0, y: 0, pressed: true},
		{x: 22.5, y: 7.5, pressed: true},
		{x: 45, y: 15, pressed: true},
		{x: 67.5, y: 22.5, pressed: true},
		{x: 90, y: 30},
	}
	for i, w := range want {
		got := f.host.injectQueue[i]
		if got.pressed != w.pressed || !near(got.x, w.x) || !near(got.y, w.y) {
			t.Errorf("event %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	f := newFixture(t)
	f.host.InjectDrag(0, 0, 10, 10, 0)
	if n := f.host.PendingInjections(); n != 2 {
		t.Errorf("queued = %d, want 2", n)
	}
}

func TestInjectConsumesOnePerStep(t *testing.T) {
	f := newFixture(t)
	f.host.InjectClick(20, 20)
	real := 0
	f.host.step(func() { real++ })
	if n := f.host.PendingInjections(); n != 1 {
		t.Errorf("queued after one step = %d, want 1", n)
	}
	f.host.step(func() { real++ })
	f.host.step(func() { real++ })
	if real != 1 {
		t.Errorf("real input ran %d times, want 1 (only once the queue is empty)", real)
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
