package window

import "testing"

func TestDetachedCloseInvokesShutdown(t *testing.T) {
	called := 0
	host := NewDetached(func() { called++ })

	host.Close()
	if called != 1 {
		t.Fatalf("shutdown called %d times, want 1", called)
	}
}

func TestDetachedNoOps(t *testing.T) {
	host := NewDetached(nil)

	if got := host.ScalingFactor(); got != 1.0 {
		t.Fatalf("scaling factor = %v, want 1.0", got)
	}

	// None of these may panic without a window or shutdown callback.
	host.MoveBy(10, -5)
	host.Minimize()
	host.ToggleMaximize()
	host.Close()
}
