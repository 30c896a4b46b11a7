package window

// Host is the window surface exposed to the embedded page. All operations are
// synchronous and best-effort: a host that has no window, or whose toolkit
// does not support an operation, answers with a no-op rather than an error.
type Host interface {
	// ScalingFactor reports the window's DPI scaling factor, 1.0 on any failure.
	ScalingFactor() float64
	// MoveBy moves the window by a pixel delta.
	MoveBy(dx, dy int)
	// Minimize minimizes the window.
	Minimize()
	// ToggleMaximize toggles between maximized and normal state.
	ToggleMaximize()
	// Close closes the window and ends the application.
	Close()
}

// Detached is the host used in browser mode: the page lives in the user's own
// browser, so there is no window to manage. Close still works: it shuts the
// application down through the provided callback.
type Detached struct {
	shutdown func()
}

// NewDetached creates a detached host. shutdown is invoked once on Close.
func NewDetached(shutdown func()) *Detached {
	return &Detached{shutdown: shutdown}
}

func (d *Detached) ScalingFactor() float64 { return 1.0 }

func (d *Detached) MoveBy(dx, dy int) {}

func (d *Detached) Minimize() {}

func (d *Detached) ToggleMaximize() {}

func (d *Detached) Close() {
	if d.shutdown != nil {
		d.shutdown()
	}
}
