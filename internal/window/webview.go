package window

import (
	"github.com/rs/zerolog"
	webview "github.com/webview/webview_go"
)

// Webview hosts the embedded page in a native webview window. The toolkit
// exposes no move/minimize/maximize controls and no DPI query, so those
// operations degrade to no-ops and the scaling factor falls back to 1.0.
type Webview struct {
	view webview.WebView
	log  zerolog.Logger
}

// NewWebview creates the native window and points it at url. Run must be
// called on the main goroutine afterwards.
func NewWebview(title, url string, width, height int, debug bool, log zerolog.Logger) *Webview {
	view := webview.New(debug)
	view.SetTitle(title)
	view.SetSize(width, height, webview.HintNone)
	view.Navigate(url)

	return &Webview{
		view: view,
		log:  log.With().Str("component", "window").Logger(),
	}
}

// Run enters the window's event loop and blocks until the window closes.
func (w *Webview) Run() {
	defer w.view.Destroy()
	w.view.Run()
}

func (w *Webview) ScalingFactor() float64 {
	// Not exposed by the toolkit; the page reads devicePixelRatio itself.
	return 1.0
}

func (w *Webview) MoveBy(dx, dy int) {
	w.log.Debug().Int("dx", dx).Int("dy", dy).Msg("move not supported by webview toolkit")
}

func (w *Webview) Minimize() {
	w.log.Debug().Msg("minimize not supported by webview toolkit")
}

func (w *Webview) ToggleMaximize() {
	w.log.Debug().Msg("maximize toggle not supported by webview toolkit")
}

func (w *Webview) Close() {
	w.view.Dispatch(func() {
		w.view.Terminate()
	})
}
