package api

import "github.com/gin-gonic/gin"

// WindowScale reports the window DPI scaling factor (1.0 on any failure).
// GET /api/window/scale
func (h *Handler) WindowScale(c *gin.Context) {
	ok(c, gin.H{"scale": h.host.ScalingFactor()})
}

type moveWindowRequest struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// WindowMove moves the window by a pixel delta, best-effort.
// POST /api/window/move
func (h *Handler) WindowMove(c *gin.Context) {
	var req moveWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "invalid request body")
		return
	}
	h.host.MoveBy(req.DX, req.DY)
	ok(c, nil)
}

// WindowMinimize minimizes the window, best-effort.
// POST /api/window/minimize
func (h *Handler) WindowMinimize(c *gin.Context) {
	h.host.Minimize()
	ok(c, nil)
}

// WindowToggleMaximize toggles the maximized state, best-effort.
// POST /api/window/maximize
func (h *Handler) WindowToggleMaximize(c *gin.Context) {
	h.host.ToggleMaximize()
	ok(c, nil)
}

// WindowClose closes the window and ends the application.
// POST /api/window/close
func (h *Handler) WindowClose(c *gin.Context) {
	ok(c, nil)
	h.host.Close()
}
