package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"podesk/internal/service/po"
	"podesk/internal/service/project"
	"podesk/internal/service/vendor"
	"podesk/internal/window"
)

// Handler exposes the host operations consumed by the embedded page. Every
// operation answers HTTP 200 with {"success": bool, ...}. Failures become
// declined results with a message, never transport faults.
type Handler struct {
	projects *project.Manager
	pos      *po.Service
	vendors  *vendor.Service
	host     window.Host
	log      zerolog.Logger
}

// NewHandler wires the API over the services and the window host.
func NewHandler(projects *project.Manager, pos *po.Service, vendors *vendor.Service, host window.Host, log zerolog.Logger) *Handler {
	return &Handler{
		projects: projects,
		pos:      pos,
		vendors:  vendors,
		host:     host,
		log:      log.With().Str("component", "api").Logger(),
	}
}

// RegisterRoutes registers every host operation under the given group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// Projects
	router.POST("/projects", h.CreateProject)
	router.GET("/projects", h.ListProjects)
	router.POST("/projects/open", h.OpenProject)

	// PO sheets
	router.GET("/pos", h.ListPOs)
	router.POST("/pos", h.CreatePO)
	router.POST("/pos/delete", h.DeletePO)
	router.POST("/pos/save", h.SavePOData)

	// Vendor directory
	router.GET("/vendors", h.ListVendors)
	router.GET("/vendors/details", h.VendorDetails)
	router.GET("/vendors/items", h.VendorItems)
	router.POST("/vendors/details", h.SaveVendorDetails)

	// Window host
	router.GET("/window/scale", h.WindowScale)
	router.POST("/window/move", h.WindowMove)
	router.POST("/window/minimize", h.WindowMinimize)
	router.POST("/window/maximize", h.WindowToggleMaximize)
	router.POST("/window/close", h.WindowClose)
}

func ok(c *gin.Context, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["success"] = true
	c.JSON(http.StatusOK, payload)
}

func okMsg(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}

func failErr(c *gin.Context, err error) {
	fail(c, err.Error())
}
