package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"podesk/internal/util"
)

type createProjectRequest struct {
	Name string `json:"name"`
}

// CreateProject creates a fresh project workbook.
// POST /api/projects
func (h *Handler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "invalid request body")
		return
	}

	fileName, err := h.projects.Create(req.Name)
	if err != nil {
		h.log.Error().Err(err).Str("name", req.Name).Msg("create project failed")
		failErr(c, err)
		return
	}

	ok(c, gin.H{
		"file":    fileName,
		"message": fmt.Sprintf("Project '%s' created successfully.", fileName),
	})
}

// ListProjects lists project workbook file names.
// GET /api/projects
func (h *Handler) ListProjects(c *gin.Context) {
	files, err := h.projects.List()
	if err != nil {
		h.log.Error().Err(err).Msg("list projects failed")
		failErr(c, err)
		return
	}
	ok(c, gin.H{"projects": files})
}

type openProjectRequest struct {
	File string `json:"file"`
}

// OpenProject opens a project workbook in the system's default spreadsheet
// application.
// POST /api/projects/open
func (h *Handler) OpenProject(c *gin.Context) {
	var req openProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "invalid request body")
		return
	}

	if !h.projects.Exists(req.File) {
		fail(c, fmt.Sprintf("File '%s' not found.", req.File))
		return
	}

	if err := util.OpenFile(h.projects.Path(req.File)); err != nil {
		h.log.Error().Err(err).Str("file", req.File).Msg("open project failed")
		fail(c, fmt.Sprintf("Failed to open file: %v", err))
		return
	}

	okMsg(c, fmt.Sprintf("Opened '%s'.", req.File))
}
