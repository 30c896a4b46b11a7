package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"podesk/internal/model"
)

// ListPOs lists the sheets of a project in PO order.
// GET /api/pos?project=<file>
func (h *Handler) ListPOs(c *gin.Context) {
	projectFile := c.Query("project")
	if projectFile == "" {
		fail(c, "project is required")
		return
	}

	sheets, err := h.pos.ListSheets(projectFile)
	if err != nil {
		h.log.Error().Err(err).Str("project", projectFile).Msg("list pos failed")
		failErr(c, err)
		return
	}
	ok(c, gin.H{"sheets": sheets})
}

type createPORequest struct {
	Project string `json:"project"`
	Name    string `json:"name"`
}

// CreatePO clones the template sheet into a project under a new name.
// POST /api/pos
func (h *Handler) CreatePO(c *gin.Context) {
	var req createPORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "invalid request body")
		return
	}
	if req.Project == "" || req.Name == "" {
		fail(c, "project and name are required")
		return
	}

	if err := h.pos.Create(req.Project, req.Name); err != nil {
		h.log.Error().Err(err).Str("project", req.Project).Str("po", req.Name).Msg("create po failed")
		failErr(c, err)
		return
	}
	okMsg(c, fmt.Sprintf("PO '%s' created successfully.", req.Name))
}

type deletePORequest struct {
	Project string `json:"project"`
	Name    string `json:"name"`
}

// DeletePO flags a PO sheet as deleted by recoloring its tab.
// POST /api/pos/delete
func (h *Handler) DeletePO(c *gin.Context) {
	var req deletePORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "invalid request body")
		return
	}

	if err := h.pos.Delete(req.Project, req.Name); err != nil {
		h.log.Error().Err(err).Str("project", req.Project).Str("po", req.Name).Msg("delete po failed")
		failErr(c, err)
		return
	}
	okMsg(c, fmt.Sprintf("PO '%s' marked as deleted.", req.Name))
}

type savePORequest struct {
	Project  string         `json:"project"`
	Name     string         `json:"name"`
	Vendor   model.Vendor   `json:"vendor"`
	Delivery model.Delivery `json:"delivery"`
	Items    []model.Item   `json:"items"`
	Terms    string         `json:"terms"`
}

// SavePOData writes a PO payload into the fixed cells of its sheet.
// POST /api/pos/save
func (h *Handler) SavePOData(c *gin.Context) {
	var req savePORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "invalid request body")
		return
	}

	data := model.POData{
		Vendor:   req.Vendor,
		Delivery: req.Delivery,
		Items:    req.Items,
		Terms:    req.Terms,
	}

	if err := h.pos.SaveData(req.Project, req.Name, data); err != nil {
		h.log.Error().Err(err).Str("project", req.Project).Str("po", req.Name).Msg("save po data failed")
		failErr(c, err)
		return
	}
	okMsg(c, "PO data saved successfully.")
}
