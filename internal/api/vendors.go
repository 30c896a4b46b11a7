package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"podesk/internal/model"
)

// ListVendors returns the sorted vendor names found across all PO sheets.
// GET /api/vendors
func (h *Handler) ListVendors(c *gin.Context) {
	vendors, err := h.vendors.All()
	if err != nil {
		h.log.Error().Err(err).Msg("list vendors failed")
		failErr(c, err)
		return
	}
	ok(c, gin.H{"vendors": vendors})
}

// VendorDetails returns the contact details from the vendor's latest-dated PO.
// GET /api/vendors/details?name=<vendor>
func (h *Handler) VendorDetails(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		fail(c, "name is required")
		return
	}

	details, err := h.vendors.Details(name)
	if err != nil {
		h.log.Error().Err(err).Str("vendor", name).Msg("vendor details failed")
		failErr(c, err)
		return
	}
	ok(c, gin.H{"details": details})
}

// VendorItems returns the distinct items previously ordered from a vendor.
// GET /api/vendors/items?name=<vendor>
func (h *Handler) VendorItems(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		fail(c, "name is required")
		return
	}

	items, err := h.vendors.Items(name)
	if err != nil {
		h.log.Error().Err(err).Str("vendor", name).Msg("vendor items failed")
		failErr(c, err)
		return
	}
	ok(c, gin.H{"items": items})
}

type saveVendorRequest struct {
	Name    string       `json:"name"`
	Details model.Vendor `json:"details"`
}

// SaveVendorDetails updates one entry of the JSON vendor directory.
// POST /api/vendors/details
func (h *Handler) SaveVendorDetails(c *gin.Context) {
	var req saveVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "invalid request body")
		return
	}
	if req.Name == "" {
		fail(c, "name is required")
		return
	}

	if err := h.vendors.SaveDetails(req.Name, req.Details); err != nil {
		h.log.Error().Err(err).Str("vendor", req.Name).Msg("save vendor details failed")
		failErr(c, err)
		return
	}
	okMsg(c, fmt.Sprintf("Vendor '%s' details saved successfully.", req.Name))
}
