package model

// Cell layout of a PO sheet. This mirrors the template workbook and is a fixed
// external contract: existing project files already carry data at these
// coordinates, so the values here must never be inferred from the template.
const (
	CellVendorName           = "B2"
	CellDeliveryDate         = "B3"
	CellVendorAddress        = "B4"
	CellVendorContact        = "B5"
	CellVendorEmail          = "B6"
	CellDeliveryInstructions = "B7"
	CellTerms                = "B8"

	// Item rows run from ItemStartRow downward, one row per item:
	// A = name, B = quantity, C = unit price, D = description.
	ItemStartRow  = 10
	ColItemName   = "A"
	ColItemQty    = "B"
	ColItemPrice  = "C"
	ColItemDetail = "D"
)

const (
	// POSheetPrefix marks sheets that hold purchase orders. Vendor scans only
	// look at sheets whose name starts with this prefix.
	POSheetPrefix = "PO"

	// DefaultSheetName is the single sheet a fresh project workbook starts with.
	DefaultSheetName = "Sheet1"

	// DeletedTabColor is the ARGB tab color that flags a PO as deleted.
	// Deletion never removes the sheet itself.
	DeletedTabColor = "FFFF0000"

	// ProjectExt is the workbook extension projects are stored and listed with.
	ProjectExt = ".xlsx"
)
