package model

// Vendor one logical vendor, keyed by name.
type Vendor struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// Item one line item of a purchase order.
type Item struct {
	Name        string  `json:"name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Description string  `json:"description"`
}

// Delivery delivery date and free-form instructions for a PO.
// The date travels as a plain string; the sheet cell is the source of truth.
type Delivery struct {
	Date         string `json:"date"`
	Instructions string `json:"instructions"`
}

// POData full payload written into one PO sheet.
type POData struct {
	Vendor   Vendor   `json:"vendor"`
	Delivery Delivery `json:"delivery"`
	Items    []Item   `json:"items"`
	Terms    string   `json:"terms"`
}
