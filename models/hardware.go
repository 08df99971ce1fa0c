package models

// HardwareAsset is the client-side copy of a /Hardware record. Counters obey
// available >= deployed >= defective >= 0; the server owns the authoritative row.
type HardwareAsset struct {
	ID           int    `json:"aid"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PurchaseDate string `json:"purchaseDate"`
	Supplier     string `json:"supplier"`
	TotalPrice   string `json:"totalPrice"`
	Available    int    `json:"available"`
	Deployed     int    `json:"deployed"`
	Defective    int    `json:"defective"`
}

// LowStockThreshold is the fixed available-count cutoff for stock warnings.
const LowStockThreshold = 10

func (a HardwareAsset) IsLowStock() bool {
	return a.Available <= LowStockThreshold
}
