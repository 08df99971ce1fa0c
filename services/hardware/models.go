package hardwareservice

import (
	"github.com/FrumiousOwl/Teses-front-sub000/models"
	"github.com/FrumiousOwl/Teses-front-sub000/utils"
)

// HardwareDraft is the modal-bound record for create and edit. Only
// required-field non-emptiness is validated; the price field additionally gets
// its non-digits stripped before submission.
type HardwareDraft struct {
	ID           int    `json:"aid"`
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	PurchaseDate string `json:"purchaseDate" validate:"required"`
	Supplier     string `json:"supplier" validate:"required"`
	TotalPrice   string `json:"totalPrice"`
	Available    int    `json:"available"`
	Deployed     int    `json:"deployed"`
	Defective    int    `json:"defective"`
}

func draftFromAsset(a models.HardwareAsset) HardwareDraft {
	return HardwareDraft{
		ID:           a.ID,
		Name:         a.Name,
		Description:  a.Description,
		PurchaseDate: a.PurchaseDate,
		Supplier:     a.Supplier,
		TotalPrice:   utils.FormatMoney(a.TotalPrice),
		Available:    a.Available,
		Deployed:     a.Deployed,
		Defective:    a.Defective,
	}
}

func (d HardwareDraft) toAsset() models.HardwareAsset {
	return models.HardwareAsset{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		PurchaseDate: d.PurchaseDate,
		Supplier:     d.Supplier,
		TotalPrice:   utils.NormalizeMoney(d.TotalPrice),
		Available:    d.Available,
		Deployed:     d.Deployed,
		Defective:    d.Defective,
	}
}
