package entity

import "hospital-admin/internal/domain/badge"

type PurchaseOrder struct {
	ID           int64               `json:"id"`
	Number       string              `json:"number"`
	SupplierID   int64               `json:"supplier_id"`
	SupplierName string              `json:"supplier_name"`
	Status       string              `json:"status"`
	OrderedAt    string              `json:"ordered_at"`
	Total        float64             `json:"total"`
	Lines        []PurchaseOrderLine `json:"lines"`
	Badge        *badge.Badge        `json:"badge,omitempty"`
}

type PurchaseOrderLine struct {
	ItemID    int64   `json:"item_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}
