package entity

import "hospital-admin/internal/domain/badge"

// Stock is the quantity of one item held in one warehouse.
type Stock struct {
	ID              int64        `json:"id"`
	ItemID          int64        `json:"item_id"`
	ItemName        string       `json:"item_name"`
	WarehouseID     int64        `json:"warehouse_id"`
	WarehouseName   string       `json:"warehouse_name"`
	Quantity        int          `json:"quantity"`
	MinimumQuantity int          `json:"minimum_quantity"`
	ExpiredAt       string       `json:"expired_at,omitempty"`
	Badge           *badge.Badge `json:"badge,omitempty"`
}

// IsLow reports whether the quantity reached the reorder threshold.
func (s Stock) IsLow() bool {
	return s.Quantity <= s.MinimumQuantity
}

// Consumption (pemakaian) records stock used by a department.
type Consumption struct {
	ID          int64  `json:"id"`
	ItemID      int64  `json:"item_id"`
	WarehouseID int64  `json:"warehouse_id"`
	Quantity    int    `json:"quantity"`
	Department  string `json:"department"`
	ConsumedAt  string `json:"consumed_at"`
	Note        string `json:"note,omitempty"`
}
