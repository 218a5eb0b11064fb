package badge

import "strings"

type Variant string

const (
	Success   Variant = "success"
	Warning   Variant = "warning"
	Danger    Variant = "danger"
	Info      Variant = "info"
	Secondary Variant = "secondary"
)

// Kind selects the status vocabulary a badge is resolved from.
type Kind string

const (
	PrescriptionStatus  Kind = "prescription"
	PurchaseOrderStatus Kind = "purchase-order"
	EmployeeActivity    Kind = "employee"
	StockLevel          Kind = "stock"
)

// Badge is the colored status chip shown in list rows.
type Badge struct {
	Label   string  `json:"label"`
	Variant Variant `json:"variant"`
}

var table = map[Kind]map[string]Badge{
	PrescriptionStatus: {
		"pending":   {"Pending", Warning},
		"processed": {"Processed", Info},
		"dispensed": {"Dispensed", Success},
		"cancelled": {"Cancelled", Danger},
	},
	PurchaseOrderStatus: {
		"draft":     {"Draft", Secondary},
		"ordered":   {"Ordered", Info},
		"partial":   {"Partially received", Warning},
		"received":  {"Received", Success},
		"cancelled": {"Cancelled", Danger},
	},
	EmployeeActivity: {
		"active":   {"Active", Success},
		"leave":    {"On leave", Warning},
		"inactive": {"Inactive", Secondary},
	},
	StockLevel: {
		"available": {"Available", Success},
		"low":       {"Low", Warning},
		"empty":     {"Out of stock", Danger},
	},
}

// For returns the badge of status within kind. Matching ignores case and surrounding spaces;
// unknown statuses get a Secondary badge labelled with the raw status.
func For(kind Kind, status string) Badge {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if b, ok := table[kind][normalized]; ok {
		return b
	}
	label := strings.TrimSpace(status)
	if label == "" {
		label = "Unknown"
	}
	return Badge{Label: label, Variant: Secondary}
}

// ForStock derives the stock level badge from the quantity on hand and its minimum.
func ForStock(quantity, minimum int) Badge {
	switch {
	case quantity <= 0:
		return For(StockLevel, "empty")
	case quantity <= minimum:
		return For(StockLevel, "low")
	default:
		return For(StockLevel, "available")
	}
}
