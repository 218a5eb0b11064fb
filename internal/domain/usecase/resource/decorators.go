package resource

import (
	"hospital-admin/internal/domain/badge"
	"hospital-admin/internal/domain/entity"
)

func PrescriptionBadge(p *entity.Prescription) {
	b := badge.For(badge.PrescriptionStatus, p.Status)
	p.Badge = &b
}

func PurchaseOrderBadge(po *entity.PurchaseOrder) {
	b := badge.For(badge.PurchaseOrderStatus, po.Status)
	po.Badge = &b
}

func EmployeeBadge(e *entity.Employee) {
	b := badge.For(badge.EmployeeActivity, e.Status)
	e.Badge = &b
}

func StockBadge(s *entity.Stock) {
	b := badge.ForStock(s.Quantity, s.MinimumQuantity)
	s.Badge = &b
}
