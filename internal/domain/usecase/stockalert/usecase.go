package stockalert

import (
	"context"

	"hospital-admin/internal/domain/entity"
)

type UseCase interface {
	// ScanLowStock walks every stock page and returns the stocks at or below their minimum.
	ScanLowStock(ctx context.Context) ([]entity.Stock, error)
}
