package stockalert

import (
	"context"
	"errors"
	"fmt"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/gateway/api"
	"hospital-admin/internal/domain/model"
	"hospital-admin/internal/domain/pagination"
	"hospital-admin/pkg/log"
	"hospital-admin/pkg/msg"
)

type stockAlertUseCase struct {
	perPage int
	gateway api.ResourceGateway[entity.Stock, model.StockForm]
}

// NewStockAlertUseCase reads stocks straight from the backend, bypassing the query cache.
func NewStockAlertUseCase(perPage int, gateway api.ResourceGateway[entity.Stock, model.StockForm]) UseCase {
	if perPage < 1 {
		perPage = 50
	}
	return &stockAlertUseCase{perPage: perPage, gateway: gateway}
}

func (uc *stockAlertUseCase) ScanLowStock(ctx context.Context) ([]entity.Stock, error) {
	var low []entity.Stock
	page := 1

	for {
		if err := ctx.Err(); err != nil {
			return low, err
		}

		query := model.ListQuery{Page: page, PerPage: uc.perPage}
		envelope, err := uc.gateway.List(ctx, query)
		if err != nil {
			return low, fmt.Errorf("failed to list stock page %d: %w", page, err)
		}

		for _, stock := range envelope.Data {
			if stock.IsLow() {
				log.Warn(msg.GetMessage("stock-alert.low", stock.ItemName, stock.WarehouseName, stock.Quantity, stock.MinimumQuantity))
				low = append(low, stock)
			}
		}

		state := envelope.Meta.StateFor(query)
		next, err := pagination.RequestNext(state)
		if errors.Is(err, pagination.ErrOutOfRange) {
			return low, nil
		}
		if err != nil {
			return low, err
		}
		page = next
	}
}
