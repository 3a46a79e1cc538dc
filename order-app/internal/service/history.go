package service

import (
	"context"
	"fmt"

	"gofood/order-app/internal/domain"
	"gofood/order-app/internal/pricing"
)

// History is the read-only view over past orders. Nothing is cached; every
// call goes back to the gateway.
type History struct {
	gateway   Gateway
	formatter pricing.Formatter
}

func NewHistory(gateway Gateway, formatter pricing.Formatter) *History {
	return &History{gateway: gateway, formatter: formatter}
}

// ListOrders keeps the order the remote service returned.
func (h *History) ListOrders(ctx context.Context) ([]domain.PastOrderSummary, error) {
	orders, err := h.gateway.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	formatted := make([]domain.PastOrderSummary, len(orders))
	for i, order := range orders {
		order.FormattedPrice = h.formatter.Format(order.Price.Decimal)
		formatted[i] = order
	}
	return formatted, nil
}

func (h *History) LoadOrder(ctx context.Context, id int) (*domain.PastOrder, error) {
	order, err := h.gateway.GetOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", id, err)
	}

	projection := *order
	projection.Extras = make([]domain.ExtraSelection, len(order.Extras))
	copy(projection.Extras, order.Extras)
	projection.FormattedPrice = h.formatter.Format(order.Price.Decimal)
	return &projection, nil
}

func (h *History) OpenOrderDetails(id int) domain.NavigationIntent {
	return domain.NavigationIntent{Kind: domain.IntentOpenOrderDetails, OrderID: id}
}
