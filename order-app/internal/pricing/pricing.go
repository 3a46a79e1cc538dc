package pricing

import (
	"gofood/order-app/internal/domain"

	"github.com/shopspring/decimal"
)

// ExtrasSubtotal sums value * quantity over every selection.
func ExtrasSubtotal(selections []domain.ExtraSelection) decimal.Decimal {
	subtotal := decimal.Zero
	for _, selection := range selections {
		subtotal = subtotal.Add(selection.Value.Mul(decimal.NewFromInt(int64(selection.Quantity))))
	}
	return subtotal
}

// ComputeTotal returns (extras subtotal + dish price) * baseQuantity.
// It is recomputed from its inputs on every call.
func ComputeTotal(dish domain.Dish, selections []domain.ExtraSelection, baseQuantity int) decimal.Decimal {
	return ExtrasSubtotal(selections).
		Add(dish.Price.Decimal).
		Mul(decimal.NewFromInt(int64(baseQuantity)))
}
