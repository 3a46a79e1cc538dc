package service

import (
	"context"

	"gofood/order-app/internal/domain"
)

// Gateway is everything the app needs from the remote food service.
type Gateway interface {
	GetFood(ctx context.Context, id int) (*domain.Dish, error)
	ListOrders(ctx context.Context) ([]domain.PastOrderSummary, error)
	GetOrder(ctx context.Context, id int) (*domain.PastOrder, error)
	CreateFavorite(ctx context.Context, dish domain.Dish) error
	DeleteFavorite(ctx context.Context, dishID int) error
	CreateOrder(ctx context.Context, payload domain.OrderPayload) error
}

type SessionInterface interface {
	IncrementExtra(extraID int) error
	DecrementExtra(extraID int) error
	IncrementQuantity() error
	DecrementQuantity() error
	ToggleFavorite(ctx context.Context) error
	Submit(ctx context.Context) error
	DismissConfirmation() (domain.NavigationIntent, error)
	Draft() domain.OrderDraft
	Payload() domain.OrderPayload
	FormattedTotal() string
	State() domain.SubmissionState
	IsFavorite() bool
}

type HistoryInterface interface {
	ListOrders(ctx context.Context) ([]domain.PastOrderSummary, error)
	LoadOrder(ctx context.Context, id int) (*domain.PastOrder, error)
	OpenOrderDetails(id int) domain.NavigationIntent
}

var (
	_ SessionInterface = (*Session)(nil)
	_ HistoryInterface = (*History)(nil)
)
